package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger.
// level: "debug", "info", "warn", "error" (default "info").
// format: "json" or "console" (default "json").
// serviceName is attached to every entry when non-empty.
func New(level, format, serviceName string) (*zap.Logger, error) {
	var config zap.Config
	if format == "console" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.OutputPaths = []string{"stdout"}
		config.ErrorOutputPaths = []string{"stderr"}
	}
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	base, err := config.Build()
	if err != nil {
		return nil, err
	}

	if serviceName != "" {
		base = base.With(zap.String("service_name", serviceName))
	}
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		base = base.With(zap.String("hostname", hostname))
	}

	return base, nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
