package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server settings read from the environment.
type Config struct {
	Port         string
	GinMode      string
	LogLevel     string
	LogFormat    string
	DatabaseURL  string
	EnableDB     bool
	StaticRoot   string
	MaxBodyBytes int64
}

const defaultMaxBodyBytes = 1 << 20 // 1MB

// Load reads the environment, after merging an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         GetEnv("PORT", "8080"),
		GinMode:      GetEnv("GIN_MODE", "release"),
		LogLevel:     GetEnv("LOG_LEVEL", "info"),
		LogFormat:    GetEnv("LOG_FORMAT", "json"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		EnableDB:     strings.EqualFold(GetEnv("ENABLE_DB", "false"), "true"),
		StaticRoot:   os.Getenv("STATIC_ROOT"),
		MaxBodyBytes: defaultMaxBodyBytes,
	}

	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}

	if raw := os.Getenv("MAX_BODY_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("MAX_BODY_BYTES must be a positive integer, got %q", raw)
		}
		cfg.MaxBodyBytes = n
	}

	if cfg.StaticRoot == "" {
		cfg.StaticRoot = DetectStaticRoot()
	}

	return cfg, nil
}

// GetEnv returns the variable's value, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// DetectStaticRoot looks for index.html in the working directory and up to
// two parents, falling back to the working directory.
func DetectStaticRoot() string {
	startDir, err := os.Getwd()
	if err != nil {
		return "."
	}

	candidates := []string{
		startDir,
		filepath.Dir(startDir),
		filepath.Dir(filepath.Dir(startDir)),
	}

	for _, dir := range candidates {
		if fileExists(filepath.Join(dir, "index.html")) {
			return dir
		}
	}

	return startDir
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
