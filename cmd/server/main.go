package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Skufu/preopcalc/internal/config"
	"github.com/Skufu/preopcalc/internal/database"
	"github.com/Skufu/preopcalc/internal/httpapi"
	"github.com/Skufu/preopcalc/internal/logger"
)

const serviceName = "preopcalc"

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger is configured from cfg, so this one goes to stderr raw.
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	var db database.HealthChecker
	if cfg.EnableDB {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("database connection failed", zap.Error(err))
		}
		defer pool.Close()
		db = pool
	}

	server := newServer(cfg, db, log)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	log.Info("server listening",
		zap.String("port", cfg.Port),
		zap.String("static_root", cfg.StaticRoot),
		zap.Bool("db_enabled", cfg.EnableDB))
	waitForShutdown(server, log)
}

func newServer(cfg *config.Config, db database.HealthChecker, log *zap.Logger) *http.Server {
	router := httpapi.NewRouter(httpapi.Options{
		DB:           db,
		Logger:       log,
		StaticRoot:   cfg.StaticRoot,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func waitForShutdown(server *http.Server, log *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
