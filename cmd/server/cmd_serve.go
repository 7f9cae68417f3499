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
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shelter-admin/service-shelter-web/internal/config"
	"github.com/shelter-admin/service-shelter-web/internal/events"
	"github.com/shelter-admin/service-shelter-web/internal/logger"
	"github.com/shelter-admin/service-shelter-web/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server (default)",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "Listen port (env SHELTER_PORT)")
	serveCmd.Flags().Duration("notice-ttl", 0, "Lifetime of transient notices (env SHELTER_NOTICE_TTL)")
	if err := v.BindPFlag("port", serveCmd.Flags().Lookup("port")); err != nil {
		panic(err)
	}
	if err := v.BindPFlag("notice_ttl", serveCmd.Flags().Lookup("notice-ttl")); err != nil {
		panic(err)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.FromViper(v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, server.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting "+server.ServiceName,
		zap.String("port", cfg.Port),
		zap.String("backend_url", cfg.Backend.URL),
	)

	// Initialize activity publisher
	publisher := events.NewPublisher(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic, server.ServiceName, log)
	defer func() { _ = publisher.Close() }()

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := server.New(server.Options{
		Config:    cfg,
		Logger:    log,
		Publisher: publisher,
	})
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := server.NewHTTPServer(cfg.Port, router)

	// Start server in a goroutine
	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info("shutting down " + server.ServiceName + "...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info(server.ServiceName + " stopped")
	return nil
}
