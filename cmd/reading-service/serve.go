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

	"github.com/academiq/ielts-reading-service/internal/cache"
	"github.com/academiq/ielts-reading-service/internal/config"
	"github.com/academiq/ielts-reading-service/internal/handlers"
	"github.com/academiq/ielts-reading-service/internal/repositories/postgres"
	"github.com/academiq/ielts-reading-service/internal/services"
	"github.com/academiq/ielts-reading-service/internal/utils"
	"github.com/academiq/ielts-reading-service/internal/validator"
	"github.com/academiq/ielts-reading-service/pkg"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  runServe,
	}
	f := cmd.Flags()
	f.String("port", "", "HTTP port (overrides PORT)")
	f.Bool("migrate", false, "Run database migrations before serving")
	f.Bool("flush-answer-keys", false, "Drop every cached answer key on startup")
	f.Duration("shutdown-timeout", 10*time.Second, "Graceful shutdown timeout")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	v := viperForCmd(cmd)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if port := v.GetString("port"); port != "" {
		cfg.Port = port
	}

	logger := utils.NewLogger(cfg.Environment, os.Stdout)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		return err
	}
	if v.GetBool("migrate") {
		if err := pkg.Migrate(db); err != nil {
			return err
		}
		logger.Info("Database migrated")
	}

	answerKeys := cache.NewRedisCache(nil, "", logger.Slog())
	redisClient, err := pkg.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Warn("Redis unavailable, answer keys will not be cached", "error", err)
	} else {
		defer redisClient.Close()
		answerKeys = cache.NewRedisCache(redisClient, "reading", logger.Slog())
	}

	publisher, err := cfg.Events.CreateEventPublisher(logger.Slog())
	if err != nil {
		return fmt.Errorf("create event publisher: %w", err)
	}
	defer publisher.Close()

	repo := postgres.NewRepository(db)
	validate := validator.New()
	contentService := services.NewContentService(repo, answerKeys, cfg.AnswerKeyCacheTTL, logger.Slog())
	submissionService := services.NewSubmissionService(repo, validate, logger.Slog())
	if v.GetBool("flush-answer-keys") {
		if err := contentService.FlushAnswerKeys(ctx); err != nil {
			logger.Warn("Failed to flush cached answer keys", "error", err)
		}
	}
	gradingService := services.NewGradingService(repo, contentService, submissionService, publisher, logger.Slog())

	hm := handlers.NewHandlerManager(contentService, submissionService, gradingService, validate, logger)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(hm, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), v.GetDuration("shutdown-timeout"))
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
