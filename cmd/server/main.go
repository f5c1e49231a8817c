package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rohits-web03/folio/internal/api"
	"github.com/rohits-web03/folio/internal/config"
	"github.com/rohits-web03/folio/internal/logging"
	"github.com/rohits-web03/folio/internal/repositories"
)

const shutdownTimeout = 10 * time.Second

// @title Folio API
// @version 1.0
// @description Portfolio and resume backend. Every response uses the {success, message, data} envelope.
// @BasePath /
func main() {
	logger := logging.Setup(config.Envs.Log)

	if err := run(logger); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	if err := repositories.ConnectDatabase(); err != nil {
		return err
	}
	if err := repositories.InitR2(config.Envs.R2); err != nil {
		return err
	}
	if err := repositories.InitCache(config.Envs.RedisURL, config.Envs.CacheTTL); err != nil {
		return err
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Envs.Port),
		Handler: api.SetupRouter(logger),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting folio server", slog.String("port", config.Envs.Port), slog.String("env", config.Envs.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not listen on port %s: %w", config.Envs.Port, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return repositories.Close()
	})
	return g.Wait()
}
