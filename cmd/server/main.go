package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/compagent/platform/internal/config"
	"github.com/compagent/platform/pkg/logging"
	"github.com/compagent/platform/pkg/middleware"
	"github.com/compagent/platform/pkg/routes"
)

func main() {
	bootLogger := logging.Bootstrap()

	cfg, err := config.Load()
	if err != nil {
		bootLogger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Finalize(); err != nil {
		bootLogger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	runtime, err := NewRuntime(context.Background(), cfg)
	if err != nil {
		bootLogger.Error("runtime init failed", "error", err)
		os.Exit(1)
	}
	defer runtime.Close()

	logger := runtime.Logger

	domain, err := NewDomain(context.Background(), runtime, cfg)
	if err != nil {
		logger.Error("domain init failed", "error", err)
		os.Exit(1)
	}

	router := routes.New(logger)
	registerRoutes(router, runtime, domain, cfg)

	handler := middleware.CORS(&cfg.CORS)(
		middleware.Logger(logger)(
			middleware.TrimSlash()(
				router.Build(),
			),
		),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr)

	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	if err := <-shutdownError; err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
