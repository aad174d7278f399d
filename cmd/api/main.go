package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lokaclean/backoffice/internal/config"
	"github.com/lokaclean/backoffice/internal/handlers"
	"github.com/lokaclean/backoffice/internal/infra"
	"github.com/lokaclean/backoffice/internal/live"
	"github.com/lokaclean/backoffice/internal/router"
)

func main() {
	config.LoadDotEnv()

	logger, _ := zap.NewProduction()
	if os.Getenv("APP_ENV") == "local" {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	deps, err := infra.New(cfg, logger)
	if err != nil {
		logger.Fatal("infra init failed", zap.Error(err))
	}
	defer deps.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// live pub/sub feed from the core platform
	sub := live.NewSubscriber(deps.Redis, deps.Feed, logger)
	go func() {
		if err := sub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("live subscriber stopped", zap.Error(err))
		}
	}()

	h := handlers.New(
		deps.Upstream, deps.Sessions, deps.JWT, deps.Feed,
		cfg.Location(), cfg.Security.DefaultCountryCode, logger,
	)

	httpServer := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router.New(router.Dependencies{
			Handlers:    h,
			JWT:         deps.JWT,
			Sessions:    deps.Sessions,
			CORSOrigins: cfg.Server.CORSOrigins,
			Logger:      logger,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("http server starting", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)
}
