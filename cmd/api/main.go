package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pjmaster/project-api/config"
	"github.com/pjmaster/project-api/internal/bootstrap"
	"github.com/pjmaster/project-api/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load config")
	}

	logging.Init(logging.Config{Level: cfg.App.LogLevel, Format: cfg.App.LogFormat})
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("open database")
	}
	defer store.Close()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    cfg.App.Name,
		Version:        cfg.App.Version,
		DBDriver:       cfg.Database.Driver,
		AllowOrigins:   cfg.CORS.AllowOrigins,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		DB:             store,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("port", cfg.Server.Port).
			Str("env", cfg.App.Environment).
			Str("driver", cfg.Database.Driver).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logging.Error().Err(err).Msg("server stopped")
			store.Close()
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	logging.Info().Dur("timeout", cfg.Server.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}
