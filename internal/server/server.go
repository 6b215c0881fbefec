package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Tarakreddy011/Advance-Disk-Scheduling-Simulator/internal/config"
	"github.com/Tarakreddy011/Advance-Disk-Scheduling-Simulator/internal/core/seek"
	"github.com/Tarakreddy011/Advance-Disk-Scheduling-Simulator/internal/server/api"
)

// Run hosts the HTTP API until SIGINT/SIGTERM.
func Run(ctx context.Context, cfg *config.Config) error {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err == nil {
		zerolog.SetGlobalLevel(level)
	}
	log.Debug().Str("level", cfg.Logging.Level).Msg("log level configured")

	defaultPolicy, err := seek.ParsePolicy(cfg.Disk.DefaultPolicy)
	if err != nil {
		return fmt.Errorf("disk.default_policy: %w", err)
	}
	defaultDirection, err := seek.ParseDirection(cfg.Disk.DefaultDirection)
	if err != nil {
		return fmt.Errorf("disk.default_direction: %w", err)
	}
	if defaultDirection == "" {
		defaultDirection = seek.DirectionUp
	}

	e := echo.New()
	e.HideBanner = true

	api.SetupRouter(e, api.RouterConfig{
		Bound:            cfg.Disk.Bound,
		DefaultPolicy:    defaultPolicy,
		DefaultDirection: defaultDirection,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	log.Info().
		Str("addr", addr).
		Int("bound", cfg.Disk.Bound).
		Str("default_policy", string(defaultPolicy)).
		Msg("simulator API started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	return nil
}
