package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/moviehall/moviehall/internal/config"
	"github.com/moviehall/moviehall/internal/logger"
	"github.com/moviehall/moviehall/internal/server"
	"github.com/moviehall/moviehall/internal/tmdb"
)

func main() {
	// Pick up TMDB_API_KEY and friends from a local .env, if present.
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Path:       cfg.Logging.Path,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	defer log.Close()

	// The provider credential is the one non-recoverable requirement.
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("version", config.Version).
		Str("transport", cfg.Server.Transport).
		Msg("Starting MovieHall MCP server")

	client := tmdb.NewClient(cfg.TMDB, log.Logger)
	srv := server.New(client, log.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Server.Transport {
	case "http":
		if err := runHTTP(ctx, cfg, srv, log); err != nil {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	default:
		if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal().Err(err).Msg("MCP server failed")
		}
	}

	log.Info().Msg("Shutdown complete")
}

func runHTTP(ctx context.Context, cfg *config.Config, srv *server.Server, log *logger.Logger) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Any("/mcp", echo.WrapHandler(srv.HTTPHandler()))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP shutdown failed")
		}
	}()

	log.Info().Str("address", cfg.Server.Address()).Msg("Serving MCP over HTTP")
	if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
