package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/wildminds/animalquiz/internal/config"
	"github.com/wildminds/animalquiz/internal/database"
	"github.com/wildminds/animalquiz/internal/migrations"
	"github.com/wildminds/animalquiz/internal/packs"
	"github.com/wildminds/animalquiz/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Pack catalog ---
	var packFS fs.FS
	if cfg.PacksDir != "" {
		packFS = os.DirFS(cfg.PacksDir)
	} else {
		logger.Info("no packs directory configured, using built-in catalog")
		packFS = packs.Demo()
	}
	catalog, err := packs.Load(packFS, logger)
	if err != nil {
		return fmt.Errorf("loading packs: %w", err)
	}
	logger.Info("loaded pack catalog",
		"packs", len(catalog), "questions", packs.TotalItems(catalog))

	// --- Game state ---
	broker := server.NewBroker()
	game, err := server.NewGame(ctx, server.NewSQLiteStore(db), catalog, broker, logger)
	if err != nil {
		return fmt.Errorf("loading progress: %w", err)
	}

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, game, broker, db, cfg.SPADir)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
