// Command cleanup removes a seeded reference corpus source from the
// database, typically before seeding a corrected version of it.
//
// Flags:
//
//	--source   source slug to delete (required)
//	--dry-run  report the number of rows without deleting them
//
// Exit codes: 0 = success, 1 = error or unknown source.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/tupa/internal/adapter/postgres"
	"github.com/heartmarshall/tupa/internal/adapter/postgres/refsyllable"
	"github.com/heartmarshall/tupa/internal/app"
	"github.com/heartmarshall/tupa/internal/config"
)

func main() {
	sourceFlag := flag.String("source", "", "source slug to delete")
	dryRunFlag := flag.Bool("dry-run", false, "count rows without deleting")
	flag.Parse()

	if *sourceFlag == "" {
		log.Fatal("cleanup: --source is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := refsyllable.New(pool)

	if *dryRunFlag {
		n, err := repo.CountBySource(ctx, *sourceFlag)
		if err != nil {
			logger.Error("count failed", slog.String("source", *sourceFlag), slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("dry run", slog.String("source", *sourceFlag), slog.Int("rows", n))
		return
	}

	deleted, err := repo.DeleteBySource(ctx, *sourceFlag)
	if err != nil {
		logger.Error("delete failed",
			slog.String("source", *sourceFlag),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	if deleted == 0 {
		logger.Warn("unknown source", slog.String("source", *sourceFlag))
		os.Exit(1)
	}

	logger.Info("source deleted",
		slog.String("source", *sourceFlag),
		slog.Int64("deleted", deleted),
	)
}
