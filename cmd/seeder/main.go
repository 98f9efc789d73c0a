// Command seeder loads a reference syllable corpus (a TSV of TUPA spellings
// and position descriptions) into the database after checking that every
// spelling decodes to its description.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        parse and verify without writing to DB
//	--seeder-config  path to seeder YAML config file
//	--corpus         corpus file, overrides the config
//	--source         source slug, overrides the config
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/tupa/internal/adapter/postgres"
	"github.com/heartmarshall/tupa/internal/adapter/postgres/refsyllable"
	"github.com/heartmarshall/tupa/internal/app"
	"github.com/heartmarshall/tupa/internal/app/seeder"
	"github.com/heartmarshall/tupa/internal/config"
	"github.com/heartmarshall/tupa/internal/service/decoding"
	"github.com/heartmarshall/tupa/internal/tupa"
)

// Compile-time interface assertions.
var (
	_ seeder.RefSyllableBulkRepo = (*refsyllable.Repo)(nil)
	_ seeder.Verifier            = (*decoding.Service)(nil)
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse and verify without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	corpusFlag := flag.String("corpus", "", "corpus TSV file (overrides config)")
	sourceFlag := flag.String("source", "", "source slug (overrides config)")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *corpusFlag != "" {
		seederCfg.CorpusPath = *corpusFlag
	}
	if *sourceFlag != "" {
		seederCfg.SourceSlug = *sourceFlag
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	repo := refsyllable.New(pool)
	verifier := decoding.NewService(logger, tupa.New(nil), repo, decoding.Config{
		MarginalKinds: appCfg.Decoder.MarginalKinds,
		BatchLimit:    appCfg.Decoder.BatchLimit,
		Workers:       appCfg.Decoder.Workers,
		PrintLimit:    seederCfg.PrintLimit,
	})

	pipeline := seeder.NewPipeline(logger, repo, txm, verifier, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
