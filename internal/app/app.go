package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/heartmarshall/tupa/internal/adapter/postgres"
	"github.com/heartmarshall/tupa/internal/adapter/postgres/refsyllable"
	"github.com/heartmarshall/tupa/internal/config"
	"github.com/heartmarshall/tupa/internal/service/decoding"
	"github.com/heartmarshall/tupa/internal/transport/middleware"
	"github.com/heartmarshall/tupa/internal/transport/rest"
	"github.com/heartmarshall/tupa/internal/tupa"
)

// Run is the server entry point. It loads configuration, connects to the
// corpus database, wires the decoding service and serves HTTP until ctx
// is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("marginal_kinds", cfg.Decoder.MarginalKinds.String()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	corpus := refsyllable.New(pool)

	decoder := tupa.New(nil)
	svc := decoding.NewService(logger, decoder, corpus, decoding.Config{
		MarginalKinds: cfg.Decoder.MarginalKinds,
		BatchLimit:    cfg.Decoder.BatchLimit,
		Workers:       cfg.Decoder.Workers,
		PrintLimit:    cfg.Decoder.VerifyPrintLimit,
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewRouter(RouterDeps{
		Health:  rest.NewHealthHandler(pool, decoder, BuildVersion()),
		Decode:  rest.NewDecodeHandler(svc, corpus, logger),
		Limiter: limiter,
		Logger:  logger,
		Config:  cfg,
	})

	srv := NewHTTPServer(cfg.Server, handler, logger)

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	if err := Serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
