//go:build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tupa/internal/adapter/postgres"
	"github.com/heartmarshall/tupa/internal/adapter/postgres/refsyllable"
	"github.com/heartmarshall/tupa/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/tupa/internal/app"
	"github.com/heartmarshall/tupa/internal/app/seeder"
	"github.com/heartmarshall/tupa/internal/config"
	"github.com/heartmarshall/tupa/internal/service/decoding"
	"github.com/heartmarshall/tupa/internal/transport/middleware"
	"github.com/heartmarshall/tupa/internal/transport/rest"
	"github.com/heartmarshall/tupa/internal/tupa"
)

const referenceCorpus = "../../internal/tupa/testdata/corpus.tsv"

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Source string
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container and seeds the reference corpus through the seeder
// pipeline under a unique source slug.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	corpusRepo := refsyllable.New(pool)
	txm := postgres.NewTxManager(pool)

	decoder := tupa.New(nil)
	svc := decoding.NewService(logger, decoder, corpusRepo, decoding.Config{
		BatchLimit: 50,
		Workers:    4,
		PrintLimit: 10,
	})

	source := testhelper.UniqueSource("e2e")
	pipeline := seeder.NewPipeline(logger, corpusRepo, txm, svc, seeder.Config{
		CorpusPath: referenceCorpus,
		SourceSlug: source,
		BatchSize:  40,
		PrintLimit: 10,
	})
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	require.NoError(t, pipeline.Run(ctx, nil))
	require.False(t, pipeline.HasErrors(), "seeding failed: %+v", pipeline.Results())

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	cfg := &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         60,
		},
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 1000},
	}

	handler := app.NewRouter(app.RouterDeps{
		Health:  rest.NewHealthHandler(pool, decoder, "e2e"),
		Decode:  rest.NewDecodeHandler(svc, corpusRepo, logger),
		Limiter: limiter,
		Logger:  logger,
		Config:  cfg,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Source: source,
	}
}

// getJSON performs a GET and decodes the JSON body into a map.
func (ts *testServer) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeMap(t, resp.Body)
}

// postJSON performs a POST with a raw JSON body and decodes the response.
func (ts *testServer) postJSON(t *testing.T, path, body string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeMap(t, resp.Body)
}

func decodeMap(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&m))
	return m
}
