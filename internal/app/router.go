package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tupa/internal/config"
	"github.com/heartmarshall/tupa/internal/transport/middleware"
	"github.com/heartmarshall/tupa/internal/transport/rest"
)

// probePaths bypass access logging and rate limiting.
var probePaths = []string{"/live", "/ready"}

// RouterDeps holds everything the HTTP router needs.
type RouterDeps struct {
	Health  *rest.HealthHandler
	Decode  *rest.DecodeHandler
	Limiter *middleware.RateLimiter
	Logger  *slog.Logger
	Config  *config.Config
}

// NewRouter registers the API routes and wraps them in the middleware
// chain: Recovery, RequestID, ClientIP, Logger, CORS, rate limit.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	mux.HandleFunc("GET /api/v1/decode", d.Decode.Decode)
	mux.HandleFunc("POST /api/v1/decode/batch", d.Decode.DecodeBatch)
	mux.HandleFunc("GET /api/v1/corpus/verify", d.Decode.Verify)
	mux.HandleFunc("GET /api/v1/corpus/sources", d.Decode.Sources)

	chain := middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.ClientIP(d.Config.Server.TrustProxy),
		middleware.Skip(probePaths, middleware.Logger(d.Logger)),
		middleware.CORS(d.Config.CORS),
		middleware.Skip(probePaths, d.Limiter.Limit(d.Config.RateLimit.RequestsPerMinute)),
	)
	return chain(mux)
}
