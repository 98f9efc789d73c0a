package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/tupa/internal/domain"
)

// probeSyllable and probeDescription form the decoder self-check.
const (
	probeSyllable    = "tu"
	probeDescription = "端四尤平"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// syllableDecoder is the decoder checked by Health.
type syllableDecoder interface {
	Decode(syllable string, kinds domain.MarginalKinds) (domain.Position, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	decoder syllableDecoder
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, decoder syllableDecoder, version string) *HealthHandler {
	return &HealthHandler{db: db, decoder: decoder, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the corpus database: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: database ping with latency, a decoder
// self-check and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["database"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["database"] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	if h.decoderHealthy() {
		components["decoder"] = CompStatus{Status: "ok"}
	} else {
		components["decoder"] = CompStatus{Status: "down"}
		overallStatus = "down"
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) decoderHealthy() bool {
	pos, err := h.decoder.Decode(probeSyllable, 0)
	return err == nil && pos.Description() == probeDescription
}
