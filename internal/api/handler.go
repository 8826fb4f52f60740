// Package api implements the rbuid REST API: scoring of submitted platform
// records, a store of platform records, and retrieval of stored score runs.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rbui/rbui/internal/reports"
	"github.com/rbui/rbui/internal/store"
	"github.com/rbui/rbui/pkg/platform"
	"github.com/rbui/rbui/pkg/scoring"
)

// PlatformStore is the persistence the handler needs. *store.Service
// implements it.
type PlatformStore interface {
	ListPlatforms(ctx context.Context) ([]store.PlatformSummary, error)
	ListPlatformIDs(ctx context.Context) ([]string, error)
	GetPlatform(ctx context.Context, id string) (*store.PlatformRow, error)
	PutPlatform(ctx context.Context, p *platform.Platform) (*store.PlatformRow, error)
	CreateRun(ctx context.Context, run *store.Run) error
	GetRun(ctx context.Context, runID string) (*store.Run, error)
}

// Handler is the top-level API handler for the rbuid service.
type Handler struct {
	engine  *scoring.Engine
	store   PlatformStore
	reports reports.Store
	cache   *ResultCache
	metrics *Metrics
	logger  *slog.Logger
}

// NewHandler creates a new API handler. A nil store disables the platform and
// run routes; nil cache, metrics or logger fall back to defaults.
func NewHandler(engine *scoring.Engine, st PlatformStore, rep reports.Store, cache *ResultCache, metrics *Metrics, logger *slog.Logger) *Handler {
	if cache == nil {
		cache = NewResultCacheFromEnv()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		engine:  engine,
		store:   st,
		reports: rep,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux. Write
// routes require apiKey when it is non-empty.
func (h *Handler) RegisterRoutes(mux *http.ServeMux, apiKey string) {
	auth := APIKeyAuth(apiKey)
	route := func(pattern string, fn http.HandlerFunc, protected bool) {
		var next http.Handler = fn
		if protected {
			next = auth(next)
		}
		mux.Handle(pattern, h.metrics.Instrument(pattern, next))
	}

	// Write endpoints (auth-protected)
	route("POST /api/v1/score", h.handleScore, true)
	route("PUT /api/platforms/{platformID}", h.handlePutPlatform, true)
	route("POST /api/v1/rescore", h.handleRescore, true)

	// Read endpoints
	route("GET /api/platforms", h.handleListPlatforms, false)
	route("GET /api/platforms/{platformID}", h.handleGetPlatform, false)
	route("GET /api/platforms/{platformID}/score", h.handlePlatformScore, false)
	route("GET /api/platforms/{platformID}/schedule", h.handlePlatformSchedule, false)
	route("GET /api/runs/{runID}", h.handleGetRun, false)

	mux.Handle("GET /metrics", h.metrics.Handler())
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requireStore reports 503 when the service runs without a database.
func (h *Handler) requireStore(w http.ResponseWriter) bool {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "platform store not configured")
		return false
	}
	return true
}
