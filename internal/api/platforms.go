package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/rbui/rbui/internal/store"
	"github.com/rbui/rbui/pkg/scoring"
)

type scheduleResponse struct {
	PlatformID          string                  `json:"platform_id"`
	AssessmentDate      time.Time               `json:"assessment_date"`
	NextInspectionDates [3]*time.Time           `json:"next_inspection_dates"`
	Schedule            []scoring.ScheduleEntry `json:"next_10_years_inspection_plan"`
}

func (h *Handler) loadPlatform(w http.ResponseWriter, r *http.Request) (*store.PlatformRow, bool) {
	if !h.requireStore(w) {
		return nil, false
	}
	id := r.PathValue("platformID")
	row, err := h.store.GetPlatform(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "platform not found")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load platform: "+err.Error())
		return nil, false
	}
	return row, true
}

func (h *Handler) handleListPlatforms(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	platforms, err := h.store.ListPlatforms(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list platforms: "+err.Error())
		return
	}
	if platforms == nil {
		platforms = []store.PlatformSummary{}
	}
	writeJSON(w, http.StatusOK, platforms)
}

func (h *Handler) handleGetPlatform(w http.ResponseWriter, r *http.Request) {
	row, ok := h.loadPlatform(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, row)
}

// handlePutPlatform handles PUT /api/platforms/{platformID}. The path ID
// wins over any ID in the body.
func (h *Handler) handlePutPlatform(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	p, err := readPlatform(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid platform: "+err.Error())
		return
	}
	p.ID = r.PathValue("platformID")

	row, err := h.store.PutPlatform(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store platform: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":         row.ID,
		"updated_at": row.UpdatedAt,
		"issues":     p.Check(),
	})
}

// handlePlatformScore handles GET /api/platforms/{platformID}/score. Each
// uncached computation is stored as a run.
func (h *Handler) handlePlatformScore(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	row, ok := h.loadPlatform(w, r)
	if !ok {
		return
	}

	key := cacheKey(row, asOf)
	if result, runID := h.cache.Get(key); result != nil {
		h.metrics.ObserveCache(true)
		writeJSON(w, http.StatusOK, scoreRunResponse{RunID: runID, Cached: true, Result: result})
		return
	}
	h.metrics.ObserveCache(false)

	result, runID := h.scoreStored(r.Context(), row, asOf)
	// Unpersisted results are not cached so the next request retries the run.
	if runID != "" {
		h.cache.Put(key, result, runID)
	}
	writeJSON(w, http.StatusOK, scoreRunResponse{RunID: runID, Result: result})
}

func (h *Handler) handlePlatformSchedule(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	row, ok := h.loadPlatform(w, r)
	if !ok {
		return
	}

	result := h.engine.ScorePlatform(row.Platform, asOf)
	writeJSON(w, http.StatusOK, scheduleResponse{
		PlatformID:          row.ID,
		AssessmentDate:      result.AssessmentDate,
		NextInspectionDates: result.NextInspectionDates,
		Schedule:            result.Schedule,
	})
}
