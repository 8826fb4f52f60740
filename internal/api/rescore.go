package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type rescoreRequest struct {
	PlatformID string `json:"platform_id"` // optional filter
	AsOf       string `json:"as_of"`       // optional, YYYY-MM-DD
}

type rescoreResponse struct {
	Rescored int      `json:"rescored"`
	Errors   int      `json:"errors"`
	RunIDs   []string `json:"run_ids"`
}

// handleRescore re-runs the scoring engine on every stored platform, or on
// one when platform_id is given, storing a new run for each.
func (h *Handler) handleRescore(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}

	var req rescoreRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}
	var asOf time.Time
	if req.AsOf != "" {
		t, err := time.Parse(time.DateOnly, req.AsOf)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid as_of %q: want YYYY-MM-DD", req.AsOf))
			return
		}
		asOf = t
	}

	ctx := r.Context()
	ids := []string{req.PlatformID}
	if req.PlatformID == "" {
		var err error
		ids, err = h.store.ListPlatformIDs(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "list platforms: "+err.Error())
			return
		}
	}

	resp := rescoreResponse{RunIDs: []string{}}
	for _, id := range ids {
		row, err := h.store.GetPlatform(ctx, id)
		if err != nil {
			h.logger.Warn("rescore: load platform", slog.String("platform", id), slog.Any("error", err))
			resp.Errors++
			continue
		}

		result, runID := h.scoreStored(ctx, row, asOf)
		if runID == "" {
			resp.Errors++
			continue
		}
		h.cache.Put(cacheKey(row, asOf), result, runID)
		resp.RunIDs = append(resp.RunIDs, runID)
		resp.Rescored++
	}

	writeJSON(w, http.StatusOK, resp)
}
