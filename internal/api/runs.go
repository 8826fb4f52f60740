package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rbui/rbui/internal/reports"
	"github.com/rbui/rbui/internal/store"
)

type runResponse struct {
	Run    *store.Run      `json:"run"`
	Result json.RawMessage `json:"result,omitempty"`
}

// handleGetRun handles GET /api/runs/{runID}, returning the run index entry
// and the stored report.
func (h *Handler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	runID := r.PathValue("runID")

	run, err := h.store.GetRun(r.Context(), runID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load run: "+err.Error())
		return
	}

	resp := runResponse{Run: run}
	if run.ReportRef != "" && h.reports != nil {
		data, err := h.reports.Get(r.Context(), run.ReportRef)
		if errors.Is(err, reports.ErrNotFound) {
			writeError(w, http.StatusNotFound, "report not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load report: "+err.Error())
			return
		}
		resp.Result = data
	}
	writeJSON(w, http.StatusOK, resp)
}
