package api

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rbui/rbui/internal/store"
	"github.com/rbui/rbui/pkg/platform"
	"github.com/rbui/rbui/pkg/scoring"
)

const maxBodyBytes = 8 << 20

// scoreRunResponse wraps a result computed for a stored platform.
type scoreRunResponse struct {
	RunID  string               `json:"run_id,omitempty"`
	Cached bool                 `json:"cached"`
	Result *scoring.ScoreResult `json:"result"`
}

// readPlatform decodes a platform record from the request body, accepting
// gzip-compressed bodies.
func readPlatform(w http.ResponseWriter, r *http.Request) (*platform.Platform, error) {
	var body io.Reader = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if r.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("invalid gzip body: %w", err)
		}
		defer gz.Close()
		body = gz
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return platform.Decode(bytes.NewReader(data))
}

// parseAsOf reads the optional as_of query parameter (YYYY-MM-DD). An absent
// parameter yields the zero time, which defers to the record's own dates.
func parseAsOf(r *http.Request) (time.Time, error) {
	v := r.URL.Query().Get("as_of")
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid as_of %q: want YYYY-MM-DD", v)
	}
	return t, nil
}

// handleScore handles POST /api/v1/score. The submitted record is scored
// and returned without being stored.
func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := readPlatform(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid platform: "+err.Error())
		return
	}

	result := h.engine.ScorePlatform(p, asOf)
	h.metrics.ObserveResult(result)
	writeJSON(w, http.StatusOK, result)
}

func cacheKey(row *store.PlatformRow, asOf time.Time) string {
	day := "record"
	if !asOf.IsZero() {
		day = asOf.Format(time.DateOnly)
	}
	return fmt.Sprintf("%s|%d|%s", row.ID, row.UpdatedAt.UnixNano(), day)
}

// scoreStored scores a stored platform, writes its report and indexes the
// run. Persistence failures are logged and leave the run ID empty; the
// result itself is always returned.
func (h *Handler) scoreStored(ctx context.Context, row *store.PlatformRow, asOf time.Time) (*scoring.ScoreResult, string) {
	result := h.engine.ScorePlatform(row.Platform, asOf)
	h.metrics.ObserveResult(result)

	run := store.NewRun(result)
	run.PlatformID = row.ID
	if h.reports != nil {
		data, err := json.Marshal(result)
		if err != nil {
			h.logger.Error("marshal score report", slog.String("platform", row.ID), slog.Any("error", err))
			return result, ""
		}
		ref, err := h.reports.Put(ctx, row.ID, run.ID, data)
		if err != nil {
			h.logger.Error("store score report", slog.String("platform", row.ID), slog.Any("error", err))
			return result, ""
		}
		run.ReportRef = ref
	}
	if err := h.store.CreateRun(ctx, run); err != nil {
		h.logger.Error("record score run", slog.String("platform", row.ID), slog.Any("error", err))
		return result, ""
	}

	h.logger.Info("platform scored",
		slog.String("platform", row.ID),
		slog.String("run", run.ID),
		slog.Int("lof", result.LOFRanking),
		slog.String("risk", string(result.RiskRanking)))
	return result, run.ID
}
