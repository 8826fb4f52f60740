package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rbui/rbui/pkg/scoring"
)

// Run indexes one stored scoring run. The full result lives in the report
// blob named by ReportRef.
type Run struct {
	ID          string    `json:"id"`
	PlatformID  string    `json:"platform_id"`
	AsOf        time.Time `json:"as_of"`
	TotalScore  float64   `json:"total_score"`
	LOFRanking  int       `json:"lof_ranking"`
	RiskRanking string    `json:"risk_ranking"`
	Complete    bool      `json:"complete"`
	ReportRef   string    `json:"report_ref"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewRun builds the index entry for a score result with a fresh run ID.
func NewRun(result *scoring.ScoreResult) *Run {
	return &Run{
		ID:          uuid.NewString(),
		PlatformID:  result.PlatformID,
		AsOf:        result.AssessmentDate,
		TotalScore:  result.TotalScore,
		LOFRanking:  result.LOFRanking,
		RiskRanking: string(result.RiskRanking),
		Complete:    result.Complete,
	}
}

// CreateRun records a scoring run.
func (s *Service) CreateRun(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO score_runs (id, platform_id, as_of, total_score, lof_ranking, risk_ranking, complete, report_ref)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		run.ID, run.PlatformID, run.AsOf, run.TotalScore, run.LOFRanking, run.RiskRanking, run.Complete, run.ReportRef,
	).Scan(&run.CreatedAt)
	if err != nil {
		return fmt.Errorf("create run for %s: %w", run.PlatformID, err)
	}
	return nil
}

// GetRun returns a run by ID. Malformed IDs report ErrNotFound without
// querying.
func (s *Service) GetRun(ctx context.Context, runID string) (*Run, error) {
	if _, err := uuid.Parse(runID); err != nil {
		return nil, fmt.Errorf("get run %s: %w", runID, ErrNotFound)
	}

	run := &Run{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, platform_id, as_of, total_score, lof_ranking, risk_ranking, complete, report_ref, created_at
		 FROM score_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.PlatformID, &run.AsOf, &run.TotalScore, &run.LOFRanking,
		&run.RiskRanking, &run.Complete, &run.ReportRef, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get run %s: %w", runID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", runID, err)
	}
	return run, nil
}

// ListRuns returns the most recent runs for a platform, newest first.
func (s *Service) ListRuns(ctx context.Context, platformID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, platform_id, as_of, total_score, lof_ranking, risk_ranking, complete, report_ref, created_at
		 FROM score_runs WHERE platform_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		platformID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.PlatformID, &r.AsOf, &r.TotalScore, &r.LOFRanking,
			&r.RiskRanking, &r.Complete, &r.ReportRef, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
