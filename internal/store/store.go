// Package store persists platform records and the index of score runs in
// Postgres.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/rbui/rbui/pkg/platform"
)

// ErrNotFound is returned when a platform or run does not exist.
var ErrNotFound = errors.New("not found")

// Service provides data access for platforms and score runs.
type Service struct {
	db *sql.DB
}

// NewService creates a store backed by db.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// PlatformRow is a stored platform record.
type PlatformRow struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Platform  *platform.Platform `json:"platform"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// PlatformSummary is a platform listing entry without the full record.
type PlatformSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PutPlatform inserts or replaces a platform record. A record without an ID
// is assigned a new one, which is written back to p.
func (s *Service) PutPlatform(ctx context.Context, p *platform.Platform) (*PlatformRow, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	record, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal platform %s: %w", p.ID, err)
	}

	row := &PlatformRow{ID: p.ID, Name: p.Name, Platform: p}
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO platforms (id, name, record)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, record = EXCLUDED.record, updated_at = now()
		 RETURNING created_at, updated_at`,
		p.ID, p.Name, record,
	).Scan(&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("put platform %s: %w", p.ID, err)
	}
	return row, nil
}

// GetPlatform loads a platform record by ID.
func (s *Service) GetPlatform(ctx context.Context, id string) (*PlatformRow, error) {
	row := &PlatformRow{}
	var record []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, record, created_at, updated_at FROM platforms WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.Name, &record, &row.CreatedAt, &row.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get platform %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get platform %s: %w", id, err)
	}

	p, err := platform.Decode(bytes.NewReader(record))
	if err != nil {
		return nil, fmt.Errorf("decode platform %s: %w", id, err)
	}
	row.Platform = p
	return row, nil
}

// ListPlatforms returns all stored platforms ordered by name.
func (s *Service) ListPlatforms(ctx context.Context) ([]PlatformSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, updated_at FROM platforms ORDER BY name, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list platforms: %w", err)
	}
	defer rows.Close()

	var out []PlatformSummary
	for rows.Next() {
		var ps PlatformSummary
		if err := rows.Scan(&ps.ID, &ps.Name, &ps.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan platform: %w", err)
		}
		out = append(out, ps)
	}
	return out, rows.Err()
}

// ListPlatformIDs returns the IDs of every stored platform.
func (s *Service) ListPlatformIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM platforms ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list platform ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan platform id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
