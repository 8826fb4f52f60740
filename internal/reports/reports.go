// Package reports stores rendered score results as blobs, keyed by platform
// and run ID.
package reports

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rbui/rbui/pkg/config"
)

// ErrNotFound is returned when no report exists for a run.
var ErrNotFound = errors.New("report not found")

// Store abstracts blob storage for score reports.
type Store interface {
	Put(ctx context.Context, platformID, runID string, data []byte) (string, error)
	Get(ctx context.Context, ref string) ([]byte, error)
}

// Ref returns the storage key of a run's report.
func Ref(platformID, runID string) string {
	return platformID + "/runs/" + runID + ".json"
}

// New builds the Store selected by cfg.Backend.
func New(ctx context.Context, cfg config.ReportsConfig) (Store, error) {
	switch cfg.Backend {
	case "", "local":
		dir := cfg.LocalDir
		if dir == "" {
			dir = config.ReportDir()
		}
		return NewLocalStore(dir), nil
	case "s3":
		return NewS3Store(ctx, S3Config{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
		})
	case "gcs":
		return NewGCSStore(ctx, cfg.Bucket)
	default:
		return nil, fmt.Errorf("unknown report backend %q", cfg.Backend)
	}
}

// LocalStore keeps reports on the local filesystem.
type LocalStore struct {
	BaseDir string
}

// NewLocalStore creates a LocalStore rooted at baseDir.
func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{BaseDir: baseDir}
}

func (s *LocalStore) path(ref string) string {
	return filepath.Join(s.BaseDir, filepath.FromSlash(ref))
}

// Put writes a report and returns its reference.
func (s *LocalStore) Put(ctx context.Context, platformID, runID string, data []byte) (string, error) {
	ref := Ref(platformID, runID)
	path := s.path(ref)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report %s: %w", ref, err)
	}
	return ref, nil
}

// Get reads a report by reference.
func (s *LocalStore) Get(ctx context.Context, ref string) ([]byte, error) {
	data, err := os.ReadFile(s.path(ref))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read report %s: %w", ref, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", ref, err)
	}
	return data, nil
}
