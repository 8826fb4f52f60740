package platform

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Save writes a platform record to disk as JSON.
func Save(path string, p *Platform) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for platform: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling platform: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing platform: %w", err)
	}

	return nil
}

// Load reads a platform record from disk.
func Load(path string) (*Platform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading platform: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a single JSON platform record. Unknown fields are rejected so
// that misspelled inputs do not silently fall back to defaults.
func Decode(r io.Reader) (*Platform, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var p Platform
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("unmarshaling platform: %w", err)
	}
	if p.Corrosion.PlatformDesignLife == 0 {
		p.Corrosion.PlatformDesignLife = 1
	}

	return &p, nil
}
