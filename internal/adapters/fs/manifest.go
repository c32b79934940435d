// Package fs provides file-system persistence for the run manifest.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/orbitlapse/orbitlapse/internal/domain"
)

const manifestFileName = "frames_metadata.json"

// ManifestStore implements ports.ManifestStore using a JSON file.
type ManifestStore struct {
	dir string
}

// NewManifestStore creates a ManifestStore rooted at the given directory.
func NewManifestStore(dir string) *ManifestStore {
	return &ManifestStore{dir: dir}
}

// Load retrieves the last saved manifest from disk.
// Returns a zero manifest and nil error if no manifest file exists.
func (s *ManifestStore) Load(ctx context.Context) (domain.Manifest, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Manifest{}, nil
		}
		return domain.Manifest{}, err
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return domain.Manifest{}, err
	}
	return m, nil
}

// Save persists the manifest atomically.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (s *ManifestStore) Save(ctx context.Context, m domain.Manifest) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	path := s.Path()
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Path returns the full path to the manifest file.
func (s *ManifestStore) Path() string {
	return filepath.Join(s.dir, manifestFileName)
}
