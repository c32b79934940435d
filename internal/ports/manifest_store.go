package ports

import (
	"context"

	"github.com/orbitlapse/orbitlapse/internal/domain"
)

// ManifestStore persists the run manifest for inspection and idempotent
// re-runs. Implementations write atomically (temp file, then rename) so a
// crash never leaves a corrupt manifest.
type ManifestStore interface {
	// Save persists the manifest.
	Save(ctx context.Context, m domain.Manifest) error

	// Load retrieves the last saved manifest. Returns a zero manifest and
	// nil error if none exists; an error only for actual read failures.
	Load(ctx context.Context) (domain.Manifest, error)
}
