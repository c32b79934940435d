package ports

import (
	"context"

	"github.com/orbitlapse/orbitlapse/internal/domain"
)

// VideoEncoder assembles the ordered frame files into a single video.
// The frame directory must hold contiguously numbered files matching the
// spec's pattern; a sequence-driven encoder silently stops at the first gap
// otherwise.
type VideoEncoder interface {
	// Encode runs the encoder over frameDir and returns the output path.
	// Returns *domain.EncodingError if the tool is missing or exits
	// non-zero.
	Encode(ctx context.Context, frameDir string, spec domain.VideoSpec) (string, error)
}
