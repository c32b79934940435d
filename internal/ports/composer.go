package ports

import "github.com/orbitlapse/orbitlapse/internal/domain"

// Composer produces annotated frames from raw rendered images and the
// frame's computed metadata.
type Composer interface {
	// Compose decodes raw, places it on the output canvas and stamps the
	// text block. Returns the encoded annotated image, or
	// *domain.CompositionError if raw cannot be decoded.
	Compose(raw []byte, info domain.FrameInfo) ([]byte, error)

	// Placeholder renders a frame carrying only the text block, used to
	// reserve a sequence index when the raw image is unavailable so frame
	// numbering stays contiguous.
	Placeholder(info domain.FrameInfo) ([]byte, error)
}
