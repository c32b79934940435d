package ports

import (
	"context"
	"time"
)

// ImageSource retrieves one raw rendered image for a given date. The request
// is stateless: the same date always yields the same image, so calls are
// safely retryable and results are cacheable by date.
//
// Implementations own their retry policy and surface *domain.FetchError
// once attempts are exhausted or the service answers with an error status.
type ImageSource interface {
	// Fetch returns the raw image bytes for the given date.
	Fetch(ctx context.Context, date time.Time) ([]byte, error)
}
