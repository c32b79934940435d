package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors represent error conditions in the orbitlapse domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidRange is returned when the requested date range is inverted
	// or the step is not a positive number of days.
	ErrInvalidRange = errors.New("orbitlapse: invalid date range")

	// ErrNoReference is returned when the tracked body set has no reference body.
	ErrNoReference = errors.New("orbitlapse: no reference body")

	// ErrInvalidPeriod is returned when a body carries a non-positive orbital period.
	ErrInvalidPeriod = errors.New("orbitlapse: invalid orbital period")
)

// FetchError reports a failed frame retrieval from the rendering service,
// either a well-formed error response (Status != 0) or a transport failure
// that survived all retry attempts (Cause != nil).
type FetchError struct {
	Date     time.Time
	Status   int
	Attempts int
	Cause    error
}

func (e *FetchError) Error() string {
	d := e.Date.Format("2006-01-02")
	if e.Status != 0 {
		return fmt.Sprintf("fetch frame for %s: service returned %d", d, e.Status)
	}
	return fmt.Sprintf("fetch frame for %s after %d attempts: %v", d, e.Attempts, e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// CompositionError reports a raw image that could not be decoded or annotated.
type CompositionError struct {
	Cause error
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("compose frame: %v", e.Cause)
}

func (e *CompositionError) Unwrap() error { return e.Cause }

// EncodingError reports a failed external encoder invocation. Output carries
// the tool's diagnostic output so the failure is actionable.
type EncodingError struct {
	Output string
	Cause  error
}

func (e *EncodingError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("encode video: %v: %s", e.Cause, e.Output)
	}
	return fmt.Sprintf("encode video: %v", e.Cause)
}

func (e *EncodingError) Unwrap() error { return e.Cause }
