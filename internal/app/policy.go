package app

import "fmt"

// Policy decides what a per-frame failure does to the run. It is fixed for
// the whole run; frames are never silently dropped and numbering never
// skips an index.
type Policy string

const (
	// PolicyAbort cancels the entire run on the first failed frame.
	PolicyAbort Policy = "abort"

	// PolicyPlaceholder reserves the failed frame's sequence index with a
	// placeholder frame and continues, preserving contiguous numbering.
	PolicyPlaceholder Policy = "placeholder"
)

// ParsePolicy validates a policy name from configuration.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyAbort, PolicyPlaceholder:
		return Policy(s), nil
	default:
		return "", fmt.Errorf("unknown frame error policy %q (want %q or %q)", s, PolicyAbort, PolicyPlaceholder)
	}
}
