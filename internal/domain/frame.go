package domain

import (
	"fmt"
	"time"
)

// FrameInfo is the computed metadata stamped onto a single frame. It is
// owned by the pipeline task that produced it and discarded once the frame
// is on disk.
type FrameInfo struct {
	// Index is the 1-based sequence index of the frame.
	Index int

	// Date is the sampled date this frame depicts.
	Date time.Time

	// Age is the calendar age since the start of the range.
	Age Age

	// Name is the optional display name prefixed to the age heading.
	Name string

	// Inner holds lap counts for bodies that lap the reference.
	Inner []LapCount

	// Outer holds lap counts for bodies the reference laps.
	Outer []LapCount
}

// FrameFile returns the zero-padded filename for a 1-based sequence index.
// Contiguous numbering under this pattern is what the encoder's sequence
// input relies on.
func FrameFile(index int) string {
	return fmt.Sprintf("frame_%05d.png", index)
}

// VideoSpec is the immutable encoder configuration for a run.
type VideoSpec struct {
	// Width and Height are the output canvas dimensions in pixels.
	Width  int
	Height int

	// FPS is the fixed output frame rate.
	FPS int

	// Codec is the encoder codec identifier (e.g., "libx264").
	Codec string

	// CRF is the constant rate factor passed to the encoder.
	CRF int

	// Preset is the encoder speed/quality preset.
	Preset string

	// Pattern is the frame-file sequence pattern (e.g., "frame_%05d.png").
	Pattern string

	// Output is the path of the final video file.
	Output string
}

// DefaultVideoSpec returns the standard 1080p H.264 spec.
func DefaultVideoSpec() VideoSpec {
	return VideoSpec{
		Width:   1920,
		Height:  1080,
		FPS:     30,
		Codec:   "libx264",
		CRF:     18,
		Preset:  "slow",
		Pattern: "frame_%05d.png",
		Output:  "solar_timelapse.mp4",
	}
}

// Manifest is the persisted record of a frame-generation run.
type Manifest struct {
	RunID       string    `json:"run_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	StepDays    int       `json:"step_days"`
	TotalFrames int       `json:"total_frames"`
	Name        string    `json:"name,omitempty"`
	FailedAt    []int     `json:"failed_frames,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
