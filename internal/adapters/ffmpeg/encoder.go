// Package ffmpeg implements ports.VideoEncoder by driving the external
// ffmpeg binary over the ordered frame files.
package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/orbitlapse/orbitlapse/internal/domain"
	"github.com/orbitlapse/orbitlapse/internal/ports"
)

// DefaultBinary is the encoder binary looked up on PATH.
const DefaultBinary = "ffmpeg"

// stderrTail caps how much encoder output is carried in an EncodingError.
const stderrTail = 2048

// Encoder invokes ffmpeg as a single blocking external process.
type Encoder struct {
	bin     string
	timeout time.Duration
	logger  ports.Logger
}

// NewEncoder creates an encoder using the given binary name or path.
// A zero timeout means no limit beyond the caller's context.
func NewEncoder(bin string, timeout time.Duration, logger ports.Logger) *Encoder {
	if bin == "" {
		bin = DefaultBinary
	}
	return &Encoder{bin: bin, timeout: timeout, logger: logger}
}

// Encode assembles the frame sequence in frameDir into spec.Output. The
// frame files must be contiguously numbered under spec.Pattern; ffmpeg's
// sequence demuxer stops at the first missing index. Failures surface as
// *domain.EncodingError carrying the tool's diagnostic output.
func (e *Encoder) Encode(ctx context.Context, frameDir string, spec domain.VideoSpec) (string, error) {
	bin, err := exec.LookPath(e.bin)
	if err != nil {
		return "", &domain.EncodingError{Cause: fmt.Errorf("locate encoder: %w", err)}
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	args := e.args(frameDir, spec)
	e.logger.Info("encoding video",
		ports.String("bin", bin),
		ports.String("output", spec.Output),
		ports.Int("fps", spec.FPS),
	)

	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &domain.EncodingError{Output: tail(stderr.Bytes(), stderrTail), Cause: err}
	}
	return spec.Output, nil
}

// args builds the ffmpeg invocation from the spec.
func (e *Encoder) args(frameDir string, spec domain.VideoSpec) []string {
	return []string{
		"-framerate", strconv.Itoa(spec.FPS),
		"-i", filepath.Join(frameDir, spec.Pattern),
		"-vf", "format=yuv420p",
		"-c:v", spec.Codec,
		"-crf", strconv.Itoa(spec.CRF),
		"-preset", spec.Preset,
		"-y",
		spec.Output,
	}
}

func tail(b []byte, n int) string {
	if len(b) > n {
		b = b[len(b)-n:]
	}
	return string(bytes.TrimSpace(b))
}
