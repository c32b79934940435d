// Package app orchestrates the frame pipeline: date stepping, lap
// accounting, fetching, composition, frame persistence and video assembly.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/orbitlapse/orbitlapse/internal/domain"
	"github.com/orbitlapse/orbitlapse/internal/ports"
)

// DefaultConcurrency bounds the worker pool so the rendering service is not
// stormed with requests.
const DefaultConcurrency = 4

// Config contains configuration for one pipeline run.
type Config struct {
	Start      time.Time
	End        time.Time
	StepDays   int
	IncludeEnd bool

	// Name is the optional display name for the age heading.
	Name string

	// Bodies is the tracked body set; must contain one reference body.
	Bodies []domain.OrbitalBody

	FramesDir   string
	Concurrency int

	// OnFrameError is the run-wide failure policy.
	OnFrameError Policy

	// Overwrite forces refetching frames that already exist on disk.
	// The rendering service is stateless, so existing frames are reusable.
	Overwrite bool

	// SkipVideo stops after frame generation.
	SkipVideo bool

	Video domain.VideoSpec
}

// Result summarizes a completed run.
type Result struct {
	RunID     string
	Frames    int
	Reused    int
	Failed    []int
	VideoPath string
}

// Pipeline drives the per-date sequence against the configured adapters.
type Pipeline struct {
	cfg       Config
	source    ports.ImageSource
	composer  ports.Composer
	encoder   ports.VideoEncoder
	manifests ports.ManifestStore
	logger    ports.Logger
}

// NewPipeline creates a pipeline with the given dependencies.
func NewPipeline(
	cfg Config,
	source ports.ImageSource,
	composer ports.Composer,
	encoder ports.VideoEncoder,
	manifests ports.ManifestStore,
	logger ports.Logger,
) *Pipeline {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.OnFrameError == "" {
		cfg.OnFrameError = PolicyAbort
	}
	return &Pipeline{
		cfg:       cfg,
		source:    source,
		composer:  composer,
		encoder:   encoder,
		manifests: manifests,
		logger:    logger,
	}
}

// Run generates every scheduled frame, writes the run manifest and, unless
// the run is frames-only, assembles the video. Frame files are keyed by
// sequence index and each index is written exactly once by one worker, so
// numbering stays contiguous regardless of completion order.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	sched, err := domain.NewSchedule(p.cfg.Start, p.cfg.End, p.cfg.StepDays, p.cfg.IncludeEnd)
	if err != nil {
		return nil, err
	}
	ref, err := domain.Reference(p.cfg.Bodies)
	if err != nil {
		return nil, err
	}
	counter, err := domain.NewLapCounter(ref)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(p.cfg.FramesDir, 0o755); err != nil {
		return nil, fmt.Errorf("create frames dir: %w", err)
	}

	n := sched.Len()
	p.logger.Info("generating frames",
		ports.Time("start", sched.Start()),
		ports.Time("end", sched.End()),
		ports.Int("step_days", sched.StepDays()),
		ports.Int("frames", n),
		ports.Int("concurrency", p.cfg.Concurrency),
	)

	res := &Result{RunID: uuid.NewString(), Frames: n}
	retry := p.placeholderFrames(ctx, sched)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)
	for i := 0; i < n; i++ {
		// Abort point between frames: stop dispatching once canceled or a
		// worker has failed the run.
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			return p.frame(gctx, sched, counter, i, retry, res, &mu)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Ints(res.Failed)

	p.saveManifest(ctx, sched, res)

	if !p.cfg.SkipVideo {
		out, err := p.encoder.Encode(ctx, p.cfg.FramesDir, p.cfg.Video)
		if err != nil {
			return nil, err
		}
		res.VideoPath = out
	}
	return res, nil
}

// placeholderFrames loads the previous run's manifest and returns the
// sequence indices that were written as placeholders, so the frame-reuse
// check refetches them instead of promoting a placeholder into the final
// video. The manifest only applies when it describes the same schedule.
func (p *Pipeline) placeholderFrames(ctx context.Context, sched domain.Schedule) map[int]bool {
	if p.cfg.Overwrite {
		return nil
	}
	m, err := p.manifests.Load(ctx)
	if err != nil {
		p.logger.Warn("failed to load manifest", ports.Err(err))
		return nil
	}
	if len(m.FailedAt) == 0 {
		return nil
	}
	if m.StartDate != sched.Start().Format("2006-01-02") || m.StepDays != sched.StepDays() {
		return nil
	}

	retry := make(map[int]bool, len(m.FailedAt))
	for _, index := range m.FailedAt {
		retry[index] = true
	}
	p.logger.Info("retrying placeholder frames from previous run",
		ports.Int("count", len(retry)),
	)
	return retry
}

// frame produces the i-th frame: computed metadata, fetch, compose, write.
func (p *Pipeline) frame(
	ctx context.Context,
	sched domain.Schedule,
	counter domain.LapCounter,
	i int,
	retry map[int]bool,
	res *Result,
	mu *sync.Mutex,
) error {
	index := i + 1
	date := sched.At(i)
	path := filepath.Join(p.cfg.FramesDir, domain.FrameFile(index))

	if !p.cfg.Overwrite && !retry[index] {
		if _, err := os.Stat(path); err == nil {
			p.logger.Debug("frame exists, reusing",
				ports.Int("index", index),
				ports.Time("date", date),
			)
			mu.Lock()
			res.Reused++
			mu.Unlock()
			return nil
		}
	}

	elapsed := sched.ElapsedDays(i)
	inner, outer := counter.Count(p.cfg.Bodies, elapsed)
	info := domain.FrameInfo{
		Index: index,
		Date:  date,
		Age:   domain.AgeBetween(sched.Start(), date),
		Name:  p.cfg.Name,
		Inner: inner,
		Outer: outer,
	}

	annotated, err := p.renderFrame(ctx, info)
	if err != nil {
		return p.failFrame(info, path, err, res, mu)
	}

	if err := os.WriteFile(path, annotated, 0o644); err != nil {
		return fmt.Errorf("write frame %d (%s): %w", index, date.Format("2006-01-02"), err)
	}
	p.logger.Debug("frame written",
		ports.Int("index", index),
		ports.Time("date", date),
	)
	return nil
}

func (p *Pipeline) renderFrame(ctx context.Context, info domain.FrameInfo) ([]byte, error) {
	raw, err := p.source.Fetch(ctx, info.Date)
	if err != nil {
		return nil, err
	}
	return p.composer.Compose(raw, info)
}

// failFrame applies the run-wide failure policy to one failed frame.
func (p *Pipeline) failFrame(info domain.FrameInfo, path string, cause error, res *Result, mu *sync.Mutex) error {
	p.logger.Error("frame failed",
		ports.Int("index", info.Index),
		ports.Time("date", info.Date),
		ports.Err(cause),
	)

	if p.cfg.OnFrameError == PolicyAbort {
		return fmt.Errorf("frame %d (%s): %w", info.Index, info.Date.Format("2006-01-02"), cause)
	}

	// Reserve the index with a placeholder so numbering stays contiguous.
	placeholder, err := p.composer.Placeholder(info)
	if err != nil {
		return fmt.Errorf("placeholder for frame %d: %w", info.Index, err)
	}
	if err := os.WriteFile(path, placeholder, 0o644); err != nil {
		return fmt.Errorf("write placeholder frame %d: %w", info.Index, err)
	}

	mu.Lock()
	res.Failed = append(res.Failed, info.Index)
	mu.Unlock()
	return nil
}

func (p *Pipeline) saveManifest(ctx context.Context, sched domain.Schedule, res *Result) {
	m := domain.Manifest{
		RunID:       res.RunID,
		StartDate:   sched.Start().Format("2006-01-02"),
		EndDate:     sched.End().Format("2006-01-02"),
		StepDays:    sched.StepDays(),
		TotalFrames: res.Frames,
		Name:        p.cfg.Name,
		FailedAt:    res.Failed,
		CreatedAt:   time.Now().UTC(),
	}
	if err := p.manifests.Save(ctx, m); err != nil {
		p.logger.Error("failed to save manifest", ports.Err(err))
	}
}
