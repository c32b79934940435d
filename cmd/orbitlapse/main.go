package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/orbitlapse/orbitlapse/internal/adapters/ffmpeg"
	"github.com/orbitlapse/orbitlapse/internal/adapters/fs"
	logAdapter "github.com/orbitlapse/orbitlapse/internal/adapters/log"
	"github.com/orbitlapse/orbitlapse/internal/adapters/overlay"
	"github.com/orbitlapse/orbitlapse/internal/adapters/render"
	"github.com/orbitlapse/orbitlapse/internal/app"
	"github.com/orbitlapse/orbitlapse/internal/cliconfig"
	"github.com/orbitlapse/orbitlapse/internal/domain"
)

const helpDescription = `
Turn a date range into a time-lapse of the solar system, annotated with age
and orbital lap statistics.

For every sampled date orbitlapse fetches an orbit diagram from a local
Solar System Live instance, stamps the date, the age since birth-date and
the number of relative orbital laps completed by each planet, then
assembles the numbered frames into a video with ffmpeg.
`

var exampleUsage = strings.TrimSpace(`
  orbitlapse 1975-01-01
  orbitlapse 1879-03-14 --end-date 1955-04-18 --name Albert --step-days 7
  orbitlapse 1975-01-01 --skip-video --out-dir ./run
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "orbitlapse BIRTH-DATE",
		Short:   "Render a solar-system time-lapse annotated with age and orbital laps",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Args:    cobra.ExactArgs(1),
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.BirthDate = args[0]

			// Load config file first (default $HOME/.orbitlapse/config.toml),
			// then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			// Validate and parse the date range before any network activity.
			if err := cfg.Validate(); err != nil {
				return err
			}
			policy, err := app.ParsePolicy(cfg.OnFrameError)
			if err != nil {
				return err
			}

			log.Info().
				Str("start", cfg.Start.Format(cliconfig.DateFormat)).
				Str("end", cfg.End.Format(cliconfig.DateFormat)).
				Int("step_days", cfg.StepDays).
				Str("frames_dir", cfg.FramesDir()).
				Str("output", cfg.Output).
				Msg("configuration")

			zl := logAdapter.NewZerologAdapterWithLogger(log)
			spec := cfg.VideoSpec()

			source := render.NewSource(cfg.ServiceURL, &http.Client{}, zl,
				render.WithAttempts(cfg.Attempts),
				render.WithAttemptTimeout(cfg.FetchTimeout),
			)
			composer := overlay.NewComposer(spec, cfg.FontPath, zl)
			encoder := ffmpeg.NewEncoder(cfg.EncoderBin, cfg.EncodeTimeout, zl)
			manifests := fs.NewManifestStore(cfg.OutDir)

			pipeline := app.NewPipeline(app.Config{
				Start:        cfg.Start,
				End:          cfg.End,
				StepDays:     cfg.StepDays,
				IncludeEnd:   true,
				Name:         cfg.Name,
				Bodies:       domain.DefaultBodies(),
				FramesDir:    cfg.FramesDir(),
				Concurrency:  cfg.Concurrency,
				OnFrameError: policy,
				Overwrite:    cfg.Overwrite,
				SkipVideo:    cfg.SkipVideo,
				Video:        spec,
			}, source, composer, encoder, manifests, zl)

			// Graceful shutdown on SIGINT/SIGTERM; the pipeline aborts
			// between frames.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			res, err := pipeline.Run(ctx)
			if err != nil {
				return err
			}

			ev := log.Info().
				Int("frames", res.Frames).
				Int("reused", res.Reused).
				Str("run_id", res.RunID)
			if len(res.Failed) > 0 {
				ev = ev.Ints("failed_frames", res.Failed)
			}
			if res.VideoPath != "" {
				ev = ev.Str("video", res.VideoPath)
			}
			ev.Msg("run complete")
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.orbitlapse/config.toml)")
	root.Flags().StringVar(&cfg.EndDate, "end-date", cfg.EndDate, "end date YYYY-MM-DD (default: today)")
	root.Flags().IntVar(&cfg.StepDays, "step-days", cfg.StepDays, "days to step forward between frames")
	root.Flags().StringVar(&cfg.Name, "name", cfg.Name, "name to display in the age text")

	root.Flags().StringVar(&cfg.ServiceURL, "service-url", cfg.ServiceURL, "rendering service endpoint")
	root.Flags().StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "working directory for frames and output")
	root.Flags().StringVar(&cfg.Output, "output", cfg.Output, "output video path (default: <out-dir>/solar_timelapse.mp4)")

	root.Flags().IntVar(&cfg.FPS, "fps", cfg.FPS, "output frame rate")
	root.Flags().IntVar(&cfg.CRF, "crf", cfg.CRF, "encoder constant rate factor")
	root.Flags().StringVar(&cfg.Preset, "preset", cfg.Preset, "encoder preset")
	root.Flags().StringVar(&cfg.Codec, "codec", cfg.Codec, "encoder codec")
	root.Flags().StringVar(&cfg.EncoderBin, "ffmpeg", cfg.EncoderBin, "ffmpeg binary name or path")
	root.Flags().DurationVar(&cfg.EncodeTimeout, "encode-timeout", cfg.EncodeTimeout, "encoder invocation timeout")

	root.Flags().IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "parallel frame workers")
	root.Flags().IntVar(&cfg.Attempts, "attempts", cfg.Attempts, "fetch attempts per frame")
	root.Flags().DurationVar(&cfg.FetchTimeout, "timeout", cfg.FetchTimeout, "per-attempt fetch timeout")

	root.Flags().StringVar(&cfg.FontPath, "font", cfg.FontPath, "TTF font for the text overlay (optional)")
	root.Flags().StringVar(&cfg.OnFrameError, "on-frame-error", cfg.OnFrameError, "per-frame failure policy: abort or placeholder")
	root.Flags().BoolVar(&cfg.Overwrite, "overwrite", cfg.Overwrite, "refetch frames that already exist on disk")
	root.Flags().BoolVar(&cfg.SkipVideo, "skip-video", cfg.SkipVideo, "generate frames only, skip video assembly")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("orbitlapse")
		os.Exit(1)
	}
}
