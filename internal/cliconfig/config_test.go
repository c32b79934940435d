package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/orbitlapse/orbitlapse/internal/domain"
)

func TestValidate_ParsesRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BirthDate = "1879-03-14"
	cfg.EndDate = "1886-03-14"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !cfg.Start.Equal(time.Date(1879, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Start = %v", cfg.Start)
	}
	if !cfg.End.Equal(time.Date(1886, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("End = %v", cfg.End)
	}
}

func TestValidate_DefaultEndIsToday(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BirthDate = "1975-01-01"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	now := time.Now().UTC()
	want := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !cfg.End.Equal(want) {
		t.Errorf("End = %v, want today %v", cfg.End, want)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantRange bool
	}{
		{"missing birth date", func(c *Config) { c.BirthDate = "" }, false},
		{"malformed birth date", func(c *Config) { c.BirthDate = "14-03-1879" }, true},
		{"malformed end date", func(c *Config) { c.EndDate = "yesterday" }, true},
		{"inverted range", func(c *Config) { c.EndDate = "1870-01-01" }, true},
		{"zero step", func(c *Config) { c.StepDays = 0 }, true},
		{"negative step", func(c *Config) { c.StepDays = -1 }, true},
		{"zero fps", func(c *Config) { c.FPS = 0 }, false},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, false},
		{"zero attempts", func(c *Config) { c.Attempts = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.BirthDate = "1879-03-14"
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate succeeded, want error")
			}
			if tt.wantRange && !errors.Is(err, domain.ErrInvalidRange) {
				t.Errorf("error = %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestValidate_DerivedDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BirthDate = "1975-01-01"
	cfg.OutDir = "/tmp/run"
	cfg.ServiceURL = "http://example.test/render/"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Output != "/tmp/run/solar_timelapse.mp4" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.FramesDir() != "/tmp/run/frames" {
		t.Errorf("FramesDir() = %q", cfg.FramesDir())
	}
	if cfg.ServiceURL != "http://example.test/render" {
		t.Errorf("ServiceURL = %q, want trailing slash trimmed", cfg.ServiceURL)
	}
}

func TestVideoSpec_FromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BirthDate = "1975-01-01"
	cfg.FPS = 24
	cfg.CRF = 20
	cfg.Preset = "fast"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	spec := cfg.VideoSpec()
	if spec.FPS != 24 || spec.CRF != 20 || spec.Preset != "fast" {
		t.Errorf("spec = %+v", spec)
	}
	if spec.Width != 1920 || spec.Height != 1080 {
		t.Errorf("canvas = %dx%d, want 1920x1080", spec.Width, spec.Height)
	}
}
