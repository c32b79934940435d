// Package cliconfig layers orbitlapse configuration from defaults, a TOML
// config file, ORBITLAPSE_* environment variables and command-line flags,
// in that order of increasing precedence.
package cliconfig

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/orbitlapse/orbitlapse/internal/domain"
)

// DefaultServiceURL is the rendering endpoint of a local Solar System Live
// instance.
const DefaultServiceURL = "http://localhost:8080/cgi-bin/Solar"

// DateFormat is the wire format for all user-supplied dates.
const DateFormat = "2006-01-02"

// Config holds CLI configuration for orbitlapse.
type Config struct {
	// BirthDate is the positional start date argument (YYYY-MM-DD).
	BirthDate string

	// EndDate is the optional end date (YYYY-MM-DD); empty means today.
	EndDate string

	StepDays int
	Name     string

	ServiceURL string
	OutDir     string
	Output     string

	FPS        int
	CRF        int
	Preset     string
	Codec      string
	EncoderBin string

	Concurrency   int
	Attempts      int
	FetchTimeout  time.Duration
	EncodeTimeout time.Duration

	FontPath string

	OnFrameError string
	Overwrite    bool
	SkipVideo    bool

	// Start and End are the parsed date range, populated by Validate.
	Start time.Time
	End   time.Time
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		StepDays:      3,
		ServiceURL:    DefaultServiceURL,
		OutDir:        ".",
		FPS:           30,
		CRF:           18,
		Preset:        "slow",
		Codec:         "libx264",
		EncoderBin:    "ffmpeg",
		Concurrency:   4,
		Attempts:      3,
		FetchTimeout:  15 * time.Second,
		EncodeTimeout: 30 * time.Minute,
		OnFrameError:  "abort",
	}
}

// Validate checks the configuration, parses the date range and sets derived
// defaults. Range errors surface before any network activity.
func (c *Config) Validate() error {
	if c.BirthDate == "" {
		return fmt.Errorf("birth-date is required")
	}
	start, err := time.ParseInLocation(DateFormat, c.BirthDate, time.UTC)
	if err != nil {
		return fmt.Errorf("%w: invalid birth date %q (want YYYY-MM-DD)", domain.ErrInvalidRange, c.BirthDate)
	}
	c.Start = start

	if c.EndDate == "" {
		now := time.Now().UTC()
		c.End = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		end, err := time.ParseInLocation(DateFormat, c.EndDate, time.UTC)
		if err != nil {
			return fmt.Errorf("%w: invalid end date %q (want YYYY-MM-DD)", domain.ErrInvalidRange, c.EndDate)
		}
		c.End = end
	}

	if c.End.Before(c.Start) {
		return fmt.Errorf("%w: end date %s precedes start date %s", domain.ErrInvalidRange,
			c.End.Format(DateFormat), c.Start.Format(DateFormat))
	}
	if c.StepDays < 1 {
		return fmt.Errorf("%w: step days must be >= 1 (got %d)", domain.ErrInvalidRange, c.StepDays)
	}

	if c.ServiceURL == "" {
		c.ServiceURL = DefaultServiceURL
	}
	c.ServiceURL = strings.TrimSuffix(c.ServiceURL, "/")

	if c.OutDir == "" {
		c.OutDir = "."
	}
	if c.Output == "" {
		c.Output = filepath.Join(c.OutDir, "solar_timelapse.mp4")
	}

	if c.FPS < 1 {
		return fmt.Errorf("fps must be >= 1 (got %d)", c.FPS)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1 (got %d)", c.Concurrency)
	}
	if c.Attempts < 1 {
		return fmt.Errorf("attempts must be >= 1 (got %d)", c.Attempts)
	}
	return nil
}

// FramesDir returns the directory frame files are written to.
func (c *Config) FramesDir() string {
	return filepath.Join(c.OutDir, "frames")
}

// VideoSpec builds the encoder spec from the configuration.
func (c *Config) VideoSpec() domain.VideoSpec {
	spec := domain.DefaultVideoSpec()
	spec.FPS = c.FPS
	spec.CRF = c.CRF
	spec.Preset = c.Preset
	spec.Codec = c.Codec
	spec.Output = c.Output
	return spec
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
