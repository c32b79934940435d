package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	EndDate  string `toml:"end_date"`
	StepDays int    `toml:"step_days"`
	Name     string `toml:"name"`

	ServiceURL string `toml:"service_url"`
	OutDir     string `toml:"out_dir"`
	Output     string `toml:"output"`

	FPS        int    `toml:"fps"`
	CRF        int    `toml:"crf"`
	Preset     string `toml:"preset"`
	Codec      string `toml:"codec"`
	EncoderBin string `toml:"encoder_bin"`

	Concurrency   int    `toml:"concurrency"`
	Attempts      int    `toml:"attempts"`
	FetchTimeout  string `toml:"fetch_timeout"`
	EncodeTimeout string `toml:"encode_timeout"`

	FontPath string `toml:"font_path"`

	OnFrameError string `toml:"on_frame_error"`
	Overwrite    *bool  `toml:"overwrite"`
	SkipVideo    *bool  `toml:"skip_video"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.orbitlapse/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".orbitlapse", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("end-date", fc.EndDate, &cfg.EndDate)
	s.setString("name", fc.Name, &cfg.Name)
	s.setString("service-url", fc.ServiceURL, &cfg.ServiceURL)
	s.setString("out-dir", fc.OutDir, &cfg.OutDir)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("preset", fc.Preset, &cfg.Preset)
	s.setString("codec", fc.Codec, &cfg.Codec)
	s.setString("ffmpeg", fc.EncoderBin, &cfg.EncoderBin)
	s.setString("font", fc.FontPath, &cfg.FontPath)
	s.setString("on-frame-error", fc.OnFrameError, &cfg.OnFrameError)

	s.setInt("step-days", fc.StepDays, &cfg.StepDays)
	s.setInt("fps", fc.FPS, &cfg.FPS)
	s.setInt("crf", fc.CRF, &cfg.CRF)
	s.setInt("concurrency", fc.Concurrency, &cfg.Concurrency)
	s.setInt("attempts", fc.Attempts, &cfg.Attempts)

	if err := s.setDuration("timeout", fc.FetchTimeout, &cfg.FetchTimeout); err != nil {
		return err
	}
	if err := s.setDuration("encode-timeout", fc.EncodeTimeout, &cfg.EncodeTimeout); err != nil {
		return err
	}

	s.setBool("overwrite", fc.Overwrite, &cfg.Overwrite)
	s.setBool("skip-video", fc.SkipVideo, &cfg.SkipVideo)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
