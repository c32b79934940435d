package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (ORBITLAPSE_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("end-date", os.Getenv("ORBITLAPSE_END_DATE"), &cfg.EndDate)
	s.setString("name", os.Getenv("ORBITLAPSE_NAME"), &cfg.Name)
	s.setString("service-url", os.Getenv("ORBITLAPSE_SERVICE_URL"), &cfg.ServiceURL)
	s.setString("out-dir", os.Getenv("ORBITLAPSE_OUT_DIR"), &cfg.OutDir)
	s.setString("output", os.Getenv("ORBITLAPSE_OUTPUT"), &cfg.Output)
	s.setString("preset", os.Getenv("ORBITLAPSE_PRESET"), &cfg.Preset)
	s.setString("codec", os.Getenv("ORBITLAPSE_CODEC"), &cfg.Codec)
	s.setString("ffmpeg", os.Getenv("ORBITLAPSE_FFMPEG"), &cfg.EncoderBin)
	s.setString("font", os.Getenv("ORBITLAPSE_FONT"), &cfg.FontPath)
	s.setString("on-frame-error", os.Getenv("ORBITLAPSE_ON_FRAME_ERROR"), &cfg.OnFrameError)

	if err := s.setIntFromString("step-days", os.Getenv("ORBITLAPSE_STEP_DAYS"), &cfg.StepDays); err != nil {
		return err
	}
	if err := s.setIntFromString("fps", os.Getenv("ORBITLAPSE_FPS"), &cfg.FPS); err != nil {
		return err
	}
	if err := s.setIntFromString("crf", os.Getenv("ORBITLAPSE_CRF"), &cfg.CRF); err != nil {
		return err
	}
	if err := s.setIntFromString("concurrency", os.Getenv("ORBITLAPSE_CONCURRENCY"), &cfg.Concurrency); err != nil {
		return err
	}
	if err := s.setIntFromString("attempts", os.Getenv("ORBITLAPSE_ATTEMPTS"), &cfg.Attempts); err != nil {
		return err
	}

	if err := s.setDuration("timeout", os.Getenv("ORBITLAPSE_FETCH_TIMEOUT"), &cfg.FetchTimeout); err != nil {
		return err
	}
	if err := s.setDuration("encode-timeout", os.Getenv("ORBITLAPSE_ENCODE_TIMEOUT"), &cfg.EncodeTimeout); err != nil {
		return err
	}

	s.setBoolFromString("overwrite", os.Getenv("ORBITLAPSE_OVERWRITE"), &cfg.Overwrite)
	s.setBoolFromString("skip-video", os.Getenv("ORBITLAPSE_SKIP_VIDEO"), &cfg.SkipVideo)

	return nil
}
