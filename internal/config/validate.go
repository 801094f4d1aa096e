package config

import (
	"errors"
	"fmt"
	"strings"

	"voiceconv/internal/profile"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTranscoder(); err != nil {
		return err
	}
	if err := c.validateDefaults(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTranscoder() error {
	if strings.TrimSpace(c.Transcoder.FFmpegBinary) == "" {
		return errors.New("transcoder.ffmpeg_binary must be set")
	}
	if c.Transcoder.Loudnorm && strings.TrimSpace(c.Transcoder.LoudnormFilter) == "" {
		return errors.New("transcoder.loudnorm_filter must be set when transcoder.loudnorm is true")
	}
	return nil
}

func (c *Config) validateDefaults() error {
	if strings.ContainsAny(c.Defaults.BaseName, `/\`) {
		return fmt.Errorf("defaults.base_name %q must not contain path separators", c.Defaults.BaseName)
	}
	if _, err := profile.Lookup(c.Defaults.Profile); err != nil {
		return fmt.Errorf("defaults.profile: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
	if c.Logging.File && strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set when logging.file is true")
	}
	return nil
}
