package config

import (
	"fmt"
	"os"
	"strings"

	"voiceconv/internal/profile"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTranscoder()
	c.normalizeDefaults()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("VOICECONV_OUTPUT_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.OutputDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	var err error
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTranscoder() {
	if value, ok := os.LookupEnv("VOICECONV_FFMPEG"); ok && strings.TrimSpace(value) != "" {
		c.Transcoder.FFmpegBinary = value
	}
	if value, ok := os.LookupEnv("VOICECONV_FFPROBE"); ok && strings.TrimSpace(value) != "" {
		c.Transcoder.FFprobeBinary = value
	}
	c.Transcoder.FFmpegBinary = strings.TrimSpace(c.Transcoder.FFmpegBinary)
	if c.Transcoder.FFmpegBinary == "" {
		c.Transcoder.FFmpegBinary = defaultFFmpegBinary
	}
	c.Transcoder.FFprobeBinary = strings.TrimSpace(c.Transcoder.FFprobeBinary)
	if c.Transcoder.FFprobeBinary == "" {
		c.Transcoder.FFprobeBinary = defaultFFprobeBinary
	}
	c.Transcoder.LoudnormFilter = strings.TrimSpace(c.Transcoder.LoudnormFilter)
	if c.Transcoder.LoudnormFilter == "" {
		c.Transcoder.LoudnormFilter = defaultLoudnormFilter
	}
}

func (c *Config) normalizeDefaults() {
	c.Defaults.Profile = strings.TrimSpace(c.Defaults.Profile)
	if c.Defaults.Profile == "" {
		c.Defaults.Profile = profile.Default().ID
	}
	c.Defaults.BaseName = strings.TrimSpace(c.Defaults.BaseName)
	if c.Defaults.BaseName == "" {
		c.Defaults.BaseName = defaultBaseName
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = 0
	}
	if c.Logging.MaxAgeDays < 0 {
		c.Logging.MaxAgeDays = 0
	}
}
