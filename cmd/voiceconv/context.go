package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"voiceconv/internal/config"
	"voiceconv/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	verboseFlag  *bool

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		verboseFlag:  verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(c.configFlagValue())
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyLogOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) applyLogOverrides(cfg *config.Config) error {
	if c.verboseFlag != nil && *c.verboseFlag {
		cfg.Logging.Level = "debug"
		return nil
	}
	if c.logLevelFlag == nil {
		return nil
	}
	level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
	if level == "" {
		return nil
	}
	switch level {
	case "debug", "info", "warn", "error":
		cfg.Logging.Level = level
		return nil
	default:
		return fmt.Errorf("--log-level %q must be one of debug, info, warn, error", level)
	}
}

// loggerValue builds the process logger on first use. Logger construction
// failures fall back to a stderr console logger rather than blocking the
// command.
func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromConfig(c.configValue())
		if err != nil {
			fallback, _ := logging.New(logging.Options{Level: "warn", Format: "console"})
			fallback.Warn("logger init failed; using stderr", logging.Error(err))
			logger = fallback
		}
		c.logger = logger
	})
	return c.logger
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
