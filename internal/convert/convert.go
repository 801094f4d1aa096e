package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"voiceconv/internal/logging"
	"voiceconv/internal/profile"
	"voiceconv/internal/services"
)

const (
	// DefaultBinary is the transcoder looked up on the search path.
	DefaultBinary = "ffmpeg"
	// DefaultLoudnessFilter is the loudness normalization applied before the
	// profile arguments.
	DefaultLoudnessFilter = "loudnorm=I=-16:TP=-4:LRA=11"

	// UnknownErrorMessage is reported when the transcoder fails silently.
	UnknownErrorMessage = "Unknown FFmpeg error."
	// ToolNotFoundMessage is reported when the transcoder cannot be located.
	ToolNotFoundMessage = "FFmpeg not found in PATH. Install FFmpeg and restart."
)

// Request describes one conversion.
type Request struct {
	InputPath string
	OutputDir string
	BaseName  string
	Profile   profile.Profile
}

// Plan is a validated request with its final output path and arguments.
type Plan struct {
	InputPath  string          `json:"input_path"`
	OutputPath string          `json:"output_path"`
	Profile    profile.Profile `json:"profile"`
	Args       []string        `json:"args"`
}

// Result reports a successful conversion.
type Result struct {
	OutputPath string
	Profile    profile.Profile
	Binary     string
	Args       []string
	Duration   time.Duration
	RequestID  string
}

// Option configures a Converter.
type Option func(*Converter)

// WithRunner overrides how the transcoder process is executed.
func WithRunner(runner Runner) Option {
	return func(c *Converter) {
		if runner != nil {
			c.runner = runner
		}
	}
}

// WithBinary overrides the transcoder name or path.
func WithBinary(binary string) Option {
	return func(c *Converter) {
		if binary = strings.TrimSpace(binary); binary != "" {
			c.binary = binary
		}
	}
}

// WithLookPath overrides how the transcoder binary is located.
func WithLookPath(lookPath func(string) (string, error)) Option {
	return func(c *Converter) {
		if lookPath != nil {
			c.lookPath = lookPath
		}
	}
}

// WithLoudnessNormalization toggles the loudness filter.
func WithLoudnessNormalization(enabled bool) Option {
	return func(c *Converter) {
		c.normalize = enabled
	}
}

// WithLoudnessFilter overrides the -af expression used for normalization.
func WithLoudnessFilter(filter string) Option {
	return func(c *Converter) {
		if filter = strings.TrimSpace(filter); filter != "" {
			c.filter = filter
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Converter invokes the transcoder. It holds no mutable state after
// construction and is safe for concurrent use.
type Converter struct {
	runner    Runner
	binary    string
	lookPath  func(string) (string, error)
	normalize bool
	filter    string
	logger    *slog.Logger
}

// New constructs a Converter with loudness normalization enabled.
func New(opts ...Option) *Converter {
	c := &Converter{
		runner:    NewExecRunner(),
		binary:    DefaultBinary,
		lookPath:  exec.LookPath,
		normalize: true,
		filter:    DefaultLoudnessFilter,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "convert")
	return c
}

// Binary returns the configured transcoder name or path.
func (c *Converter) Binary() string {
	return c.binary
}

// Normalization returns the arguments inserted before the profile arguments.
func (c *Converter) Normalization() []string {
	if !c.normalize {
		return nil
	}
	return NormalizationArgs(c.filter)
}

// Plan validates req and computes the output path and argument list without
// touching the transcoder.
func (c *Converter) Plan(req Request) (Plan, error) {
	const op = "convert plan"

	input := strings.TrimSpace(req.InputPath)
	if input == "" {
		return Plan{}, services.Fail(services.ErrInvalidInput, op, "Input file is required.")
	}
	info, err := os.Stat(input)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Plan{}, services.FailWith(services.ErrInvalidInput, op, fmt.Sprintf("Input file does not exist: %s", input), err)
		}
		return Plan{}, services.FailWith(services.ErrInvalidInput, op, fmt.Sprintf("Input file is not accessible: %s", input), err)
	}
	if !info.Mode().IsRegular() {
		return Plan{}, services.Fail(services.ErrInvalidInput, op, fmt.Sprintf("Input is not a regular file: %s", input))
	}

	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return Plan{}, services.Fail(services.ErrInvalidInput, op, "Output folder is required.")
	}
	dirInfo, err := os.Stat(outputDir)
	if err != nil {
		return Plan{}, services.FailWith(services.ErrInvalidInput, op, fmt.Sprintf("Output folder does not exist: %s", outputDir), err)
	}
	if !dirInfo.IsDir() {
		return Plan{}, services.Fail(services.ErrInvalidInput, op, fmt.Sprintf("Output folder is not a directory: %s", outputDir))
	}

	baseName := strings.TrimSpace(req.BaseName)
	if baseName == "" {
		return Plan{}, services.Fail(services.ErrInvalidInput, op, "Output file name is required.")
	}
	if strings.ContainsAny(baseName, `/\`) || baseName == "." || baseName == ".." {
		return Plan{}, services.Fail(services.ErrInvalidInput, op, fmt.Sprintf("Output file name must not contain path separators: %s", baseName))
	}

	if req.Profile.IsZero() {
		return Plan{}, services.Fail(services.ErrInvalidInput, op, "Conversion profile is required.")
	}

	outputPath := filepath.Join(outputDir, baseName+req.Profile.Extension)
	return Plan{
		InputPath:  input,
		OutputPath: outputPath,
		Profile:    req.Profile,
		Args:       BuildArgs(input, outputPath, c.Normalization(), req.Profile.Args),
	}, nil
}

// Convert runs one conversion and blocks until the transcoder exits. The
// output file is overwritten when it already exists.
func (c *Converter) Convert(ctx context.Context, req Request) (Result, error) {
	const op = "convert"
	logger := logging.WithContext(ctx, c.logger)

	binary, err := c.lookPath(c.binary)
	if err != nil {
		logger.Warn("transcoder not found",
			logging.String(logging.FieldEventType, "tool_not_found"),
			logging.String("binary", c.binary),
			logging.Error(err),
		)
		return Result{}, services.FailWith(services.ErrToolNotFound, op, ToolNotFoundMessage, err)
	}

	plan, err := c.Plan(req)
	if err != nil {
		logger.Warn("conversion request rejected",
			logging.String(logging.FieldEventType, "invalid_input"),
			logging.String("reason", services.Message(err)),
		)
		return Result{}, err
	}

	logger.Info("conversion started",
		logging.String(logging.FieldEventType, "convert_start"),
		logging.String("input", plan.InputPath),
		logging.String("output", plan.OutputPath),
		logging.String(logging.FieldProfile, plan.Profile.ID),
	)
	logger.Debug("transcoder command",
		logging.String("binary", binary),
		logging.Strings("args", plan.Args),
	)

	started := time.Now()
	stderr, runErr := c.runner.Run(ctx, binary, plan.Args)
	elapsed := time.Since(started)
	if runErr != nil {
		failure := executionFailure(op, stderr, runErr)
		logger.Error("conversion failed",
			logging.String(logging.FieldEventType, "convert_failed"),
			logging.String("output", plan.OutputPath),
			logging.Duration("elapsed", elapsed),
			logging.String("reason", failure.Message),
		)
		return Result{}, failure
	}

	requestID, _ := services.RequestIDFromContext(ctx)
	logger.Info("conversion completed",
		logging.String(logging.FieldEventType, "convert_complete"),
		logging.String("output", plan.OutputPath),
		logging.Duration("elapsed", elapsed),
	)
	return Result{
		OutputPath: plan.OutputPath,
		Profile:    plan.Profile,
		Binary:     binary,
		Args:       plan.Args,
		Duration:   elapsed,
		RequestID:  requestID,
	}, nil
}

func executionFailure(op string, stderr []byte, err error) *services.Failure {
	message := strings.TrimSpace(string(stderr))
	if message == "" {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			message = strings.TrimSpace(err.Error())
		}
	}
	if message == "" {
		message = UnknownErrorMessage
	}
	return services.FailWith(services.ErrToolExecution, op, message, err)
}
