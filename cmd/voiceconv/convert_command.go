package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"voiceconv/internal/config"
	"voiceconv/internal/convert"
	"voiceconv/internal/logging"
	"voiceconv/internal/profile"
	"voiceconv/internal/services"
	"voiceconv/internal/textutil"
)

type convertOptions struct {
	outputDir  string
	baseName   string
	profile    string
	noLoudnorm bool
	verify     bool
	dryRun     bool
	jsonOutput bool
}

type convertPayload struct {
	Status     string   `json:"status"`
	OutputPath string   `json:"output_path"`
	Profile    string   `json:"profile"`
	Binary     string   `json:"binary,omitempty"`
	Args       []string `json:"args"`
	DurationMS int64    `json:"duration_ms,omitempty"`
	Verified   bool     `json:"verified"`
	DryRun     bool     `json:"dry_run,omitempty"`
	RequestID  string   `json:"request_id,omitempty"`
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert INPUT",
		Short: "Convert an audio file with a radio voice profile",
		Long: `Convert an audio file with a radio voice profile.

The output file is written to the output folder as NAME plus the profile's
extension and is overwritten when it already exists. NAME defaults to the
input file's name without its extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Folder for the converted file (default from config)")
	cmd.Flags().StringVarP(&opts.baseName, "name", "n", "", "Output file name without extension")
	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "Profile ID or name (see `voiceconv profiles`)")
	cmd.Flags().BoolVar(&opts.noLoudnorm, "no-loudnorm", false, "Skip loudness normalization")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Probe the output and check it matches the profile")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the FFmpeg command without running it")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")
	_ = cmd.RegisterFlagCompletionFunc("profile", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return profile.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func runConvert(cmd *cobra.Command, ctx *commandContext, input string, opts convertOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	requestID := uuid.NewString()

	profileName := strings.TrimSpace(opts.profile)
	if profileName == "" {
		profileName = cfg.Defaults.Profile
	}
	selected, err := profile.Lookup(profileName)
	if err != nil {
		return reportFailure(cmd, opts.jsonOutput, requestID,
			services.FailWith(services.ErrUnknownProfile, "convert", err.Error(), err))
	}

	outputDir := cfg.Paths.OutputDir
	if flagDir := strings.TrimSpace(opts.outputDir); flagDir != "" {
		expanded, err := config.ExpandPath(flagDir)
		if err != nil {
			return reportFailure(cmd, opts.jsonOutput, requestID,
				services.FailWith(services.ErrInvalidInput, "convert", fmt.Sprintf("Invalid output folder %s: %v", flagDir, err), err))
		}
		outputDir = expanded
	}

	baseName := strings.TrimSpace(opts.baseName)
	if baseName == "" {
		baseName = textutil.BaseNameFromPath(input)
	}
	if baseName == "" {
		baseName = cfg.Defaults.BaseName
	}

	logger := ctx.loggerValue()
	converter := convert.New(
		convert.WithBinary(cfg.FFmpegBinary()),
		convert.WithLoudnessNormalization(cfg.Transcoder.Loudnorm && !opts.noLoudnorm),
		convert.WithLoudnessFilter(cfg.Transcoder.LoudnormFilter),
		convert.WithLogger(logger),
	)

	req := convert.Request{
		InputPath: input,
		OutputDir: outputDir,
		BaseName:  baseName,
		Profile:   selected,
	}

	if opts.dryRun {
		plan, err := converter.Plan(req)
		if err != nil {
			return reportFailure(cmd, opts.jsonOutput, requestID, err)
		}
		if opts.jsonOutput {
			return writeJSON(cmd, convertPayload{
				Status:     "planned",
				OutputPath: plan.OutputPath,
				Profile:    plan.Profile.ID,
				Binary:     converter.Binary(),
				Args:       plan.Args,
				DryRun:     true,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), shellJoin(append([]string{converter.Binary()}, plan.Args...)))
		return nil
	}

	runCtx := services.WithRequestID(cmd.Context(), requestID)
	runCtx = services.WithProfile(runCtx, selected.ID)

	result, err := converter.Convert(runCtx, req)
	if err != nil {
		return reportFailure(cmd, opts.jsonOutput, requestID, err)
	}

	verified := false
	if opts.verify || cfg.Transcoder.VerifyOutput {
		prober := convert.FFprobe{Binary: cfg.FFprobeBinary()}
		if err := convert.Verify(runCtx, prober, selected, result.OutputPath); err != nil {
			logging.WithContext(runCtx, logger).Warn("output verification failed",
				logging.String(logging.FieldEventType, "verify_failed"),
				logging.String("output", result.OutputPath),
				logging.Error(err),
			)
			return reportFailure(cmd, opts.jsonOutput, requestID, err)
		}
		verified = true
	}

	if opts.jsonOutput {
		return writeJSON(cmd, convertPayload{
			Status:     "ok",
			OutputPath: result.OutputPath,
			Profile:    result.Profile.ID,
			Binary:     result.Binary,
			Args:       result.Args,
			DurationMS: result.Duration.Milliseconds(),
			Verified:   verified,
			RequestID:  result.RequestID,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created: %s\n", result.OutputPath)
	if verified {
		fmt.Fprintf(out, "Verified: %s\n", selected.FormatLabel())
	}
	return nil
}

// shellJoin quotes args that a POSIX shell would split or expand.
func shellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\n\"'\\$`*?[]{}()<>|&;#~!") {
			quoted[i] = strconv.Quote(arg)
			continue
		}
		quoted[i] = arg
	}
	return strings.Join(quoted, " ")
}
