package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"voiceconv/internal/config"
	"voiceconv/internal/deps"
	"voiceconv/internal/preflight"
)

type statusSnapshot struct {
	ConfigPath   string                    `json:"config_path"`
	ConfigExists bool                      `json:"config_exists"`
	Profile      string                    `json:"default_profile"`
	Loudnorm     bool                      `json:"loudnorm"`
	Transcoder   preflight.TranscoderProbe `json:"transcoder"`
	Dependencies []deps.Status             `json:"dependencies"`
	Paths        []preflight.Result        `json:"paths"`
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show dependency and directory readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			snapshot := buildStatusSnapshot(cmd, ctx, cfg)
			if jsonOutput {
				return writeJSON(cmd, snapshot)
			}

			stdout := cmd.OutOrStdout()
			renderStatus(stdout, snapshot, shouldColorize(stdout))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func buildStatusSnapshot(cmd *cobra.Command, ctx *commandContext, cfg *config.Config) statusSnapshot {
	return statusSnapshot{
		ConfigPath:   ctx.configPath,
		ConfigExists: ctx.configExists,
		Profile:      cfg.Defaults.Profile,
		Loudnorm:     cfg.Transcoder.Loudnorm,
		Transcoder:   preflight.ProbeTranscoder(cmd.Context(), cfg.FFmpegBinary()),
		Dependencies: preflight.CheckSystemDeps(cfg),
		Paths:        preflight.RunAll(cmd.Context(), cfg),
	}
}

func renderStatus(out io.Writer, snapshot statusSnapshot, colorize bool) {
	for _, line := range renderSectionHeader("Transcoder", colorize) {
		fmt.Fprintln(out, line)
	}
	transcoderKind := statusOK
	if !snapshot.Transcoder.Available {
		transcoderKind = statusError
	}
	fmt.Fprintln(out, renderStatusLine("FFmpeg", transcoderKind, snapshot.Transcoder.Detail(), colorize))
	fmt.Fprintln(out)

	for _, line := range renderSectionHeader("Dependencies", colorize) {
		fmt.Fprintln(out, line)
	}
	for _, line := range dependencyLines(snapshot.Dependencies, colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out)

	for _, line := range renderSectionHeader("Paths", colorize) {
		fmt.Fprintln(out, line)
	}
	for _, result := range snapshot.Paths {
		kind := statusOK
		if !result.Passed {
			kind = statusError
		}
		fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
	}
	fmt.Fprintln(out)

	for _, line := range renderSectionHeader("Configuration", colorize) {
		fmt.Fprintln(out, line)
	}
	configDetail := snapshot.ConfigPath
	if !snapshot.ConfigExists {
		configDetail += " (not found; using defaults)"
	}
	fmt.Fprintln(out, renderStatusLine("Config file", statusInfo, configDetail, colorize))
	fmt.Fprintln(out, renderStatusLine("Default profile", statusInfo, snapshot.Profile, colorize))
	fmt.Fprintln(out, renderStatusLine("Loudness normalize", statusInfo, yesNo(snapshot.Loudnorm), colorize))
}

func dependencyLines(statuses []deps.Status, colorize bool) []string {
	lines := make([]string, 0, len(statuses)+1)
	var missing []string
	for _, dep := range statuses {
		if dep.Available {
			message := "Ready"
			if dep.Path != "" {
				message = fmt.Sprintf("Ready (%s)", dep.Path)
			}
			lines = append(lines, renderStatusLine(dep.Name, statusOK, message, colorize))
			continue
		}

		detail := strings.TrimSpace(dep.Detail)
		if detail == "" {
			detail = "not available"
		}
		kind := statusError
		if dep.Optional {
			kind = statusWarn
			detail = fmt.Sprintf("%s (%s)", detail, strings.ToLower(dep.Description))
		}
		lines = append(lines, renderStatusLine(dep.Name, kind, detail, colorize))
		missing = append(missing, dep.Name)
	}
	if len(missing) > 0 {
		lines = append(lines, renderStatusLine("Missing", statusWarn, strings.Join(missing, ", "), colorize))
	}
	return lines
}
