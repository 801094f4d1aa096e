package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"voiceconv/internal/deps"
	"voiceconv/internal/media/ffprobe"
	"voiceconv/internal/services"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show the audio streams of a file using ffprobe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			binary, err := deps.ResolveBinary(cfg.FFprobeBinary())
			if err != nil {
				return reportFailure(cmd, jsonOutput, "",
					services.FailWith(services.ErrToolNotFound, "inspect", "FFprobe not found in PATH. Install FFmpeg and restart.", err))
			}

			result, err := ffprobe.Inspect(cmd.Context(), binary, args[0])
			if err != nil {
				return reportFailure(cmd, jsonOutput, "",
					services.FailWith(services.ErrToolExecution, "inspect", err.Error(), err))
			}

			if jsonOutput {
				_, err := cmd.OutOrStdout().Write(append(result.RawJSON(), '\n'))
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File: %s\n", args[0])
			if name := strings.TrimSpace(result.Format.FormatName); name != "" {
				fmt.Fprintf(out, "Container: %s\n", name)
			}
			if seconds := result.DurationSeconds(); seconds > 0 {
				fmt.Fprintf(out, "Duration: %.2fs\n", seconds)
			}
			if size := result.SizeBytes(); size > 0 {
				fmt.Fprintf(out, "Size: %d bytes\n", size)
			}
			if rate := result.BitRate(); rate > 0 {
				fmt.Fprintf(out, "Bit rate: %d bit/s\n", rate)
			}

			if result.AudioStreamCount() == 0 {
				fmt.Fprintln(out, "No audio streams found")
				return nil
			}

			rows := make([][]string, 0, len(result.Streams))
			for _, stream := range result.Streams {
				if !stream.IsAudio() {
					continue
				}
				rows = append(rows, []string{
					strconv.Itoa(stream.Index),
					stream.CodecName,
					strconv.Itoa(stream.SampleRateHz()),
					strconv.Itoa(stream.Channels),
					stream.ChannelLayout,
					stream.SampleFmt,
				})
			}
			fmt.Fprintln(out, renderTable([]tableColumn{
				{Header: "Stream", Align: alignRight},
				{Header: "Codec"},
				{Header: "Sample rate", Align: alignRight},
				{Header: "Channels", Align: alignRight},
				{Header: "Layout"},
				{Header: "Sample format"},
			}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output raw ffprobe JSON")
	return cmd
}
