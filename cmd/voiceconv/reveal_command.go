package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"voiceconv/internal/config"
	"voiceconv/internal/desktop"
)

type revealer interface {
	Reveal(ctx context.Context, dir string) error
}

var newRevealer = func() revealer {
	return desktop.NewRevealer(nil)
}

func newRevealCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reveal [DIR]",
		Short: "Open the output folder in the file manager",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			dir := cfg.Paths.OutputDir
			if len(args) == 1 {
				expanded, err := config.ExpandPath(args[0])
				if err != nil {
					return fmt.Errorf("resolve folder: %w", err)
				}
				dir = expanded
			}
			if err := newRevealer().Reveal(cmd.Context(), dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", dir)
			return nil
		},
	}
}
