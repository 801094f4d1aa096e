package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"voiceconv/internal/profile"
)

func newProfilesCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "profiles",
		Short:       "List conversion profiles",
		Annotations: skipConfigAnnotation,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles := profile.All()
			if jsonOutput {
				return writeJSON(cmd, profiles)
			}

			rows := make([][]string, 0, len(profiles))
			for _, p := range profiles {
				rows = append(rows, []string{p.ID, p.Name, p.Extension, p.FormatLabel()})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]tableColumn{
				{Header: "ID"},
				{Header: "Name", MaxWidth: 40},
				{Header: "Ext"},
				{Header: "Output format"},
			}, rows))

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Notes:")
			for _, p := range profiles {
				if p.Description == "" {
					continue
				}
				fmt.Fprintf(out, "  %s: %s\n", p.ID, p.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
