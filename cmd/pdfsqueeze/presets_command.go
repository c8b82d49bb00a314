package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pdfsqueeze/internal/services/ghostscript"
)

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "presets",
		Short:       "List the available quality presets",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			caser := cases.Title(language.English)

			rows := make([][]string, 0, 5)
			for _, preset := range ghostscript.Presets() {
				rows = append(rows, []string{
					caser.String(preset.Name),
					preset.Name,
					preset.Token,
					preset.Description,
				})
			}

			out := cmd.OutOrStdout()
			rendered := renderTable(
				[]string{"Preset", "Name", "Token", "Description"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				isTerminal(out),
			)
			fmt.Fprintln(out, rendered)
			return nil
		},
	}
}
