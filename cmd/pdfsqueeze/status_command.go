package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pdfsqueeze/internal/config"
	"pdfsqueeze/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show engine availability and environment checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			var configPath string
			if ctx.configFlag != nil && strings.TrimSpace(*ctx.configFlag) != "" {
				configPath = strings.TrimSpace(*ctx.configFlag)
			} else if defaultPath, pathErr := config.DefaultConfigPath(); pathErr == nil {
				configPath = defaultPath
			}
			if configPath != "" {
				fmt.Fprintf(out, "Config: %s\n", configPath)
			}

			rows := make([][]string, 0, 4)
			for _, status := range preflight.CheckSystemDeps(cfg) {
				detail := status.Detail
				if status.Available {
					detail = status.Command
				}
				rows = append(rows, []string{status.Name, okMissing(status.Available), detail})
			}
			for _, result := range preflight.RunAll(cfg) {
				rows = append(rows, []string{result.Name, okMissing(result.Passed), result.Detail})
			}

			rendered := renderTable(
				[]string{"Check", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
				isTerminal(out),
			)
			fmt.Fprintln(out, rendered)
			return nil
		},
	}
}
