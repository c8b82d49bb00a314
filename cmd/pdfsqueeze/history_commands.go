package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"pdfsqueeze/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent compression runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return errors.New("history is disabled in the configuration")
			}

			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No compression runs recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				dpi := "-"
				if run.TargetDPI > 0 {
					dpi = strconv.Itoa(run.TargetDPI)
				}
				rows = append(rows, []string{
					run.CreatedAt.Local().Format(time.DateTime),
					filepath.Base(run.InputPath),
					run.Preset,
					dpi,
					fmt.Sprintf("%.2f MB", float64(run.InputBytes)/1e6),
					fmt.Sprintf("%.2f MB", float64(run.OutputBytes)/1e6),
					fmt.Sprintf("%.1f%%", run.Ratio()),
				})
			}

			rendered := renderTable(
				[]string{"When", "Input", "Preset", "DPI", "Before", "After", "Ratio"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
				isTerminal(out),
			)
			fmt.Fprintln(out, rendered)
			return nil
		},
	}
	historyCmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show (0 for all)")

	historyCmd.AddCommand(newHistoryClearCommand(ctx))
	return historyCmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded compression runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d recorded run(s)\n", removed)
			return nil
		},
	}
}
