package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pdfsqueeze/internal/history"
	"pdfsqueeze/internal/services"
	"pdfsqueeze/internal/services/ghostscript"
)

func newCompressCommand(ctx *commandContext) *cobra.Command {
	var presetFlag string
	var dpiFlag int
	var gsFlag string

	cmd := &cobra.Command{
		Use:   "compress <input> <output>",
		Short: "Compress a PDF file with Ghostscript",
		Long: "Compress a PDF file by rewriting it through Ghostscript's pdfwrite device.\n" +
			"The quality preset controls the size/quality trade-off; an optional DPI\n" +
			"forces image downsampling for color, gray, and mono image classes.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			inputPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve input path: %w", err)
			}
			outputPath, err := filepath.Abs(args[1])
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}

			info, err := os.Stat(inputPath)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return services.Wrap(services.ErrValidation, "compress", "input",
						fmt.Sprintf("input must be an existing PDF: %s", inputPath), nil)
				}
				return fmt.Errorf("inspect input: %w", err)
			}
			if info.IsDir() {
				return services.Wrap(services.ErrValidation, "compress", "input",
					fmt.Sprintf("%s is a directory", inputPath), nil)
			}
			if strings.ToLower(filepath.Ext(inputPath)) != ".pdf" {
				return services.Wrap(services.ErrValidation, "compress", "input",
					fmt.Sprintf("input must be an existing PDF: %s", inputPath), nil)
			}

			if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			preset := strings.TrimSpace(presetFlag)
			if preset == "" {
				preset = cfg.Ghostscript.Preset
			}
			dpi := dpiFlag
			if dpi == 0 {
				dpi = cfg.Ghostscript.DPI
			}
			if dpi < 0 {
				return services.Wrap(services.ErrValidation, "compress", "dpi",
					fmt.Sprintf("dpi must be a positive integer, got %d", dpi), nil)
			}

			explicit := strings.TrimSpace(gsFlag)
			if explicit == "" {
				explicit = cfg.Ghostscript.Binary
			}
			binary, err := ghostscript.Locate(explicit)
			if err != nil {
				return err
			}
			logger.Debug("resolved engine", "binary", binary, "preset", preset, "dpi", dpi)

			client := ghostscript.NewClient(ghostscript.WithBinary(binary))
			if err := client.Compress(cmd.Context(), ghostscript.Request{
				Input:     inputPath,
				Output:    outputPath,
				Preset:    preset,
				TargetDPI: dpi,
			}); err != nil {
				return err
			}

			before := info.Size()
			var after int64
			if outInfo, statErr := os.Stat(outputPath); statErr == nil {
				after = outInfo.Size()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Saved: %s\n", outputPath)
			if before > 0 {
				fmt.Fprintf(out, "Size: %.2f MB -> %.2f MB (%.1f%%)\n",
					float64(before)/1e6, float64(after)/1e6, float64(after)/float64(before)*100)
			}

			if cfg.History.Enabled {
				recordRun(cmd, ctx, logger, history.Run{
					InputPath:   inputPath,
					OutputPath:  outputPath,
					Preset:      strings.ToLower(preset),
					TargetDPI:   dpi,
					InputBytes:  before,
					OutputBytes: after,
				})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&presetFlag, "preset", "",
		fmt.Sprintf("Quality preset: %s (default from config)", strings.Join(ghostscript.PresetNames(), ", ")))
	cmd.Flags().IntVar(&dpiFlag, "dpi", 0, "Downsample images to this DPI (e.g. 150)")
	cmd.Flags().StringVar(&gsFlag, "gs", "", "Explicit path to the Ghostscript executable")
	return cmd
}

// recordRun persists the run on a best-effort basis. History failures are
// warnings, never compression failures.
func recordRun(cmd *cobra.Command, ctx *commandContext, logger *slog.Logger, run history.Run) {
	cfg := ctx.configValue()
	store, err := history.Open(cfg)
	if err != nil {
		logger.Warn("history unavailable", "error", err)
		return
	}
	defer store.Close()
	if _, err := store.Add(cmd.Context(), run); err != nil {
		logger.Warn("record history", "error", err)
	}
}
