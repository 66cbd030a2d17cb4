package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sieve/internal/cluster"
	"sieve/internal/collection"
	"sieve/internal/config"
	"sieve/internal/fsscan"
	"sieve/internal/logging"
	"sieve/internal/report"
	"sieve/internal/similarity"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var sourceFlag string
	var formatFlag string
	var colorFlag string
	var showSingletons bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Report duplicate and similar folders under a source directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, closer, err := ctx.runLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, closer.Close())
			}()
			logger = logging.NewComponentLogger(logger, "scan")

			source, err := resolveSource(sourceFlag, cfg)
			if err != nil {
				return err
			}
			opts := report.Options{
				Format: firstNonEmpty(formatFlag, cfg.Report.Format),
				Color:  firstNonEmpty(colorFlag, cfg.Report.Color),
			}
			if !cmd.Flags().Changed("show-singletons") {
				showSingletons = cfg.Report.ShowSingletons
			}

			started := time.Now()
			lister := fsscan.New(ctx.fs, fsscan.WithNFC(cfg.Scan.UnicodeNFC))
			index, err := collection.Load(source, lister)
			if err != nil {
				if errors.Is(err, collection.ErrSourceUnavailable) {
					return fmt.Errorf("scan %s: %w", source, err)
				}
				return err
			}
			index.RebuildExactGroups()
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			groups := cluster.New(similarity.PartialRatio, logger).FindSimilarGroups(index.Entries())
			result := report.Build(index, groups, showSingletons)

			logger.Info("scan complete",
				logging.String(logging.FieldSource, source),
				logging.Int("entries", index.Len()),
				logging.Int("duplicate_groups", len(result.Duplicates)),
				logging.Int("similar_groups", len(result.Similar)),
				logging.Duration("elapsed", time.Since(started)),
			)

			return report.Render(cmd.OutOrStdout(), result, opts)
		},
	}

	cmd.Flags().StringVarP(&sourceFlag, "source", "s", "", "Directory whose subfolders are compared (required unless configured)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: text, table, or json")
	cmd.Flags().StringVar(&colorFlag, "color", "", "Colorize output: auto, always, or never")
	cmd.Flags().BoolVar(&showSingletons, "show-singletons", false, "Include single-entry similarity groups in json output")
	return cmd
}

func resolveSource(flagValue string, cfg *config.Config) (string, error) {
	source := strings.TrimSpace(flagValue)
	if source == "" {
		source = cfg.Scan.SourceDir
	}
	if source == "" {
		return "", errors.New("a source directory is required: pass --source or set scan.source_dir")
	}
	expanded, err := config.ExpandPath(source)
	if err != nil {
		return "", fmt.Errorf("resolve source: %w", err)
	}
	return expanded, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
