package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdejongh/dirsnap/pkg/analyze"
	"github.com/sdejongh/dirsnap/pkg/codec"
	"github.com/sdejongh/dirsnap/pkg/models"
)

type analyzeFlags struct {
	Source string
	Report string
}

// NewAnalyzeCommand creates the analyze command
func NewAnalyzeCommand() *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Flag zero-size files and duplicate content in one report",
		Long: `Inspect a single report (a saved report file, or a fresh fingerprint of a
directory) and list zero-size files and groups of files sharing identical
content. Zero-size files are excluded from duplicate grouping since every
empty file trivially shares the same hash.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.Source, "source", "s", "", "directory to fingerprint and analyze")
	cmd.Flags().StringVarP(&flags.Report, "report", "r", "", "saved report file to analyze")
	cmd.MarkFlagsOneRequired("source", "report")
	cmd.MarkFlagsMutuallyExclusive("source", "report")

	return cmd
}

func runAnalyze(ctx context.Context, flags analyzeFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	operationID := newOperationID()
	logger, err := newLogger(cfg, operationID)
	if err != nil {
		return err
	}
	defer logger.Close()

	formatter := newFormatter(cfg)

	var report *models.Report
	if flags.Report != "" {
		report, err = codec.LoadFile(flags.Report)
		if err != nil {
			return fmt.Errorf("failed to load report: %w", err)
		}
	} else {
		report, _, err = buildFromDir(ctx, cfg, logger, formatter, operationID, flags.Source, false)
		if err != nil {
			return err
		}
	}

	return formatter.Analysis(analyze.Analyze(report))
}
