package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdejongh/dirsnap/pkg/codec"
)

type snapshotFlags struct {
	Source     string
	Output     string
	CheckNames bool
	Parallel   int
	Exclude    []string
}

// NewSnapshotCommand creates the snapshot command
func NewSnapshotCommand() *cobra.Command {
	var flags snapshotFlags

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fingerprint a directory tree and save the report",
		Long: `Recursively fingerprint every regular file under the source directory
(SHA-1 content hash plus byte size) and save the resulting report to a
versioned XML file for later analysis or comparison.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.Source, "source", "s", "", "source directory path (required)")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "report file to write (required)")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("output")

	cmd.Flags().BoolVar(&flags.CheckNames, "check-names", false, "validate filenames against the naming grammar before hashing")
	cmd.Flags().IntVarP(&flags.Parallel, "parallel", "p", 0, "number of parallel hash workers (default from config)")
	cmd.Flags().StringSliceVar(&flags.Exclude, "exclude", nil, "glob patterns to exclude")

	return cmd
}

func runSnapshot(ctx context.Context, flags snapshotFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flags.Parallel > 0 {
		cfg.Performance.MaxWorkers = flags.Parallel
	}
	if len(flags.Exclude) > 0 {
		cfg.Exclude = flags.Exclude
	}

	operationID := newOperationID()
	logger, err := newLogger(cfg, operationID)
	if err != nil {
		return err
	}
	defer logger.Close()

	formatter := newFormatter(cfg)

	report, info, err := buildFromDir(ctx, cfg, logger, formatter, operationID, flags.Source, flags.CheckNames)
	if err != nil {
		return err
	}

	if err := codec.SaveFile(report, flags.Output); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return formatter.BuildSummary(info)
}
