package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdejongh/dirsnap/pkg/codec"
	"github.com/sdejongh/dirsnap/pkg/logging"
	"github.com/sdejongh/dirsnap/pkg/models"
	"github.com/sdejongh/dirsnap/pkg/reconcile"
)

type compareFlags struct {
	Old    string
	New    string
	Source string
}

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	var flags compareFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Classify differences between two reports",
		Long: `Compare an older report against a newer one (a saved report file, or a
fresh fingerprint of a directory) and classify every file as unchanged,
moved, modified, added or deleted. Exits with code 1 when the reports
differ.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.Old, "old", "", "older report file (required)")
	cmd.MarkFlagRequired("old")

	cmd.Flags().StringVar(&flags.New, "new", "", "newer report file")
	cmd.Flags().StringVarP(&flags.Source, "source", "s", "", "directory to fingerprint as the newer report")
	cmd.MarkFlagsOneRequired("new", "source")
	cmd.MarkFlagsMutuallyExclusive("new", "source")

	return cmd
}

func runCompare(ctx context.Context, flags compareFlags) error {
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

	oldReport, err := codec.LoadFile(flags.Old)
	if err != nil {
		return fmt.Errorf("failed to load old report: %w", err)
	}

	var newReport *models.Report
	if flags.New != "" {
		newReport, err = codec.LoadFile(flags.New)
		if err != nil {
			return fmt.Errorf("failed to load new report: %w", err)
		}
	} else {
		newReport, _, err = buildFromDir(ctx, cfg, logger, formatter, operationID, flags.Source, false)
		if err != nil {
			return err
		}
	}

	result := reconcile.Compare(oldReport, newReport)

	logger.Info(ctx, "reports compared", logging.Fields{
		"moved":    len(result.Moved),
		"modified": len(result.Modified),
		"added":    len(result.Added),
		"deleted":  len(result.Deleted),
	})

	if err := formatter.Comparison(result); err != nil {
		return err
	}

	if !result.Identical() {
		logger.Close()
		os.Exit(1)
	}
	return nil
}
