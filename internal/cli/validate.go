package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sdejongh/dirsnap/pkg/namecheck"
	"github.com/sdejongh/dirsnap/pkg/snapshot"
	"github.com/sdejongh/dirsnap/pkg/storage"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check filenames against the naming grammar",
		Long: `Check every filename under the source directory against the
"Author - Title (Year).ext" naming grammar without fingerprinting anything.
Exits with code 1 when any name fails; ` + namecheck.Describe() + `.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), source)
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "directory to check (required)")
	cmd.MarkFlagRequired("source")

	return cmd
}

func runValidate(ctx context.Context, source string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	formatter := newFormatter(cfg)

	backend, err := storage.NewLocal(source)
	if err != nil {
		return err
	}
	defer backend.Close()

	files, err := snapshot.Scan(ctx, backend, cfg.Exclude)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, filepath.Base(f.RelativePath))
	}

	invalid := namecheck.CheckAll(names)
	if err := formatter.InvalidNames(invalid); err != nil {
		return err
	}

	if len(invalid) > 0 {
		os.Exit(1)
	}
	return nil
}
