package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/sdejongh/dirsnap/pkg/config"
	"github.com/sdejongh/dirsnap/pkg/logging"
	"github.com/sdejongh/dirsnap/pkg/output"
)

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if globalFlags.ConfigFile != "" {
		cfg, err = config.LoadFromFile(globalFlags.ConfigFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Global flags override config values
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}
	if globalFlags.Verbose {
		cfg.Logging.Level = "debug"
	}

	return cfg, nil
}

// newOperationID returns the identifier attached to every log line and JSON
// document produced by one CLI run.
func newOperationID() string {
	return uuid.New().String()
}

// newLogger builds the run logger from configuration, tagged with the
// operation ID. Returns a NullLogger when logging is disabled.
func newLogger(cfg *config.Config, operationID string) (logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NewNullLogger(), nil
	}

	logger, err := logging.NewFileLogger(logging.FileLoggerConfig{
		Path:   cfg.Logging.File,
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger.WithFields(logging.Fields{"operation_id": operationID}), nil
}

// outputWriter selects the destination for result output. Quiet suppresses
// results in every format; errors still reach stderr through the error path.
func outputWriter(cfg *config.Config) io.Writer {
	if cfg.Output.Quiet {
		return io.Discard
	}
	return os.Stdout
}

// newFormatter builds the result formatter from configuration.
func newFormatter(cfg *config.Config) output.Formatter {
	w := outputWriter(cfg)

	if cfg.Output.Format == "json" {
		return output.NewJSONFormatter(w)
	}
	return output.NewHumanFormatter(w)
}

// showProgress reports whether a progress bar should be rendered.
func showProgress(cfg *config.Config) bool {
	return cfg.Output.Progress && !cfg.Output.Quiet && cfg.Output.Format != "json"
}
