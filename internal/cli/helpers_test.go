package cli

import (
	"io"
	"os"
	"testing"

	"github.com/sdejongh/dirsnap/pkg/config"
)

func TestOutputWriter(t *testing.T) {
	t.Run("QuietDiscardsEveryFormat", func(t *testing.T) {
		for _, format := range []string{"human", "json"} {
			cfg := config.Default()
			cfg.Output.Format = format
			cfg.Output.Quiet = true

			if w := outputWriter(cfg); w != io.Discard {
				t.Errorf("outputWriter(quiet, %s) = %v, want io.Discard", format, w)
			}
		}
	})

	t.Run("DefaultGoesToStdout", func(t *testing.T) {
		cfg := config.Default()
		if w := outputWriter(cfg); w != os.Stdout {
			t.Error("outputWriter() should write to stdout when not quiet")
		}
	})
}

func TestNewFormatter(t *testing.T) {
	t.Run("FormatSelection", func(t *testing.T) {
		cfg := config.Default()

		cfg.Output.Format = "human"
		if got := newFormatter(cfg).Name(); got != "human" {
			t.Errorf("formatter = %s, want human", got)
		}

		cfg.Output.Format = "json"
		if got := newFormatter(cfg).Name(); got != "json" {
			t.Errorf("formatter = %s, want json", got)
		}
	})
}
