package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/sdejongh/dirsnap/pkg/models"
)

// HumanFormatter formats results for terminal reading.
type HumanFormatter struct {
	writer io.Writer

	moved    *color.Color
	modified *color.Color
	added    *color.Color
	deleted  *color.Color
	warn     *color.Color
}

// NewHumanFormatter creates a human-readable formatter writing to w.
func NewHumanFormatter(w io.Writer) *HumanFormatter {
	return &HumanFormatter{
		writer:   w,
		moved:    color.New(color.FgCyan),
		modified: color.New(color.FgYellow),
		added:    color.New(color.FgGreen),
		deleted:  color.New(color.FgRed),
		warn:     color.New(color.FgYellow),
	}
}

// BuildSummary reports the outcome of a snapshot build
func (f *HumanFormatter) BuildSummary(info BuildInfo) error {
	fmt.Fprintf(f.writer, "Snapshot of %s: %d files, %s in %s\n",
		info.Root, info.Files, formatBytes(info.TotalBytes),
		info.Duration.Round(time.Millisecond))
	return nil
}

// Analysis presents zero-size files and duplicate groups
func (f *HumanFormatter) Analysis(result models.AnalysisResult) error {
	if result.Clean() {
		fmt.Fprintln(f.writer, "Nothing to report: no zero-size files, no duplicates.")
		return nil
	}

	if len(result.ZeroSize) > 0 {
		f.warn.Fprintf(f.writer, "Zero-size files (%d):\n", len(result.ZeroSize))
		for _, rec := range result.ZeroSize {
			fmt.Fprintf(f.writer, "  %s\n", rec.Path)
		}
	}

	if len(result.Duplicates) > 0 {
		f.warn.Fprintf(f.writer, "Duplicate content (%d groups):\n", len(result.Duplicates))
		for i, group := range result.Duplicates {
			fmt.Fprintf(f.writer, "  group %d (%s, %s):\n",
				i+1, formatBytes(group[0].Size), group[0].Hash)
			for _, rec := range group {
				fmt.Fprintf(f.writer, "    %s\n", rec.Path)
			}
		}
	}

	return nil
}

// Comparison presents the classification of two reports' differences
func (f *HumanFormatter) Comparison(result models.ComparisonResult) error {
	if result.Identical() {
		fmt.Fprintln(f.writer, "Reports are identical.")
		return nil
	}

	for _, p := range result.Moved {
		f.moved.Fprintf(f.writer, "moved     ")
		fmt.Fprintf(f.writer, "%s -> %s\n", p.Old.Path, p.New.Path)
	}
	for _, p := range result.Modified {
		f.modified.Fprintf(f.writer, "modified  ")
		fmt.Fprintf(f.writer, "%s (%s -> %s)\n",
			p.Old.Path, formatBytes(p.Old.Size), formatBytes(p.New.Size))
	}
	for _, rec := range result.Added {
		f.added.Fprintf(f.writer, "added     ")
		fmt.Fprintf(f.writer, "%s (%s)\n", rec.Path, formatBytes(rec.Size))
	}
	for _, rec := range result.Deleted {
		f.deleted.Fprintf(f.writer, "deleted   ")
		fmt.Fprintf(f.writer, "%s (%s)\n", rec.Path, formatBytes(rec.Size))
	}

	fmt.Fprintf(f.writer, "\n%d moved, %d modified, %d added, %d deleted\n",
		len(result.Moved), len(result.Modified), len(result.Added), len(result.Deleted))

	return nil
}

// InvalidNames presents filenames rejected by the grammar gate
func (f *HumanFormatter) InvalidNames(names []string) error {
	if len(names) == 0 {
		fmt.Fprintln(f.writer, "All filenames match the naming grammar.")
		return nil
	}

	f.deleted.Fprintf(f.writer, "Invalid filenames (%d):\n", len(names))
	for _, name := range names {
		fmt.Fprintf(f.writer, "  %s\n", name)
	}
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// formatBytes formats a byte count in human-readable units
func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
