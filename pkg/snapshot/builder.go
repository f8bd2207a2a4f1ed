package snapshot

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sdejongh/dirsnap/internal/platform"
	"github.com/sdejongh/dirsnap/pkg/fingerprint"
	"github.com/sdejongh/dirsnap/pkg/logging"
	"github.com/sdejongh/dirsnap/pkg/models"
	"github.com/sdejongh/dirsnap/pkg/storage"
)

// ProgressFunc is invoked once per fingerprinted file. Calls come from worker
// goroutines in completion order, which is unspecified; callers must not rely
// on any ordering.
type ProgressFunc func(relPath string, size uint64)

// Builder assembles a report from a set of relative paths. Fingerprinting is
// an embarrassingly parallel map over the file set, so it fans out across a
// bounded worker group; the resulting report is identical regardless of
// completion order because a report is an order-independent set.
type Builder struct {
	fingerprinter *fingerprint.Fingerprinter
	maxWorkers    int
	progress      ProgressFunc
	logger        logging.Logger
}

// NewBuilder creates a builder running at most maxWorkers concurrent
// fingerprint operations.
func NewBuilder(fingerprinter *fingerprint.Fingerprinter, maxWorkers int) *Builder {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Builder{
		fingerprinter: fingerprinter,
		maxWorkers:    maxWorkers,
		logger:        logging.NewNullLogger(),
	}
}

// SetProgress sets the per-file progress callback.
func (b *Builder) SetProgress(fn ProgressFunc) {
	b.progress = fn
}

// SetLogger sets the logger used during builds.
func (b *Builder) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// Build fingerprints every path in relPaths and returns the resulting report.
// The build is atomic: the first failing file cancels outstanding work and no
// partial report is returned.
func (b *Builder) Build(ctx context.Context, backend storage.Backend, relPaths []string) (*models.Report, error) {
	report := models.NewReport()
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.maxWorkers)

	for _, relPath := range relPaths {
		relPath := relPath
		g.Go(func() error {
			size, hash, err := b.fingerprinter.File(ctx, backend, relPath)
			if err != nil {
				return fmt.Errorf("failed to fingerprint %s: %w", relPath, err)
			}

			record := models.FileRecord{
				Path: platform.Normalize(relPath),
				Size: size,
				Hash: hash,
			}

			mu.Lock()
			report.Add(record)
			mu.Unlock()

			b.logger.Debug(ctx, "fingerprinted file", logging.Fields{
				"path": record.Path,
				"size": record.Size,
				"hash": record.Hash,
			})

			if b.progress != nil {
				b.progress(relPath, size)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}

// Scan enumerates the backend and returns the files to include in a report,
// with exclude patterns applied, in discovery (lexicographic) order.
// Enumeration failures abort the whole scan.
func Scan(ctx context.Context, backend storage.Backend, excludePatterns []string) ([]storage.FileInfo, error) {
	files, err := backend.List(ctx, "")
	if err != nil {
		return nil, err
	}

	if len(excludePatterns) == 0 {
		return files, nil
	}

	kept := make([]storage.FileInfo, 0, len(files))
	for _, f := range files {
		if !shouldExclude(f.RelativePath, excludePatterns) {
			kept = append(kept, f)
		}
	}
	return kept, nil
}
