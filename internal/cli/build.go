package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sdejongh/dirsnap/pkg/config"
	"github.com/sdejongh/dirsnap/pkg/fingerprint"
	"github.com/sdejongh/dirsnap/pkg/logging"
	"github.com/sdejongh/dirsnap/pkg/models"
	"github.com/sdejongh/dirsnap/pkg/namecheck"
	"github.com/sdejongh/dirsnap/pkg/output"
	"github.com/sdejongh/dirsnap/pkg/ratelimit"
	"github.com/sdejongh/dirsnap/pkg/snapshot"
	"github.com/sdejongh/dirsnap/pkg/storage"
)

// errInvalidNames aborts a build before fingerprinting when the grammar gate
// rejects filenames; the offending names have already been presented.
var errInvalidNames = fmt.Errorf("filename validation failed")

// buildFromDir enumerates sourceDir, optionally runs the filename grammar
// gate, and fingerprints the tree into a report. The build is atomic: any
// fingerprinting failure cancels outstanding work and no report is returned.
func buildFromDir(
	ctx context.Context,
	cfg *config.Config,
	logger logging.Logger,
	formatter output.Formatter,
	operationID string,
	sourceDir string,
	checkNames bool,
) (*models.Report, output.BuildInfo, error) {
	var info output.BuildInfo

	backend, err := storage.NewLocal(sourceDir)
	if err != nil {
		return nil, info, fmt.Errorf("failed to open source directory: %w", err)
	}
	defer backend.Close()

	startTime := time.Now()

	files, err := snapshot.Scan(ctx, backend, cfg.Exclude)
	if err != nil {
		return nil, info, fmt.Errorf("failed to enumerate %s: %w", sourceDir, err)
	}

	logger.Info(ctx, "enumerated tree", logging.Fields{
		"root":  backend.Root(),
		"files": len(files),
	})

	// Optional pre-check: when any base name fails the grammar, reporting
	// stops before fingerprinting and no partial report is built.
	if checkNames || cfg.Validation.Enabled {
		names := make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, filepath.Base(f.RelativePath))
		}
		if invalid := namecheck.CheckAll(names); len(invalid) > 0 {
			formatter.InvalidNames(invalid)
			logger.Warn(ctx, "filename validation failed", logging.Fields{
				"invalid": len(invalid),
			})
			return nil, info, errInvalidNames
		}
	}

	var totalBytes uint64
	relPaths := make([]string, 0, len(files))
	for _, f := range files {
		relPaths = append(relPaths, f.RelativePath)
		totalBytes += uint64(f.Size)
	}

	fp := fingerprint.New(cfg.Performance.BufferSize)

	// A single shared limiter caps aggregate read throughput across workers
	if limiter := ratelimit.NewLimiter(cfg.Performance.BandwidthLimit); limiter != nil {
		fp.SetReaderWrapper(func(rc io.ReadCloser) io.ReadCloser {
			return ratelimit.NewReadCloser(ctx, rc, limiter)
		})
	}

	builder := snapshot.NewBuilder(fp, cfg.Performance.MaxWorkers)
	builder.SetLogger(logger)

	var bar *output.Progress
	if showProgress(cfg) {
		bar = output.NewProgress(os.Stderr, totalBytes)
		builder.SetProgress(func(relPath string, size uint64) {
			bar.Add(size)
		})
	}

	report, err := builder.Build(ctx, backend, relPaths)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		logger.Error(ctx, "report build failed", err, nil)
		return nil, info, err
	}

	info = output.BuildInfo{
		OperationID: operationID,
		Root:        backend.Root(),
		Files:       report.Len(),
		TotalBytes:  report.TotalSize(),
		Duration:    time.Since(startTime),
	}

	logger.Info(ctx, "report built", logging.Fields{
		"files":       info.Files,
		"total_bytes": info.TotalBytes,
		"duration_ms": info.Duration.Milliseconds(),
	})

	return report, info, nil
}
