package fingerprint

import (
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sdejongh/dirsnap/pkg/storage"
)

// ReaderWrapper wraps a reader before hashing, e.g. for rate limiting.
type ReaderWrapper func(io.ReadCloser) io.ReadCloser

// Progress reporting thresholds
const (
	progressReportInterval = 50 * time.Millisecond // Minimum time between reports
	progressReportBytes    = 64 * 1024             // Minimum bytes between reports (64KB)
)

// Fingerprinter computes the content identity of files: byte length plus a
// streaming SHA-1 digest. SHA-1 is used purely as a content fingerprint, not
// for any security property; colliding files are treated as identical content.
type Fingerprinter struct {
	bufferSize     int
	bufferPool     *sync.Pool
	progressReport func(path string, current, total int64) // Optional progress callback
	readerWrapper  ReaderWrapper                           // Optional reader wrapper (e.g., for rate limiting)
}

// New creates a fingerprinter with the given read buffer size.
func New(bufferSize int) *Fingerprinter {
	if bufferSize < 4096 {
		bufferSize = 4096
	}
	return &Fingerprinter{
		bufferSize: bufferSize,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, bufferSize)
				return &buf
			},
		},
	}
}

// SetProgressCallback sets a callback for progress reporting during hashing.
func (f *Fingerprinter) SetProgressCallback(callback func(path string, current, total int64)) {
	f.progressReport = callback
}

// SetReaderWrapper sets a function to wrap readers (e.g., for rate limiting)
func (f *Fingerprinter) SetReaderWrapper(wrapper ReaderWrapper) {
	f.readerWrapper = wrapper
}

// File streams the file at path through SHA-1 and returns its byte length and
// lowercase hex digest. The size is counted during the same pass as the hash,
// so both always describe the same bytes. Any open or read failure aborts with
// no partial result.
func (f *Fingerprinter) File(ctx context.Context, backend storage.Backend, path string) (uint64, string, error) {
	// Stat first so the progress callback can report a total
	info, err := backend.Stat(ctx, path)
	if err != nil {
		return 0, "", fmt.Errorf("failed to stat file: %w", err)
	}
	fileSize := info.Size

	reader, err := backend.Read(ctx, path)
	if err != nil {
		return 0, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer reader.Close()

	if f.readerWrapper != nil {
		reader = f.readerWrapper(reader)
	}

	hasher := sha1.New()

	// Get buffer from pool
	bufPtr := f.bufferPool.Get().(*[]byte)
	buffer := *bufPtr
	defer f.bufferPool.Put(bufPtr)

	var totalRead int64
	var lastReported int64
	lastReportTime := time.Now()

	for {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return 0, "", ctx.Err()
		default:
		}

		n, err := reader.Read(buffer)
		if n > 0 {
			hasher.Write(buffer[:n])
			totalRead += int64(n)

			// Report progress if callback is set (with throttling)
			if f.progressReport != nil {
				bytesSinceLastReport := totalRead - lastReported
				timeSinceLastReport := time.Since(lastReportTime)
				shouldReport := bytesSinceLastReport >= progressReportBytes ||
					timeSinceLastReport >= progressReportInterval

				if shouldReport {
					f.progressReport(path, totalRead, fileSize)
					lastReported = totalRead
					lastReportTime = time.Now()
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, "", fmt.Errorf("failed to read file: %w", err)
		}
	}

	// Ensure final progress report shows 100% completion
	if f.progressReport != nil && totalRead > lastReported {
		f.progressReport(path, totalRead, fileSize)
	}

	return uint64(totalRead), fmt.Sprintf("%x", hasher.Sum(nil)), nil
}
