package storage

import (
	"context"
	"io"
	"time"
)

// FileInfo represents metadata about a regular file
type FileInfo struct {
	Path         string
	RelativePath string
	Size         int64
	ModTime      time.Time
}

// Backend defines the read-only storage interface the fingerprinting engine
// operates against. Implementations include the local filesystem; keeping the
// interface narrow makes the engine testable against fakes.
type Backend interface {
	// List returns every regular file under path recursively, relative paths
	// in platform-native form, discovered in lexicographic order. Directories
	// are traversed but never recorded; symlinks and special files are
	// skipped. A directory that cannot be listed fails the whole enumeration.
	List(ctx context.Context, path string) ([]FileInfo, error)

	// Read opens a file for reading
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// Stat returns file metadata
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// Close releases any resources held by the backend
	Close() error
}
