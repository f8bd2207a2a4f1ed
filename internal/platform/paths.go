package platform

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Normalize converts a platform-native relative path to its canonical,
// platform-independent form: every native directory separator becomes a
// forward slash. Nothing else changes (no case folding, no trimming, no
// cleaning). Two paths denote the same logical location iff their normalized
// forms are identical.
//
// The result is a comparison and persistence format only; native filesystem
// access must keep using the native path.
func Normalize(nativeRelPath string) string {
	return filepath.ToSlash(nativeRelPath)
}

// Denormalize converts a canonical path back to the native separator of the
// current platform.
func Denormalize(normalizedPath string) string {
	return filepath.FromSlash(normalizedPath)
}

// IsUNCPath checks if a path is a UNC path (Windows network share)
func IsUNCPath(path string) bool {
	if runtime.GOOS != "windows" {
		return false
	}
	return strings.HasPrefix(path, "\\\\") || strings.HasPrefix(path, "//")
}

// IsAbsolute checks if a path is absolute
func IsAbsolute(path string) bool {
	if IsUNCPath(path) {
		return true
	}
	return filepath.IsAbs(path)
}
