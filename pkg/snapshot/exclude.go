package snapshot

import (
	"path/filepath"
	"strings"
)

// shouldExclude checks if a path should be excluded based on the given patterns
// Patterns support:
//   - Simple glob patterns: *.tmp, *.log
//   - Directory patterns: .git/, node_modules/
//   - Path patterns: build/*, **/test/*
func shouldExclude(relativePath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	// Normalize path separators for cross-platform support
	normalizedPath := filepath.ToSlash(relativePath)
	baseName := filepath.Base(relativePath)

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}

		normalizedPattern := filepath.ToSlash(pattern)

		// Directory pattern (ends with /): excludes everything below it
		if strings.HasSuffix(normalizedPattern, "/") {
			dirPattern := strings.TrimSuffix(normalizedPattern, "/")
			if strings.HasPrefix(normalizedPath, dirPattern+"/") ||
				normalizedPath == dirPattern ||
				strings.Contains(normalizedPath, "/"+dirPattern+"/") {
				return true
			}
			continue
		}

		// **/pattern matches at any depth
		if strings.Contains(normalizedPattern, "**") {
			parts := strings.Split(normalizedPattern, "**/")
			if len(parts) == 2 && parts[0] == "" {
				suffix := parts[1]
				if matchGlob(baseName, suffix) {
					return true
				}
				if strings.HasSuffix(normalizedPath, "/"+suffix) || normalizedPath == suffix {
					return true
				}
				if matchGlobPath(normalizedPath, suffix) {
					return true
				}
			}
			continue
		}

		if strings.Contains(normalizedPattern, "/") {
			// Pattern applies to full path
			matched, _ := filepath.Match(normalizedPattern, normalizedPath)
			if matched {
				return true
			}
			if strings.HasSuffix(normalizedPath, normalizedPattern) {
				return true
			}
		} else {
			// Pattern applies to basename only
			matched, _ := filepath.Match(normalizedPattern, baseName)
			if matched {
				return true
			}
		}
	}

	return false
}

// matchGlob performs simple glob matching on a single path component
func matchGlob(name, pattern string) bool {
	matched, _ := filepath.Match(pattern, name)
	return matched
}

// matchGlobPath checks if any component of the path matches the pattern
func matchGlobPath(path, pattern string) bool {
	parts := strings.Split(path, "/")
	for _, part := range parts {
		if matchGlob(part, pattern) {
			return true
		}
	}
	return false
}
