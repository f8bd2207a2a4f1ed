// Package reconcile classifies the differences between two reports as moved,
// modified, added or deleted files.
package reconcile

import (
	"github.com/sdejongh/dirsnap/pkg/models"
)

// Compare reconciles two reports. It applies the key-matching primitive in
// three phases against the residual records of each side, each phase with a
// weaker key than the last:
//
//  1. full identity (path, size, hash): files that did not change at all are
//     discarded and appear in no category
//  2. fingerprint (size, hash): identical content at a different path is Moved
//  3. path: same location with different content is Modified
//
// Old records left over are Deleted, new records left over are Added.
//
// Exact matches go first so an unchanged file can never surface in a diff
// category. Content identity is then the stronger remaining signal: a file
// both moved and mutated cannot be told apart from the inverse, so the engine
// deterministically favors the moved interpretation whenever content matches
// exactly and falls back to modified otherwise.
//
// When identical content occurs several times on both sides, phase 2 pairs
// occurrences in canonical-order sequence. Which old path lands with which new
// path is the primitive's FIFO tie-break, not a reconstruction of the actual
// rename the user performed.
func Compare(oldReport, newReport *models.Report) models.ComparisonResult {
	oldRest := oldReport.Records()
	newRest := newReport.Records()

	// Phase 1: discard exact matches
	_, oldRest, newRest = match(
		func(r models.FileRecord) models.FileRecord { return r },
		oldRest, newRest)

	// Phase 2: identical content elsewhere
	movedPairs, oldRest, newRest := match(
		func(r models.FileRecord) models.Fingerprint { return r.Fingerprint() },
		oldRest, newRest)

	// Phase 3: same path, changed content
	modifiedPairs, oldRest, newRest := match(
		func(r models.FileRecord) string { return r.Path },
		oldRest, newRest)

	result := models.ComparisonResult{
		Added:   newRest,
		Deleted: oldRest,
	}
	for _, p := range movedPairs {
		result.Moved = append(result.Moved, models.Pair{Old: p.x, New: p.y})
	}
	for _, p := range modifiedPairs {
		result.Modified = append(result.Modified, models.Pair{Old: p.x, New: p.y})
	}

	return result
}
