package models

// AnalysisResult holds the findings of inspecting a single report. It is
// derived, never persisted, and recomputed on demand.
type AnalysisResult struct {
	// ZeroSize lists every record with a size of zero bytes, in canonical order.
	ZeroSize []FileRecord

	// Duplicates groups records with size > 0 that share an identical
	// (size, hash) fingerprint. Every group has two or more members, groups
	// are disjoint, and members are in canonical order. Zero-size files are
	// deliberately excluded: every empty file trivially shares the hash of
	// empty input, which is not actionable and is reported once under
	// ZeroSize instead.
	Duplicates [][]FileRecord
}

// Clean reports whether the analysis found nothing to flag.
func (a AnalysisResult) Clean() bool {
	return len(a.ZeroSize) == 0 && len(a.Duplicates) == 0
}
