package models

// Pair couples a record from the old report with its counterpart in the new
// report.
type Pair struct {
	Old FileRecord
	New FileRecord
}

// ComparisonResult classifies the differences between two reports. Every
// record of either input appears in at most one category; records that did
// not change at all are implicit and appear nowhere.
type ComparisonResult struct {
	// Moved pairs records whose content is identical but whose path changed.
	Moved []Pair

	// Modified pairs records sharing a path but differing in content.
	Modified []Pair

	// Added lists records present only in the new report.
	Added []FileRecord

	// Deleted lists records present only in the old report.
	Deleted []FileRecord
}

// Identical reports whether the two compared reports contained exactly the
// same records.
func (c ComparisonResult) Identical() bool {
	return len(c.Moved) == 0 && len(c.Modified) == 0 &&
		len(c.Added) == 0 && len(c.Deleted) == 0
}
