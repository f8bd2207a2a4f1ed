// Package analyze inspects a single report for zero-size files and groups of
// files sharing identical content.
package analyze

import (
	"sort"

	"github.com/sdejongh/dirsnap/pkg/models"
)

// Analyze flags zero-size records and duplicate-content groups within one
// report. Pure function over an in-memory report; it never fails.
func Analyze(report *models.Report) models.AnalysisResult {
	var result models.AnalysisResult

	groups := make(map[models.Fingerprint][]models.FileRecord)

	// Records() is canonical order, so group members stay sorted
	for _, rec := range report.Records() {
		if rec.Size == 0 {
			result.ZeroSize = append(result.ZeroSize, rec)
			continue
		}
		key := rec.Fingerprint()
		groups[key] = append(groups[key], rec)
	}

	for _, group := range groups {
		if len(group) >= 2 {
			result.Duplicates = append(result.Duplicates, group)
		}
	}

	// Deterministic group order: by first member
	sort.Slice(result.Duplicates, func(i, j int) bool {
		return result.Duplicates[i][0].Less(result.Duplicates[j][0])
	})

	return result
}
