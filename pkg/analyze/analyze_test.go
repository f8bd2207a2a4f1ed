package analyze

import (
	"testing"

	"github.com/sdejongh/dirsnap/pkg/models"
)

func rec(path string, size uint64, hash string) models.FileRecord {
	return models.FileRecord{Path: path, Size: size, Hash: hash}
}

func TestAnalyze(t *testing.T) {
	t.Run("ZeroSizeFiles", func(t *testing.T) {
		report := models.NewReport(
			rec("empty1.txt", 0, "e"),
			rec("empty2.txt", 0, "e"),
			rec("full.txt", 10, "f"),
		)

		result := Analyze(report)

		if len(result.ZeroSize) != 2 {
			t.Fatalf("zeroSize = %v, want 2 records", result.ZeroSize)
		}
		if result.ZeroSize[0].Path != "empty1.txt" || result.ZeroSize[1].Path != "empty2.txt" {
			t.Errorf("zeroSize = %v, want canonical order [empty1.txt empty2.txt]", result.ZeroSize)
		}
	})

	t.Run("ZeroSizeExcludedFromDuplicates", func(t *testing.T) {
		// Empty files all share the hash of empty input; reporting them as
		// duplicates would be noise, they belong under ZeroSize only.
		report := models.NewReport(
			rec("empty1.txt", 0, "e"),
			rec("empty2.txt", 0, "e"),
			rec("empty3.txt", 0, "e"),
		)

		result := Analyze(report)

		if len(result.Duplicates) != 0 {
			t.Errorf("duplicates = %v, want none for zero-size files", result.Duplicates)
		}
		if len(result.ZeroSize) != 3 {
			t.Errorf("zeroSize = %v, want all 3 empty files", result.ZeroSize)
		}
	})

	t.Run("DuplicateGroups", func(t *testing.T) {
		report := models.NewReport(
			rec("a/one.bin", 100, "h1"),
			rec("b/two.bin", 100, "h1"),
			rec("c/three.bin", 100, "h1"),
			rec("d/solo.bin", 100, "h2"),
			rec("e/other.bin", 200, "h3"),
			rec("f/other2.bin", 200, "h3"),
		)

		result := Analyze(report)

		if len(result.Duplicates) != 2 {
			t.Fatalf("duplicates = %v, want 2 groups", result.Duplicates)
		}
		for _, group := range result.Duplicates {
			if len(group) < 2 {
				t.Errorf("group %v has fewer than 2 members", group)
			}
			for _, member := range group {
				if member.Size == 0 {
					t.Errorf("zero-size record %v in duplicate group", member)
				}
				if member.Fingerprint() != group[0].Fingerprint() {
					t.Errorf("group member %v does not share the group fingerprint", member)
				}
			}
		}
		// Deterministic group order by first member
		if result.Duplicates[0][0].Path != "a/one.bin" {
			t.Errorf("first group starts with %s, want a/one.bin", result.Duplicates[0][0].Path)
		}
		if len(result.Duplicates[0]) != 3 {
			t.Errorf("first group = %v, want 3 members", result.Duplicates[0])
		}
	})

	t.Run("SameHashDifferentSizeNotGrouped", func(t *testing.T) {
		report := models.NewReport(
			rec("a.bin", 100, "h"),
			rec("b.bin", 200, "h"),
		)

		result := Analyze(report)
		if len(result.Duplicates) != 0 {
			t.Errorf("duplicates = %v, records with different sizes must not group", result.Duplicates)
		}
	})

	t.Run("CleanReport", func(t *testing.T) {
		report := models.NewReport(
			rec("a.txt", 1, "h1"),
			rec("b.txt", 2, "h2"),
		)

		if result := Analyze(report); !result.Clean() {
			t.Errorf("expected clean result, got %+v", result)
		}
	})

	t.Run("EmptyReport", func(t *testing.T) {
		if result := Analyze(models.NewReport()); !result.Clean() {
			t.Errorf("expected clean result for empty report, got %+v", result)
		}
	})
}
