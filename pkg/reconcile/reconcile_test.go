package reconcile

import (
	"testing"

	"github.com/sdejongh/dirsnap/pkg/models"
)

func rec(path string, size uint64, hash string) models.FileRecord {
	return models.FileRecord{Path: path, Size: size, Hash: hash}
}

func TestCompare(t *testing.T) {
	t.Run("ClassifiesAllCategories", func(t *testing.T) {
		oldReport := models.NewReport(
			rec("dir/cat.png", 920, "x"),
			rec("dir/dog.png", 750, "y"),
			rec("dir/info.txt", 20, "a"),
			rec("dir/pig.png", 800, "z"),
		)
		newReport := models.NewReport(
			rec("animal.png", 920, "x"),
			rec("dog.png", 750, "y"),
			rec("dir/cat.png", 920, "x"),
			rec("dir/info.txt", 80, "b"),
		)

		result := Compare(oldReport, newReport)

		if len(result.Moved) != 1 {
			t.Fatalf("moved = %v, want 1 pair", result.Moved)
		}
		if result.Moved[0].Old != rec("dir/dog.png", 750, "y") ||
			result.Moved[0].New != rec("dog.png", 750, "y") {
			t.Errorf("moved = %v, want dir/dog.png -> dog.png", result.Moved[0])
		}

		if len(result.Modified) != 1 {
			t.Fatalf("modified = %v, want 1 pair", result.Modified)
		}
		if result.Modified[0].Old != rec("dir/info.txt", 20, "a") ||
			result.Modified[0].New != rec("dir/info.txt", 80, "b") {
			t.Errorf("modified = %v, want dir/info.txt 20->80", result.Modified[0])
		}

		if len(result.Added) != 1 || result.Added[0] != rec("animal.png", 920, "x") {
			t.Errorf("added = %v, want [animal.png]", result.Added)
		}
		if len(result.Deleted) != 1 || result.Deleted[0] != rec("dir/pig.png", 800, "z") {
			t.Errorf("deleted = %v, want [dir/pig.png]", result.Deleted)
		}
	})

	t.Run("ExactMatchPrecedence", func(t *testing.T) {
		// dir/cat.png is byte- and path-identical in both reports even though
		// its content also appears elsewhere; it must surface nowhere.
		oldReport := models.NewReport(
			rec("dir/cat.png", 920, "x"),
		)
		newReport := models.NewReport(
			rec("dir/cat.png", 920, "x"),
			rec("copy.png", 920, "x"),
		)

		result := Compare(oldReport, newReport)

		if len(result.Moved) != 0 || len(result.Modified) != 0 || len(result.Deleted) != 0 {
			t.Errorf("unchanged file leaked into a diff category: %+v", result)
		}
		if len(result.Added) != 1 || result.Added[0] != rec("copy.png", 920, "x") {
			t.Errorf("added = %v, want [copy.png]", result.Added)
		}
	})

	t.Run("IdenticalReports", func(t *testing.T) {
		report := models.NewReport(
			rec("a.txt", 1, "h1"),
			rec("b.txt", 2, "h2"),
		)
		other := models.NewReport(
			rec("a.txt", 1, "h1"),
			rec("b.txt", 2, "h2"),
		)

		result := Compare(report, other)
		if !result.Identical() {
			t.Errorf("identical reports should yield an identical result, got %+v", result)
		}
	})

	t.Run("MovePreferredOverModify", func(t *testing.T) {
		// Content of old a.txt reappears at b.txt while a.txt gets new
		// content: the engine favors the moved interpretation for the exact
		// content match, then pairs a.txt's old and new state as modified.
		oldReport := models.NewReport(rec("a.txt", 10, "old"))
		newReport := models.NewReport(
			rec("b.txt", 10, "old"),
			rec("a.txt", 12, "new"),
		)

		result := Compare(oldReport, newReport)

		if len(result.Moved) != 1 ||
			result.Moved[0].Old != rec("a.txt", 10, "old") ||
			result.Moved[0].New != rec("b.txt", 10, "old") {
			t.Errorf("moved = %v, want a.txt -> b.txt", result.Moved)
		}
		if len(result.Modified) != 0 {
			t.Errorf("modified = %v, want none (old a.txt was consumed by the move)", result.Modified)
		}
		if len(result.Added) != 1 || result.Added[0] != rec("a.txt", 12, "new") {
			t.Errorf("added = %v, want [a.txt new content]", result.Added)
		}
	})

	t.Run("DuplicateContentFIFOPairing", func(t *testing.T) {
		// Two copies of the same content renamed on both sides: pairing
		// follows canonical order, not the user's actual renames.
		oldReport := models.NewReport(
			rec("old1.bin", 5, "h"),
			rec("old2.bin", 5, "h"),
		)
		newReport := models.NewReport(
			rec("new1.bin", 5, "h"),
			rec("new2.bin", 5, "h"),
		)

		result := Compare(oldReport, newReport)

		if len(result.Moved) != 2 {
			t.Fatalf("moved = %v, want 2 pairs", result.Moved)
		}
		if result.Moved[0].Old.Path != "old1.bin" || result.Moved[0].New.Path != "new1.bin" {
			t.Errorf("first pair = %v, want old1.bin -> new1.bin", result.Moved[0])
		}
		if result.Moved[1].Old.Path != "old2.bin" || result.Moved[1].New.Path != "new2.bin" {
			t.Errorf("second pair = %v, want old2.bin -> new2.bin", result.Moved[1])
		}
	})

	t.Run("PartitionIsCompleteAndDisjoint", func(t *testing.T) {
		oldReport := models.NewReport(
			rec("same.txt", 1, "s"),
			rec("moved.txt", 2, "m"),
			rec("changed.txt", 3, "c1"),
			rec("gone.txt", 4, "g"),
		)
		newReport := models.NewReport(
			rec("same.txt", 1, "s"),
			rec("relocated/moved.txt", 2, "m"),
			rec("changed.txt", 5, "c2"),
			rec("fresh.txt", 6, "f"),
		)

		result := Compare(oldReport, newReport)

		// Every old record appears exactly once across unchanged (implicit),
		// moved.Old, modified.Old and deleted.
		oldSeen := make(map[models.FileRecord]int)
		for _, p := range result.Moved {
			oldSeen[p.Old]++
		}
		for _, p := range result.Modified {
			oldSeen[p.Old]++
		}
		for _, r := range result.Deleted {
			oldSeen[r]++
		}
		unchangedOld := 0
		for _, r := range oldReport.Records() {
			switch oldSeen[r] {
			case 0:
				unchangedOld++
			case 1:
			default:
				t.Errorf("old record %v appears %d times", r, oldSeen[r])
			}
		}
		if reported := len(result.Moved) + len(result.Modified) + len(result.Deleted); unchangedOld+reported != oldReport.Len() {
			t.Errorf("old records partition incomplete: %d unchanged + %d reported != %d total",
				unchangedOld, reported, oldReport.Len())
		}

		// Likewise for new records.
		newSeen := make(map[models.FileRecord]int)
		for _, p := range result.Moved {
			newSeen[p.New]++
		}
		for _, p := range result.Modified {
			newSeen[p.New]++
		}
		for _, r := range result.Added {
			newSeen[r]++
		}
		unchangedNew := 0
		for _, r := range newReport.Records() {
			switch newSeen[r] {
			case 0:
				unchangedNew++
			case 1:
			default:
				t.Errorf("new record %v appears %d times", r, newSeen[r])
			}
		}
		if reported := len(result.Moved) + len(result.Modified) + len(result.Added); unchangedNew+reported != newReport.Len() {
			t.Errorf("new records partition incomplete: %d unchanged + %d reported != %d total",
				unchangedNew, reported, newReport.Len())
		}
	})

	t.Run("EmptyReports", func(t *testing.T) {
		result := Compare(models.NewReport(), models.NewReport())
		if !result.Identical() {
			t.Errorf("comparing empty reports should be identical, got %+v", result)
		}
	})
}
