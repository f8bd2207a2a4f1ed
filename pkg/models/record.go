package models

import (
	"fmt"
	"sort"
)

// FileRecord represents one file's identity at the moment a report was built.
// The record is immutable: two records describe the same file state iff all
// three fields are equal.
type FileRecord struct {
	// Path is the normalized relative path (forward slashes on every platform).
	// It is a comparison and persistence format, never used for native access.
	Path string

	// Size in bytes
	Size uint64

	// Hash is the lowercase hex SHA-1 of the file content
	Hash string
}

// Fingerprint is the (size, hash) pair used as a content-identity key,
// independent of file location.
type Fingerprint struct {
	Size uint64
	Hash string
}

// Fingerprint returns the content-identity key of the record.
func (r FileRecord) Fingerprint() Fingerprint {
	return Fingerprint{Size: r.Size, Hash: r.Hash}
}

// Less defines the canonical order of records: by path, then size, then hash.
// The order carries no semantic meaning; it exists so that set iteration and
// matching tie-breaks are deterministic and reproducible.
func (r FileRecord) Less(other FileRecord) bool {
	if r.Path != other.Path {
		return r.Path < other.Path
	}
	if r.Size != other.Size {
		return r.Size < other.Size
	}
	return r.Hash < other.Hash
}

// String implements fmt.Stringer for logs and error messages.
func (r FileRecord) String() string {
	return fmt.Sprintf("%s (%d bytes, %s)", r.Path, r.Size, r.Hash)
}

// Report is the set of file records describing one snapshot of a directory
// tree. Records are deduplicated by full-field equality and insertion order is
// irrelevant. A report has no relation to any other report except through
// explicit comparison.
type Report struct {
	records map[FileRecord]struct{}
}

// NewReport creates an empty report.
func NewReport(records ...FileRecord) *Report {
	r := &Report{records: make(map[FileRecord]struct{}, len(records))}
	for _, rec := range records {
		r.Add(rec)
	}
	return r
}

// Add inserts a record into the report. Adding an identical record twice is a
// no-op (set semantics).
func (r *Report) Add(rec FileRecord) {
	r.records[rec] = struct{}{}
}

// Len returns the number of records in the report.
func (r *Report) Len() int {
	return len(r.records)
}

// Contains reports whether an identical record is present.
func (r *Report) Contains(rec FileRecord) bool {
	_, ok := r.records[rec]
	return ok
}

// Records returns the records in canonical order. The returned slice is a
// copy; mutating it does not affect the report.
func (r *Report) Records() []FileRecord {
	out := make([]FileRecord, 0, len(r.records))
	for rec := range r.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// TotalSize returns the sum of all record sizes in bytes.
func (r *Report) TotalSize() uint64 {
	var total uint64
	for rec := range r.records {
		total += rec.Size
	}
	return total
}

// Equal reports whether two reports contain exactly the same records.
func (r *Report) Equal(other *Report) bool {
	if len(r.records) != len(other.records) {
		return false
	}
	for rec := range r.records {
		if _, ok := other.records[rec]; !ok {
			return false
		}
	}
	return true
}
