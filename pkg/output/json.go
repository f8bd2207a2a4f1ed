package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sdejongh/dirsnap/pkg/models"
)

// JSONFormatter formats results as JSON documents for automation and
// scripting. Each method emits one self-contained document.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a JSON formatter writing to w.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

type jsonRecord struct {
	Path string `json:"path"`
	Size uint64 `json:"size"`
	Hash string `json:"hash"`
}

type jsonPair struct {
	Old jsonRecord `json:"old"`
	New jsonRecord `json:"new"`
}

type jsonBuildSummary struct {
	Type        string `json:"type"`
	Timestamp   string `json:"timestamp"`
	OperationID string `json:"operation_id,omitempty"`
	Root        string `json:"root"`
	Files       int    `json:"files"`
	TotalBytes  uint64 `json:"total_bytes"`
	DurationMs  int64  `json:"duration_ms"`
}

type jsonAnalysis struct {
	Type       string         `json:"type"`
	Timestamp  string         `json:"timestamp"`
	ZeroSize   []jsonRecord   `json:"zero_size"`
	Duplicates [][]jsonRecord `json:"duplicates"`
}

type jsonComparison struct {
	Type      string       `json:"type"`
	Timestamp string       `json:"timestamp"`
	Identical bool         `json:"identical"`
	Moved     []jsonPair   `json:"moved"`
	Modified  []jsonPair   `json:"modified"`
	Added     []jsonRecord `json:"added"`
	Deleted   []jsonRecord `json:"deleted"`
}

type jsonInvalidNames struct {
	Type      string   `json:"type"`
	Timestamp string   `json:"timestamp"`
	Invalid   []string `json:"invalid"`
}

func toJSONRecord(rec models.FileRecord) jsonRecord {
	return jsonRecord{Path: rec.Path, Size: rec.Size, Hash: rec.Hash}
}

func toJSONRecords(recs []models.FileRecord) []jsonRecord {
	out := make([]jsonRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toJSONRecord(rec))
	}
	return out
}

func toJSONPairs(pairs []models.Pair) []jsonPair {
	out := make([]jsonPair, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, jsonPair{Old: toJSONRecord(p.Old), New: toJSONRecord(p.New)})
	}
	return out
}

func (f *JSONFormatter) emit(v any) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// BuildSummary reports the outcome of a snapshot build
func (f *JSONFormatter) BuildSummary(info BuildInfo) error {
	return f.emit(jsonBuildSummary{
		Type:        "build_summary",
		Timestamp:   timestamp(),
		OperationID: info.OperationID,
		Root:        info.Root,
		Files:       info.Files,
		TotalBytes:  info.TotalBytes,
		DurationMs:  info.Duration.Milliseconds(),
	})
}

// Analysis presents zero-size files and duplicate groups
func (f *JSONFormatter) Analysis(result models.AnalysisResult) error {
	doc := jsonAnalysis{
		Type:       "analysis",
		Timestamp:  timestamp(),
		ZeroSize:   toJSONRecords(result.ZeroSize),
		Duplicates: make([][]jsonRecord, 0, len(result.Duplicates)),
	}
	for _, group := range result.Duplicates {
		doc.Duplicates = append(doc.Duplicates, toJSONRecords(group))
	}
	return f.emit(doc)
}

// Comparison presents the classification of two reports' differences
func (f *JSONFormatter) Comparison(result models.ComparisonResult) error {
	return f.emit(jsonComparison{
		Type:      "comparison",
		Timestamp: timestamp(),
		Identical: result.Identical(),
		Moved:     toJSONPairs(result.Moved),
		Modified:  toJSONPairs(result.Modified),
		Added:     toJSONRecords(result.Added),
		Deleted:   toJSONRecords(result.Deleted),
	})
}

// InvalidNames presents filenames rejected by the grammar gate
func (f *JSONFormatter) InvalidNames(names []string) error {
	doc := jsonInvalidNames{Type: "invalid_names", Timestamp: timestamp(), Invalid: names}
	if doc.Invalid == nil {
		doc.Invalid = []string{}
	}
	return f.emit(doc)
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
