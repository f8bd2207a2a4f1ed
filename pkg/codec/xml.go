// Package codec persists reports in a versioned, self-describing XML format.
package codec

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sdejongh/dirsnap/pkg/models"
)

// FormatVersion is the only report format version this codec understands.
const FormatVersion = "1"

// FormatError indicates a malformed or unsupported persisted report. The load
// is rejected whole; no partial report is returned.
type FormatError struct {
	Message string
	Err     error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid report format: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("invalid report format: %s", e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Attributes are pointers so a missing attribute can be told apart from an
// empty one.
type xmlFile struct {
	Path *string `xml:"path,attr"`
	Size *string `xml:"size,attr"`
	Hash *string `xml:"hash,attr"`
}

type xmlReport struct {
	XMLName xml.Name  `xml:"report"`
	Version *string   `xml:"version,attr"`
	Files   []xmlFile `xml:"file"`
}

// Save writes the report to w, records in canonical order so equal reports
// serialize identically.
func Save(report *models.Report, w io.Writer) error {
	version := FormatVersion
	doc := xmlReport{Version: &version}

	for _, rec := range report.Records() {
		path, size, hash := rec.Path, strconv.FormatUint(rec.Size, 10), rec.Hash
		doc.Files = append(doc.Files, xmlFile{Path: &path, Size: &size, Hash: &hash})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// Load reads a report from r. It fails with *FormatError when the document is
// not well formed, the version attribute is missing or unsupported, or any
// file entry lacks one of its three required attributes.
func Load(r io.Reader) (*models.Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var doc xmlReport
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Message: "malformed document", Err: err}
	}

	if doc.Version == nil {
		return nil, &FormatError{Message: "missing format version"}
	}
	if *doc.Version != FormatVersion {
		return nil, &FormatError{Message: fmt.Sprintf("unsupported format version %q", *doc.Version)}
	}

	report := models.NewReport()
	for i, f := range doc.Files {
		if f.Path == nil {
			return nil, &FormatError{Message: fmt.Sprintf("file entry %d missing path attribute", i)}
		}
		if f.Size == nil {
			return nil, &FormatError{Message: fmt.Sprintf("file entry %d missing size attribute", i)}
		}
		if f.Hash == nil {
			return nil, &FormatError{Message: fmt.Sprintf("file entry %d missing hash attribute", i)}
		}

		size, err := strconv.ParseUint(*f.Size, 10, 64)
		if err != nil {
			return nil, &FormatError{Message: fmt.Sprintf("file entry %d has invalid size %q", i, *f.Size), Err: err}
		}

		report.Add(models.FileRecord{Path: *f.Path, Size: size, Hash: *f.Hash})
	}

	return report, nil
}

// SaveFile persists the report at path, creating or truncating the file.
func SaveFile(report *models.Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := Save(report, file); err != nil {
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

// LoadFile reads a report from path.
func LoadFile(path string) (*models.Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report file: %w", err)
	}
	defer file.Close()

	return Load(file)
}
