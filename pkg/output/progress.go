package output

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Progress renders a byte-based progress bar while a tree is being
// fingerprinted. It is safe for concurrent Add calls from worker goroutines.
type Progress struct {
	bar *pb.ProgressBar
}

// NewProgress creates and starts a progress bar over totalBytes, writing to w.
func NewProgress(w io.Writer, totalBytes uint64) *Progress {
	bar := pb.New64(int64(totalBytes))
	bar.Set(pb.Bytes, true)
	bar.SetWriter(w)
	bar.Start()
	return &Progress{bar: bar}
}

// Add records size bytes as fingerprinted.
func (p *Progress) Add(size uint64) {
	p.bar.Add64(int64(size))
}

// Finish completes and removes the bar.
func (p *Progress) Finish() {
	p.bar.Finish()
}
