// Package csv provides a CSV-file implementation of jobscout.ListingWriter.
package csv

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/fwojciec/jobscout"
)

// Header is the fixed artifact header row.
var Header = []string{"Job Title", "Company", "Location", "Date Posted"}

// Ensure Writer implements jobscout.ListingWriter at compile time.
var _ jobscout.ListingWriter = (*Writer)(nil)

// Writer writes listings to a CSV file. Each write fully replaces the
// artifact; there are no append or merge semantics.
type Writer struct {
	path string
}

// NewWriter creates a Writer that writes to the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the artifact location.
func (w *Writer) Path() string {
	return w.path
}

// WriteListings writes the header row followed by one row per listing,
// creating missing parent directories and truncating any existing file.
// Field values are written verbatim; encoding/csv handles quoting. The
// file handle is closed on every path, though a mid-write failure can
// leave a partial artifact behind.
func (w *Writer) WriteListings(_ context.Context, listings []jobscout.Listing) (int, error) {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return 0, err
	}

	f, err := os.Create(w.path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(Header); err != nil {
		return 0, err
	}
	for _, l := range listings {
		if err := cw.Write([]string{l.Title, l.Company, l.Location, l.DatePosted}); err != nil {
			return 0, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}

	return len(listings), nil
}
