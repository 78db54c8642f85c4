package jobscout

import (
	"context"
	"strings"
)

// Listing represents a single job posting extracted from a board page.
// All fields are raw text as found in the document; any of them may be
// empty. Listings are never mutated after extraction.
type Listing struct {
	Title      string
	Company    string
	Location   string
	DatePosted string
}

// Blob returns the lower-cased concatenation of title, company, and
// location used for keyword matching. The date text deliberately does not
// participate.
func (l Listing) Blob() string {
	return strings.ToLower(l.Title + " " + l.Company + " " + l.Location)
}

// ListingExtractor extracts job listings from a board page.
type ListingExtractor interface {
	// ExtractListings parses raw HTML and returns listings in document
	// order. Missing sub-elements inside a listing container degrade to
	// empty fields rather than failing the extraction.
	ExtractListings(html string) ([]Listing, error)
}

// ListingWriter serializes listings to an output artifact.
type ListingWriter interface {
	// WriteListings writes the listings in the given order, fully
	// replacing any previous artifact, and returns the number of data
	// rows written.
	WriteListings(ctx context.Context, listings []Listing) (int, error)
}
