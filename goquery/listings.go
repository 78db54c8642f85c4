// Package goquery provides CSS-selector based extractors for job board
// and university pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscout"
)

// Selectors defines the CSS selectors used to locate listing containers
// and the fields within each container.
type Selectors struct {
	Container string
	Title     string
	Company   string
	Location  string
	Date      string
}

// DefaultSelectors targets the Real Python fake-jobs board markup.
var DefaultSelectors = Selectors{
	Container: "div.card-content",
	Title:     "h2.title",
	Company:   "h3.subtitle",
	Location:  "p.location",
	Date:      "time",
}

// Ensure ListingExtractor implements jobscout.ListingExtractor at compile time.
var _ jobscout.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor extracts job listings from board pages using CSS
// selectors.
type ListingExtractor struct {
	selectors Selectors
}

// Option configures a ListingExtractor.
type Option func(*ListingExtractor)

// WithSelectors overrides the selector set, allowing other boards with the
// same card-style markup to be targeted.
func WithSelectors(s Selectors) Option {
	return func(e *ListingExtractor) {
		e.selectors = s
	}
}

// NewListingExtractor creates a ListingExtractor with DefaultSelectors.
func NewListingExtractor(opts ...Option) *ListingExtractor {
	e := &ListingExtractor{selectors: DefaultSelectors}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractListings parses the HTML and returns one listing per container in
// document order. A missing sub-element degrades to an empty field; only
// unparseable HTML is an error.
func (e *ListingExtractor) ExtractListings(html string) ([]jobscout.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jobscout.Errorf(jobscout.EINVALID, "failed to parse HTML: %v", err)
	}

	var listings []jobscout.Listing
	doc.Find(e.selectors.Container).Each(func(_ int, card *goquery.Selection) {
		listings = append(listings, jobscout.Listing{
			Title:      text(card, e.selectors.Title),
			Company:    text(card, e.selectors.Company),
			Location:   text(card, e.selectors.Location),
			DatePosted: text(card, e.selectors.Date),
		})
	})

	return listings, nil
}

// text returns the trimmed text of the first match within the selection,
// or "" when the selector matches nothing.
func text(sel *goquery.Selection, selector string) string {
	return strings.TrimSpace(sel.Find(selector).First().Text())
}
