// Package pipeline provides the listing query pipeline.
// It coordinates fetching, extraction, filtering, deduplication, sorting,
// limiting, and serialization of job listings, strictly in that order.
package pipeline

import (
	"context"
	"fmt"

	"github.com/fwojciec/jobscout"
)

// Pipeline runs one scrape-and-query pass over a job board page.
type Pipeline struct {
	Fetcher   jobscout.Fetcher
	Extractor jobscout.ListingExtractor
	Writer    jobscout.ListingWriter

	// Criteria is the row filter. The zero value keeps every listing.
	Criteria jobscout.Criteria

	// Dedupe enables first-seen-wins uniqueness on (title, company,
	// location).
	Dedupe bool

	// SortBy orders the surviving listings. SortNone preserves the
	// filtered/deduped order.
	SortBy jobscout.SortColumn

	// Limit caps the number of rows written. Zero or negative means
	// unbounded.
	Limit int
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Extracted int // listings produced by extraction
	Kept      int // listings surviving filter and dedupe
	Written   int // data rows written to the artifact
}

// Run executes fetch, extract, filter, dedupe, sort, limit, and write
// sequentially. Configuration is validated before any network work so a
// bad sort column never triggers a fetch or produces a partial artifact.
func (p *Pipeline) Run(ctx context.Context, url string) (*Result, error) {
	if _, err := jobscout.ParseSortColumn(string(p.SortBy)); err != nil {
		return nil, err
	}

	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	listings, err := p.Extractor.ExtractListings(html)
	if err != nil {
		return nil, fmt.Errorf("extract listings: %w", err)
	}

	rows := Filter(listings, p.Criteria)
	if p.Dedupe {
		rows = Dedupe(rows)
	}

	rows, err = Sort(rows, p.SortBy)
	if err != nil {
		return nil, err
	}

	kept := len(rows)
	if p.Limit > 0 && p.Limit < len(rows) {
		rows = rows[:p.Limit]
	}

	written, err := p.Writer.WriteListings(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("write listings: %w", err)
	}

	return &Result{
		Extracted: len(listings),
		Kept:      kept,
		Written:   written,
	}, nil
}
