package mock

import (
	"context"

	"github.com/fwojciec/jobscout"
)

var _ jobscout.ListingWriter = (*ListingWriter)(nil)

// ListingWriter is a mock implementation of jobscout.ListingWriter.
type ListingWriter struct {
	WriteListingsFn func(ctx context.Context, listings []jobscout.Listing) (int, error)
}

func (w *ListingWriter) WriteListings(ctx context.Context, listings []jobscout.Listing) (int, error) {
	return w.WriteListingsFn(ctx, listings)
}
