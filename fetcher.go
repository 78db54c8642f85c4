package jobscout

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET request for the URL and returns the response
	// body. A non-success status is an error; the context controls
	// timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
