package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/jobscout"
	"github.com/fwojciec/jobscout/mock"
	"github.com/fwojciec/jobscout/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPipeline returns a pipeline whose extractor yields the given listings
// and whose writer records what it received.
func newPipeline(listings []jobscout.Listing, written *[]jobscout.Listing) *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html></html>", nil
			},
		},
		Extractor: &mock.ListingExtractor{
			ExtractListingsFn: func(_ string) ([]jobscout.Listing, error) {
				return listings, nil
			},
		},
		Writer: &mock.ListingWriter{
			WriteListingsFn: func(_ context.Context, ls []jobscout.Listing) (int, error) {
				*written = ls
				return len(ls), nil
			},
		},
	}
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	listings := []jobscout.Listing{
		{Title: "Engineer", Company: "Acme", Location: "Remote, US", DatePosted: "2024-01-05"},
		{Title: "Engineer", Company: "Acme", Location: "Remote, US", DatePosted: "2023-12-01"},
		{Title: "Analyst", Company: "Globex", Location: "New York, NY", DatePosted: "2024-02-01"},
	}

	t.Run("runs all stages in order", func(t *testing.T) {
		t.Parallel()

		var written []jobscout.Listing
		p := newPipeline(listings, &written)
		p.Criteria = jobscout.Criteria{Include: []string{"engineer"}}
		p.Dedupe = true
		p.SortBy = jobscout.SortByDate

		res, err := p.Run(context.Background(), "https://example.com/jobs")

		require.NoError(t, err)
		assert.Equal(t, 3, res.Extracted)
		assert.Equal(t, 1, res.Kept)
		assert.Equal(t, 1, res.Written)
		require.Len(t, written, 1)
		assert.Equal(t, "2024-01-05", written[0].DatePosted)
	})

	t.Run("limit truncates after sort", func(t *testing.T) {
		t.Parallel()

		var written []jobscout.Listing
		p := newPipeline(listings, &written)
		p.SortBy = jobscout.SortByDate
		p.Limit = 1

		res, err := p.Run(context.Background(), "https://example.com/jobs")

		require.NoError(t, err)
		assert.Equal(t, 3, res.Kept)
		assert.Equal(t, 1, res.Written)
		require.Len(t, written, 1)
		assert.Equal(t, "Analyst", written[0].Title, "most recent row survives the limit")
	})

	t.Run("limit larger than input writes everything", func(t *testing.T) {
		t.Parallel()

		var written []jobscout.Listing
		p := newPipeline(listings, &written)
		p.Limit = 10

		res, err := p.Run(context.Background(), "https://example.com/jobs")

		require.NoError(t, err)
		assert.Equal(t, 3, res.Written)
	})

	t.Run("non-positive limit means unbounded", func(t *testing.T) {
		t.Parallel()

		for _, limit := range []int{0, -1} {
			var written []jobscout.Listing
			p := newPipeline(listings, &written)
			p.Limit = limit

			res, err := p.Run(context.Background(), "https://example.com/jobs")

			require.NoError(t, err)
			assert.Equal(t, 3, res.Written)
		}
	})

	t.Run("invalid sort column fails before any fetch", func(t *testing.T) {
		t.Parallel()

		fetched := false
		p := &pipeline.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					fetched = true
					return "", nil
				},
			},
			SortBy: jobscout.SortColumn("salary"),
		}

		_, err := p.Run(context.Background(), "https://example.com/jobs")

		require.Error(t, err)
		assert.Equal(t, jobscout.EINVALID, jobscout.ErrorCode(err))
		assert.False(t, fetched, "configuration errors must surface before network work")
	})

	t.Run("fetch error propagates and nothing is written", func(t *testing.T) {
		t.Parallel()

		wrote := false
		p := &pipeline.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "", jobscout.Errorf(jobscout.EUNAVAILABLE, "HTTP 503")
				},
			},
			Extractor: &mock.ListingExtractor{
				ExtractListingsFn: func(_ string) ([]jobscout.Listing, error) {
					return nil, nil
				},
			},
			Writer: &mock.ListingWriter{
				WriteListingsFn: func(_ context.Context, _ []jobscout.Listing) (int, error) {
					wrote = true
					return 0, nil
				},
			},
		}

		_, err := p.Run(context.Background(), "https://example.com/jobs")

		require.Error(t, err)
		assert.Equal(t, jobscout.EUNAVAILABLE, jobscout.ErrorCode(err))
		assert.False(t, wrote, "retrieval failures must not produce an artifact")
	})

	t.Run("writer error propagates", func(t *testing.T) {
		t.Parallel()

		var written []jobscout.Listing
		p := newPipeline(listings, &written)
		p.Writer = &mock.ListingWriter{
			WriteListingsFn: func(_ context.Context, _ []jobscout.Listing) (int, error) {
				return 0, errors.New("disk full")
			},
		}

		_, err := p.Run(context.Background(), "https://example.com/jobs")

		require.Error(t, err)
	})

	t.Run("no dedupe passes duplicates through", func(t *testing.T) {
		t.Parallel()

		var written []jobscout.Listing
		p := newPipeline(listings, &written)

		res, err := p.Run(context.Background(), "https://example.com/jobs")

		require.NoError(t, err)
		assert.Equal(t, 3, res.Written)
	})
}
