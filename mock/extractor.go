package mock

import "github.com/fwojciec/jobscout"

var _ jobscout.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor is a mock implementation of jobscout.ListingExtractor.
type ListingExtractor struct {
	ExtractListingsFn func(html string) ([]jobscout.Listing, error)
}

func (e *ListingExtractor) ExtractListings(html string) ([]jobscout.Listing, error) {
	return e.ExtractListingsFn(html)
}

var _ jobscout.MissionExtractor = (*MissionExtractor)(nil)

// MissionExtractor is a mock implementation of jobscout.MissionExtractor.
type MissionExtractor struct {
	ExtractMissionFn func(html string) (string, error)
}

func (e *MissionExtractor) ExtractMission(html string) (string, error) {
	return e.ExtractMissionFn(html)
}
