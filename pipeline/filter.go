package pipeline

import "github.com/fwojciec/jobscout"

// Filter returns the listings matching the criteria, preserving input
// order. The input slice and its elements are not mutated.
func Filter(listings []jobscout.Listing, criteria jobscout.Criteria) []jobscout.Listing {
	out := make([]jobscout.Listing, 0, len(listings))
	for _, l := range listings {
		if criteria.Match(l) {
			out = append(out, l)
		}
	}
	return out
}
