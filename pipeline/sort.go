package pipeline

import (
	"sort"
	"strings"

	"github.com/fwojciec/jobscout"
)

// Sort reorders listings by the given column and returns the slice. The
// sort is stable: listings with equal keys keep their incoming relative
// order. Date sorts descending (most recent first) with unparseable dates
// keyed as the zero time so they land last; the text columns sort
// ascending case-insensitive. SortNone returns the input unchanged.
func Sort(listings []jobscout.Listing, col jobscout.SortColumn) ([]jobscout.Listing, error) {
	switch col {
	case jobscout.SortNone:
		return listings, nil

	case jobscout.SortByDate:
		sort.SliceStable(listings, func(i, j int) bool {
			di, _ := jobscout.ParseDate(listings[i].DatePosted)
			dj, _ := jobscout.ParseDate(listings[j].DatePosted)
			return dj.Before(di)
		})
		return listings, nil

	case jobscout.SortByTitle, jobscout.SortByCompany, jobscout.SortByLocation:
		sort.SliceStable(listings, func(i, j int) bool {
			return textKey(listings[i], col) < textKey(listings[j], col)
		})
		return listings, nil

	default:
		return nil, jobscout.Errorf(jobscout.EINVALID, "invalid sort column %q: choose date, title, company, or location", string(col))
	}
}

func textKey(l jobscout.Listing, col jobscout.SortColumn) string {
	switch col {
	case jobscout.SortByTitle:
		return strings.ToLower(l.Title)
	case jobscout.SortByCompany:
		return strings.ToLower(l.Company)
	case jobscout.SortByLocation:
		return strings.ToLower(l.Location)
	}
	return ""
}
