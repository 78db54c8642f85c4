package jobscout

import "time"

// dateFormats is the ordered list of accepted posting-date layouts.
// The first layout that parses wins.
var dateFormats = []string{
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate attempts to parse raw posting-date text against the accepted
// layouts. It returns the parsed date and true on success, or the zero
// time and false when no layout matches. It never returns an error:
// unparseable dates are a first-class case for filtering and sorting, not
// a failure.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseSince parses a --since flag value. Unlike posting dates, the cutoff
// accepts only the ISO layout and a malformed value is a configuration
// error.
func ParseSince(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, Errorf(EINVALID, "invalid since date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}
