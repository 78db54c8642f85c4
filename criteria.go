package jobscout

import (
	"strings"
	"time"
)

// Criteria describes the row filter applied to extracted listings.
// The zero value matches every listing: an empty or absent criterion
// never filters anything out.
type Criteria struct {
	// Include keeps a listing only if every term is a case-insensitive
	// substring of the title/company/location blob.
	Include []string

	// Exclude drops a listing if any term is a case-insensitive substring
	// of the blob.
	Exclude []string

	// Location keeps a listing only if it is a case-insensitive substring
	// of the location field.
	Location string

	// Since keeps a listing only if its posting date parses and is on or
	// after this date. Listings with unparseable dates fail the cutoff
	// silently; this is deliberate best-effort policy, not an error.
	Since *time.Time
}

// Match reports whether the listing passes all criteria. It is a pure
// predicate: no side effects, no mutation.
func (c Criteria) Match(l Listing) bool {
	blob := l.Blob()

	for _, term := range c.Include {
		if !strings.Contains(blob, strings.ToLower(term)) {
			return false
		}
	}

	for _, term := range c.Exclude {
		if strings.Contains(blob, strings.ToLower(term)) {
			return false
		}
	}

	if c.Location != "" && !strings.Contains(strings.ToLower(l.Location), strings.ToLower(c.Location)) {
		return false
	}

	if c.Since != nil {
		d, ok := ParseDate(l.DatePosted)
		if !ok || d.Before(*c.Since) {
			return false
		}
	}

	return true
}

// SortColumn identifies the column listings are ordered by.
type SortColumn string

// SortColumn constants. Date sorts descending (most recent first); the
// other columns sort ascending case-insensitive. SortNone preserves the
// incoming order.
const (
	SortNone       SortColumn = ""
	SortByDate     SortColumn = "date"
	SortByTitle    SortColumn = "title"
	SortByCompany  SortColumn = "company"
	SortByLocation SortColumn = "location"
)

// ParseSortColumn validates a --sort flag value. An empty string means no
// sorting. Any value outside the accepted set is a configuration error.
func ParseSortColumn(s string) (SortColumn, error) {
	switch col := SortColumn(s); col {
	case SortNone, SortByDate, SortByTitle, SortByCompany, SortByLocation:
		return col, nil
	default:
		return SortNone, Errorf(EINVALID, "invalid sort column %q: choose date, title, company, or location", s)
	}
}
