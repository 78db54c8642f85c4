package pipeline

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobscout"
)

// Dedupe removes duplicate listings, keeping the first occurrence of each
// (title, company, location) key in scan order. The posting date is not
// part of the key: the same posting re-listed with a different date
// collapses to the earliest-encountered row.
func Dedupe(listings []jobscout.Listing) []jobscout.Listing {
	seen := make(map[uint64]struct{}, len(listings))
	out := make([]jobscout.Listing, 0, len(listings))
	for _, l := range listings {
		k := dedupeKey(l)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, l)
	}
	return out
}

// dedupeKey hashes the lower-cased identity fields. A separator byte keeps
// field boundaries from colliding.
func dedupeKey(l jobscout.Listing) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(strings.ToLower(l.Title))
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(strings.ToLower(l.Company))
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(strings.ToLower(l.Location))
	return d.Sum64()
}
