// Package pipeline turns a flat record sequence into the date-grouped
// listing shown by every record page.
package pipeline

import (
	"cmp"
	"slices"

	"github.com/heartmarshall/growthbox-backend/internal/dateutil"
	"github.com/heartmarshall/growthbox-backend/internal/domain"
)

// Aggregate filters records, groups them by date and orders both levels
// newest first. Records with equal date+time keep their input order.
// The input slice is not modified.
func Aggregate(records []domain.Record, filter domain.FilterKind) []domain.DateGroup {
	filter = filter.Normalize()

	byDate := make(map[string]int)
	var groups []domain.DateGroup

	for i := range records {
		r := records[i]
		if !filter.Match(&r) {
			continue
		}

		idx, ok := byDate[r.Date]
		if !ok {
			idx = len(groups)
			byDate[r.Date] = idx
			groups = append(groups, domain.DateGroup{
				Date:     r.Date,
				DateText: dateutil.FormatDateChinese(r.Date),
			})
		}
		groups[idx].Records = append(groups[idx].Records, domain.DisplayRecord{
			Record:    r,
			Thumbnail: r.Thumbnail(),
		})
	}

	for i := range groups {
		slices.SortStableFunc(groups[i].Records, func(a, b domain.DisplayRecord) int {
			return cmp.Compare(b.SortKey(), a.SortKey())
		})
	}
	slices.SortFunc(groups, func(a, b domain.DateGroup) int {
		return cmp.Compare(b.Date, a.Date)
	})

	return groups
}

// Flatten restores a flat sequence in grouped order.
func Flatten(groups []domain.DateGroup) []domain.Record {
	var out []domain.Record
	for _, g := range groups {
		for _, r := range g.Records {
			out = append(out, r.Record)
		}
	}
	return out
}

// Count returns the number of records across groups.
func Count(groups []domain.DateGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Records)
	}
	return n
}
