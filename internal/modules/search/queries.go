// Package search holds the stateless query operations used by the search
// page, the dashboard and the reports. Every function re-evaluates against
// the snapshot it is given; record counts are small enough that no index is
// kept.
package search

import (
	"sort"
	"strings"
	"time"

	"parishledger/internal/domain"
)

// ByFolio is an exact, case-sensitive match.
func ByFolio(snapshot []domain.Celebration, folio string) (domain.Celebration, bool) {
	for _, c := range snapshot {
		if c.Folio == folio {
			return c, true
		}
	}
	return domain.Celebration{}, false
}

// ByRequester matches a case-insensitive substring of the requester name.
func ByRequester(snapshot []domain.Celebration, text string) []domain.Celebration {
	return filter(snapshot, func(c domain.Celebration) bool {
		return strings.Contains(strings.ToLower(c.RequesterName), strings.ToLower(text))
	})
}

// ByCelebrationType matches a case-insensitive substring of the celebration
// type.
func ByCelebrationType(snapshot []domain.Celebration, text string) []domain.Celebration {
	return filter(snapshot, func(c domain.Celebration) bool {
		return strings.Contains(strings.ToLower(c.CelebrationType), strings.ToLower(text))
	})
}

// ByDate matches the exact calendar day in 2006-01-02 form.
func ByDate(snapshot []domain.Celebration, date string) []domain.Celebration {
	return filter(snapshot, func(c domain.Celebration) bool {
		return c.Date == date
	})
}

// BySlot returns the intentions bound to one of the two daily mass slots.
func BySlot(snapshot []domain.Intention, slot domain.MassSlot) []domain.Intention {
	out := make([]domain.Intention, 0)
	for _, i := range snapshot {
		if i.Slot == slot {
			out = append(out, i)
		}
	}
	return out
}

// Upcoming returns the next celebrations on or after the given day, soonest
// first, truncated to limit.
func Upcoming(snapshot []domain.Celebration, from time.Time, limit int) []domain.Celebration {
	day := from.Format("2006-01-02")
	out := filter(snapshot, func(c domain.Celebration) bool {
		return c.Date >= day
	})
	sortByDate(out, false)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Chronological returns the full snapshot sorted by date.
func Chronological(snapshot []domain.Celebration, descending bool) []domain.Celebration {
	out := append([]domain.Celebration(nil), snapshot...)
	sortByDate(out, descending)
	return out
}

// Dates are ISO formatted, so string order is date order.
func sortByDate(records []domain.Celebration, descending bool) {
	sort.SliceStable(records, func(i, j int) bool {
		if descending {
			return records[i].Date > records[j].Date
		}
		return records[i].Date < records[j].Date
	})
}

func filter(snapshot []domain.Celebration, keep func(domain.Celebration) bool) []domain.Celebration {
	out := make([]domain.Celebration, 0)
	for _, c := range snapshot {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
