package report

import (
	"errors"
	"time"

	"parishledger/internal/domain"
)

var ErrUnknownPeriod = errors.New("unknown report period")

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Totals are the financial figures of one report period. Outstanding can go
// negative when payments exceed the contracted cost; that signals
// over-collection, not an error.
type Totals struct {
	TotalCollected  float64 `json:"total_collected"`
	TotalContracted float64 `json:"total_contracted"`
	Outstanding     float64 `json:"outstanding"`
}

// Range is an inclusive calendar-date window.
type Range struct {
	From time.Time
	To   time.Time
}

// RangeFor maps a report period to its date window: the last 7 days for
// weekly, the last calendar month for monthly.
func RangeFor(period string, now time.Time) (Range, error) {
	switch period {
	case PeriodWeekly:
		return Range{From: now.AddDate(0, 0, -7), To: now}, nil
	case PeriodMonthly:
		return Range{From: now.AddDate(0, -1, 0), To: now}, nil
	}
	return Range{}, ErrUnknownPeriod
}

// Filter keeps the celebrations whose date falls inside the window,
// inclusive on both ends.
func Filter(snapshot []domain.Celebration, r Range) []domain.Celebration {
	from := r.From.Format("2006-01-02")
	to := r.To.Format("2006-01-02")

	out := make([]domain.Celebration, 0)
	for _, c := range snapshot {
		if c.Date >= from && c.Date <= to {
			out = append(out, c)
		}
	}
	return out
}

// Aggregate sums the filtered records into the report figures.
func Aggregate(filtered []domain.Celebration) Totals {
	var t Totals
	for _, c := range filtered {
		t.TotalCollected += c.TotalPaid()
		t.TotalContracted += c.TotalCost
	}
	t.Outstanding = t.TotalContracted - t.TotalCollected
	return t
}
