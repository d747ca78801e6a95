package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parishledger/internal/domain"
)

func TestRangeFor(t *testing.T) {
	now := time.Date(2024, 9, 10, 12, 0, 0, 0, time.UTC)

	weekly, err := RangeFor(PeriodWeekly, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 9, 3, 12, 0, 0, 0, time.UTC), weekly.From)
	assert.Equal(t, now, weekly.To)

	monthly, err := RangeFor(PeriodMonthly, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 8, 10, 12, 0, 0, 0, time.UTC), monthly.From)

	_, err = RangeFor("yearly", now)
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestFilterIsInclusiveOnBothEnds(t *testing.T) {
	r := Range{
		From: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 9, 7, 0, 0, 0, 0, time.UTC),
	}
	records := []domain.Celebration{
		{Folio: "a", Date: "2024-08-31"},
		{Folio: "b", Date: "2024-09-01"},
		{Folio: "c", Date: "2024-09-04"},
		{Folio: "d", Date: "2024-09-07"},
		{Folio: "e", Date: "2024-09-08"},
	}

	filtered := Filter(records, r)
	require.Len(t, filtered, 3)
	assert.Equal(t, "b", filtered[0].Folio)
	assert.Equal(t, "d", filtered[2].Folio)
}

func TestAggregate_WeeklyScenario(t *testing.T) {
	now := time.Now()
	threeDaysAgo := now.AddDate(0, 0, -3).Format("2006-01-02")

	records := []domain.Celebration{{
		Folio:     "2024-001",
		Date:      threeDaysAgo,
		TotalCost: 1200,
		Payments:  []domain.Payment{{Amount: 400, Date: now}, {Amount: 200, Date: now}},
	}}

	r, err := RangeFor(PeriodWeekly, now)
	require.NoError(t, err)

	totals := Aggregate(Filter(records, r))
	assert.Equal(t, 600.0, totals.TotalCollected)
	assert.Equal(t, 1200.0, totals.TotalContracted)
	assert.Equal(t, 600.0, totals.Outstanding)
}

func TestAggregate_NegativeOutstandingOnOverpayment(t *testing.T) {
	records := []domain.Celebration{{
		Folio:     "2024-001",
		Date:      "2024-09-01",
		TotalCost: 500,
		Payments:  []domain.Payment{{Amount: 700}},
	}}

	totals := Aggregate(records)
	assert.Equal(t, -200.0, totals.Outstanding)
}

func TestAggregate_Empty(t *testing.T) {
	totals := Aggregate(nil)
	assert.Zero(t, totals.TotalCollected)
	assert.Zero(t, totals.TotalContracted)
	assert.Zero(t, totals.Outstanding)
}

func TestAggregate_SumsAcrossRecords(t *testing.T) {
	records := []domain.Celebration{
		{Date: "2024-09-01", TotalCost: 500, Payments: []domain.Payment{{Amount: 500}}},
		{Date: "2024-09-02", TotalCost: 1200, Payments: []domain.Payment{{Amount: 600}}},
	}

	totals := Aggregate(records)
	assert.Equal(t, 1100.0, totals.TotalCollected)
	assert.Equal(t, 1700.0, totals.TotalContracted)
	assert.Equal(t, 600.0, totals.Outstanding)
}
