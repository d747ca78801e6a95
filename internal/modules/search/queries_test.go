package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parishledger/internal/domain"
)

func snapshot() []domain.Celebration {
	return []domain.Celebration{
		{Folio: "2024-001", RequesterName: "Familia Pérez", CelebrationType: "Bautizo", Date: "2024-08-15"},
		{Folio: "2024-002", RequesterName: "Juan Rodríguez", CelebrationType: "Misa de XV Años", Date: "2024-09-01"},
		{Folio: "2024-003", RequesterName: "María Pérez", CelebrationType: "Boda", Date: "2024-08-15"},
	}
}

func TestByFolio(t *testing.T) {
	record, ok := ByFolio(snapshot(), "2024-002")
	require.True(t, ok)
	assert.Equal(t, "Juan Rodríguez", record.RequesterName)

	_, ok = ByFolio(snapshot(), "2024-999")
	assert.False(t, ok)

	// Folio matching is case sensitive.
	_, ok = ByFolio([]domain.Celebration{{Folio: "A-1"}}, "a-1")
	assert.False(t, ok)
}

func TestByRequester(t *testing.T) {
	results := ByRequester(snapshot(), "pérez")
	require.Len(t, results, 2)
	assert.Equal(t, "2024-001", results[0].Folio)
	assert.Equal(t, "2024-003", results[1].Folio)

	assert.Empty(t, ByRequester(snapshot(), "garcía"))
}

func TestByCelebrationType(t *testing.T) {
	results := ByCelebrationType(snapshot(), "MISA")
	require.Len(t, results, 1)
	assert.Equal(t, "2024-002", results[0].Folio)
}

func TestByDate(t *testing.T) {
	results := ByDate(snapshot(), "2024-08-15")
	require.Len(t, results, 2)

	assert.Empty(t, ByDate(snapshot(), "2024-08-16"))
}

func TestBySlot(t *testing.T) {
	intentions := []domain.Intention{
		{ID: "1", Slot: domain.SlotEvening},
		{ID: "2", Slot: domain.SlotMorning},
		{ID: "3", Slot: domain.SlotEvening},
	}

	evening := BySlot(intentions, domain.SlotEvening)
	require.Len(t, evening, 2)
	assert.Equal(t, "1", evening[0].ID)
	assert.Equal(t, "3", evening[1].ID)

	morning := BySlot(intentions, domain.SlotMorning)
	require.Len(t, morning, 1)
	assert.Equal(t, "2", morning[0].ID)
}

func TestUpcoming(t *testing.T) {
	from := time.Date(2024, 8, 20, 10, 0, 0, 0, time.UTC)

	results := Upcoming(snapshot(), from, 5)
	require.Len(t, results, 1)
	assert.Equal(t, "2024-002", results[0].Folio)

	// A celebration on the from-day itself counts as upcoming.
	results = Upcoming(snapshot(), time.Date(2024, 8, 15, 23, 0, 0, 0, time.UTC), 5)
	require.Len(t, results, 3)
	assert.Equal(t, "2024-08-15", results[0].Date)
	assert.Equal(t, "2024-08-15", results[1].Date)
	assert.Equal(t, "2024-09-01", results[2].Date)
}

func TestUpcomingTruncatesToLimit(t *testing.T) {
	results := Upcoming(snapshot(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 2)
	require.Len(t, results, 2)
	assert.Equal(t, "2024-08-15", results[0].Date)
}

func TestChronological(t *testing.T) {
	asc := Chronological(snapshot(), false)
	require.Len(t, asc, 3)
	assert.Equal(t, "2024-08-15", asc[0].Date)
	assert.Equal(t, "2024-09-01", asc[2].Date)

	desc := Chronological(snapshot(), true)
	assert.Equal(t, "2024-09-01", desc[0].Date)

	// Equal dates keep their snapshot order.
	assert.Equal(t, "2024-001", asc[0].Folio)
	assert.Equal(t, "2024-003", asc[1].Folio)
}

func TestQueriesDoNotMutateSnapshot(t *testing.T) {
	original := snapshot()
	Chronological(original, true)
	assert.Equal(t, snapshot(), original)
}
