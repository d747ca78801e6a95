package repository

import (
	"time"

	"parishledger/internal/domain"
)

// Snapshot keys. The user table lives apart from these.
const (
	CelebrationsKey = "parish-celebrations"
	IntentionsKey   = "parish-intentions"
)

// SeedCelebrations is the dataset the ledgers fall back to when no snapshot
// can be loaded. It matches what cmd/seed writes.
func SeedCelebrations() []domain.Celebration {
	now := time.Now()
	return []domain.Celebration{
		{
			Folio:           "2024-001",
			RequesterName:   "Familia Pérez",
			CelebrationType: "Bautizo",
			Date:            "2024-08-15",
			Time:            "12:00",
			Location:        "Templo Principal",
			TotalCost:       500,
			Payments:        []domain.Payment{{Amount: 500, Date: now}},
		},
		{
			Folio:           "2024-002",
			RequesterName:   "Juan Rodríguez",
			CelebrationType: "Misa de XV Años",
			Date:            "2024-09-01",
			Time:            "13:00",
			Location:        "Capilla de Guadalupe",
			TotalCost:       1200,
			Payments:        []domain.Payment{{Amount: 600, Date: now}},
		},
	}
}

func SeedIntentions() []domain.Intention {
	return []domain.Intention{
		{
			ID:            "1",
			IntentionFor:  "Difunto Juan Pérez",
			IntentionType: domain.IntentionDeceased,
			Slot:          domain.SlotEvening,
			Payment:       50,
			Date:          time.Now(),
		},
	}
}
