package domain

import "time"

type IntentionType string

const (
	IntentionDeceased     IntentionType = "deceased"
	IntentionThanksgiving IntentionType = "thanksgiving"
	IntentionHealth       IntentionType = "health"
)

func (t IntentionType) Valid() bool {
	switch t {
	case IntentionDeceased, IntentionThanksgiving, IntentionHealth:
		return true
	}
	return false
}

// MassSlot is one of the two daily mass times an intention can be read at.
type MassSlot string

const (
	SlotMorning MassSlot = "morning"
	SlotEvening MassSlot = "evening"
)

func (s MassSlot) Valid() bool {
	return s == SlotMorning || s == SlotEvening
}

// DisplayTime is the wall-clock label printed on receipts and lists.
func (s MassSlot) DisplayTime() string {
	if s == SlotMorning {
		return "8:00 AM"
	}
	return "7:00 PM"
}

// Intention is a paid mass-intention request. Records are immutable once
// registered.
type Intention struct {
	ID            string        `json:"id"`
	IntentionFor  string        `json:"intention_for"`
	IntentionType IntentionType `json:"intention_type"`
	Slot          MassSlot      `json:"slot"`
	Payment       float64       `json:"payment"`
	Date          time.Time     `json:"date"`
}
