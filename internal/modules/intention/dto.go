package intention

import "parishledger/internal/domain"

type RegisterIntentionRequest struct {
	IntentionFor  string               `json:"intention_for" binding:"required"`
	IntentionType domain.IntentionType `json:"intention_type" binding:"required"`
	Slot          domain.MassSlot      `json:"slot" binding:"required"`
	Payment       float64              `json:"payment" binding:"required"`
}
