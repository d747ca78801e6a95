package celebration

type PaymentInput struct {
	Amount float64 `json:"amount" binding:"required"`
}

type RegisterCelebrationRequest struct {
	Folio           string         `json:"folio" binding:"required"`
	RequesterName   string         `json:"requester_name" binding:"required"`
	CelebrationType string         `json:"celebration_type" binding:"required"`
	Date            string         `json:"date" binding:"required,datetime=2006-01-02"`
	Time            string         `json:"time"`
	Location        string         `json:"location"`
	TotalCost       float64        `json:"total_cost"`
	InitialPayments []PaymentInput `json:"initial_payments"`
}

type AddPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}
