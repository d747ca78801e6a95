package domain

import "time"

type CelebrationStatus string

const (
	CelebrationPaid    CelebrationStatus = "paid"
	CelebrationPending CelebrationStatus = "pending"
)

// Payment is one partial payment against a celebration receipt.
type Payment struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// Celebration is one receipt in the parish book. Folio is the unique receipt
// number and never changes after registration. Date is the local calendar day
// in 2006-01-02 form; Time is display-only.
type Celebration struct {
	Folio           string    `json:"folio"`
	RequesterName   string    `json:"requester_name"`
	CelebrationType string    `json:"celebration_type"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Location        string    `json:"location"`
	TotalCost       float64   `json:"total_cost"`
	Payments        []Payment `json:"payments"`
}

func (c Celebration) TotalPaid() float64 {
	var sum float64
	for _, p := range c.Payments {
		sum += p.Amount
	}
	return sum
}

// Status is always derived from the payment history so it cannot drift from
// the recorded payments.
func (c Celebration) Status() CelebrationStatus {
	if c.TotalPaid() >= c.TotalCost {
		return CelebrationPaid
	}
	return CelebrationPending
}

func (c Celebration) Remaining() float64 {
	return c.TotalCost - c.TotalPaid()
}
