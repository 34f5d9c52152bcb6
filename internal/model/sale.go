package model

import "time"

// SaleLine is one line of a recorded sale. Name and price are
// snapshots taken at recording time; later item edits never change
// them.
type SaleLine struct {
	ItemID     string `json:"item_id"`
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

// SubtotalCents returns the line total in centavos.
func (l SaleLine) SubtotalCents() int64 {
	return l.PriceCents * int64(l.Quantity)
}

// Sale represents a recorded sale to a client.
type Sale struct {
	ID          string     `json:"id"`
	ContactID   string     `json:"contact_id"`
	ContactName string     `json:"contact_name"`
	Lines       []SaleLine `json:"lines"`
	TotalCents  int64      `json:"total_cents"`
	Date        time.Time  `json:"date"`
	Status      string     `json:"status"`
}

// Sale statuses.
const (
	SaleCompleted = "completed"
	SalePending   = "pending"
	SaleCancelled = "cancelled"
)

// ValidSaleStatus reports whether status is a known sale status.
func ValidSaleStatus(status string) bool {
	switch status {
	case SaleCompleted, SalePending, SaleCancelled:
		return true
	}
	return false
}
