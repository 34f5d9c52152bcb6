package model

// Item represents an inventory item tracked by quantity on hand.
// Quantity may go negative when sales outrun stock; the store applies
// no floor (over-selling is visible, not hidden).
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
	PriceCents  int64  `json:"price_cents"`
}

// LowStock reports whether the item has fallen to or below its
// configured minimum. Derived, never stored.
func (i Item) LowStock() bool {
	return i.Quantity <= i.MinQuantity
}
