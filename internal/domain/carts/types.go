package carts

import "time"

// Cart lifecycle. checkout_pending locks the cart while an online payment
// is in flight; converted and abandoned are terminal.
const (
	StatusActive          = "active"
	StatusCheckoutPending = "checkout_pending"
	StatusConverted       = "converted"
	StatusAbandoned       = "abandoned"
)

type Cart struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	Status          string     `json:"status"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	CheckoutOrderID *int64     `json:"checkout_order_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CartLine struct {
	ItemID         int64  `json:"item_id"`
	ProductID      int64  `json:"product_id"`
	ProductName    string `json:"product_name"`
	Category       string `json:"category"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
}

type CartView struct {
	Cart       Cart       `json:"cart"`
	Items      []CartLine `json:"items"`
	TotalCents int64      `json:"total_cents"`
}
