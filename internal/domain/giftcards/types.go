package giftcards

import "time"

const (
	StatusActive   = "active"
	StatusRedeemed = "redeemed" // balance fully consumed
	StatusVoid     = "void"     // cancelled by staff
)

type GiftCard struct {
	ID              int64      `json:"id"`
	Code            string     `json:"code"`
	InitialCents    int64      `json:"initial_cents"`
	BalanceCents    int64      `json:"balance_cents"`
	Status          string     `json:"status"`
	PurchaserUserID *int64     `json:"purchaser_user_id,omitempty"`
	RecipientEmail  *string    `json:"recipient_email,omitempty" swaggertype:"string"`
	Message         *string    `json:"message,omitempty" swaggertype:"string"`
	PaymentStatus   string     `json:"payment_status"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Redemption records one draw-down against a card, linked to the POS order
// it paid for.
type Redemption struct {
	ID          int64     `json:"id"`
	GiftCardID  int64     `json:"gift_card_id"`
	OrderID     *int64    `json:"order_id,omitempty"`
	AmountCents int64     `json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
}
