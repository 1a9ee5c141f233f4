package orders

import "time"

// Order lifecycle. Counter orders go straight to placed; online orders sit
// in awaiting_payment until the gateway webhook confirms payment.
const (
	StatusAwaitingPayment = "awaiting_payment"
	StatusPlaced          = "placed"
	StatusCompleted       = "completed"
	StatusCancelled       = "cancelled"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

type Order struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	OrderNumber   string     `json:"order_number"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	PaymentMethod *string    `json:"payment_method,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	SubtotalCents int64      `json:"subtotal_cents"`
	GiftCardCents int64      `json:"gift_card_cents"`
	DueCents      int64      `json:"due_cents"`
	GiftCardCode  *string    `json:"gift_card_code,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type OrderItem struct {
	ID              int64  `json:"id"`
	OrderID         int64  `json:"order_id"`
	ProductID       *int64 `json:"product_id,omitempty"`
	ProductName     string `json:"product_name"`
	Category        string `json:"category"`
	Quantity        int    `json:"quantity"`
	UnitPriceCents  int64  `json:"unit_price_cents"`
	TotalPriceCents int64  `json:"total_price_cents"`
}

type OrderDetail struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}
