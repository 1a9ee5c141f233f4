package paymentsrepo

import (
	"encoding/json"
	"time"
)

type Payment struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	Provider    string          `json:"provider"`
	ProviderRef *string         `json:"provider_ref,omitempty"`
	AmountCents int64           `json:"amount_cents"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"`
	GatewayResp json.RawMessage `json:"gateway_response,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
