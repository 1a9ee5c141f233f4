package payments

type PaymentRequest struct {
	TransactionID string // our order/booking/gift card reference
	AmountCents   int64
	Currency      string
	ProductName   string
	CustomerName  string
	CustomerEmail string
	Metadata      map[string]string
}

type PaymentResponse struct {
	PaymentURL  string
	ProviderRef string            // gateway-side id for later lookup
	Data        map[string]string // extra fields for the client
}

type PaymentVerifyRequest struct {
	ProviderRef string
	Data        map[string]string
}

type PaymentVerifyResponse struct {
	Success     bool
	State       string
	Terminal    bool // no further state changes expected
	ProviderRef string
	Raw         map[string]any
}
