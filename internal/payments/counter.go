package payments

import (
	"context"

	"github.com/google/uuid"
)

// CounterAdapter is the pay-at-the-till pseudo gateway. Initiate records an
// intent; the payment only becomes successful when staff confirm it, so
// VerifyPayment never reports success on its own.
type CounterAdapter struct{}

func NewCounterAdapter() *CounterAdapter { return &CounterAdapter{} }

func (c *CounterAdapter) InitiatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	ref := "counter_" + uuid.NewString()
	return PaymentResponse{
		ProviderRef: ref,
		Data: map[string]string{
			"reference": ref,
			"note":      "pay at the counter",
		},
	}, nil
}

func (c *CounterAdapter) VerifyPayment(ctx context.Context, req PaymentVerifyRequest) (PaymentVerifyResponse, error) {
	return PaymentVerifyResponse{
		Success:     false,
		State:       "awaiting_counter",
		Terminal:    false,
		ProviderRef: req.ProviderRef,
	}, nil
}
