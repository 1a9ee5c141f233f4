package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeAdapter drives Stripe Checkout. The package-level stripe.Key must be
// set before the adapter is used.
type StripeAdapter struct {
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

func NewStripeAdapter(webhookSecret, successURL, cancelURL string) *StripeAdapter {
	return &StripeAdapter{
		WebhookSecret: webhookSecret,
		SuccessURL:    successURL,
		CancelURL:     cancelURL,
	}
}

func (s *StripeAdapter) InitiatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = "aud"
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
					UnitAmount: stripe.Int64(req.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(s.SuccessURL),
		CancelURL:         stripe.String(s.CancelURL),
		ClientReferenceID: stripe.String(req.TransactionID),
	}
	params.Context = ctx
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := session.New(params)
	if err != nil {
		return PaymentResponse{}, fmt.Errorf("stripe checkout session: %w", err)
	}

	return PaymentResponse{
		PaymentURL:  sess.URL,
		ProviderRef: sess.ID,
		Data: map[string]string{
			"session_id":  sess.ID,
			"payment_url": sess.URL,
		},
	}, nil
}

func (s *StripeAdapter) VerifyPayment(ctx context.Context, req PaymentVerifyRequest) (PaymentVerifyResponse, error) {
	ref := req.ProviderRef
	if ref == "" {
		ref = req.Data["session_id"]
	}
	if ref == "" {
		return PaymentVerifyResponse{}, fmt.Errorf("stripe verify requires session_id")
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	sess, err := session.Get(ref, params)
	if err != nil {
		return PaymentVerifyResponse{}, fmt.Errorf("stripe session lookup: %w", err)
	}

	// Only a paid session counts as success. Expired sessions are terminal;
	// open sessions may still complete.
	success := sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid
	terminal := success || sess.Status == stripe.CheckoutSessionStatusExpired

	return PaymentVerifyResponse{
		Success:     success,
		State:       string(sess.Status),
		Terminal:    terminal,
		ProviderRef: sess.ID,
		Raw: map[string]any{
			"payment_status": string(sess.PaymentStatus),
			"status":         string(sess.Status),
		},
	}, nil
}

// ConstructEvent authenticates a webhook payload against its signature
// header. A modest tolerance absorbs clock skew without accepting stale
// replays.
func (s *StripeAdapter) ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEventWithTolerance(payload, sigHeader, s.WebhookSecret, 5*time.Minute)
}
