package payments

import (
	"context"
	"strings"
	"testing"
)

type stubGateway struct {
	initiated PaymentRequest
	verified  PaymentVerifyRequest
	verify    PaymentVerifyResponse
}

func (g *stubGateway) InitiatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	g.initiated = req
	return PaymentResponse{PaymentURL: "https://pay.example/" + req.TransactionID, ProviderRef: "ref_1"}, nil
}

func (g *stubGateway) VerifyPayment(ctx context.Context, req PaymentVerifyRequest) (PaymentVerifyResponse, error) {
	g.verified = req
	return g.verify, nil
}

func TestManagerRoutesToRegisteredGateway(t *testing.T) {
	gw := &stubGateway{verify: PaymentVerifyResponse{Success: true, State: "complete", Terminal: true}}
	m := NewPaymentManager()
	m.RegisterGateway("stripe", gw)

	resp, err := m.InitiatePayment(context.Background(), "stripe", PaymentRequest{TransactionID: "8BB-TEST"})
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}
	if resp.ProviderRef != "ref_1" {
		t.Errorf("ProviderRef = %q, want ref_1", resp.ProviderRef)
	}
	if gw.initiated.TransactionID != "8BB-TEST" {
		t.Errorf("gateway saw transaction %q, want 8BB-TEST", gw.initiated.TransactionID)
	}

	vr, err := m.VerifyPayment(context.Background(), "stripe", PaymentVerifyRequest{ProviderRef: "ref_1"})
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if !vr.Success || !vr.Terminal {
		t.Errorf("verify = %+v, want success and terminal", vr)
	}
	if gw.verified.ProviderRef != "ref_1" {
		t.Errorf("gateway saw ref %q, want ref_1", gw.verified.ProviderRef)
	}
}

func TestManagerRejectsUnknownGateway(t *testing.T) {
	m := NewPaymentManager()
	m.RegisterGateway("stripe", &stubGateway{})

	if _, err := m.InitiatePayment(context.Background(), "paypal", PaymentRequest{}); err == nil {
		t.Error("InitiatePayment with unregistered gateway: want error")
	}
	if _, err := m.VerifyPayment(context.Background(), "paypal", PaymentVerifyRequest{}); err == nil {
		t.Error("VerifyPayment with unregistered gateway: want error")
	}
}

func TestCounterAdapterIssuesReference(t *testing.T) {
	c := NewCounterAdapter()

	resp, err := c.InitiatePayment(context.Background(), PaymentRequest{TransactionID: "8BB-TEST"})
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}
	if !strings.HasPrefix(resp.ProviderRef, "counter_") {
		t.Errorf("ProviderRef = %q, want counter_ prefix", resp.ProviderRef)
	}
	if resp.PaymentURL != "" {
		t.Errorf("PaymentURL = %q, want empty for counter payments", resp.PaymentURL)
	}
}

// A counter payment only settles when staff mark it paid, so the adapter's
// own verify must never report success or a terminal state.
func TestCounterAdapterNeverSelfSettles(t *testing.T) {
	c := NewCounterAdapter()

	vr, err := c.VerifyPayment(context.Background(), PaymentVerifyRequest{ProviderRef: "counter_abc"})
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if vr.Success {
		t.Error("counter verify reported success")
	}
	if vr.Terminal {
		t.Error("counter verify reported a terminal state")
	}
	if vr.State != "awaiting_counter" {
		t.Errorf("State = %q, want awaiting_counter", vr.State)
	}
}
