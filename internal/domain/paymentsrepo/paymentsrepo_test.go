package paymentsrepo

import "testing"

func TestNormalizeNewFillsDefaults(t *testing.T) {
	p := &Payment{OrderID: 1, Provider: "stripe", AmountCents: 2500}
	normalizeNew(p)

	if p.Currency != DefaultCurrency {
		t.Errorf("Currency = %q, want %q", p.Currency, DefaultCurrency)
	}
	if p.Status != StatusPending {
		t.Errorf("Status = %q, want %q", p.Status, StatusPending)
	}
}

func TestNormalizeNewKeepsExplicitValues(t *testing.T) {
	p := &Payment{OrderID: 1, Provider: "stripe", AmountCents: 2500, Currency: "NZD", Status: StatusFailed}
	normalizeNew(p)

	if p.Currency != "NZD" {
		t.Errorf("Currency = %q, want NZD", p.Currency)
	}
	if p.Status != StatusFailed {
		t.Errorf("Status = %q, want %q", p.Status, StatusFailed)
	}
}
