package orders

import (
	"regexp"
	"testing"
)

var orderNumberFormat = regexp.MustCompile(`^8BB-[A-Z2-7]{4}-[0-9A-F]{4}$`)

func TestGenerate_OrderNumberFormat(t *testing.T) {
	gen := NewOrderNumberGenerator("test-secret")

	for i := 0; i < 50; i++ {
		n := gen.Generate(42)
		if !orderNumberFormat.MatchString(n) {
			t.Fatalf("order number %q does not match expected format", n)
		}
	}
}

func TestGenerate_Unique(t *testing.T) {
	gen := NewOrderNumberGenerator("test-secret")

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		n := gen.Generate(7)
		if seen[n] {
			t.Fatalf("duplicate order number %q after %d generations", n, i)
		}
		seen[n] = true
	}
}
