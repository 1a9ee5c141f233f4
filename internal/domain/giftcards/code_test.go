package giftcards

import (
	"regexp"
	"testing"
)

var codeFormat = regexp.MustCompile(`^8BB-[A-Z2-9]{4}-[A-Z2-9]{4}-[A-Z2-9]{4}$`)

func TestGenerate_Format(t *testing.T) {
	gen, err := NewCodeGenerator("test-salt")
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := gen.Generate()
		if err != nil {
			t.Fatal(err)
		}
		if !codeFormat.MatchString(code) {
			t.Fatalf("code %q does not match expected format", code)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q", code)
		}
		seen[code] = true
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"8BB-F3KD-9XQP-M2TW", "8BB-F3KD-9XQP-M2TW"},
		{"8bb-f3kd-9xqp-m2tw", "8BB-F3KD-9XQP-M2TW"},
		{"  8BB F3KD 9XQP M2TW ", "8BB-F3KD-9XQP-M2TW"},
		{"8BBF3KD9XQPM2TW", "8BB-F3KD-9XQP-M2TW"},
		// Unrecognized shapes pass through trimmed/uppercased for lookup.
		{" legacy-code ", "LEGACY-CODE"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
