package giftcards

import (
	"fmt"
	"math/rand"
	"strings"

	hashids "github.com/speps/go-hashids/v2"
)

// CodeGenerator mints customer-facing gift-card codes. Codes are hashids
// over a random pair, so they are non-sequential and carry no card ID, but
// a fixed salt keeps them reproducible for support lookups in logs.
type CodeGenerator struct {
	h *hashids.HashID
}

func NewCodeGenerator(salt string) (*CodeGenerator, error) {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = 12
	data.Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // no 0/O/1/I

	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, fmt.Errorf("init gift card hashids: %w", err)
	}
	return &CodeGenerator{h: h}, nil
}

// Generate returns a code like "8BB-F3KD-9XQP-M2TW".
func (g *CodeGenerator) Generate() (string, error) {
	encoded, err := g.h.EncodeInt64([]int64{rand.Int63(), rand.Int63()})
	if err != nil {
		return "", fmt.Errorf("encode gift card code: %w", err)
	}

	encoded = strings.ToUpper(encoded)
	if len(encoded) > 12 {
		encoded = encoded[:12]
	}

	return fmt.Sprintf("8BB-%s-%s-%s", encoded[0:4], encoded[4:8], encoded[8:12]), nil
}

// Normalize canonicalizes user input: uppercase, stray whitespace and
// dashes removed, then re-grouped. Lookup happens on the stored form.
func Normalize(code string) string {
	cleaned := strings.ToUpper(strings.TrimSpace(code))
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")

	if !strings.HasPrefix(cleaned, "8BB") || len(cleaned) != 15 {
		return strings.ToUpper(strings.TrimSpace(code))
	}
	body := cleaned[3:]
	return fmt.Sprintf("8BB-%s-%s-%s", body[0:4], body[4:8], body[8:12])
}
