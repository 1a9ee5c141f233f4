package main

import "testing"

func TestHashResetToken(t *testing.T) {
	a := hashResetToken("0b7aceb2-0f9a-4f0e-9c40-1f5f9ef1a001")
	b := hashResetToken("0b7aceb2-0f9a-4f0e-9c40-1f5f9ef1a001")
	c := hashResetToken("0b7aceb2-0f9a-4f0e-9c40-1f5f9ef1a002")

	if a != b {
		t.Error("same token must hash to the same stored form")
	}
	if a == c {
		t.Error("different tokens must not collide")
	}
	if len(a) != 64 {
		t.Errorf("stored form is %d chars, want 64 hex chars", len(a))
	}
	if a == "0b7aceb2-0f9a-4f0e-9c40-1f5f9ef1a001" {
		t.Error("raw token must never be stored")
	}
}
