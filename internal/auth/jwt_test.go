package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestAuthenticator(accessTTL, refreshTTL time.Duration) *JWTAuthenticator {
	return NewJWTAuthenticator("access-secret", "refresh-secret", "8bitbar", "8bitbar", accessTTL, refreshTTL)
}

func TestGenerateTokens_RoundTrip(t *testing.T) {
	a := newTestAuthenticator(time.Hour, 24*time.Hour)

	access, refresh, err := a.GenerateTokens(42, "staff")
	if err != nil {
		t.Fatal(err)
	}

	tok, err := a.ValidateAccessToken(access)
	if err != nil {
		t.Fatalf("validate access: %v", err)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", tok.Claims)
	}
	if sub, _ := claims["sub"].(float64); int64(sub) != 42 {
		t.Errorf("sub = %v, want 42", claims["sub"])
	}
	if role, _ := claims["role"].(string); role != "staff" {
		t.Errorf("role = %v, want staff", claims["role"])
	}

	if _, err := a.ValidateRefreshToken(refresh); err != nil {
		t.Fatalf("validate refresh: %v", err)
	}
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	a := newTestAuthenticator(time.Hour, 24*time.Hour)
	b := NewJWTAuthenticator("other-secret", "other-refresh", "8bitbar", "8bitbar", time.Hour, 24*time.Hour)

	access, _, err := a.GenerateTokens(1, "customer")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := b.ValidateAccessToken(access); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateAccessToken_RefreshNotInterchangeable(t *testing.T) {
	a := newTestAuthenticator(time.Hour, 24*time.Hour)

	_, refresh, err := a.GenerateTokens(1, "customer")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := a.ValidateAccessToken(refresh); err == nil {
		t.Error("refresh token must not validate as an access token")
	}
}

func TestValidateAccessToken_Expired(t *testing.T) {
	a := newTestAuthenticator(-time.Minute, 24*time.Hour)

	access, _, err := a.GenerateTokens(1, "customer")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := a.ValidateAccessToken(access); err == nil {
		t.Error("expected expired token to fail validation")
	}
}
