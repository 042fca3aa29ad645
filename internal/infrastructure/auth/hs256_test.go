package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func hsToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestHS256VerifierAcceptsValidToken(t *testing.T) {
	v := NewHS256Verifier("secret")
	token := hsToken(t, "secret", jwt.MapClaims{
		"sub":   "user-1",
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	id, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.UserID != "user-1" || id.Email != "alice@example.com" {
		t.Fatalf("unexpected identity %+v", id)
	}
}

func TestHS256VerifierRejectsWrongSecret(t *testing.T) {
	v := NewHS256Verifier("secret")
	token := hsToken(t, "other", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, err := v.Verify(context.Background(), token); err == nil {
		t.Fatal("expected verification failure")
	}
}

func TestHS256VerifierRejectsExpiredToken(t *testing.T) {
	v := NewHS256Verifier("secret")
	token := hsToken(t, "secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	if _, err := v.Verify(context.Background(), token); err == nil {
		t.Fatal("expected verification failure")
	}
}

func TestHS256VerifierRejectsMissingSubject(t *testing.T) {
	v := NewHS256Verifier("secret")
	token := hsToken(t, "secret", jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	if _, err := v.Verify(context.Background(), token); err == nil {
		t.Fatal("expected verification failure")
	}
}
