package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenService_RoundTrip(t *testing.T) {
	s := NewTokenService("secret", time.Hour)

	token, err := s.GenerateToken("user-1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("user id = %q", claims.UserID)
	}
}

func TestTokenService_Rejects(t *testing.T) {
	s := NewTokenService("secret", time.Hour)
	other := NewTokenService("other", time.Hour)
	foreign, _ := other.GenerateToken("user-1")

	expired := NewTokenService("secret", time.Hour)
	expiredToken, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString(expired.secret)

	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{}).SignedString(s.secret)

	for name, token := range map[string]string{
		"wrong secret": foreign,
		"expired":      expiredToken,
		"garbage":      "not-a-jwt",
		"no subject":   noSubject,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := s.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestTokenService_CallbackToken(t *testing.T) {
	s := NewTokenService("secret", time.Hour)

	state, err := s.SignCallback("emp-1", "gig-1", time.Minute)
	if err != nil {
		t.Fatalf("SignCallback: %v", err)
	}
	claims, err := s.ValidateCallbackToken(state, "gig-1")
	if err != nil {
		t.Fatalf("ValidateCallbackToken: %v", err)
	}
	if claims.UserID != "emp-1" || claims.GigID != "gig-1" {
		t.Fatalf("claims = %+v", claims)
	}

	if _, err := s.ValidateCallbackToken(state, "gig-2"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("other gig: expected ErrInvalidToken, got %v", err)
	}
	if _, err := s.ValidateToken(state); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("state as bearer: expected ErrInvalidToken, got %v", err)
	}

	bearer, _ := s.GenerateToken("emp-1")
	if _, err := s.ValidateCallbackToken(bearer, "gig-1"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("bearer as state: expected ErrInvalidToken, got %v", err)
	}

	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "emp-1",
		GigID:  "gig-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{callbackAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString(s.secret)
	if _, err := s.ValidateCallbackToken(expired, "gig-1"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired: expected ErrInvalidToken, got %v", err)
	}
}
