package adapters

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func TestTokenService_RoundTrip(t *testing.T) {
	clock := &fixedClock{now: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)}
	svc := NewTokenService("test-secret", 0, clock)

	token, expiresAt, err := svc.GenerateSessionToken("admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !expiresAt.Equal(clock.now.Add(7 * 24 * time.Hour)) {
		t.Errorf("expected a 7 day session, got %s", expiresAt)
	}

	session, err := svc.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Username != "admin" || !session.ExpiresAt.Equal(expiresAt) {
		t.Errorf("unexpected session %+v", session)
	}

	clock.now = expiresAt.Add(time.Second)
	if _, err := svc.ValidateSessionToken(token); !errors.Is(err, domainerror.ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestTokenService_RejectsForeignTokens(t *testing.T) {
	clock := &fixedClock{now: time.Now()}
	svc := NewTokenService("test-secret", time.Hour, clock)

	other, _, err := NewTokenService("other-secret", time.Hour, clock).GenerateSessionToken("admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"username": "admin",
		"exp":      clock.now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, token := range map[string]string{
		"wrong secret": other,
		"alg none":     none,
		"garbage":      "not-a-token",
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.ValidateSessionToken(token); !errors.Is(err, domainerror.ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestPasswordService(t *testing.T) {
	svc := &passwordService{cost: bcrypt.MinCost}

	hash, err := svc.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.VerifyPassword(hash, "correct horse"); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := svc.VerifyPassword(hash, "battery staple"); err == nil {
		t.Error("expected mismatch")
	}
}
