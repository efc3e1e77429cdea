package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type attempt struct {
	count   int
	resetAt time.Time
}

type fakeAttemptStore struct {
	now     time.Time
	entries map[string]*attempt
}

func newFakeAttemptStore(now time.Time) *fakeAttemptStore {
	return &fakeAttemptStore{now: now, entries: make(map[string]*attempt)}
}

func (s *fakeAttemptStore) Increment(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	entry, ok := s.entries[key]
	if !ok || s.now.After(entry.resetAt) {
		entry = &attempt{resetAt: s.now.Add(window)}
		s.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.resetAt, nil
}

func (s *fakeAttemptStore) Get(_ context.Context, key string) (int, time.Time, error) {
	entry, ok := s.entries[key]
	if !ok || s.now.After(entry.resetAt) {
		return 0, time.Time{}, nil
	}
	return entry.count, entry.resetAt, nil
}

func (s *fakeAttemptStore) Reset(_ context.Context, key string) error {
	delete(s.entries, key)
	return nil
}

func (s *fakeAttemptStore) Cleanup(_ context.Context) error { return nil }

type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) { return "hash:" + password, nil }

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokenService struct{ expiresAt time.Time }

func (s fakeTokenService) GenerateSessionToken(username string) (string, time.Time, error) {
	return "token-for-" + username, s.expiresAt, nil
}

func (s fakeTokenService) ValidateSessionToken(token string) (*entity.Session, error) {
	return nil, domainerror.ErrInvalidToken
}

var now = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func newUseCase(store *fakeAttemptStore) *LoginUserUseCase {
	return NewLoginUserUseCase(
		AdminCredentials{Username: "admin", PasswordHash: "hash:secret"},
		LoginLimits{MaxAttempts: 5, Window: time.Minute},
		store,
		fakePasswordService{},
		fakeTokenService{expiresAt: now.Add(7 * 24 * time.Hour)},
		fixedClock{now},
	)
}

func authErrorCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	return authErr.Code
}

func TestLoginUserUseCase(t *testing.T) {
	tests := []struct {
		name         string
		input        LoginUserInput
		expectedCode domainerror.AuthErrorCode
	}{
		{name: "valid credentials", input: LoginUserInput{Username: "admin", Password: "secret", ClientKey: "1.1.1.1"}},
		{name: "missing password", input: LoginUserInput{Username: "admin", ClientKey: "1.1.1.1"}, expectedCode: domainerror.ErrCodeMissingFields},
		{name: "missing username", input: LoginUserInput{Password: "secret", ClientKey: "1.1.1.1"}, expectedCode: domainerror.ErrCodeMissingFields},
		{name: "wrong password", input: LoginUserInput{Username: "admin", Password: "nope", ClientKey: "1.1.1.1"}, expectedCode: domainerror.ErrCodeInvalidCredentials},
		{name: "wrong username", input: LoginUserInput{Username: "root", Password: "secret", ClientKey: "1.1.1.1"}, expectedCode: domainerror.ErrCodeInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := newUseCase(newFakeAttemptStore(now)).Execute(context.Background(), tt.input)
			if tt.expectedCode != "" {
				if code := authErrorCode(t, err); code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Token != "token-for-admin" {
				t.Errorf("unexpected token %q", output.Token)
			}
		})
	}
}

func TestLoginUserUseCase_RateLimitsAfterFiveFailures(t *testing.T) {
	store := newFakeAttemptStore(now)
	uc := newUseCase(store)
	bad := LoginUserInput{Username: "admin", Password: "nope", ClientKey: "10.0.0.1"}

	for i := 0; i < 5; i++ {
		_, err := uc.Execute(context.Background(), bad)
		if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
			t.Fatalf("attempt %d: expected invalid credentials, got %s", i+1, code)
		}
	}

	// Even the correct password is refused inside the window
	_, err := uc.Execute(context.Background(), LoginUserInput{Username: "admin", Password: "secret", ClientKey: "10.0.0.1"})
	if code := authErrorCode(t, err); code != domainerror.ErrCodeRateLimited {
		t.Fatalf("expected rate limited, got %s", code)
	}
	var rateErr *domainerror.RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatal("expected RateLimitError")
	}
	if rateErr.RetryAfter != time.Minute {
		t.Errorf("expected retry after 1m, got %s", rateErr.RetryAfter)
	}
	if !errors.Is(err, domainerror.ErrTooManyAttempts) {
		t.Error("expected ErrTooManyAttempts in the chain")
	}

	// Other clients are unaffected
	if _, err := uc.Execute(context.Background(), LoginUserInput{Username: "admin", Password: "secret", ClientKey: "10.0.0.2"}); err != nil {
		t.Errorf("unexpected error for another client: %v", err)
	}

	// The window expires
	store.now = now.Add(61 * time.Second)
	if _, err := uc.Execute(context.Background(), LoginUserInput{Username: "admin", Password: "secret", ClientKey: "10.0.0.1"}); err != nil {
		t.Errorf("unexpected error after window: %v", err)
	}
}

func TestLoginUserUseCase_SuccessResetsCounter(t *testing.T) {
	store := newFakeAttemptStore(now)
	uc := newUseCase(store)

	for i := 0; i < 4; i++ {
		_, _ = uc.Execute(context.Background(), LoginUserInput{Username: "admin", Password: "nope", ClientKey: "k"})
	}
	if _, err := uc.Execute(context.Background(), LoginUserInput{Username: "admin", Password: "secret", ClientKey: "k"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.entries["k"]; ok {
		t.Error("expected the counter to be cleared")
	}
}

func TestLoginUserUseCase_EmptyHashRejectsEverything(t *testing.T) {
	uc := NewLoginUserUseCase(
		AdminCredentials{Username: "admin"},
		LoginLimits{MaxAttempts: 5, Window: time.Minute},
		newFakeAttemptStore(now),
		fakePasswordService{},
		fakeTokenService{},
		fixedClock{now},
	)

	_, err := uc.Execute(context.Background(), LoginUserInput{Username: "admin", Password: "", ClientKey: "k"})
	if code := authErrorCode(t, err); code != domainerror.ErrCodeMissingFields {
		t.Errorf("expected missing fields, got %s", code)
	}
	_, err = uc.Execute(context.Background(), LoginUserInput{Username: "admin", Password: "x", ClientKey: "k"})
	if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
		t.Errorf("expected invalid credentials, got %s", code)
	}
}
