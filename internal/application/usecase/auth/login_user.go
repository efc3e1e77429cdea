// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lifetracker/backend/internal/application/adapter"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

// AdminCredentials is the single account allowed to sign in.
type AdminCredentials struct {
	Username     string
	PasswordHash string // bcrypt
}

// LoginLimits bounds failed attempts per client.
type LoginLimits struct {
	MaxAttempts int
	Window      time.Duration
}

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Username  string
	Password  string
	ClientKey string // client IP
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	credentials     AdminCredentials
	limits          LoginLimits
	attempts        adapter.AttemptStore
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	clock           adapter.Clock
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	credentials AdminCredentials,
	limits LoginLimits,
	attempts adapter.AttemptStore,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	clock adapter.Clock,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		credentials:     credentials,
		limits:          limits,
		attempts:        attempts,
		passwordService: passwordService,
		tokenService:    tokenService,
		clock:           clock,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	// Reject throttled clients before looking at the body
	count, resetAt, err := uc.attempts.Get(ctx, input.ClientKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read login attempts: %w", err)
	}
	if count >= uc.limits.MaxAttempts {
		return nil, uc.rateLimited(resetAt)
	}

	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"username and password are required",
			nil,
		)
	}

	if !uc.validCredentials(username, input.Password) {
		count, _, err := uc.attempts.Increment(ctx, input.ClientKey, uc.limits.Window)
		if err != nil {
			slog.Error("Failed to record login attempt", "error", err, "client", input.ClientKey)
		} else {
			slog.Warn("Failed login attempt", "client", input.ClientKey, "attempts", count)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid username or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Clear the counter on success
	if err := uc.attempts.Reset(ctx, input.ClientKey); err != nil {
		slog.Error("Failed to reset login attempts", "error", err, "client", input.ClientKey)
	}

	token, expiresAt, err := uc.tokenService.GenerateSessionToken(username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginUserOutput{
		Token:     token,
		Username:  username,
		ExpiresAt: expiresAt,
	}, nil
}

func (uc *LoginUserUseCase) validCredentials(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(uc.credentials.Username)) != 1 {
		return false
	}
	if uc.credentials.PasswordHash == "" {
		return false
	}
	return uc.passwordService.VerifyPassword(uc.credentials.PasswordHash, password) == nil
}

func (uc *LoginUserUseCase) rateLimited(resetAt time.Time) error {
	wait := resetAt.Sub(uc.clock.Now())
	// Round up to whole seconds
	wait = (wait + time.Second - 1).Truncate(time.Second)
	if wait < time.Second {
		wait = time.Second
	}

	return domainerror.NewAuthError(
		domainerror.ErrCodeRateLimited,
		"too many login attempts",
		&domainerror.RateLimitError{RetryAfter: wait},
	)
}
