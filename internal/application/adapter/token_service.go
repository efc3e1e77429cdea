// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"time"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// TokenService defines the interface for session token operations.
type TokenService interface {
	// GenerateSessionToken issues a signed token for username and returns its expiry.
	GenerateSessionToken(username string) (string, time.Time, error)

	// ValidateSessionToken validates a token and returns the session it carries.
	ValidateSessionToken(token string) (*entity.Session, error)
}
