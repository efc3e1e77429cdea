package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookie writes and clears the httpOnly session cookie.
type SessionCookie struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// NewSessionCookie creates a session cookie helper. maxAge should match the token lifetime.
func NewSessionCookie(name string, secure bool, maxAge time.Duration) *SessionCookie {
	return &SessionCookie{Name: name, Secure: secure, MaxAge: maxAge}
}

// Set stores token on the client.
func (s *SessionCookie) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, token, int(s.MaxAge.Seconds()), "/", "", s.Secure, true)
}

// Clear deletes the cookie from the client.
func (s *SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, "", -1, "/", "", s.Secure, true)
}
