package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

type stubTokenService struct {
	valid map[string]*entity.Session
	err   error
}

func (s *stubTokenService) GenerateSessionToken(username string) (string, time.Time, error) {
	return "token-" + username, time.Time{}, nil
}

func (s *stubTokenService) ValidateSessionToken(token string) (*entity.Session, error) {
	if session, ok := s.valid[token]; ok {
		return session, nil
	}
	if s.err != nil {
		return nil, s.err
	}
	return nil, domainerror.ErrInvalidToken
}

func setupRouter(tokens *stubTokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cookie := NewSessionCookie("auth-token", false, time.Hour)
	m := NewAuthMiddleware(tokens, cookie)

	r := gin.New()
	r.GET("/protected", m.Authenticate(), func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, session.Username)
	})
	return r
}

func TestAuthenticate(t *testing.T) {
	tokens := &stubTokenService{valid: map[string]*entity.Session{
		"good": {Username: "admin", ExpiresAt: time.Now().Add(time.Hour)},
	}}

	tests := []struct {
		name       string
		cookie     string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "cookie", cookie: "good", wantStatus: http.StatusOK},
		{name: "bearer header", header: "Bearer good", wantStatus: http.StatusOK},
		{name: "missing", wantStatus: http.StatusUnauthorized, wantCode: string(domainerror.ErrCodeMissingToken)},
		{name: "invalid cookie", cookie: "bad", wantStatus: http.StatusUnauthorized, wantCode: string(domainerror.ErrCodeInvalidToken)},
		{name: "wrong scheme", header: "Basic good", wantStatus: http.StatusUnauthorized, wantCode: string(domainerror.ErrCodeMissingToken)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "auth-token", Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			setupRouter(tokens).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantStatus == http.StatusOK {
				if rec.Body.String() != "admin" {
					t.Errorf("expected admin session, got %q", rec.Body.String())
				}
				return
			}
			if !strings.Contains(rec.Body.String(), tt.wantCode) {
				t.Errorf("expected code %s in %s", tt.wantCode, rec.Body.String())
			}
			if !strings.Contains(rec.Header().Get("Set-Cookie"), "auth-token=;") {
				t.Errorf("expected cookie to be cleared, got %q", rec.Header().Get("Set-Cookie"))
			}
		})
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	tokens := &stubTokenService{err: domainerror.ErrExpiredToken}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()

	setupRouter(tokens).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), string(domainerror.ErrCodeExpiredToken)) {
		t.Errorf("expected expired token code, got %s", rec.Body.String())
	}
}
