package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifetracker/backend/internal/application/usecase/auth"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/entrypoint/dto"
	"github.com/lifetracker/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	loginUseCase *auth.LoginUserUseCase
	cookie       *middleware.SessionCookie
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(loginUseCase *auth.LoginUserUseCase, cookie *middleware.SessionCookie) *AuthController {
	return &AuthController{
		loginUseCase: loginUseCase,
		cookie:       cookie,
	}
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	// A malformed body is treated as missing credentials
	_ = ctx.ShouldBindJSON(&req)

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Username:  req.Username,
		Password:  req.Password,
		ClientKey: ctx.ClientIP(),
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	c.cookie.Set(ctx, output.Token)
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Token:   output.Token,
	})
}

// Logout handles POST /auth/logout requests.
func (c *AuthController) Logout(ctx *gin.Context) {
	c.cookie.Clear(ctx)
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Successfully logged out",
	})
}

// Session handles GET /auth/session requests.
func (c *AuthController) Session(ctx *gin.Context) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SessionResponse{
		Username:  session.Username,
		ExpiresAt: session.ExpiresAt,
	})
}

// handleAuthError handles authentication errors and returns appropriate HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		internalError(ctx, err)
		return
	}

	var limitErr *domainerror.RateLimitError
	if errors.As(err, &limitErr) {
		retryAfter := int(limitErr.RetryAfter / time.Second)
		ctx.Header("Retry-After", strconv.Itoa(retryAfter))
		ctx.JSON(http.StatusTooManyRequests, dto.RateLimitedResponse{
			ErrorResponse: dto.ErrorResponse{
				Error: authErr.Message,
				Code:  string(authErr.Code),
			},
			RetryAfter: retryAfter,
		})
		return
	}

	ctx.JSON(c.getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
		Error: authErr.Message,
		Code:  string(authErr.Code),
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func (c *AuthController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
