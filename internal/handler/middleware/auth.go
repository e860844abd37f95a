package middleware

import (
	"log/slog"
	"strings"

	"weekend-booking/internal/handler/httperr"
	"weekend-booking/internal/pkg/cookie"
	"weekend-booking/internal/pkg/errs"
	"weekend-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingToken = errs.New("access token missing")
	errBadToken     = errs.New("access token rejected")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxAdminIDKey    = "admin_id"
	ctxAdminEmailKey = "admin_email"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the access_token cookie first, then a Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Unauthorized(c, errMissingToken, "Access token required")
			return
		}

		adminID, email, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Unauthorized(c, errs.Mark(err, errBadToken), "Invalid or expired token")
			return
		}

		c.Set(ctxAdminIDKey, adminID)
		c.Set(ctxAdminEmailKey, email)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	adminID, exists := c.Get(ctxAdminIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := adminID.(uuid.UUID)
	return id, ok
}

func GetAdminEmail(c *gin.Context) string {
	return c.GetString(ctxAdminEmailKey)
}
