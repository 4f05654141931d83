package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"adlot.app/inventory/common/logger"
	"adlot.app/inventory/internal/model"
	"adlot.app/inventory/internal/service"
)

type contextKey string

const (
	sessionCookieName             = "adlot_session"
	identityContextKey contextKey = "identity"
)

// Auth resolves the caller's credentials into an identity on the request
// context. With required set, requests without a valid credential are
// rejected with 401; otherwise they proceed unauthenticated and see
// unscoped data.
func Auth(verifier service.TokenVerifier, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
				return
			}
			c.Next()
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			c.Next()
			return
		}

		ctx := context.WithValue(c.Request.Context(), identityContextKey, identity)
		ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &identity.UserID})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// IdentityFrom returns the authenticated identity, or nil for guests.
func IdentityFrom(ctx context.Context) *model.Identity {
	identity, _ := ctx.Value(identityContextKey).(*model.Identity)
	return identity
}

// extractToken prefers the Authorization header, falling back to the
// session cookie set by the dashboard.
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie
}
