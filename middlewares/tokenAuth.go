package middlewares

import (
	"CareDesk/utils"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type contextKey string

const claimsKey contextKey = "tokenClaims"

// TokenValidator checks an access token and returns its claims.
type TokenValidator interface {
	ValidateToken(token string, roles ...string) (*utils.TokenClaims, error)
}

// TokenAuthMiddleware validates the access token and adds its claims to the
// request context. The token is read from the Authorization header, then the
// accessToken cookie, then the accessToken query parameter.
func TokenAuthMiddleware(validator TokenValidator, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			return
		}

		claims, err := validator.ValidateToken(token, roles...)
		if err != nil {
			if errors.Is(err, utils.ErrInsufficientPermissions) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient privileges"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), claimsKey, claims)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie != "" {
		return cookie
	}
	return c.Query("accessToken")
}

// ClaimsFromContext retrieves the token claims stored by TokenAuthMiddleware.
func ClaimsFromContext(ctx context.Context) (*utils.TokenClaims, error) {
	claims, ok := ctx.Value(claimsKey).(*utils.TokenClaims)
	if !ok {
		return nil, errors.New("token claims not found in context")
	}
	return claims, nil
}
