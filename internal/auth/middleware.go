package auth

import (
	"strings"

	"codeberg.org/encore/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const displayNameKey = "display_name"

// requires a valid gate token (Bearer header or gate cookie)
func GateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromRequest(c)
		if !ok {
			errors.Unauthorized(c, "gate password required")
			c.Abort()
			return
		}

		c.Set(displayNameKey, claims.DisplayName)
		c.Next()
	}
}

// validates a gate token if present but doesn't require it
func OptionalGateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := claimsFromRequest(c); ok {
			c.Set(displayNameKey, claims.DisplayName)
		}

		c.Next()
	}
}

// extracts the caller's display name from context after GateMiddleware
func GetDisplayName(c *gin.Context) (string, bool) {
	name, exists := c.Get(displayNameKey)
	if !exists {
		return "", false
	}

	return name.(string), true
}

// checks the Authorization header first, then falls back to the gate cookie
func claimsFromRequest(c *gin.Context) (*Claims, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := ValidateToken(parts[1]); err == nil {
				return claims, true
			}
		}
	}

	if cookieStore == nil {
		return nil, false
	}

	session, err := cookieStore.Get(c.Request, GateCookieName)
	if err != nil {
		return nil, false
	}

	raw, ok := session.Values["token"].(string)
	if !ok || raw == "" {
		return nil, false
	}

	claims, err := ValidateToken(raw)
	if err != nil {
		return nil, false
	}

	return claims, true
}
