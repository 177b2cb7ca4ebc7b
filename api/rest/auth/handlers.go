package auth

import (
	"net/http"

	"codeberg.org/encore/server/internal/auth"
	"codeberg.org/encore/server/internal/errors"
	"codeberg.org/encore/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// GateHandler checks the shared gate password and issues a token.
// A browser session cookie is set alongside the bearer token so web
// clients stay inside the gate without managing the token themselves.
func GateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if !auth.CheckGatePassword(req.Password) {
			logger.Warn("gate password rejected", "ip", c.ClientIP())
			errors.Unauthorized(c, "wrong password")
			return
		}

		token, err := auth.GenerateToken(req.DisplayName)
		if err != nil {
			errors.InternalError(c, "failed to issue token", err)
			return
		}

		if store := auth.CookieStore(); store != nil {
			session, err := store.Get(c.Request, auth.GateCookieName)
			if err == nil {
				session.Values["token"] = token
				if err := session.Save(c.Request, c.Writer); err != nil {
					logger.ErrorErr(err, "failed to save gate cookie")
				}
			}
		}

		c.JSON(http.StatusOK, GateResponse{
			Token:       token,
			DisplayName: req.DisplayName,
		})
	}
}

// MeHandler reports the display name bound to the caller's gate token
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		name, _ := auth.GetDisplayName(c)

		c.JSON(http.StatusOK, MeResponse{DisplayName: name})
	}
}
