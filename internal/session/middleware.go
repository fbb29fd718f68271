package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/agri-storefront/internal/platform/logger"
)

const contextKey = "session_id"

type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge int // seconds
}

// Middleware resolves the caller's session from the signed cookie, minting a
// new session (and cookie) when the cookie is missing or does not verify.
func Middleware(issuer *TokenIssuer, cookie CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(cookie.Name); err == nil && raw != "" {
			if sessionID, err := issuer.Parse(raw); err == nil {
				c.Set(contextKey, sessionID)
				c.Next()
				return
			}
			logger.Warn("Discarding unverifiable session cookie from %s", c.ClientIP())
		}

		sessionID := NewSessionID()
		token, err := issuer.Issue(sessionID)
		if err != nil {
			logger.Error("Session middleware: failed to issue token", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookie.Name, token, cookie.MaxAge, "/", "", cookie.Secure, true)
		c.Set(contextKey, sessionID)
		c.Next()
	}
}

// FromContext returns the session id placed by Middleware, or "" outside it.
func FromContext(c *gin.Context) string {
	return c.GetString(contextKey)
}
