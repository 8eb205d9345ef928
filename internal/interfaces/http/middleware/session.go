// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/market-store-gateway/internal/config"
	"github.com/your-org/market-store-gateway/internal/pkg/auth"
)

const sessionIDKey = "cart_session_id"

// Session resolves the cart session for every request. A valid session
// cookie keeps its ID; anything else (missing, expired, tampered) gets a
// fresh session and cookie. Customers stay anonymous; the session only pins
// which cart is theirs.
func Session(cfg *config.Config, sessions *auth.SessionManager) gin.HandlerFunc {
	maxAge := int(cfg.Session.TokenTTL.Seconds())

	return func(c *gin.Context) {
		var sessionID string

		if token, err := c.Cookie(cfg.Session.CookieName); err == nil && token != "" {
			if id, err := sessions.ValidateToken(token); err == nil {
				sessionID = id
			}
		}

		if sessionID == "" {
			sessionID = sessions.NewSessionID()

			token, err := sessions.GenerateToken(sessionID)
			if err == nil {
				c.SetCookie(cfg.Session.CookieName, token, maxAge, "/", "", cfg.IsProduction(), true)
			}
		}

		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the cart session ID resolved for this request
func GetSessionID(c *gin.Context) string {
	if id, ok := c.Get(sessionIDKey); ok {
		if sessionID, ok := id.(string); ok {
			return sessionID
		}
	}
	return ""
}
