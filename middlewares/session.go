package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie carries the anonymous session id the cart is scoped to.
const SessionCookie = "ck_session"

const sessionMaxAge = 7 * 24 * 60 * 60

// SessionMiddleware assigns a session id to first-time visitors and exposes
// it to handlers. There are no accounts; the cookie is the whole identity.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}
		c.Set("sessionId", sid)
		c.Next()
	}
}
