package utils

import "github.com/gin-gonic/gin"

// CurrentSessionID reads the session id set by the session middleware.
// Empty means the middleware did not run for this route.
func CurrentSessionID(c *gin.Context) string {
	if v, ok := c.Get("sessionId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
