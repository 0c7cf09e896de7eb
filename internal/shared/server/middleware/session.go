package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie carries the builder session id for browser clients.
	SessionCookie = "rb_session"
	// SessionHeader carries the builder session id for API clients.
	SessionHeader = "X-Session-Id"

	sessionIDKey = "sessionId"
)

// Session reads the caller's session id from the header or cookie and stores
// it in context. It never rejects a request; handlers start a new session
// when the id is missing or stale.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		id := strings.TrimSpace(c.GetHeader(SessionHeader))
		if id == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = strings.TrimSpace(cookie)
			}
		}
		if id != "" {
			c.Set(sessionIDKey, id)
		}
		c.Next()
	}
}

// SetSessionID records the resolved session id for downstream middleware and logging.
func SetSessionID(c *gin.Context, id string) {
	if c != nil {
		c.Set(sessionIDKey, id)
	}
}

// SessionIDFromContext fetches the session id set by the Session middleware.
func SessionIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(sessionIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
