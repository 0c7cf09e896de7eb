package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func sessionEcho() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Session())
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, SessionIDFromContext(c))
	})
	return router
}

func TestSessionPrefersHeaderOverCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(SessionHeader, " from-header ")
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "from-cookie"})
	resp := httptest.NewRecorder()
	sessionEcho().ServeHTTP(resp, req)

	if got := resp.Body.String(); got != "from-header" {
		t.Fatalf("expected header session id, got %q", got)
	}
}

func TestSessionFallsBackToCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "from-cookie"})
	resp := httptest.NewRecorder()
	sessionEcho().ServeHTTP(resp, req)

	if got := resp.Body.String(); got != "from-cookie" {
		t.Fatalf("expected cookie session id, got %q", got)
	}
}

func TestSessionAllowsAnonymousRequests(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp := httptest.NewRecorder()
	sessionEcho().ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != "" {
		t.Fatalf("expected empty session id, got %q", got)
	}
}
