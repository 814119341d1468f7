package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLoggerMiddlewareHandlesShortRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(LoggerMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	for _, requestID := range []string{"abc", "", "exactly-8-or-more-characters"} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if requestID != "" {
			req.Header.Set("X-Request-ID", requestID)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("X-Request-ID %q: status = %d, want 200", requestID, w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("X-Request-ID %q: response missing request ID header", requestID)
		}
	}
}
