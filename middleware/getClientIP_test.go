package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(remoteAddr string, headers map[string]string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		c.Request.RemoteAddr = remoteAddr
		for k, v := range headers {
			c.Request.Header.Set(k, v)
		}
		return c
	}

	t.Run("forwarded chain wins", func(t *testing.T) {
		c := newCtx("10.0.0.1:4321", map[string]string{
			"X-Forwarded-For": "203.0.113.7, 10.0.0.2",
			"X-Real-IP":       "10.0.0.3",
		})
		assert.Equal(t, "203.0.113.7", getClientIP(c))
	})

	t.Run("real ip fallback", func(t *testing.T) {
		c := newCtx("10.0.0.1:4321", map[string]string{"X-Real-IP": "203.0.113.9"})
		assert.Equal(t, "203.0.113.9", getClientIP(c))
	})

	t.Run("remote addr strips port", func(t *testing.T) {
		c := newCtx("198.51.100.4:9999", nil)
		assert.Equal(t, "198.51.100.4", getClientIP(c))
	})
}
