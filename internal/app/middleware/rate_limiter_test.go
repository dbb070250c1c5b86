package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTokenBucketBurst(t *testing.T) {
	bucket := NewTokenBucket(1, 3)

	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())
}

func TestTokenBucketRefills(t *testing.T) {
	// 100 tokens per second so the test does not have to sleep long
	bucket := NewTokenBucket(100, 1)

	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, bucket.Allow())
}

func TestTokenBucketCapsAtCapacity(t *testing.T) {
	bucket := NewTokenBucket(5, 2)

	// The bucket starts full, idle time must not push it above capacity
	time.Sleep(20 * time.Millisecond)
	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())
}

func TestIPRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IPRateLimiter(1, 2))
	r.GET("/limited", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	request := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, request("10.1.1.1:1234"))
	assert.Equal(t, http.StatusOK, request("10.1.1.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, request("10.1.1.1:1234"))

	// A different client is unaffected
	assert.Equal(t, http.StatusOK, request("10.1.1.2:1234"))
}

func TestPathRateLimiterIsolatesPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PathRateLimiter(1, 1))
	handler := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	r.GET("/first-path", handler)
	r.GET("/second-path", handler)

	request := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, request("/first-path"))
	assert.Equal(t, http.StatusTooManyRequests, request("/first-path"))
	assert.Equal(t, http.StatusOK, request("/second-path"))
}
