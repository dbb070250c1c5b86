package middleware

import (
	"sync"
	"time"

	"immowaechter-http-service/internal/error/code"
	"immowaechter-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// TokenBucket is a simple token bucket rate limiter
type TokenBucket struct {
	rate       float64   // tokens added per second
	capacity   int       // bucket capacity
	tokens     float64   // currently available tokens
	lastRefill time.Time // time of last refill
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket limiter
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow tries to take one token from the bucket
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

var (
	ipLimiters     = make(map[string]*TokenBucket)
	ipLimitersMu   sync.RWMutex
	pathLimiters   = make(map[string]*TokenBucket)
	pathLimitersMu sync.RWMutex
)

// RateLimiterConfig configures a rate limiting middleware instance
type RateLimiterConfig struct {
	Rate       float64                   // requests allowed per second
	Burst      int                       // burst allowance
	ExpiryTime time.Duration             // limiter expiry
	LimitType  string                    // "ip", "path" or "combined"
	KeyFunc    func(*gin.Context) string // custom key function
}

// DefaultRateLimiterConfig is the default limiter configuration
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       1,
	Burst:      5,
	ExpiryTime: 1 * time.Hour,
	LimitType:  "ip",
	KeyFunc:    nil,
}

// getIPLimiter returns the limiter for an IP, creating it on first use
func getIPLimiter(ip string, cfg RateLimiterConfig) *TokenBucket {
	ipLimitersMu.RLock()
	limiter, exists := ipLimiters[ip]
	ipLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(cfg.Rate, cfg.Burst)
		ipLimitersMu.Lock()
		ipLimiters[ip] = limiter
		ipLimitersMu.Unlock()

		if cfg.ExpiryTime > 0 {
			go func() {
				time.Sleep(cfg.ExpiryTime)
				ipLimitersMu.Lock()
				delete(ipLimiters, ip)
				ipLimitersMu.Unlock()
			}()
		}
	}

	return limiter
}

// getPathLimiter returns the limiter for a request path
func getPathLimiter(path string, cfg RateLimiterConfig) *TokenBucket {
	pathLimitersMu.RLock()
	limiter, exists := pathLimiters[path]
	pathLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(cfg.Rate, cfg.Burst)
		pathLimitersMu.Lock()
		pathLimiters[path] = limiter
		pathLimitersMu.Unlock()
	}

	return limiter
}

// RateLimiter creates a rate limiting middleware
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	var cfg RateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultRateLimiterConfig
	}

	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.LimitType == "" {
		cfg.LimitType = DefaultRateLimiterConfig.LimitType
	}

	return func(c *gin.Context) {
		var limiter *TokenBucket

		switch cfg.LimitType {
		case "ip":
			ip := c.ClientIP()
			limiter = getIPLimiter(ip, cfg)
		case "path":
			path := c.Request.URL.Path
			limiter = getPathLimiter(path, cfg)
		case "combined":
			ip := c.ClientIP()
			path := c.Request.URL.Path
			key := ip + ":" + path
			limiter = getIPLimiter(key, cfg)
		default:
			if cfg.KeyFunc != nil {
				key := cfg.KeyFunc(c)
				limiter = getIPLimiter(key, cfg)
			} else {
				ip := c.ClientIP()
				limiter = getIPLimiter(ip, cfg)
			}
		}

		if !limiter.Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "Zu viele Anfragen, bitte versuchen Sie es später erneut", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// IPRateLimiter limits requests per client IP
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "ip",
	})
}

// PathRateLimiter limits requests per request path
func PathRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "path",
	})
}

// CombinedRateLimiter limits requests per IP and path combination
func CombinedRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "combined",
	})
}

// CustomRateLimiter limits requests with a custom key function
func CustomRateLimiter(rate float64, burst int, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "custom",
		KeyFunc:   keyFunc,
	})
}

func init() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			cleanExpiredLimiters()
		}
	}()
}

// cleanExpiredLimiters drops a share of idle limiters each sweep
func cleanExpiredLimiters() {
	now := time.Now()

	ipLimitersMu.Lock()
	for ip := range ipLimiters {
		if now.Nanosecond()%2 == 0 {
			delete(ipLimiters, ip)
		}
	}
	ipLimitersMu.Unlock()

	pathLimitersMu.Lock()
	for path := range pathLimiters {
		if now.Nanosecond()%3 == 0 {
			delete(pathLimiters, path)
		}
	}
	pathLimitersMu.Unlock()
}
