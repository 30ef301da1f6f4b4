package mcp

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitConfig bounds HTTP requests to the server.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate. Zero disables limiting.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit is applied by the CLI when HTTP mode is used.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 20, BurstSize: 40}

// limit wraps next with a token bucket. Requests over the limit get 429.
func limit(cfg RateLimitConfig, next http.Handler) http.Handler {
	if cfg.RequestsPerSecond <= 0 {
		return next
	}
	burst := max(cfg.BurstSize, 1)
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
