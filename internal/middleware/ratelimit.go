// File: internal/middleware/ratelimit.go
package middleware

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nkarimof/go-dialogue/internal/ratelimit"
)

// RateLimitMiddleware applies per-IP rate limiting, used on the login route.
func RateLimitMiddleware(limiter *ratelimit.MemoryRateLimiter, name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := ratelimit.GetClientIP(r)
			if !limiter.Allow(clientIP) {
				log.Printf("[RateLimit] Blocked %s request from %s", name, clientIP)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Too many attempts. Please try again later.",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
