// File: internal/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	WindowSize    time.Duration
	MaxAttempts   int
	CleanupPeriod time.Duration
}

// DefaultAuthConfig returns sensible defaults for auth endpoints.
func DefaultAuthConfig() *Config {
	return &Config{
		WindowSize:    15 * time.Minute,
		MaxAttempts:   10,
		CleanupPeriod: 30 * time.Minute,
	}
}

type attemptRecord struct {
	count     int
	firstSeen time.Time
}

// MemoryRateLimiter implements in-memory per-identifier rate limiting.
type MemoryRateLimiter struct {
	config   *Config
	attempts map[string]*attemptRecord
	mu       sync.Mutex
	stopCh   chan struct{}
}

func NewMemoryRateLimiter(config *Config) *MemoryRateLimiter {
	limiter := &MemoryRateLimiter{
		config:   config,
		attempts: make(map[string]*attemptRecord),
		stopCh:   make(chan struct{}),
	}
	go limiter.cleanupLoop()
	return limiter
}

// Allow checks whether a request from identifier fits in the current window.
func (rl *MemoryRateLimiter) Allow(identifier string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	record, exists := rl.attempts[identifier]
	if !exists || now.Sub(record.firstSeen) > rl.config.WindowSize {
		rl.attempts[identifier] = &attemptRecord{count: 1, firstSeen: now}
		return true
	}

	record.count++
	return record.count <= rl.config.MaxAttempts
}

// Stop terminates the cleanup goroutine.
func (rl *MemoryRateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *MemoryRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *MemoryRateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := time.Now().Add(-rl.config.WindowSize)
	for id, record := range rl.attempts {
		if record.firstSeen.Before(cutoff) {
			delete(rl.attempts, id)
		}
	}
}

// GetClientIP extracts the originating client address, preferring proxy
// headers over the socket peer.
func GetClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
