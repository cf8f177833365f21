package main

import (
	"crypto/subtle"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MaxRateLimiterEntries caps the number of tracked client IPs
const MaxRateLimiterEntries = 10000

// AuditLog records a key recovery related event for the audit trail
func AuditLog(eventType, clientIP, ssid, details string) {
	logger.Info("AUDIT",
		zap.String("event", eventType),
		zap.String("client_ip", clientIP),
		zap.String("ssid", ssid),
		zap.String("details", details),
		zap.Time("timestamp", time.Now()),
	)
}

// rateLimiter is a fixed window request counter per client IP
type rateLimiter struct {
	mu       sync.Mutex
	windows  map[string]*requestWindow
	rate     int           // requests allowed per window
	window   time.Duration // window length
	stopCh   chan struct{} // closed to stop the cleanup goroutine
	stopOnce sync.Once
}

// requestWindow counts requests of one IP in the current window
type requestWindow struct {
	count   int
	started time.Time
}

// newRateLimiter creates a limiter allowing rate requests per window
func newRateLimiter(rate int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		windows: make(map[string]*requestWindow),
		rate:    rate,
		window:  window,
		stopCh:  make(chan struct{}),
	}
}

// Allow reports whether ip may make another request now
func (rl *rateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, exists := rl.windows[ip]
	if !exists {
		// Unknown IPs are refused once the table is full, cleanup frees room
		if len(rl.windows) >= MaxRateLimiterEntries {
			logger.Warn("Rate limiter at max capacity, rejecting new IP",
				zap.String("ip", ip),
				zap.Int("current_entries", len(rl.windows)))
			return false
		}
		rl.windows[ip] = &requestWindow{count: 1, started: now}
		return true
	}

	if now.Sub(w.started) >= rl.window {
		w.count = 1
		w.started = now
		return true
	}
	if w.count < rl.rate {
		w.count++
		return true
	}
	return false
}

// StartCleanup periodically drops windows idle for two window lengths
func (rl *rateLimiter) StartCleanup() {
	go func() {
		ticker := time.NewTicker(rl.window * 2)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stopCh:
				return
			}
		}
	}()
}

// StopCleanup stops the cleanup goroutine; safe to call more than once
func (rl *rateLimiter) StopCleanup() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

func (rl *rateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := time.Now()
	for ip, w := range rl.windows {
		if now.Sub(w.started) >= rl.window*2 {
			delete(rl.windows, ip)
		}
	}
}

// rateLimitMiddleware rejects clients exceeding the limiter with 429
func rateLimitMiddleware(rl *rateLimiter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.Allow(GetClientIP(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
				sendError(w, http.StatusTooManyRequests, StatusTooManyRequests, ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// apiKeyAuthMiddleware validates the X-API-Key header against key
// using a constant-time comparison. IPs that fail too often are locked out
// by tracker before their key is even looked at.
func apiKeyAuthMiddleware(key string, tracker *authAttemptTracker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := GetClientIP(r)

			if tracker.isBlocked(clientIP) {
				remaining := tracker.getRemainingLockout(clientIP)
				AuditLog(AuditEventAuthBlocked, clientIP, "", "IP temporarily blocked due to too many failed attempts")
				logger.Warn("Authentication blocked: IP temporarily banned",
					zap.String("ip", clientIP),
					zap.Duration("remaining", remaining))
				// Round up so clients never retry inside the lockout
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(remaining.Seconds()))))
				sendError(w, http.StatusTooManyRequests, StatusTooManyRequests, ErrAuthLockedOut)
				return
			}

			apiKey := r.Header.Get(HeaderXAPIKey)
			if apiKey == "" {
				tracker.recordFailure(clientIP)
				AuditLog(AuditEventAuthFailure, clientIP, "", "Missing API key")
				sendError(w, http.StatusUnauthorized, StatusUnauthorized, ErrMissingAPIKey)
				return
			}
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) != 1 {
				tracker.recordFailure(clientIP)
				AuditLog(AuditEventAuthFailure, clientIP, "", "Invalid API key")
				logger.Warn("Authentication failed: invalid API key",
					zap.String("ip", clientIP),
					zap.String("method", r.Method))
				sendError(w, http.StatusUnauthorized, StatusUnauthorized, ErrInvalidAPIKey)
				return
			}

			tracker.recordSuccess(clientIP)
			AuditLog(AuditEventAuthSuccess, clientIP, "", "Authentication successful")
			next.ServeHTTP(w, r)
		})
	}
}

// corsMiddleware sets CORS headers for allowed origins and answers preflights.
// A single "*" entry allows every origin.
func corsMiddleware(allowedOrigins []string, maxAge int) func(next http.Handler) http.Handler {
	allowAll := len(allowedOrigins) == 1 && allowedOrigins[0] == "*"
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}
	maxAgeStr := strconv.Itoa(maxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); origin != "" && (allowAll || allowed[origin]) {
				allowOrigin := origin
				if allowAll {
					allowOrigin = "*"
				}
				w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+HeaderXAPIKey)
				w.Header().Set("Access-Control-Max-Age", maxAgeStr)
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// securityHeadersMiddleware adds hardening headers; passwords must never be cached
func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		if strings.HasPrefix(r.URL.Path, "/swagger") {
			// Swagger UI needs inline scripts and styles
			w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:")
		} else {
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
			w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		}
		next.ServeHTTP(w, r)
	})
}
