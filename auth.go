package main

import (
	"sync"
	"time"
)

// authAttemptTracker counts failed API key attempts per client IP and
// locks an IP out once it fails too often inside the attempt window
type authAttemptTracker struct {
	mu              sync.RWMutex
	attempts        map[string]*authAttempt
	stopCh          chan struct{}
	cleanupOnce     sync.Once     // StartCleanup runs at most once
	stopOnce        sync.Once     // StopCleanup closes stopCh at most once
	cleanupInterval time.Duration // defaults to AuthAttemptWindow
}

// authAttempt is the failure history of one IP
type authAttempt struct {
	failedCount int
	firstFailed time.Time
	lockedUntil time.Time
}

// authTracker guards the key recovery API, replaced by runServer at startup
var authTracker = newAuthAttemptTracker()

func newAuthAttemptTracker() *authAttemptTracker {
	return &authAttemptTracker{
		attempts: make(map[string]*authAttempt),
	}
}

// isBlocked reports whether ip is inside a lockout period
func (at *authAttemptTracker) isBlocked(ip string) bool {
	at.mu.RLock()
	defer at.mu.RUnlock()

	attempt, exists := at.attempts[ip]
	if !exists {
		return false
	}
	return time.Now().Before(attempt.lockedUntil)
}

// recordFailure counts a failed attempt, locking ip out at MaxFailedAuthAttempts
func (at *authAttemptTracker) recordFailure(ip string) {
	at.mu.Lock()
	defer at.mu.Unlock()

	now := time.Now()
	attempt, exists := at.attempts[ip]
	if !exists {
		at.attempts[ip] = &authAttempt{failedCount: 1, firstFailed: now}
		return
	}

	// Start counting again once the window has passed
	if now.Sub(attempt.firstFailed) > AuthAttemptWindow {
		attempt.failedCount = 1
		attempt.firstFailed = now
		attempt.lockedUntil = time.Time{}
		return
	}

	attempt.failedCount++
	if attempt.failedCount >= MaxFailedAuthAttempts {
		attempt.lockedUntil = now.Add(AuthLockoutDuration)
	}
}

// recordSuccess forgets the failure history of ip
func (at *authAttemptTracker) recordSuccess(ip string) {
	at.mu.Lock()
	defer at.mu.Unlock()
	delete(at.attempts, ip)
}

// getRemainingLockout returns how long ip stays locked out, zero if it is not
func (at *authAttemptTracker) getRemainingLockout(ip string) time.Duration {
	at.mu.RLock()
	defer at.mu.RUnlock()

	attempt, exists := at.attempts[ip]
	if !exists {
		return 0
	}
	if remaining := time.Until(attempt.lockedUntil); remaining > 0 {
		return remaining
	}
	return 0
}

// StartCleanup periodically drops expired entries; only the first call starts a goroutine
func (at *authAttemptTracker) StartCleanup() {
	at.cleanupOnce.Do(func() {
		at.stopCh = make(chan struct{})

		interval := at.cleanupInterval
		if interval == 0 {
			interval = AuthAttemptWindow
		}

		go func(stop <-chan struct{}) {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					at.cleanup()
				case <-stop:
					return
				}
			}
		}(at.stopCh)
	})
}

// StopCleanup stops the cleanup goroutine; safe before StartCleanup and more than once
func (at *authAttemptTracker) StopCleanup() {
	at.stopOnce.Do(func() {
		if at.stopCh != nil {
			close(at.stopCh)
		}
	})
}

// cleanup removes entries whose lockout and attempt window have both passed
func (at *authAttemptTracker) cleanup() {
	at.mu.Lock()
	defer at.mu.Unlock()

	now := time.Now()
	for ip, attempt := range at.attempts {
		if now.After(attempt.lockedUntil) && now.Sub(attempt.firstFailed) > AuthAttemptWindow {
			delete(at.attempts, ip)
		}
	}
}
