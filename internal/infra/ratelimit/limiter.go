// Package ratelimit provides a fixed-window request rate limiter keyed by
// client address.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultWindow is the length of one rate-limit accounting window.
	DefaultWindow = 60 * time.Second
	// DefaultCeiling is the number of requests admitted per key per window.
	DefaultCeiling = 10

	// UnknownKey is the shared bucket for requests whose client address
	// cannot be determined.
	UnknownKey = "unknown"
)

type bucket struct {
	count       int
	windowStart time.Time
}

// Limiter counts requests per client key over fixed windows. The first request
// of a window starts it; once the ceiling is reached further requests are
// rejected until the window expires, and the next request opens a fresh one.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	window  time.Duration
	ceiling int

	now func() time.Time
}

// New creates a limiter with the given window and per-window ceiling.
// Non-positive values fall back to the defaults.
func New(window time.Duration, ceiling int) *Limiter {
	if window <= 0 {
		window = DefaultWindow
	}
	if ceiling <= 0 {
		ceiling = DefaultCeiling
	}

	return &Limiter{
		buckets: make(map[string]*bucket),
		window:  window,
		ceiling: ceiling,
		now:     time.Now,
	}
}

// Allow records one request for key and reports whether it is admitted.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.windowStart) >= l.window {
		l.buckets[key] = &bucket{count: 1, windowStart: now}

		return true
	}

	if b.count >= l.ceiling {
		return false
	}

	b.count++

	return true
}

// RetryAfter reports how long until key's current window expires. Keys with no
// active window return zero.
func (l *Limiter) RetryAfter(key string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		return 0
	}

	remaining := l.window - l.now().Sub(b.windowStart)
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Reset removes the accounting state for key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.buckets, key)
}

// Purge drops buckets whose window has expired. Called periodically so that
// the bucket map does not grow without bound.
func (l *Limiter) Purge() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, b := range l.buckets {
		if now.Sub(b.windowStart) >= l.window {
			delete(l.buckets, key)
		}
	}
}

// StartCleanup purges expired buckets on the given interval until stop is
// closed.
func (l *Limiter) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				l.Purge()
			case <-stop:
				return
			}
		}
	}()
}

// ClientKey derives the rate-limit key for a request. Proxy headers are
// preferred over the socket address: the first hop of X-Forwarded-For, then
// X-Real-Ip, then the host part of RemoteAddr. Requests with none of these
// share the "unknown" bucket.
func ClientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := fwd
		if idx := strings.Index(fwd, ","); idx >= 0 {
			first = fwd[:idx]
		}
		if key := strings.TrimSpace(first); key != "" {
			return key
		}
	}

	if real := strings.TrimSpace(r.Header.Get("X-Real-Ip")); real != "" {
		return real
	}

	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return host
		}

		return r.RemoteAddr
	}

	return UnknownKey
}
