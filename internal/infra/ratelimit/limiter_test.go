package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(start time.Time) (*Limiter, *time.Time) {
	clock := start
	l := New(DefaultWindow, DefaultCeiling)
	l.now = func() time.Time { return clock }

	return l, &clock
}

func TestLimiter_CeilingWithinWindow(t *testing.T) {
	t.Parallel()

	l, _ := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < DefaultCeiling; i++ {
		assert.True(t, l.Allow("203.0.113.7"), "request %d should be admitted", i+1)
	}

	assert.False(t, l.Allow("203.0.113.7"), "request beyond the ceiling should be rejected")
	assert.False(t, l.Allow("203.0.113.7"))
}

func TestLimiter_WindowReset(t *testing.T) {
	t.Parallel()

	l, clock := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < DefaultCeiling; i++ {
		assert.True(t, l.Allow("203.0.113.7"))
	}
	assert.False(t, l.Allow("203.0.113.7"))

	*clock = clock.Add(61 * time.Second)

	assert.True(t, l.Allow("203.0.113.7"), "a new window should admit requests again")
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	l, _ := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < DefaultCeiling; i++ {
		assert.True(t, l.Allow("203.0.113.7"))
	}
	assert.False(t, l.Allow("203.0.113.7"))

	assert.True(t, l.Allow("198.51.100.4"), "an exhausted bucket must not affect other keys")
}

func TestLimiter_RetryAfter(t *testing.T) {
	t.Parallel()

	l, clock := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Duration(0), l.RetryAfter("203.0.113.7"))

	l.Allow("203.0.113.7")
	assert.Equal(t, DefaultWindow, l.RetryAfter("203.0.113.7"))

	*clock = clock.Add(45 * time.Second)
	assert.Equal(t, 15*time.Second, l.RetryAfter("203.0.113.7"))
}

func TestLimiter_Purge(t *testing.T) {
	t.Parallel()

	l, clock := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	l.Allow("203.0.113.7")
	*clock = clock.Add(30 * time.Second)
	l.Allow("198.51.100.4")

	*clock = clock.Add(31 * time.Second)
	l.Purge()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.buckets, "203.0.113.7")
	assert.Contains(t, l.buckets, "198.51.100.4")
}

func TestClientKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{
			name:       "forwarded for takes the first hop",
			forwarded:  "203.0.113.7, 10.0.0.1",
			realIP:     "198.51.100.4",
			remoteAddr: "192.0.2.1:4312",
			want:       "203.0.113.7",
		},
		{
			name:       "real ip when no forwarded header",
			realIP:     "198.51.100.4",
			remoteAddr: "192.0.2.1:4312",
			want:       "198.51.100.4",
		},
		{
			name:       "remote addr host as fallback",
			remoteAddr: "192.0.2.1:4312",
			want:       "192.0.2.1",
		},
		{
			name: "unknown when nothing is available",
			want: UnknownKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-Ip", tt.realIP)
			}

			assert.Equal(t, tt.want, ClientKey(req))
		})
	}
}
