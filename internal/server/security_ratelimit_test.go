package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PetCalendar_Go/internal/domain"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestClientMonitor_WindowPerClient(t *testing.T) {
	// ARRANGE
	clock := &fakeClock{now: time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)}
	monitor := NewClientMonitorWithClock(time.Minute, 3, clock.Now)

	// ACT / ASSERT
	for i := 0; i < 3; i++ {
		ok, _ := monitor.Allow("1.1.1.1")
		require.True(t, ok, "request %d", i+1)
	}
	ok, retry := monitor.Allow("1.1.1.1")
	assert.False(t, ok)
	assert.Equal(t, time.Minute, retry)

	ok, _ = monitor.Allow("2.2.2.2")
	assert.True(t, ok, "other clients keep their own window")

	clock.now = clock.now.Add(40 * time.Second)
	_, retry = monitor.Allow("1.1.1.1")
	assert.Equal(t, 20*time.Second, retry)

	clock.now = clock.now.Add(20 * time.Second)
	ok, _ = monitor.Allow("1.1.1.1")
	assert.True(t, ok, "a new window starts after expiry")
}

func TestClientMonitor_PrunesExpiredClients(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)}
	monitor := NewClientMonitorWithClock(time.Minute, 10, clock.Now)

	monitor.Allow("1.1.1.1")
	monitor.RecordFailedAuth("2.2.2.2")
	clock.now = clock.now.Add(2 * time.Minute)
	monitor.Allow("3.3.3.3")

	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	assert.Len(t, monitor.clients, 1)
	assert.Contains(t, monitor.clients, "3.3.3.3")
}

func TestRateLimitMiddleware(t *testing.T) {
	// ARRANGE
	clock := &fakeClock{now: time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)}
	monitor := NewClientMonitorWithClock(5*time.Minute, 2, clock.Now)
	handler := RateLimitMiddleware(nil, monitor)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = "192.168.1.100:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	// ACT / ASSERT
	assert.Equal(t, http.StatusOK, send("/api/v1/pet/feed").Code)
	assert.Equal(t, http.StatusOK, send("/api/v1/events").Code)

	blocked := send("/api/v1/pet/feed")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "300", blocked.Header().Get(HeaderRetryAfter))

	assert.Equal(t, http.StatusOK, send("/healthz").Code, "health checks are never limited")
}

func TestRouter_RateLimitsPerClient(t *testing.T) {
	router, _, cal := newTestRouter("", stubPinger{})
	cal.On("GetLocations", mock.Anything, "alice").Return(domain.DefaultLocations(), nil)

	var last int
	for i := 0; i <= RequestsPerWindow; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/locations", nil)
		req.Header.Set("X-Username", "alice")
		req.RemoteAddr = "203.0.113.5:4000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		last = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
