package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/osse101/PetCalendar_Go/internal/logger"
	"github.com/osse101/PetCalendar_Go/internal/middleware"
)

// isPublicPath reports whether path is a health check or scrape endpoint that
// bypasses the API key.
func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// AuthMiddleware checks the API key shared with the fronting proxy. An
// empty apiKey disables the check, which is only sensible in development.
func AuthMiddleware(apiKey string, proxies TrustedProxies, monitor *ClientMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := proxies.ClientIP(r)
				monitor.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"ip", ip,
					"path", r.URL.Path,
					"username", r.Header.Get(middleware.HeaderUsername),
					"has_key", providedKey != "")

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// clientWindow counts one client's activity in its current window.
type clientWindow struct {
	start      time.Time
	requests   int
	failedAuth int
}

// ClientMonitor keeps a fixed request window per client IP and raises
// alerts on repeated authentication failures.
type ClientMonitor struct {
	mu      sync.Mutex
	window  time.Duration
	limit   int
	now     func() time.Time
	clients map[string]*clientWindow
}

func NewClientMonitor() *ClientMonitor {
	return NewClientMonitorWithClock(RateWindow, RequestsPerWindow, time.Now)
}

// NewClientMonitorWithClock is NewClientMonitor with explicit limits and clock.
func NewClientMonitorWithClock(window time.Duration, limit int, now func() time.Time) *ClientMonitor {
	return &ClientMonitor{
		window:  window,
		limit:   limit,
		now:     now,
		clients: make(map[string]*clientWindow),
	}
}

// current returns the live window for ip. Caller must hold the mutex.
func (m *ClientMonitor) current(ip string) *clientWindow {
	now := m.now()
	cw, ok := m.clients[ip]
	if !ok || now.Sub(cw.start) >= m.window {
		m.prune(now)
		cw = &clientWindow{start: now}
		m.clients[ip] = cw
	}
	return cw
}

// prune drops expired windows. Caller must hold the mutex.
func (m *ClientMonitor) prune(now time.Time) {
	for ip, cw := range m.clients {
		if now.Sub(cw.start) >= m.window {
			delete(m.clients, ip)
		}
	}
}

// RecordFailedAuth counts a rejected API key and alerts once the threshold is hit.
func (m *ClientMonitor) RecordFailedAuth(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cw := m.current(ip)
	cw.failedAuth++
	if cw.failedAuth == FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", cw.failedAuth)
	}
}

// Allow counts a request from ip. When the window is exhausted it returns
// false and how long until the window resets.
func (m *ClientMonitor) Allow(ip string) (bool, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cw := m.current(ip)
	cw.requests++
	if cw.requests <= m.limit {
		return true, 0
	}
	if cw.requests == m.limit+1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "limit", m.limit, "window", m.window)
	}
	return false, cw.start.Add(m.window).Sub(m.now())
}

// RateLimitMiddleware rejects clients that exceed their request window.
// Health checks and scrapes are not counted.
func RateLimitMiddleware(proxies TrustedProxies, monitor *ClientMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			if ok, retryAfter := monitor.Allow(proxies.ClientIP(r)); !ok {
				seconds := int(retryAfter.Round(time.Second) / time.Second)
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(max(seconds, 1)))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// TrustedProxies holds the proxy addresses and CIDR ranges whose
// X-Forwarded-For header is believed.
type TrustedProxies []netip.Prefix

// ParseTrustedProxies accepts plain addresses and CIDR ranges. Entries that
// parse as neither are skipped and returned for reporting.
func ParseTrustedProxies(entries []string) (TrustedProxies, []string) {
	var (
		proxies TrustedProxies
		invalid []string
	)
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			proxies = append(proxies, prefix.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			proxies = append(proxies, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
			continue
		}
		invalid = append(invalid, entry)
	}
	return proxies, invalid
}

func (t TrustedProxies) contains(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, prefix := range t {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientIP returns the address rate limits and alerts are keyed on. The
// rightmost X-Forwarded-For hop is used only when the direct peer is a
// trusted proxy and the hop is a valid address.
func (t TrustedProxies) ClientIP(r *http.Request) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}

	peer, err := netip.ParseAddr(remote)
	if err != nil || !t.contains(peer) {
		return remote
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remote
	}
	hops := strings.Split(forwarded, ",")
	hop, err := netip.ParseAddr(strings.TrimSpace(hops[len(hops)-1]))
	if err != nil {
		return remote
	}
	return hop.Unmap().String()
}

// SecurityHeadersMiddleware sets hardening headers. API responses carry
// per-user pet and calendar state and are never cached.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderContentSecurityPolicy, HeaderValueAPIPolicy)
			h.Set(HeaderReferrerPolicy, HeaderValueNoReferrer)
			if strings.HasPrefix(r.URL.Path, APIPrefix) {
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}

			next.ServeHTTP(w, r)
		})
	}
}
