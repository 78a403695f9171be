package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgBadTrustedProxy  = "Ignoring invalid trusted proxy"
)

// HTTP header names
const (
	HeaderAPIKey                = "X-API-Key"
	HeaderRequestID             = "X-Request-ID"
	HeaderAuthorization         = "Authorization"
	HeaderForwardedFor          = "X-Forwarded-For"
	HeaderRetryAfter            = "Retry-After"
	HeaderContentType           = "X-Content-Type-Options"
	HeaderFrameOptions          = "X-Frame-Options"
	HeaderContentSecurityPolicy = "Content-Security-Policy"
	HeaderReferrerPolicy        = "Referrer-Policy"
	HeaderCacheControl          = "Cache-Control"
)

// Security header values. The API only serves JSON and event streams.
const (
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueAPIPolicy  = "default-src 'none'; frame-ancestors 'none'"
	HeaderValueNoReferrer = "no-referrer"
	HeaderValueNoStore    = "no-store"
)

// APIPrefix is the versioned route prefix for per-user endpoints.
const APIPrefix = "/api/v1"

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
}

// MaxRequestBodyBytes caps every request body.
const MaxRequestBodyBytes = 1 << 20

// Rate limiting and alert thresholds per client IP
const (
	RateWindow               = 5 * time.Minute
	RequestsPerWindow        = 1000
	FailedAuthAlertThreshold = 5
)

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
