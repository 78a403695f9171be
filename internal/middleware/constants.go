package middleware

// HeaderUsername carries the authenticated user name set by the upstream proxy.
const HeaderUsername = "X-Username"

// MaxUsernameLength bounds the identity header.
const MaxUsernameLength = 64

// EmptyUserID represents an empty or missing user ID
const EmptyUserID = ""

// Response and log messages
const (
	ErrMsgUnauthenticated = "Unauthenticated"
	ErrMsgBadUsername     = "Invalid username"

	LogMsgMissingIdentity = "Request without identity"
	LogMsgBadIdentity     = "Rejected identity header"
)
