package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"unicode"

	"github.com/osse101/PetCalendar_Go/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// UserIDKey is the context key for the active user
const UserIDKey contextKey = "user_id"

// WithUserID adds user ID to request context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserID retrieves user ID from context
func GetUserID(ctx context.Context) string {
	if userID := ctx.Value(UserIDKey); userID != nil {
		if uid, ok := userID.(string); ok {
			return uid
		}
	}
	return EmptyUserID
}

// validUsername rejects control characters and path separators so the name
// is safe as a storage key.
func validUsername(name string) bool {
	if len(name) > MaxUsernameLength {
		return false
	}
	for _, r := range name {
		if unicode.IsControl(r) || r == '/' || r == '\\' || r == ':' {
			return false
		}
	}
	return true
}

func unauthorized(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Identity requires the X-Username header and stores it in the request
// context. Requests without it get 401.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		username := strings.TrimSpace(r.Header.Get(HeaderUsername))
		if username == EmptyUserID {
			log.Debug(LogMsgMissingIdentity, "path", r.URL.Path)
			unauthorized(w, http.StatusUnauthorized, ErrMsgUnauthenticated)
			return
		}
		if !validUsername(username) {
			log.Warn(LogMsgBadIdentity, "path", r.URL.Path, "length", len(username))
			unauthorized(w, http.StatusBadRequest, ErrMsgBadUsername)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), username)))
	})
}
