package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithUserID_GetUserID(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ctx := WithUserID(context.Background(), "alice")
		assert.Equal(t, "alice", GetUserID(ctx))
	})

	t.Run("missing", func(t *testing.T) {
		assert.Equal(t, EmptyUserID, GetUserID(context.Background()))
	})

	t.Run("wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, 42)
		assert.Equal(t, EmptyUserID, GetUserID(ctx))
	})
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedUser   string
	}{
		{name: "valid", header: "alice", expectedStatus: http.StatusOK, expectedUser: "alice"},
		{name: "trimmed", header: "  bob ", expectedStatus: http.StatusOK, expectedUser: "bob"},
		{name: "unicode", header: "たろう", expectedStatus: http.StatusOK, expectedUser: "たろう"},
		{name: "missing", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "blank", header: "   ", expectedStatus: http.StatusUnauthorized},
		{name: "path separator", header: "../etc", expectedStatus: http.StatusBadRequest},
		{name: "key separator", header: "a:b", expectedStatus: http.StatusBadRequest},
		{name: "too long", header: strings.Repeat("x", MaxUsernameLength+1), expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			var seen string
			handler := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			}))
			req := httptest.NewRequest(http.MethodGet, "/api/v1/pet", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUsername, tt.header)
			}
			rec := httptest.NewRecorder()

			// ACT
			handler.ServeHTTP(rec, req)

			// ASSERT
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedUser, seen)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), ErrMsgUnauthenticated)
			}
		})
	}
}
