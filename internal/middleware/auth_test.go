package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passgen/passgen-go/internal/crypto"
)

func protected(t *testing.T) http.Handler {
	t.Helper()
	return JWTAuth("test-secret", crypto.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := RoleFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, crypto.RoleAdmin, role)
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestJWTAuth(t *testing.T) {
	valid, _, err := crypto.GenerateToken(crypto.RoleAdmin, "test-secret", time.Hour)
	require.NoError(t, err)
	otherRole, _, err := crypto.GenerateToken("viewer", "test-secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "wrong role", header: "Bearer " + otherRole, want: http.StatusForbidden},
		{name: "valid", header: "Bearer " + valid, want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			protected(t).ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want != http.StatusNoContent {
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			}
		})
	}
}
