package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackhub/internal/adapters/auth"
	"hackhub/internal/delivery/http/helpers"
	"hackhub/internal/domain"
)

type fakeTokenVerifier struct {
	userID string
	err    error
}

func (f *fakeTokenVerifier) Verify(string) (string, error) {
	return f.userID, f.err
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name        string
		authHeader  string
		verifier    domain.TokenVerifier
		wantStatus  int
		wantMessage string
		wantUserID  string
	}{
		{"organizer token", "Bearer valid-token", &fakeTokenVerifier{userID: "organizer-7"}, http.StatusOK, "", "organizer-7"},
		{"lowercase scheme", "bearer valid-token", &fakeTokenVerifier{userID: "organizer-7"}, http.StatusOK, "", "organizer-7"},
		{"missing header", "", &fakeTokenVerifier{userID: "organizer-7"}, http.StatusUnauthorized, "missing authorization header", ""},
		{"basic auth", "Basic abc", &fakeTokenVerifier{userID: "organizer-7"}, http.StatusUnauthorized, "invalid authorization format", ""},
		{"empty token", "Bearer   ", &fakeTokenVerifier{userID: "organizer-7"}, http.StatusUnauthorized, "missing token", ""},
		{"expired token", "Bearer old", &fakeTokenVerifier{err: auth.ErrInvalidToken}, http.StatusUnauthorized, "invalid or expired token", ""},
		{"token without subject", "Bearer anon", &fakeTokenVerifier{}, http.StatusUnauthorized, "invalid or expired token", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID string
			handler := RequireAuth(tt.verifier, logger)(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "http://test/api/events", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()
			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
			if tt.wantStatus != http.StatusOK {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, helpers.ErrCodeUnauthorized, envelope.Error.Code)
				assert.Equal(t, tt.wantMessage, envelope.Error.Message)
			}
		})
	}
}

func TestRequireAuth_RealJWT(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	token, err := auth.NewJWTIssuer("secret").Issue("participant-3", "p3@hack.dev", nil, time.Hour)
	require.NoError(t, err)

	var gotUserID string
	handler := RequireAuth(auth.NewJWTVerifier("secret"), logger)(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusCreated)
	})
	req := httptest.NewRequest(http.MethodPost, "http://test/api/events/x/join", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "participant-3", gotUserID)
}

func TestRequireAuth_LogsRejectionWithRequestID(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	handler := RequireAuth(&fakeTokenVerifier{err: errors.New("signature is invalid")}, logger)(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not run")
	})

	req := httptest.NewRequest(http.MethodPost, "http://test/api/projects", nil)
	req.Header.Set("Authorization", "Bearer forged")
	req = req.WithContext(context.WithValue(req.Context(), requestIDKey, "req-42"))
	rr := httptest.NewRecorder()
	handler(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotContains(t, rr.Body.String(), "signature is invalid")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "token rejected", entry["msg"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "/api/projects", entry["path"])
	assert.Equal(t, "signature is invalid", entry["err"])
}
