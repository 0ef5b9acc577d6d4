package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackhub/internal/delivery/http/helpers"
	"hackhub/internal/delivery/http/middleware"
	"hackhub/internal/domain"
)

func TestApplicationController_Apply(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{"success", testEventID, `{"applicationDetails":{"why":"fun"}}`, nil, http.StatusCreated, ""},
		{"malformed event id", "abc", `{}`, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"unknown event", testEventID, `{}`, domain.ErrNotFound, http.StatusNotFound, helpers.ErrCodeNotFound},
		{"already applied", testEventID, `{}`, domain.ErrAlreadyApplied, http.StatusConflict, helpers.ErrCodeConflict},
		{"invalid details", testEventID, `{}`, &domain.ValidationError{Fields: map[string]string{"applicationDetails": "x"}}, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"service error", testEventID, `{}`, errors.New("db down"), http.StatusInternalServerError, helpers.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeApplicationService{
				err: tt.fakeErr,
				app: &domain.Application{ID: "app-1", EventID: testEventID, Status: domain.ApplicationStatusPending},
			}
			ctrl := NewApplicationController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/api/events/"+tt.eventID+"/join", bytes.NewBufferString(tt.body))
			req.SetPathValue("eventID", tt.eventID)
			req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
			rr := httptest.NewRecorder()

			ctrl.Apply(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			_, apiErr := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			assert.Nil(t, apiErr)
			assert.Equal(t, "user-123", fake.lastUserID)
			assert.JSONEq(t, `{"why":"fun"}`, string(fake.lastDetails))
		})
	}
}

func TestApplicationController_GetMyApplication(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fake := &fakeApplicationService{app: &domain.Application{ID: "app-1"}}
		ctrl := NewApplicationController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/api/events/"+testEventID+"/application", nil)
		req.SetPathValue("eventID", testEventID)
		req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
		rr := httptest.NewRecorder()

		ctrl.GetMyApplication(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, testEventID, fake.lastEventID)
		assert.Equal(t, "user-123", fake.lastUserID)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := NewApplicationController(testLogger, &fakeApplicationService{err: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodGet, "/api/events/"+testEventID+"/application", nil)
		req.SetPathValue("eventID", testEventID)
		req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
		rr := httptest.NewRecorder()

		ctrl.GetMyApplication(rr, req)
		require.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := NewApplicationController(testLogger, &fakeApplicationService{})
		req := httptest.NewRequest(http.MethodGet, "/api/events/"+testEventID+"/application", nil)
		req.SetPathValue("eventID", testEventID)
		rr := httptest.NewRecorder()

		ctrl.GetMyApplication(rr, req)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
