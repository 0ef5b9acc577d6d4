package controllers

import (
	"bytes"
	"encoding/json"
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

func TestProjectController_SubmitProject(t *testing.T) {
	body := `{"eventId":"` + testEventID + `","teamId":"` + testTeamID + `","title":"Carbon Tracker","description":"","githubUrl":"","demoUrl":""}`
	tests := []struct {
		name        string
		fakeErr     error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{name: "success", wantStatus: http.StatusCreated},
		{name: "not a member", fakeErr: domain.ErrNotTeamMember, wantStatus: http.StatusForbidden, wantCode: helpers.ErrCodeForbidden, wantMessage: "You must be a team member to submit a project"},
		{name: "team in another event", fakeErr: &domain.ValidationError{Fields: map[string]string{"teamId": "Team does not belong to this event."}}, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "unknown team", fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
		{name: "duplicate", fakeErr: domain.ErrAlreadySubmitted, wantStatus: http.StatusConflict, wantCode: helpers.ErrCodeConflict},
		{name: "service error", fakeErr: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantCode: helpers.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeProjectService{err: tt.fakeErr, project: &domain.Project{ID: "proj-1", Title: "Carbon Tracker"}}
			ctrl := NewProjectController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewBufferString(body))
			req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
			rr := httptest.NewRecorder()

			ctrl.SubmitProject(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			_, apiErr := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, apiErr.Message)
				}
				return
			}
			assert.Nil(t, apiErr)
			assert.Equal(t, "user-123", fake.lastUserID)
			assert.Equal(t, testTeamID, fake.lastInput.TeamID)
		})
	}
}

func TestProjectController_ListEventProjects(t *testing.T) {
	fake := &fakeProjectService{
		projects: []*domain.Project{{ID: "proj-1", Title: "Carbon Tracker"}},
		total:    21,
	}
	ctrl := NewProjectController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+testEventID+"/projects?page=2&page_size=10", nil)
	req.SetPathValue("eventID", testEventID)
	rr := httptest.NewRecorder()

	ctrl.ListEventProjects(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.PaginationParams{Page: 2, PageSize: 10}, fake.lastParams)
	data, _ := decodeEnvelope(t, rr)
	var resp ListProjectsResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, helpers.PaginationMeta{Page: 2, PageSize: 10, Total: 21, TotalPages: 3, HasNext: true}, resp.Pagination)
}

func TestProjectController_ListEventProjects_InvalidPagination(t *testing.T) {
	fake := &fakeProjectService{}
	ctrl := NewProjectController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+testEventID+"/projects?page=two&page_size=500", nil)
	req.SetPathValue("eventID", testEventID)
	rr := httptest.NewRecorder()

	ctrl.ListEventProjects(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	_, apiErr := decodeEnvelope(t, rr)
	require.NotNil(t, apiErr)
	assert.Equal(t, helpers.ErrCodeBadRequest, apiErr.Code)
	assert.Contains(t, apiErr.Fields, "page")
	assert.Contains(t, apiErr.Fields, "page_size")
	assert.Zero(t, fake.lastParams)
}
