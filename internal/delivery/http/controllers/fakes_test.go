package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"hackhub/internal/delivery/http/helpers"
	"hackhub/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	testEventID = "5d1f8f1e-2c4b-4b7a-9a0e-3f6c2d1b0a99"
	testTeamID  = "8a6e0f3c-1b2d-4e5f-9a7b-6c5d4e3f2a10"
)

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) (json.RawMessage, *helpers.APIError) {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope.Data, envelope.Error
}

type fakeEventService struct {
	created      *domain.Event
	createErr    error
	lastOwnerID  string
	lastInput    domain.EventInput
	createCalls  int
	events       []*domain.Event
	listErr      error
	eventByID    map[string]*domain.Event
	getErr       error
	lastGetEvent string
}

func (f *fakeEventService) CreateEvent(ctx context.Context, ownerID string, input domain.EventInput) (*domain.Event, error) {
	f.createCalls++
	f.lastOwnerID = ownerID
	f.lastInput = input
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return &domain.Event{ID: testEventID, Name: input.Name, OwnerID: ownerID, Status: domain.EventStatusDraft}, nil
}

func (f *fakeEventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	f.lastGetEvent = eventID
	if f.getErr != nil {
		return nil, f.getErr
	}
	ev, ok := f.eventByID[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.events, f.listErr
}

type fakeApplicationService struct {
	app         *domain.Application
	err         error
	lastEventID string
	lastUserID  string
	lastDetails json.RawMessage
}

func (f *fakeApplicationService) Apply(ctx context.Context, eventID, userID string, details json.RawMessage) (*domain.Application, error) {
	f.lastEventID, f.lastUserID, f.lastDetails = eventID, userID, details
	if f.err != nil {
		return nil, f.err
	}
	return f.app, nil
}

func (f *fakeApplicationService) GetMyApplication(ctx context.Context, eventID, userID string) (*domain.Application, error) {
	f.lastEventID, f.lastUserID = eventID, userID
	if f.err != nil {
		return nil, f.err
	}
	return f.app, nil
}

type fakeTeamService struct {
	team        *domain.Team
	members     []*domain.TeamMember
	err         error
	lastEventID string
	lastTeamID  string
	lastUserID  string
	lastName    string
}

func (f *fakeTeamService) CreateTeam(ctx context.Context, eventID, userID, name string) (*domain.Team, error) {
	f.lastEventID, f.lastUserID, f.lastName = eventID, userID, name
	if f.err != nil {
		return nil, f.err
	}
	return f.team, nil
}

func (f *fakeTeamService) JoinTeam(ctx context.Context, teamID, userID string) error {
	f.lastTeamID, f.lastUserID = teamID, userID
	return f.err
}

func (f *fakeTeamService) ListMembers(ctx context.Context, teamID string) ([]*domain.TeamMember, error) {
	f.lastTeamID = teamID
	if f.err != nil {
		return nil, f.err
	}
	return f.members, nil
}

type fakeProjectService struct {
	project    *domain.Project
	projects   []*domain.Project
	total      int
	err        error
	lastUserID string
	lastInput  domain.ProjectInput
	lastParams domain.PaginationParams
}

func (f *fakeProjectService) SubmitProject(ctx context.Context, userID string, input domain.ProjectInput) (*domain.Project, error) {
	f.lastUserID, f.lastInput = userID, input
	if f.err != nil {
		return nil, f.err
	}
	return f.project, nil
}

func (f *fakeProjectService) ListEventProjects(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Project, int, error) {
	f.lastParams = params
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.projects, f.total, nil
}
