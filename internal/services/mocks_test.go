package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"hackhub/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockEventRepository struct {
	mu        sync.Mutex
	events    map[string]*domain.Event
	nextID    int
	createErr error
	err       error
}

func newMockEventRepository() *mockEventRepository {
	return &mockEventRepository{events: make(map[string]*domain.Event)}
}

func (m *mockEventRepository) CreateAggregate(ctx context.Context, event *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	event.ID = fmt.Sprintf("evt-%d", m.nextID)
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Event
	for _, ev := range m.events {
		out = append(out, ev)
	}
	return out, nil
}

type mockApplicationRepository struct {
	apps   map[string]*domain.Application
	nextID int
	err    error
}

func newMockApplicationRepository() *mockApplicationRepository {
	return &mockApplicationRepository{apps: make(map[string]*domain.Application)}
}

func (m *mockApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	if m.err != nil {
		return m.err
	}
	key := app.EventID + ":" + app.UserID
	if _, ok := m.apps[key]; ok {
		return domain.ErrAlreadyApplied
	}
	m.nextID++
	app.ID = fmt.Sprintf("app-%d", m.nextID)
	m.apps[key] = app
	return nil
}

func (m *mockApplicationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Application, error) {
	if m.err != nil {
		return nil, m.err
	}
	app, ok := m.apps[eventID+":"+userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return app, nil
}

type mockTeamRepository struct {
	teams   map[string]*domain.Team
	members map[string][]*domain.TeamMember
	nextID  int
	err     error
}

func newMockTeamRepository() *mockTeamRepository {
	return &mockTeamRepository{
		teams:   make(map[string]*domain.Team),
		members: make(map[string][]*domain.TeamMember),
	}
}

func (m *mockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	team.ID = fmt.Sprintf("team-%d", m.nextID)
	m.teams[team.ID] = team
	m.members[team.ID] = []*domain.TeamMember{{TeamID: team.ID, UserID: team.CreatedBy, JoinedAt: team.CreatedAt}}
	return nil
}

func (m *mockTeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	if m.err != nil {
		return nil, m.err
	}
	team, ok := m.teams[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return team, nil
}

func (m *mockTeamRepository) AddMember(ctx context.Context, teamID, userID string) error {
	if ok, _ := m.IsMember(ctx, teamID, userID); ok {
		return domain.ErrAlreadyMember
	}
	m.members[teamID] = append(m.members[teamID], &domain.TeamMember{TeamID: teamID, UserID: userID})
	return nil
}

func (m *mockTeamRepository) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	for _, tm := range m.members[teamID] {
		if tm.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTeamRepository) ListMembers(ctx context.Context, teamID string) ([]*domain.TeamMember, error) {
	return m.members[teamID], nil
}

type mockProjectRepository struct {
	projects []*domain.Project
	nextID   int
	err      error
}

func (m *mockProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.projects {
		if existing.EventID == p.EventID && existing.TeamID == p.TeamID {
			return domain.ErrAlreadySubmitted
		}
	}
	m.nextID++
	p.ID = fmt.Sprintf("proj-%d", m.nextID)
	m.projects = append(m.projects, p)
	return nil
}

func (m *mockProjectRepository) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Project, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var matched []*domain.Project
	for _, p := range m.projects {
		if p.EventID == eventID {
			matched = append(matched, p)
		}
	}
	total := len(matched)
	start := min(params.Offset(), total)
	end := total
	if params.Limit() > 0 {
		end = min(start+params.Limit(), total)
	}
	return matched[start:end], total, nil
}

type mockEmailService struct {
	sent []*domain.ApplicationReceivedEmailData
	err  error
}

func (m *mockEmailService) SendApplicationReceived(ctx context.Context, data *domain.ApplicationReceivedEmailData) error {
	m.sent = append(m.sent, data)
	return m.err
}

type mockMailer struct {
	to, subject, html, text string
	err                     error
}

func (m *mockMailer) Send(ctx context.Context, to, subject, html, text string) error {
	m.to, m.subject, m.html, m.text = to, subject, html, text
	return m.err
}

type mockRenderer struct {
	err error
}

func (m *mockRenderer) Render(name string, data any) (string, string, string, error) {
	if m.err != nil {
		return "", "", "", m.err
	}
	d := data.(*domain.ApplicationReceivedEmailData)
	return "New application: " + d.EventName, "<p>" + d.ApplicantID + "</p>", d.ApplicantID, nil
}
