package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hackhub/internal/domain"
	"hackhub/internal/metrics"
	"hackhub/internal/sanitize"
)

type projectService struct {
	projectRepo    domain.ProjectRepository
	teamRepo       domain.TeamRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewProjectService(projectRepo domain.ProjectRepository, teamRepo domain.TeamRepository, logger *slog.Logger, timeout time.Duration) domain.ProjectService {
	return &projectService{
		projectRepo:    projectRepo,
		teamRepo:       teamRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// SubmitProject stores the team's project for the event. Only members of the team may submit,
// and a team submits at most once per event.
func (s *projectService) SubmitProject(ctx context.Context, userID string, input domain.ProjectInput) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	input.Title = strings.TrimSpace(sanitize.Text(input.Title))
	input.Description = strings.TrimSpace(sanitize.HTML(input.Description))
	input.GithubURL = strings.TrimSpace(sanitize.Text(input.GithubURL))
	input.DemoURL = strings.TrimSpace(sanitize.Text(input.DemoURL))
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	if team.EventID != input.EventID {
		return nil, &domain.ValidationError{Fields: map[string]string{"teamId": "Team does not belong to this event."}}
	}
	member, err := s.teamRepo.IsMember(ctx, input.TeamID, userID)
	if err != nil {
		return nil, fmt.Errorf("check team membership: %w", err)
	}
	if !member {
		metrics.ProjectsSubmitted.WithLabelValues("forbidden").Inc()
		return nil, domain.ErrNotTeamMember
	}

	now := time.Now().UTC()
	project := &domain.Project{
		EventID:     input.EventID,
		TeamID:      input.TeamID,
		SubmittedBy: userID,
		Title:       input.Title,
		Description: input.Description,
		GithubURL:   input.GithubURL,
		DemoURL:     input.DemoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		metrics.ProjectsSubmitted.WithLabelValues("failed").Inc()
		if errors.Is(err, domain.ErrAlreadySubmitted) {
			return nil, domain.ErrAlreadySubmitted
		}
		return nil, fmt.Errorf("create project: %w", err)
	}
	metrics.ProjectsSubmitted.WithLabelValues("created").Inc()
	s.logger.InfoContext(ctx, "project submitted", "project_id", project.ID, "event_id", project.EventID, "team_id", project.TeamID)
	return project, nil
}

func (s *projectService) ListEventProjects(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Project, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	projects, total, err := s.projectRepo.ListByEventID(ctx, eventID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	if projects == nil {
		projects = []*domain.Project{}
	}
	return projects, total, nil
}
