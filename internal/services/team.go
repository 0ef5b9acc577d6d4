package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"hackhub/internal/domain"
	"hackhub/internal/sanitize"
)

const maxTeamNameLength = 100

type teamService struct {
	teamRepo       domain.TeamRepository
	contextTimeout time.Duration
}

func NewTeamService(teamRepo domain.TeamRepository, timeout time.Duration) domain.TeamService {
	return &teamService{
		teamRepo:       teamRepo,
		contextTimeout: timeout,
	}
}

// CreateTeam creates a team in the event with userID as its first member.
func (s *teamService) CreateTeam(ctx context.Context, eventID, userID, name string) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(sanitize.Text(name))
	switch {
	case name == "":
		return nil, &domain.ValidationError{Fields: map[string]string{"name": "Team name is required."}}
	case utf8.RuneCountInString(name) > maxTeamNameLength:
		return nil, &domain.ValidationError{Fields: map[string]string{"name": "Team name must be at most 100 characters."}}
	}

	team := domain.NewTeam(eventID, name, userID, time.Now().UTC())
	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("create team: %w", err)
	}
	return team, nil
}

func (s *teamService) JoinTeam(ctx context.Context, teamID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get team: %w", err)
	}
	if err := s.teamRepo.AddMember(ctx, teamID, userID); err != nil {
		if errors.Is(err, domain.ErrAlreadyMember) {
			return domain.ErrAlreadyMember
		}
		return fmt.Errorf("add team member: %w", err)
	}
	return nil
}

func (s *teamService) ListMembers(ctx context.Context, teamID string) ([]*domain.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	members, err := s.teamRepo.ListMembers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	if members == nil {
		members = []*domain.TeamMember{}
	}
	return members, nil
}
