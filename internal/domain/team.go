package domain

import (
	"context"
	"errors"
	"time"
)

// ErrAlreadyMember is returned when adding a user who is already a member of the team.
var ErrAlreadyMember = errors.New("already a team member")

// Team is a group of participants competing together at one event.
// swagger:model Team
type Team struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTeam returns a new Team. ID is typically set by the repository on create.
func NewTeam(eventID, name, createdBy string, createdAt time.Time) *Team {
	return &Team{
		EventID:   eventID,
		Name:      name,
		CreatedBy: createdBy,
		CreatedAt: createdAt,
	}
}

// TeamMember represents a user who belongs to a team.
// swagger:model TeamMember
type TeamMember struct {
	TeamID   string    `json:"teamId"`
	UserID   string    `json:"userId"`
	JoinedAt time.Time `json:"joinedAt"`
}

// TeamRepository defines the interface for team and team member storage.
type TeamRepository interface {
	// Create inserts the team and adds its creator as the first member in one transaction.
	Create(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, id string) (*Team, error)
	AddMember(ctx context.Context, teamID, userID string) error
	IsMember(ctx context.Context, teamID, userID string) (bool, error)
	ListMembers(ctx context.Context, teamID string) ([]*TeamMember, error)
}

// TeamService defines team formation operations.
type TeamService interface {
	CreateTeam(ctx context.Context, eventID, userID, name string) (*Team, error)
	JoinTeam(ctx context.Context, teamID, userID string) error
	ListMembers(ctx context.Context, teamID string) ([]*TeamMember, error)
}
