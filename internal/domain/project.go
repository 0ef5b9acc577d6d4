package domain

import (
	"context"
	"time"
)

// Project is a team's project submission for an event. One per (event, team).
// swagger:model Project
type Project struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	TeamID      string    `json:"teamId"`
	SubmittedBy string    `json:"submittedBy"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	GithubURL   string    `json:"githubUrl"`
	DemoURL     string    `json:"demoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectInput is the body of POST /api/projects.
type ProjectInput struct {
	EventID     string `json:"eventId" validate:"required,uuid"`
	TeamID      string `json:"teamId" validate:"required,uuid"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	GithubURL   string `json:"githubUrl" validate:"omitempty,url"`
	DemoURL     string `json:"demoUrl" validate:"omitempty,url"`
}

// ProjectRepository defines storage operations for project submissions.
type ProjectRepository interface {
	// Create returns ErrAlreadySubmitted when the team already has a submission for the event.
	Create(ctx context.Context, p *Project) error
	ListByEventID(ctx context.Context, eventID string, params PaginationParams) ([]*Project, int, error)
}

// ProjectService defines project submission operations.
type ProjectService interface {
	SubmitProject(ctx context.Context, userID string, input ProjectInput) (*Project, error)
	ListEventProjects(ctx context.Context, eventID string, params PaginationParams) ([]*Project, int, error)
}
