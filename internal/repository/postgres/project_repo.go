package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"hackhub/internal/domain"
)

type projectRepository struct {
	DB *sql.DB
}

func NewProjectRepository(db *sql.DB) domain.ProjectRepository {
	return &projectRepository{
		DB: db,
	}
}

func (r *projectRepository) Create(ctx context.Context, p *domain.Project) error {
	query := `
		INSERT INTO projects (event_id, team_id, submitted_by, title, description, github_url, demo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		p.EventID, p.TeamID, p.SubmittedBy, p.Title,
		nullIfEmpty(p.Description), nullIfEmpty(p.GithubURL), nullIfEmpty(p.DemoURL),
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	switch pgCode(err) {
	case pgUniqueViolation:
		return domain.ErrAlreadySubmitted
	case pgForeignKeyViolation:
		return domain.ErrNotFound
	}
	return err
}

func (r *projectRepository) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Project, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE event_id = $1`, eventID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	query := `
		SELECT id, event_id, team_id, submitted_by, title, description, github_url, demo_url, created_at, updated_at
		FROM projects
		WHERE event_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`
	limit := params.Limit()
	if limit == 0 {
		limit = total
	}
	rows, err := r.DB.QueryContext(ctx, query, eventID, limit, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	projects := make([]*domain.Project, 0)
	for rows.Next() {
		p := &domain.Project{}
		var desc, github, demo sql.NullString
		if err := rows.Scan(&p.ID, &p.EventID, &p.TeamID, &p.SubmittedBy, &p.Title, &desc, &github, &demo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		p.Description = desc.String
		p.GithubURL = github.String
		p.DemoURL = demo.String
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}
