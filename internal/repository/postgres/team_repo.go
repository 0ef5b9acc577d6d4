package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hackhub/internal/domain"
)

type teamRepository struct {
	DB *sql.DB
}

func NewTeamRepository(db *sql.DB) domain.TeamRepository {
	return &teamRepository{
		DB: db,
	}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) (err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO teams (event_id, name, created_by, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err = tx.QueryRowContext(ctx, query, team.EventID, team.Name, team.CreatedBy, team.CreatedAt).Scan(&team.ID); err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert team: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `INSERT INTO team_members (team_id, user_id, joined_at) VALUES ($1, $2, $3)`,
		team.ID, team.CreatedBy, team.CreatedAt); err != nil {
		return fmt.Errorf("insert creator membership: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `
		SELECT id, event_id, name, created_by, created_at
		FROM teams
		WHERE id = $1
	`
	team := &domain.Team{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&team.ID, &team.EventID, &team.Name, &team.CreatedBy, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return team, nil
}

func (r *teamRepository) AddMember(ctx context.Context, teamID, userID string) error {
	query := `
		INSERT INTO team_members (team_id, user_id)
		VALUES ($1, $2)
	`
	_, err := r.DB.ExecContext(ctx, query, teamID, userID)
	switch pgCode(err) {
	case pgUniqueViolation:
		return domain.ErrAlreadyMember
	case pgForeignKeyViolation:
		return domain.ErrNotFound
	}
	return err
}

func (r *teamRepository) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2)`
	var ok bool
	if err := r.DB.QueryRowContext(ctx, query, teamID, userID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *teamRepository) ListMembers(ctx context.Context, teamID string) ([]*domain.TeamMember, error) {
	query := `
		SELECT team_id, user_id, joined_at
		FROM team_members
		WHERE team_id = $1
		ORDER BY joined_at, user_id
	`
	rows, err := r.DB.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		m := &domain.TeamMember{}
		if err := rows.Scan(&m.TeamID, &m.UserID, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
