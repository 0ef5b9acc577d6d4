package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hackhub/internal/domain"
)

type applicationRepository struct {
	DB *sql.DB
}

func NewApplicationRepository(db *sql.DB) domain.ApplicationRepository {
	return &applicationRepository{
		DB: db,
	}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (event_id, user_id, status, rsvp_status, application_details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	details := []byte(app.ApplicationDetails)
	if len(details) == 0 {
		details = []byte("{}")
	}
	err := r.DB.QueryRowContext(ctx, query,
		app.EventID, app.UserID, string(app.Status), string(app.RSVPStatus), details, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
	switch pgCode(err) {
	case pgUniqueViolation:
		return domain.ErrAlreadyApplied
	case pgForeignKeyViolation:
		return domain.ErrNotFound
	}
	return err
}

func (r *applicationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Application, error) {
	query := `
		SELECT id, event_id, user_id, status, rsvp_status, application_details, created_at, updated_at
		FROM applications
		WHERE event_id = $1 AND user_id = $2
	`
	app := &domain.Application{}
	var status, rsvp string
	var details []byte
	err := r.DB.QueryRowContext(ctx, query, eventID, userID).Scan(
		&app.ID, &app.EventID, &app.UserID, &status, &rsvp, &details, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	app.Status = domain.ApplicationStatus(status)
	app.RSVPStatus = domain.RSVPStatus(rsvp)
	app.ApplicationDetails = details
	return app, nil
}
