package domain

import (
	"context"
	"encoding/json"
	"time"
)

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

// RSVPStatus is the attendance confirmation state of an application.
type RSVPStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"

	RSVPStatusPending   RSVPStatus = "PENDING"
	RSVPStatusConfirmed RSVPStatus = "CONFIRMED"
	RSVPStatusDeclined  RSVPStatus = "DECLINED"
)

// Application is a participant's application to an event. One per (event, user).
// swagger:model Application
type Application struct {
	ID                 string            `json:"id"`
	EventID            string            `json:"eventId"`
	UserID             string            `json:"userId"`
	Status             ApplicationStatus `json:"status"`
	RSVPStatus         RSVPStatus        `json:"rsvpStatus"`
	ApplicationDetails json.RawMessage   `json:"applicationDetails" swaggertype:"object"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// NewApplication returns a PENDING application. ID is typically set by the repository on create.
func NewApplication(eventID, userID string, details json.RawMessage, createdAt, updatedAt time.Time) *Application {
	return &Application{
		EventID:            eventID,
		UserID:             userID,
		Status:             ApplicationStatusPending,
		RSVPStatus:         RSVPStatusPending,
		ApplicationDetails: details,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}

// ApplicationRepository defines storage operations for applications.
type ApplicationRepository interface {
	// Create returns ErrAlreadyApplied when the user already applied and ErrNotFound when the
	// event does not exist.
	Create(ctx context.Context, app *Application) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*Application, error)
}

// ApplicationService defines participant-facing application operations.
type ApplicationService interface {
	Apply(ctx context.Context, eventID, userID string, details json.RawMessage) (*Application, error)
	GetMyApplication(ctx context.Context, eventID, userID string) (*Application, error)
}
