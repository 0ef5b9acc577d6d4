package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hackhub/internal/domain"
	"hackhub/internal/metrics"
)

type applicationService struct {
	appRepo        domain.ApplicationRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewApplicationService returns an ApplicationService. emailService may be nil, in which case
// no organizer notification is sent.
func NewApplicationService(appRepo domain.ApplicationRepository, eventRepo domain.EventRepository, emailService domain.EmailService, logger *slog.Logger, timeout time.Duration) domain.ApplicationService {
	return &applicationService{
		appRepo:        appRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// Apply records a PENDING application of userID to the event. The organizer notification is
// best effort: a mail failure is logged and does not fail the application.
func (s *applicationService) Apply(ctx context.Context, eventID, userID string, details json.RawMessage) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if len(details) == 0 || string(details) == "null" {
		details = json.RawMessage(`{}`)
	}
	if !json.Valid(details) {
		return nil, &domain.ValidationError{Fields: map[string]string{"applicationDetails": "Must be valid JSON."}}
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := time.Now().UTC()
	app := domain.NewApplication(eventID, userID, details, now, now)
	if err := s.appRepo.Create(ctx, app); err != nil {
		metrics.ApplicationsSubmitted.WithLabelValues("failed").Inc()
		if errors.Is(err, domain.ErrAlreadyApplied) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create application: %w", err)
	}
	metrics.ApplicationsSubmitted.WithLabelValues("created").Inc()

	s.notifyOrganizer(ctx, event, app)
	return app, nil
}

func (s *applicationService) notifyOrganizer(ctx context.Context, event *domain.Event, app *domain.Application) {
	if s.emailService == nil || event.Links == nil || event.Links.ContactEmail == "" {
		return
	}
	err := s.emailService.SendApplicationReceived(ctx, &domain.ApplicationReceivedEmailData{
		Email:         event.Links.ContactEmail,
		EventName:     event.Name,
		EventID:       event.ID,
		ApplicationID: app.ID,
		ApplicantID:   app.UserID,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "application notification failed", "event_id", event.ID, "application_id", app.ID, "err", err)
	}
}

func (s *applicationService) GetMyApplication(ctx context.Context, eventID, userID string) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	app, err := s.appRepo.GetByEventAndUser(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}
