package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hackhub/internal/domain"
	"hackhub/internal/eventdraft"
	"hackhub/internal/metrics"
	"hackhub/internal/sanitize"
)

type eventService struct {
	eventRepo      domain.EventRepository
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

func NewEventService(eventRepo domain.EventRepository, logger *slog.Logger, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// CreateEvent sanitizes and re-validates the payload, then persists the whole event aggregate as
// a DRAFT owned by ownerID. Validation failures are returned as *domain.ValidationError and never
// reach the database.
func (s *eventService) CreateEvent(ctx context.Context, ownerID string, input domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("event owner is required: %w", domain.ErrForbidden)
	}

	input = sanitizeEventInput(input)
	if errs := eventdraft.ValidateInput(input); !errs.Valid() {
		metrics.EventsCreated.WithLabelValues("invalid").Inc()
		return nil, errs.AsError()
	}
	normalized, err := eventdraft.Normalize(eventdraft.FromInput(input), time.UTC)
	if err != nil {
		return nil, fmt.Errorf("normalize event: %w", err)
	}

	now := s.now().UTC()
	event := domain.NewEvent(ownerID, normalized, now, now)

	start := time.Now()
	if err := s.eventRepo.CreateAggregate(ctx, event); err != nil {
		metrics.EventsCreated.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("create event: %w", err)
	}
	metrics.EventCreateDuration.Observe(time.Since(start).Seconds())
	metrics.EventsCreated.WithLabelValues("created").Inc()

	s.logger.InfoContext(ctx, "event created",
		"event_id", event.ID,
		"owner_id", ownerID,
		"tracks", len(event.Tracks),
		"sponsors", len(event.Sponsors),
		"people", len(event.People),
	)
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// sanitizeEventInput strips markup from every user-supplied string. Free text (about and the
// descriptions and bios) keeps safe formatting; everything else becomes plain text.
func sanitizeEventInput(in domain.EventInput) domain.EventInput {
	out := in
	out.Name = sanitize.Text(in.Name)
	out.Type = domain.EventType(sanitize.Text(string(in.Type)))
	out.Tagline = sanitize.OptionalText(in.Tagline)
	out.About = sanitize.OptionalHTML(in.About)

	out.Timeline.Timezone = sanitize.Text(in.Timeline.Timezone)

	out.Links = domain.LinksInput{
		WebsiteURL:       sanitize.OptionalText(in.Links.WebsiteURL),
		MicrositeURL:     sanitize.OptionalText(in.Links.MicrositeURL),
		ContactEmail:     sanitize.Text(in.Links.ContactEmail),
		CodeOfConductURL: sanitize.OptionalText(in.Links.CodeOfConductURL),
	}
	out.Branding = domain.BrandingInput{
		BrandColor:    sanitize.Text(in.Branding.BrandColor),
		LogoURL:       sanitize.OptionalText(in.Branding.LogoURL),
		FaviconURL:    sanitize.OptionalText(in.Branding.FaviconURL),
		CoverImageURL: sanitize.OptionalText(in.Branding.CoverImageURL),
	}

	out.Tracks = make([]domain.TrackInput, 0, len(in.Tracks))
	for _, t := range in.Tracks {
		track := domain.TrackInput{
			Name:        sanitize.Text(t.Name),
			Description: sanitize.OptionalHTML(t.Description),
			Prizes:      make([]domain.PrizeInput, 0, len(t.Prizes)),
		}
		for _, p := range t.Prizes {
			track.Prizes = append(track.Prizes, domain.PrizeInput{
				Title:       sanitize.Text(p.Title),
				Description: sanitize.OptionalHTML(p.Description),
				Value:       p.Value,
			})
		}
		out.Tracks = append(out.Tracks, track)
	}
	out.Sponsors = make([]domain.SponsorInput, 0, len(in.Sponsors))
	for _, sp := range in.Sponsors {
		out.Sponsors = append(out.Sponsors, domain.SponsorInput{
			Name:       sanitize.Text(sp.Name),
			LogoURL:    sanitize.OptionalText(sp.LogoURL),
			WebsiteURL: sanitize.OptionalText(sp.WebsiteURL),
			Tier:       domain.SponsorTier(sanitize.Text(string(sp.Tier))),
		})
	}
	out.People = make([]domain.PersonInput, 0, len(in.People))
	for _, p := range in.People {
		out.People = append(out.People, domain.PersonInput{
			Name:        sanitize.Text(p.Name),
			Role:        domain.PersonRole(sanitize.Text(string(p.Role))),
			Bio:         sanitize.OptionalHTML(p.Bio),
			ImageURL:    sanitize.OptionalText(p.ImageURL),
			LinkedinURL: sanitize.OptionalText(p.LinkedinURL),
		})
	}
	return out
}
