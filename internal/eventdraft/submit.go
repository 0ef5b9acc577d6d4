package eventdraft

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"hackhub/internal/domain"
)

// FallbackSubmitMessage is shown when the server gave no usable error message.
const FallbackSubmitMessage = "An error occurred while creating the event. Please try again."

// ErrSubmitInFlight is returned when Submit is called while a previous submit is still running.
var ErrSubmitInFlight = errors.New("event submission already in progress")

// Creator sends a normalized creation payload to the server. The idempotency key lets the server
// collapse retries of the same draft.
type Creator interface {
	CreateEvent(ctx context.Context, idempotencyKey string, input domain.EventInput) (*domain.Event, error)
}

// Navigator is told where to go once an event exists.
type Navigator interface {
	EventCreated(eventID string)
}

// InvalidDraftError is returned when the draft failed validation; nothing was sent.
type InvalidDraftError struct {
	Errors Errors
}

func (e *InvalidDraftError) Error() string {
	return "event draft is invalid: " + strings.Join(e.Errors.Paths(), ", ")
}

func (e *InvalidDraftError) Is(target error) bool {
	return target == domain.ErrInvalidInput
}

// SubmitError is a failed creation attempt. Message is safe to show to the user.
type SubmitError struct {
	Message string
	Err     error
}

func (e *SubmitError) Error() string { return e.Message }

func (e *SubmitError) Unwrap() error { return e.Err }

// serverMessager is implemented by transport errors that carry the server's error message.
type serverMessager interface {
	ServerMessage() string
}

// Submitter validates, normalizes and sends a draft, at most one submit at a time.
type Submitter struct {
	creator   Creator
	navigator Navigator
	location  *time.Location
	logger    *slog.Logger
	inFlight  atomic.Bool
}

// NewSubmitter returns a Submitter. loc is the location local date-times are entered in.
func NewSubmitter(creator Creator, navigator Navigator, loc *time.Location, logger *slog.Logger) *Submitter {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Submitter{creator: creator, navigator: navigator, location: loc, logger: logger}
}

// InFlight reports whether a submit is currently running.
func (s *Submitter) InFlight() bool {
	return s.inFlight.Load()
}

// Submit runs one user-initiated submit. The draft is only read, so after any failure the same
// draft can be submitted again.
func (s *Submitter) Submit(ctx context.Context, d *Draft) (*domain.Event, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	if errs := Validate(d); !errs.Valid() {
		return nil, &InvalidDraftError{Errors: errs}
	}
	input, err := Normalize(d, s.location)
	if err != nil {
		return nil, &SubmitError{Message: FallbackSubmitMessage, Err: err}
	}

	event, err := s.creator.CreateEvent(ctx, d.SessionKey, input)
	if err != nil {
		msg := FallbackSubmitMessage
		var sm serverMessager
		if errors.As(err, &sm) && strings.TrimSpace(sm.ServerMessage()) != "" {
			msg = sm.ServerMessage()
		}
		s.logger.WarnContext(ctx, "create event failed", "session_key", d.SessionKey, "err", err)
		return nil, &SubmitError{Message: msg, Err: err}
	}

	if s.navigator != nil {
		s.navigator.EventCreated(event.ID)
	}
	return event, nil
}
