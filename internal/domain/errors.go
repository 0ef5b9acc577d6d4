package domain

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors shared by services and repositories.
var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidInput     = errors.New("invalid input")
	ErrAlreadyApplied   = errors.New("already applied to this event")
	ErrAlreadySubmitted = errors.New("project already submitted for this team")
	ErrNotTeamMember    = errors.New("You must be a team member to submit a project")
)

// ValidationError carries field-path keyed messages, e.g. "tracks[1].prizes[0].title".
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

// Is makes errors.Is(err, ErrInvalidInput) true for validation failures.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Messages returns "path: message" strings sorted by path.
func (e *ValidationError) Messages() []string {
	paths := make([]string, 0, len(e.Fields))
	for p := range e.Fields {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, p+": "+e.Fields[p])
	}
	return out
}
