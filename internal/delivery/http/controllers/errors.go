package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"hackhub/internal/delivery/http/helpers"
	"hackhub/internal/delivery/http/middleware"
	"hackhub/internal/domain"
)

// writeValidationOrForbidden writes a response for the error kinds every controller shares and
// reports whether it did.
func writeValidationOrForbidden(w http.ResponseWriter, err error) bool {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.WriteValidationError(w, "validation failed", verr.Fields)
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
	default:
		return false
	}
	return true
}

func logFailure(logger *slog.Logger, r *http.Request, err error) {
	logger.ErrorContext(r.Context(), "request failed",
		"path", r.URL.Path,
		"method", r.Method,
		"request_id", middleware.RequestIDFromContext(r.Context()),
		"err", err,
	)
}

// pathUUID reads a UUID path parameter, writing a 400 when it is missing or malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return "", false
	}
	return id.String(), true
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID == "" {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return "", false
	}
	return userID, true
}
