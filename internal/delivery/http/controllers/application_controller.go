package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hackhub/internal/delivery/http/helpers"
	"hackhub/internal/domain"
)

// ApplyRequest is the request body for POST /api/events/{eventID}/join.
type ApplyRequest struct {
	ApplicationDetails json.RawMessage `json:"applicationDetails" swaggertype:"object"`
}

// ApplicationSuccessResponse is the success response envelope for an application.
type ApplicationSuccessResponse struct {
	Data  *domain.Application `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type ApplicationController struct {
	Logger  *slog.Logger
	Service domain.ApplicationService
}

func NewApplicationController(logger *slog.Logger, svc domain.ApplicationService) *ApplicationController {
	return &ApplicationController{
		Logger:  logger,
		Service: svc,
	}
}

// Apply godoc
// @Summary Apply to an event
// @Description Records a PENDING application of the caller to the event. A user can apply once per event.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body ApplyRequest true "Free-form application details"
// @Success 201 {object} controllers.ApplicationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{eventID}/join [post]
func (c *ApplicationController) Apply(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	var req ApplyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	app, err := c.Service.Apply(r.Context(), eventID, userID, req.ApplicationDetails)
	if err != nil {
		switch {
		case writeValidationOrForbidden(w, err):
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrAlreadyApplied):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "already applied to this event")
		default:
			logFailure(c.Logger, r, err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to apply to event")
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, app)
}

// GetMyApplication godoc
// @Summary Get my application to an event
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.ApplicationSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{eventID}/application [get]
func (c *ApplicationController) GetMyApplication(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	app, err := c.Service.GetMyApplication(r.Context(), eventID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "application not found")
			return
		}
		logFailure(c.Logger, r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to get application")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, app)
}
