package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"hackhub/internal/delivery/http/helpers"
	"hackhub/internal/domain"
)

// CreateTeamRequest is the request body for POST /api/events/{eventID}/teams.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// TeamSuccessResponse is the success response envelope for a team.
type TeamSuccessResponse struct {
	Data  *domain.Team      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TeamMembersSuccessResponse is the success response envelope for a team's members.
type TeamMembersSuccessResponse struct {
	Data  []*domain.TeamMember `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type TeamController struct {
	Logger  *slog.Logger
	Service domain.TeamService
}

func NewTeamController(logger *slog.Logger, svc domain.TeamService) *TeamController {
	return &TeamController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateTeam godoc
// @Summary Create a team
// @Description Creates a team in the event. The caller becomes its first member.
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body CreateTeamRequest true "Team name"
// @Success 201 {object} controllers.TeamSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{eventID}/teams [post]
func (c *TeamController) CreateTeam(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	var req CreateTeamRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	team, err := c.Service.CreateTeam(r.Context(), eventID, userID, req.Name)
	if err != nil {
		switch {
		case writeValidationOrForbidden(w, err):
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		default:
			logFailure(c.Logger, r, err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to create team")
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, team)
}

// JoinTeam godoc
// @Summary Join a team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param teamID path string true "Team ID (UUID)"
// @Success 204 "joined"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/teams/{teamID}/members [post]
func (c *TeamController) JoinTeam(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathUUID(w, r, "teamID")
	if !ok {
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := c.Service.JoinTeam(r.Context(), teamID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "team not found")
		case errors.Is(err, domain.ErrAlreadyMember):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "already a team member")
		default:
			logFailure(c.Logger, r, err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to join team")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMembers godoc
// @Summary List team members
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param teamID path string true "Team ID (UUID)"
// @Success 200 {object} controllers.TeamMembersSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/teams/{teamID}/members [get]
func (c *TeamController) ListMembers(w http.ResponseWriter, r *http.Request) {
	teamID, ok := pathUUID(w, r, "teamID")
	if !ok {
		return
	}
	members, err := c.Service.ListMembers(r.Context(), teamID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "team not found")
			return
		}
		logFailure(c.Logger, r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list team members")
		return
	}
	if members == nil {
		members = []*domain.TeamMember{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, members)
}
