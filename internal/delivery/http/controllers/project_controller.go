package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"hackhub/internal/delivery/http/helpers"
	"hackhub/internal/domain"
)

// ProjectSuccessResponse is the success response envelope for a project.
type ProjectSuccessResponse struct {
	Data  *domain.Project   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListProjectsResponse is the data payload for GET /api/events/{eventID}/projects.
type ListProjectsResponse struct {
	Items      []*domain.Project      `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListProjectsSuccessResponse is the success response envelope for GET /api/events/{eventID}/projects (200).
type ListProjectsSuccessResponse struct {
	Data  ListProjectsResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type ProjectController struct {
	Logger  *slog.Logger
	Service domain.ProjectService
}

func NewProjectController(logger *slog.Logger, svc domain.ProjectService) *ProjectController {
	return &ProjectController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitProject godoc
// @Summary Submit a project
// @Description Submits the team's project for the event. Only team members may submit, once per team and event.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.ProjectInput true "Project submission"
// @Success 201 {object} controllers.ProjectSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/projects [post]
func (c *ProjectController) SubmitProject(w http.ResponseWriter, r *http.Request) {
	var req domain.ProjectInput
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	project, err := c.Service.SubmitProject(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotTeamMember):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, domain.ErrNotTeamMember.Error())
		case writeValidationOrForbidden(w, err):
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "team not found")
		case errors.Is(err, domain.ErrAlreadySubmitted):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "project already submitted for this team")
		default:
			logFailure(c.Logger, r, err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to submit project")
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, project)
}

// ListEventProjects godoc
// @Summary List an event's project submissions
// @Tags projects
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListProjectsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{eventID}/projects [get]
func (c *ProjectController) ListEventProjects(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	params, fields := helpers.ParsePagination(r)
	if fields != nil {
		helpers.WriteValidationError(w, "invalid pagination", fields)
		return
	}
	list, total, err := c.Service.ListEventProjects(r.Context(), eventID, params)
	if err != nil {
		logFailure(c.Logger, r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list projects")
		return
	}
	if list == nil {
		list = []*domain.Project{}
	}
	meta := helpers.NewPaginationMeta(params, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListProjectsResponse{Items: list, Pagination: meta})
}
