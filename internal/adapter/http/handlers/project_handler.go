package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "bathroom_quote_saver/internal/adapter/http/dto/request"
	response "bathroom_quote_saver/internal/adapter/http/dto/response"
	"bathroom_quote_saver/internal/usecase"
	"bathroom_quote_saver/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
)

// ProjectHandler handles HTTP requests for the saved project library.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// SaveProject godoc
// @Summary Save a quote as a named project
// @Tags projects
// @Accept json
// @Produce json
// @Param payload body request.SaveProjectRequest true "Project"
// @Success 201 {object} response.SavedProjectResponse
// @Router /api/projects/save [post]
func (h *ProjectHandler) SaveProject(c *gin.Context) {
	var payload request.SaveProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.SaveProject(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSavedProject(project))
}

// ListProjects godoc
// @Summary List saved projects
// @Tags projects
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} response.SavedProjectResponse
// @Router /api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))

	projects, err := h.usecase.ListProjects(c.Request.Context(), category)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSavedProjects(projects))
}

// UpdateProject godoc
// @Summary Update a saved project
// @Tags projects
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param payload body request.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} response.SavedProjectResponse
// @Router /api/projects/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID := strings.TrimSpace(c.Param("project_id"))
	if projectID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	var payload request.UpdateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}
	if payload.IsEmpty() {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.UpdateProject(c.Request.Context(), projectID, payload.ToUpdate())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSavedProject(project))
}

// DeleteProject godoc
// @Summary Delete a saved project
// @Tags projects
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} response.MessageResponse
// @Router /api/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID := strings.TrimSpace(c.Param("project_id"))
	if projectID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	if err := h.usecase.DeleteProject(c.Request.Context(), projectID); err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Project deleted successfully"})
}

// GetCategories godoc
// @Summary List distinct project categories
// @Tags projects
// @Produce json
// @Success 200 {object} response.CategoriesResponse
// @Router /api/projects/categories [get]
func (h *ProjectHandler) GetCategories(c *gin.Context) {
	categories, err := h.usecase.Categories(c.Request.Context())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CategoriesResponse{Categories: categories})
}

// GetProjectQuote godoc
// @Summary Load a saved project with its quote and request snapshot
// @Tags projects
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} response.ProjectWithQuoteResponse
// @Router /api/projects/{project_id}/quote [get]
func (h *ProjectHandler) GetProjectQuote(c *gin.Context) {
	projectID := strings.TrimSpace(c.Param("project_id"))
	if projectID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	pq, err := h.usecase.GetProjectWithQuote(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectWithQuote(pq))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidProject):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
