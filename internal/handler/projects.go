package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rkashyapa/automanage-industrial-hub/internal/apierror"
	"github.com/rkashyapa/automanage-industrial-hub/internal/dto"
	"github.com/rkashyapa/automanage-industrial-hub/internal/service"
)

type ProjectsHandler struct{ svc service.ProjectService }

func NewProjectsHandler(svc service.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{svc: svc}
}

// Create POST /v1/projects
func (h *ProjectsHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List GET /v1/projects
func (h *ProjectsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /v1/projects/:id
func (h *ProjectsHandler) Get(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PATCH /v1/projects/:id
func (h *ProjectsHandler) Update(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/projects/:id
func (h *ProjectsHandler) Delete(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// DashboardMetrics GET /v1/dashboard/metrics
func (h *ProjectsHandler) DashboardMetrics(c *gin.Context) {
	resp, err := h.svc.DashboardMetrics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func projectID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid project id"))
		return uuid.Nil, false
	}
	return id, true
}
