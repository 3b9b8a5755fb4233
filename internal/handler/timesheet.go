package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rkashyapa/automanage-industrial-hub/internal/apierror"
	"github.com/rkashyapa/automanage-industrial-hub/internal/dto"
	"github.com/rkashyapa/automanage-industrial-hub/internal/middleware"
	"github.com/rkashyapa/automanage-industrial-hub/internal/service"
)

type TimesheetHandler struct{ svc service.TimesheetService }

func NewTimesheetHandler(svc service.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{svc: svc}
}

// View GET /v1/timesheet
func (h *TimesheetHandler) View(c *gin.Context) {
	resp, err := h.svc.View(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Totals GET /v1/timesheet/totals
func (h *TimesheetHandler) Totals(c *gin.Context) {
	resp, err := h.svc.Totals(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddWeek POST /v1/timesheet/weeks
func (h *TimesheetHandler) AddWeek(c *gin.Context) {
	week, err := h.svc.AddWeek(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"week": week})
}

// AddEngineer POST /v1/timesheet/engineers
// Body is optional; an empty or missing name gets the next default.
func (h *TimesheetHandler) AddEngineer(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
			return
		}
	}
	resp, err := h.svc.AddEngineer(c.Request.Context(), middleware.SessionID(c), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RenameEngineer PUT /v1/timesheet/engineers/:idx
func (h *TimesheetHandler) RenameEngineer(c *gin.Context) {
	idx, ok := engineerIndex(c)
	if !ok {
		return
	}
	var req dto.RenameEngineerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RenameEngineer(c.Request.Context(), middleware.SessionID(c), idx, req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": req.Name})
}

// SetHours PUT /v1/timesheet/engineers/:idx/hours
func (h *TimesheetHandler) SetHours(c *gin.Context) {
	idx, ok := engineerIndex(c)
	if !ok {
		return
	}
	var req dto.SetHoursRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetHours(c.Request.Context(), middleware.SessionID(c), idx, req.Week, req.Hours); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"week": req.Week, "hours": req.Hours})
}

// SelectWeek PUT /v1/timesheet/week
func (h *TimesheetHandler) SelectWeek(c *gin.Context) {
	var req dto.SelectWeekRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SelectWeek(c.Request.Context(), middleware.SessionID(c), req.Week); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected_week": req.Week})
}

// CostAnalysis POST /v1/timesheet/cost
func (h *TimesheetHandler) CostAnalysis(c *gin.Context) {
	var req dto.CostAnalysisRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CostAnalysis(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Save POST /v1/timesheet/save
func (h *TimesheetHandler) Save(c *gin.Context) {
	resp, err := h.svc.Save(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func engineerIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid engineer index"))
		return 0, false
	}
	return idx, true
}
