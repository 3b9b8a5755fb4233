package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/rkashyapa/automanage-industrial-hub/internal/bom"
	"github.com/rkashyapa/automanage-industrial-hub/internal/export"
	"github.com/rkashyapa/automanage-industrial-hub/internal/infra"
	"github.com/rkashyapa/automanage-industrial-hub/internal/middleware"
	"github.com/rkashyapa/automanage-industrial-hub/internal/service"
)

// ExportHandler serves CSV and PDF downloads of the session's BOM and
// timesheet. Project metadata for the report header comes from query params
// so exports work without a registry entry.
type ExportHandler struct {
	bomSvc       service.BOMService
	timesheetSvc service.TimesheetService
	storagePath  string
}

func NewExportHandler(bomSvc service.BOMService, timesheetSvc service.TimesheetService, storagePath string) *ExportHandler {
	return &ExportHandler{bomSvc: bomSvc, timesheetSvc: timesheetSvc, storagePath: storagePath}
}

func projectMeta(c *gin.Context) bom.ProjectMeta {
	return bom.ProjectMeta{
		ProjectID:   c.Query("project_id"),
		ProjectName: c.Query("project_name"),
		ClientName:  c.Query("client"),
	}
}

// BOMCSV GET /v1/bom/export.csv
func (h *ExportHandler) BOMCSV(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	rows, err := h.bomSvc.ExportRows(c.Request.Context(), sessionID, projectMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	data, err := export.EncodeCSV(export.BOMHeader, rows)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bom.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// BOMPDF GET /v1/bom/export.pdf
func (h *ExportHandler) BOMPDF(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	cats, err := h.bomSvc.Categories(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	cost, err := h.bomSvc.MaterialCost(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	meta := projectMeta(c)

	path, err := infra.GenerateBOMPDF(infra.BOMReport{
		SessionID:    sessionID,
		ProjectName:  meta.ProjectName,
		ClientName:   meta.ClientName,
		Categories:   cats,
		MaterialCost: cost,
	}, h.storagePath)
	if err != nil {
		respondError(c, err)
		return
	}
	defer os.Remove(path)

	c.FileAttachment(path, filepath.Base(path))
}

// TimesheetCSV GET /v1/timesheet/export.csv
func (h *ExportHandler) TimesheetCSV(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	header, rows, err := h.timesheetSvc.ExportRows(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	data, err := export.EncodeCSV(header, rows)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="timesheet.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
