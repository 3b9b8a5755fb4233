package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rkashyapa/automanage-industrial-hub/internal/apierror"
	"github.com/rkashyapa/automanage-industrial-hub/internal/bom"
	"github.com/rkashyapa/automanage-industrial-hub/internal/dto"
	"github.com/rkashyapa/automanage-industrial-hub/internal/middleware"
	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
	"github.com/rkashyapa/automanage-industrial-hub/internal/service"
)

type BOMHandler struct{ svc service.BOMService }

func NewBOMHandler(svc service.BOMService) *BOMHandler {
	return &BOMHandler{svc: svc}
}

// View GET /v1/bom
// Optional query params: text, status (comma separated), category (comma separated).
func (h *BOMHandler) View(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	filter := bom.Filter{Text: c.Query("text")}
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			status := model.PartStatus(strings.TrimSpace(s))
			if !status.Valid() {
				c.JSON(http.StatusBadRequest, apierror.New("Unknown status filter: "+s))
				return
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}
	if raw := c.Query("category"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			filter.Categories = append(filter.Categories, strings.TrimSpace(name))
		}
	}

	resp, err := h.svc.Query(c.Request.Context(), sessionID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Summary GET /v1/bom/summary
func (h *BOMHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Save POST /v1/bom/save
func (h *BOMHandler) Save(c *gin.Context) {
	resp, err := h.svc.Save(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Categories ────────────────────────────────────────────────────────────────

// CreateCategory POST /v1/bom/categories
func (h *BOMHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.AddCategory(c.Request.Context(), middleware.SessionID(c), req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"name": req.Name})
}

// RenameCategory PUT /v1/bom/categories/:name
func (h *BOMHandler) RenameCategory(c *gin.Context) {
	var req dto.RenameCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RenameCategory(c.Request.Context(), middleware.SessionID(c), c.Param("name"), req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": req.Name})
}

// DeleteCategory DELETE /v1/bom/categories/:name
func (h *BOMHandler) DeleteCategory(c *gin.Context) {
	if err := h.svc.DeleteCategory(c.Request.Context(), middleware.SessionID(c), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ── Parts ─────────────────────────────────────────────────────────────────────

// CreatePart POST /v1/bom/categories/:name/parts
func (h *BOMHandler) CreatePart(c *gin.Context) {
	var req dto.CreatePartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddPart(c.Request.Context(), middleware.SessionID(c), c.Param("name"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetPart GET /v1/bom/parts/:key
func (h *BOMHandler) GetPart(c *gin.Context) {
	resp, err := h.svc.Part(c.Request.Context(), middleware.SessionID(c), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePart PATCH /v1/bom/parts/:key
func (h *BOMHandler) UpdatePart(c *gin.Context) {
	var req dto.UpdatePartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdatePart(c.Request.Context(), middleware.SessionID(c), c.Param("key"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeletePart DELETE /v1/bom/parts/:key
func (h *BOMHandler) DeletePart(c *gin.Context) {
	if err := h.svc.DeletePart(c.Request.Context(), middleware.SessionID(c), c.Param("key")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// SetQuantity PUT /v1/bom/parts/:key/quantity
// Out-of-range values are clamped, not rejected; the response carries the
// quantity that was actually applied.
func (h *BOMHandler) SetQuantity(c *gin.Context) {
	var req dto.SetQuantityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SetQuantity(c.Request.Context(), middleware.SessionID(c), c.Param("key"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Vendors ───────────────────────────────────────────────────────────────────

// AddVendor POST /v1/bom/parts/:key/vendors
func (h *BOMHandler) AddVendor(c *gin.Context) {
	var req dto.CreateVendorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddVendor(c.Request.Context(), middleware.SessionID(c), c.Param("key"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateVendor PATCH /v1/bom/parts/:key/vendors/:idx
func (h *BOMHandler) UpdateVendor(c *gin.Context) {
	idx, ok := vendorIndex(c)
	if !ok {
		return
	}
	var req dto.UpdateVendorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateVendor(c.Request.Context(), middleware.SessionID(c), c.Param("key"), idx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteVendor DELETE /v1/bom/parts/:key/vendors/:idx
func (h *BOMHandler) DeleteVendor(c *gin.Context) {
	idx, ok := vendorIndex(c)
	if !ok {
		return
	}
	resp, err := h.svc.DeleteVendor(c.Request.Context(), middleware.SessionID(c), c.Param("key"), idx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FinalizeVendor POST /v1/bom/parts/:key/vendors/:idx/finalize
func (h *BOMHandler) FinalizeVendor(c *gin.Context) {
	idx, ok := vendorIndex(c)
	if !ok {
		return
	}
	resp, err := h.svc.FinalizeVendor(c.Request.Context(), middleware.SessionID(c), c.Param("key"), idx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Documents ─────────────────────────────────────────────────────────────────

// AddPartDocument POST /v1/bom/parts/:key/documents
func (h *BOMHandler) AddPartDocument(c *gin.Context) {
	var req dto.AddDocumentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddPartDocument(c.Request.Context(), middleware.SessionID(c), c.Param("key"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RemovePartDocument DELETE /v1/bom/parts/:key/documents/:doc
func (h *BOMHandler) RemovePartDocument(c *gin.Context) {
	resp, err := h.svc.RemovePartDocument(c.Request.Context(), middleware.SessionID(c), c.Param("key"), c.Param("doc"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddVendorDocument POST /v1/bom/parts/:key/vendors/:idx/documents
func (h *BOMHandler) AddVendorDocument(c *gin.Context) {
	idx, ok := vendorIndex(c)
	if !ok {
		return
	}
	var req dto.AddDocumentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddVendorDocument(c.Request.Context(), middleware.SessionID(c), c.Param("key"), idx, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RemoveVendorDocument DELETE /v1/bom/parts/:key/vendors/:idx/documents/:doc
func (h *BOMHandler) RemoveVendorDocument(c *gin.Context) {
	idx, ok := vendorIndex(c)
	if !ok {
		return
	}
	resp, err := h.svc.RemoveVendorDocument(c.Request.Context(), middleware.SessionID(c), c.Param("key"), idx, c.Param("doc"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func vendorIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid vendor index"))
		return 0, false
	}
	return idx, true
}
