package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type RenameCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type DescriptionEntryInput struct {
	Key   string `json:"key"   validate:"required,min=1"`
	Value string `json:"value"`
}

type CreatePartRequest struct {
	Name               string                  `json:"name"    validate:"required,min=1"`
	PartID             string                  `json:"part_id" validate:"required,min=1"`
	Description        string                  `json:"description"`
	DescriptionEntries []DescriptionEntryInput `json:"description_entries" validate:"dive"`
	Quantity           int                     `json:"quantity"`
}

type UpdatePartRequest struct {
	Name                 *string                 `json:"name"        validate:"omitempty,min=1"`
	Description          *string                 `json:"description"`
	DescriptionEntries   []DescriptionEntryInput `json:"description_entries" validate:"dive"`
	Quantity             *int                    `json:"quantity"`
	Status               *string                 `json:"status"      validate:"omitempty,oneof=not-ordered ordered received"`
	ExpectedDelivery     *string                 `json:"expected_delivery"`
	PONumber             *string                 `json:"po_number"`
	FinalizedVendorIndex *int                    `json:"finalized_vendor_index"`
	ClearFinalizedVendor bool                    `json:"clear_finalized_vendor"`
}

// SetQuantityRequest deliberately carries no validation: the store clamps
// any value into the allowed range, including 0 from a stepper decrement.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CreateVendorRequest struct {
	Name         string           `json:"name" validate:"required,min=1"`
	Price        *decimal.Decimal `json:"price"`
	LeadTime     string           `json:"lead_time"`
	Availability string           `json:"availability"`
	Quantity     *int             `json:"quantity" validate:"omitempty,min=0"`
}

type UpdateVendorRequest struct {
	Name         *string          `json:"name"  validate:"omitempty,min=1"`
	Price        *decimal.Decimal `json:"price"`
	LeadTime     *string          `json:"lead_time"`
	Availability *string          `json:"availability"`
	Quantity     *int             `json:"quantity" validate:"omitempty,min=0"`
}

type AddDocumentRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DescriptionEntryResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type VendorResponse struct {
	Name         string           `json:"name"`
	Price        *decimal.Decimal `json:"price"`
	LeadTime     string           `json:"lead_time,omitempty"`
	Availability string           `json:"availability"`
	Quantity     *int             `json:"quantity,omitempty"`
	Documents    []string         `json:"documents"`
}

type PartResponse struct {
	ID                   string                     `json:"id"`
	Name                 string                     `json:"name"`
	PartID               string                     `json:"part_id"`
	Description          string                     `json:"description"`
	DescriptionEntries   []DescriptionEntryResponse `json:"description_entries,omitempty"`
	Category             string                     `json:"category"`
	Quantity             int                        `json:"quantity"`
	Status               string                     `json:"status"`
	StatusLabel          string                     `json:"status_label"`
	ExpectedDelivery     string                     `json:"expected_delivery,omitempty"`
	PONumber             string                     `json:"po_number,omitempty"`
	FinalizedVendorIndex *int                       `json:"finalized_vendor_index,omitempty"`
	Vendors              []VendorResponse           `json:"vendors"`
	Documents            []string                   `json:"documents"`
	AllDocuments         []string                   `json:"all_documents"`
}

type CategoryResponse struct {
	Name  string         `json:"name"`
	Items []PartResponse `json:"items"`
}

type BOMResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type BOMSummaryResponse struct {
	Total        int             `json:"total"`
	Received     int             `json:"received"`
	Ordered      int             `json:"ordered"`
	Pending      int             `json:"pending"`
	MaterialCost decimal.Decimal `json:"material_cost"`
}

type SnapshotSavedResponse struct {
	SessionID string    `json:"session_id"`
	SavedAt   time.Time `json:"saved_at"`
}

// ─── Mapping helpers ─────────────────────────────────────────────────────────

func FromVendor(v model.Vendor) VendorResponse {
	return VendorResponse{
		Name:         v.Name,
		Price:        v.Price,
		LeadTime:     v.LeadTime,
		Availability: v.Availability,
		Quantity:     v.Quantity,
		Documents:    v.Documents,
	}
}

func FromPart(p model.Part) PartResponse {
	entries := make([]DescriptionEntryResponse, 0, len(p.DescriptionEntries))
	for _, e := range p.DescriptionEntries {
		entries = append(entries, DescriptionEntryResponse{Key: e.Key, Value: e.Value})
	}
	vendors := make([]VendorResponse, 0, len(p.Vendors))
	allDocs := append([]string{}, p.Documents...)
	for _, v := range p.Vendors {
		vendors = append(vendors, FromVendor(v))
		allDocs = append(allDocs, v.Documents...)
	}
	return PartResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		PartID:               p.PartID,
		Description:          p.Description,
		DescriptionEntries:   entries,
		Category:             p.Category,
		Quantity:             p.Quantity,
		Status:               string(p.Status),
		StatusLabel:          p.Status.Human(),
		ExpectedDelivery:     p.ExpectedDelivery,
		PONumber:             p.PONumber,
		FinalizedVendorIndex: p.FinalizedVendorIndex,
		Vendors:              vendors,
		Documents:            p.Documents,
		AllDocuments:         lo.Uniq(allDocs),
	}
}

func (r CreatePartRequest) Entries() []model.DescriptionEntry {
	return toEntries(r.DescriptionEntries)
}

func (r UpdatePartRequest) Entries() []model.DescriptionEntry {
	return toEntries(r.DescriptionEntries)
}

func toEntries(in []DescriptionEntryInput) []model.DescriptionEntry {
	if in == nil {
		return nil
	}
	out := make([]model.DescriptionEntry, 0, len(in))
	for _, e := range in {
		out = append(out, model.DescriptionEntry{Key: e.Key, Value: e.Value})
	}
	return out
}
