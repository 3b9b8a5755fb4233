package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PartStatus is the procurement state of a part.
type PartStatus string

const (
	StatusNotOrdered PartStatus = "not-ordered"
	StatusOrdered    PartStatus = "ordered"
	StatusReceived   PartStatus = "received"
)

// Valid reports whether s is one of the three known statuses.
func (s PartStatus) Valid() bool {
	switch s {
	case StatusNotOrdered, StatusOrdered, StatusReceived:
		return true
	}
	return false
}

// Human returns the display form used in exports and the UI
// ("not-ordered" renders as "Pending").
func (s PartStatus) Human() string {
	switch s {
	case StatusNotOrdered:
		return "Pending"
	case StatusOrdered:
		return "Ordered"
	case StatusReceived:
		return "Received"
	}
	return string(s)
}

// DescriptionEntry is one structured key/value line of a part description.
// The entry list is the canonical representation; the free-text Description
// on Part is regenerated from it and never parsed back.
type DescriptionEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RenderDescription builds the display string for a list of description
// entries, one bullet line per entry. Entries with an empty key and value
// are skipped.
func RenderDescription(entries []DescriptionEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		k := strings.TrimSpace(e.Key)
		v := strings.TrimSpace(e.Value)
		if k == "" && v == "" {
			continue
		}
		lines = append(lines, "• "+k+": "+v)
	}
	return strings.Join(lines, "\n")
}

// Vendor is a supplier offering a part. Price and Quantity are optional;
// Documents is an ordered list of filenames owned by this vendor entry,
// independent of the part-level document list.
type Vendor struct {
	Name         string           `json:"name"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	LeadTime     string           `json:"lead_time,omitempty"`
	Availability string           `json:"availability"`
	Quantity     *int             `json:"quantity,omitempty"`
	Documents    []string         `json:"documents,omitempty"`
}

// DefaultAvailability is assigned when a vendor is added without one.
const DefaultAvailability = "In Stock"

// Part is a purchasable item within a category.
//
// ID is an internal identifier assigned at creation and immutable after.
// PartID is the user-facing part number, unique across the whole store.
// FinalizedVendorIndex, when non-nil, indexes into Vendors and marks the
// vendor selected as the actual purchase source.
type Part struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	PartID               string             `json:"part_id"`
	Description          string             `json:"description,omitempty"`
	DescriptionEntries   []DescriptionEntry `json:"description_entries,omitempty"`
	Category             string             `json:"category"`
	Quantity             int                `json:"quantity"`
	Vendors              []Vendor           `json:"vendors"`
	Status               PartStatus         `json:"status"`
	ExpectedDelivery     string             `json:"expected_delivery,omitempty"`
	PONumber             string             `json:"po_number,omitempty"`
	FinalizedVendorIndex *int               `json:"finalized_vendor_index,omitempty"`
	Documents            []string           `json:"documents,omitempty"`
}

// FinalizedVendor returns the finalized vendor, or nil when none is set.
func (p *Part) FinalizedVendor() *Vendor {
	if p.FinalizedVendorIndex == nil {
		return nil
	}
	i := *p.FinalizedVendorIndex
	if i < 0 || i >= len(p.Vendors) {
		return nil
	}
	return &p.Vendors[i]
}

// Category is a named grouping of parts. Name is unique across the store.
// Presentation state (expand/collapse flags) is deliberately not part of
// the domain model; it belongs to the renderer.
type Category struct {
	Name  string `json:"name"`
	Items []Part `json:"items"`
}

// BOMSnapshot is the persistence shape handed to the snapshot store,
// keyed by the anonymous session identifier.
type BOMSnapshot struct {
	SessionID  string     `json:"session_id"`
	Categories []Category `json:"categories"`
	SavedAt    time.Time  `json:"saved_at"`
}
