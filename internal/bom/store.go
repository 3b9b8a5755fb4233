// Package bom implements the in-memory bill-of-materials store: an owned
// aggregate root holding the category → part → vendor → document tree.
//
// Every command validates fully before mutating, so a failed operation
// never leaves partial state behind. The store assumes a single active
// editor per instance; the mutex only serializes HTTP goroutines, it is
// not a multi-editor conflict layer.
package bom

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

// Quantity bounds for the stepper semantics: requests outside the range
// are clamped, never applied below MinQuantity.
const (
	MinQuantity = 1
	MaxQuantity = 999
)

// Store owns the BOM tree for one session.
type Store struct {
	mu         sync.Mutex
	categories []model.Category
}

func NewStore() *Store {
	return &Store{}
}

// ── Categories ───────────────────────────────────────────────────────────────

// AddCategory appends an empty category. Names are matched case-sensitive.
func (s *Store) AddCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findCategory(name) >= 0 {
		return fmt.Errorf("add category %q: %w", name, ErrDuplicateCategory)
	}
	s.categories = append(s.categories, model.Category{Name: name, Items: []model.Part{}})
	return nil
}

// RenameCategory renames a category and rewrites the Category field on
// every contained part. Renaming a category to its own name is a no-op.
func (s *Store) RenameCategory(oldName, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci := s.findCategory(oldName)
	if ci < 0 {
		return fmt.Errorf("rename category %q: %w", oldName, ErrCategoryNotFound)
	}
	if newName == oldName {
		return nil
	}
	if s.findCategory(newName) >= 0 {
		return fmt.Errorf("rename category to %q: %w", newName, ErrDuplicateCategory)
	}

	s.categories[ci].Name = newName
	for i := range s.categories[ci].Items {
		s.categories[ci].Items[i].Category = newName
	}
	return nil
}

// DeleteCategory removes a category and all parts it contains. Deleting
// an absent category is an error, matching the strict validation policy
// of the other category operations.
func (s *Store) DeleteCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci := s.findCategory(name)
	if ci < 0 {
		return fmt.Errorf("delete category %q: %w", name, ErrCategoryNotFound)
	}
	s.categories = append(s.categories[:ci], s.categories[ci+1:]...)
	return nil
}

// ── Parts ────────────────────────────────────────────────────────────────────

// PartDraft carries the caller-supplied fields for a new part.
type PartDraft struct {
	Name               string
	PartID             string
	Description        string
	DescriptionEntries []model.DescriptionEntry
	Quantity           int
	ExpectedDelivery   string
	PONumber           string
}

// AddPart validates the draft and appends a new part to the named category.
// The part receives a fresh immutable internal id, status "not-ordered" and
// an empty vendor list. The draft quantity is clamped into the stepper
// bounds (an unset quantity becomes MinQuantity).
func (s *Store) AddPart(categoryName string, draft PartDraft) (model.Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci := s.findCategory(categoryName)
	if ci < 0 {
		return model.Part{}, fmt.Errorf("add part to %q: %w", categoryName, ErrCategoryNotFound)
	}
	if draft.PartID == "" || s.partIDExists(draft.PartID) {
		return model.Part{}, fmt.Errorf("part id %q: %w", draft.PartID, ErrDuplicatePartID)
	}
	if draft.Name == "" {
		return model.Part{}, fmt.Errorf("%w: name must be non-empty", ErrInvalidPart)
	}

	p := model.Part{
		ID:                 uuid.NewString(),
		Name:               draft.Name,
		PartID:             draft.PartID,
		Description:        draft.Description,
		DescriptionEntries: cloneEntries(draft.DescriptionEntries),
		Category:           categoryName,
		Quantity:           clampQuantity(draft.Quantity),
		Vendors:            []model.Vendor{},
		Status:             model.StatusNotOrdered,
		ExpectedDelivery:   draft.ExpectedDelivery,
		PONumber:           draft.PONumber,
	}
	if len(p.DescriptionEntries) > 0 {
		p.Description = model.RenderDescription(p.DescriptionEntries)
	}

	s.categories[ci].Items = append(s.categories[ci].Items, p)
	return clonePart(p), nil
}

// PartPatch carries the optional fields merged by UpdatePart. Nil fields
// are left untouched on the part.
type PartPatch struct {
	Name               *string
	Description        *string
	DescriptionEntries *[]model.DescriptionEntry
	Quantity           *int
	Vendors            *[]model.Vendor
	Documents          *[]string
	Status             *model.PartStatus
	ExpectedDelivery   *string
	PONumber           *string

	// FinalizedVendorIndex sets the finalized vendor; ClearFinalizedVendor
	// removes it. Setting both is treated as a clear.
	FinalizedVendorIndex *int
	ClearFinalizedVendor bool
}

// UpdatePart merges the patch into the part identified by key (internal id
// or part number). The patch is validated against a working copy first;
// the stored part is only replaced once the whole patch is known good.
func (s *Store) UpdatePart(key string, patch PartPatch) (model.Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, pi := s.findPart(key)
	if ci < 0 {
		return model.Part{}, fmt.Errorf("update part %q: %w", key, ErrPartNotFound)
	}

	p := clonePart(s.categories[ci].Items[pi])

	if patch.Name != nil {
		if *patch.Name == "" {
			return model.Part{}, fmt.Errorf("%w: name must be non-empty", ErrInvalidPart)
		}
		p.Name = *patch.Name
	}
	if patch.Quantity != nil {
		if *patch.Quantity < MinQuantity {
			return model.Part{}, fmt.Errorf("quantity %d: %w", *patch.Quantity, ErrInvalidQuantity)
		}
		p.Quantity = *patch.Quantity
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return model.Part{}, fmt.Errorf("%w: unknown status %q", ErrInvalidPart, *patch.Status)
		}
		p.Status = *patch.Status
	}
	if patch.ExpectedDelivery != nil {
		p.ExpectedDelivery = *patch.ExpectedDelivery
	}
	if patch.PONumber != nil {
		p.PONumber = *patch.PONumber
	}

	// Structured entries are canonical: setting them regenerates the display
	// description. A raw description patch replaces the entries outright.
	if patch.DescriptionEntries != nil {
		p.DescriptionEntries = cloneEntries(*patch.DescriptionEntries)
		p.Description = model.RenderDescription(p.DescriptionEntries)
	} else if patch.Description != nil {
		p.Description = *patch.Description
		p.DescriptionEntries = nil
	}

	if patch.Vendors != nil {
		vendors, err := normalizeVendors(*patch.Vendors)
		if err != nil {
			return model.Part{}, err
		}
		p.Vendors = vendors
	}
	if patch.Documents != nil {
		p.Documents = cloneStrings(*patch.Documents)
	}

	switch {
	case patch.ClearFinalizedVendor:
		p.FinalizedVendorIndex = nil
	case patch.FinalizedVendorIndex != nil:
		i := *patch.FinalizedVendorIndex
		if i < 0 || i >= len(p.Vendors) {
			return model.Part{}, fmt.Errorf("finalized vendor %d: %w", i, ErrVendorIndexOutOfRange)
		}
		p.FinalizedVendorIndex = &i
	default:
		// The vendor list may have shrunk; drop a now-dangling reference.
		if fv := p.FinalizedVendorIndex; fv != nil && *fv >= len(p.Vendors) {
			p.FinalizedVendorIndex = nil
		}
	}

	s.categories[ci].Items[pi] = p
	return clonePart(p), nil
}

// DeletePart removes the part from its category's item list.
func (s *Store) DeletePart(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, pi := s.findPart(key)
	if ci < 0 {
		return fmt.Errorf("delete part %q: %w", key, ErrPartNotFound)
	}
	items := s.categories[ci].Items
	s.categories[ci].Items = append(items[:pi], items[pi+1:]...)
	return nil
}

// SetPartQuantity applies a quantity request from the stepper, clamped into
// [MinQuantity, MaxQuantity], and returns the quantity actually applied.
// A request below the minimum therefore lands on MinQuantity; the renderer
// owns the delete-confirmation flow for decrements at the floor.
func (s *Store) SetPartQuantity(key string, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, pi := s.findPart(key)
	if ci < 0 {
		return 0, fmt.Errorf("set quantity on %q: %w", key, ErrPartNotFound)
	}
	q := clampQuantity(quantity)
	s.categories[ci].Items[pi].Quantity = q
	return q, nil
}

// ── Lookup helpers (callers hold s.mu) ───────────────────────────────────────

func (s *Store) findCategory(name string) int {
	for i := range s.categories {
		if s.categories[i].Name == name {
			return i
		}
	}
	return -1
}

// findPart resolves a part by internal id or by part number; both are
// unique and immutable, so either works as a command key.
func (s *Store) findPart(key string) (catIdx, itemIdx int) {
	for ci := range s.categories {
		for pi := range s.categories[ci].Items {
			p := &s.categories[ci].Items[pi]
			if p.ID == key || p.PartID == key {
				return ci, pi
			}
		}
	}
	return -1, -1
}

func (s *Store) partIDExists(partID string) bool {
	for ci := range s.categories {
		for pi := range s.categories[ci].Items {
			if s.categories[ci].Items[pi].PartID == partID {
				return true
			}
		}
	}
	return false
}

func clampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}
