package bom

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

// VendorDraft carries the caller-supplied fields for a new vendor entry.
type VendorDraft struct {
	Name         string
	Price        *decimal.Decimal
	LeadTime     string
	Availability string
	Quantity     *int
}

// AddVendor appends a vendor to the part's vendor list. Availability
// defaults to "In Stock" when unspecified.
func (s *Store) AddVendor(key string, draft VendorDraft) (model.Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, pi := s.findPart(key)
	if ci < 0 {
		return model.Part{}, fmt.Errorf("add vendor to %q: %w", key, ErrPartNotFound)
	}
	v, err := normalizeVendor(model.Vendor{
		Name:         draft.Name,
		Price:        draft.Price,
		LeadTime:     draft.LeadTime,
		Availability: draft.Availability,
		Quantity:     draft.Quantity,
	})
	if err != nil {
		return model.Part{}, err
	}

	p := &s.categories[ci].Items[pi]
	p.Vendors = append(p.Vendors, v)
	return clonePart(*p), nil
}

// VendorPatch carries the optional fields merged by UpdateVendor.
type VendorPatch struct {
	Name         *string
	Price        *decimal.Decimal
	LeadTime     *string
	Availability *string
	Quantity     *int
}

// UpdateVendor merges the patch into the vendor at the given index.
func (s *Store) UpdateVendor(key string, index int, patch VendorPatch) (model.Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, pi := s.findPart(key)
	if ci < 0 {
		return model.Part{}, fmt.Errorf("update vendor on %q: %w", key, ErrPartNotFound)
	}
	p := &s.categories[ci].Items[pi]
	if index < 0 || index >= len(p.Vendors) {
		return model.Part{}, fmt.Errorf("vendor %d: %w", index, ErrVendorIndexOutOfRange)
	}

	v := cloneVendor(p.Vendors[index])
	if patch.Name != nil {
		v.Name = *patch.Name
	}
	if patch.Price != nil {
		price := *patch.Price
		v.Price = &price
	}
	if patch.LeadTime != nil {
		v.LeadTime = *patch.LeadTime
	}
	if patch.Availability != nil {
		v.Availability = *patch.Availability
	}
	if patch.Quantity != nil {
		q := *patch.Quantity
		v.Quantity = &q
	}
	v, err := normalizeVendor(v)
	if err != nil {
		return model.Part{}, err
	}

	p.Vendors[index] = v
	return clonePart(*p), nil
}

// DeleteVendor removes the vendor at the given index and keeps the
// finalized-vendor reference correct: deleting the finalized vendor clears
// it, deleting an earlier vendor shifts it down by one.
func (s *Store) DeleteVendor(key string, index int) (model.Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, pi := s.findPart(key)
	if ci < 0 {
		return model.Part{}, fmt.Errorf("delete vendor on %q: %w", key, ErrPartNotFound)
	}
	p := &s.categories[ci].Items[pi]
	if index < 0 || index >= len(p.Vendors) {
		return model.Part{}, fmt.Errorf("vendor %d: %w", index, ErrVendorIndexOutOfRange)
	}

	if fv := p.FinalizedVendorIndex; fv != nil {
		switch {
		case *fv == index:
			p.FinalizedVendorIndex = nil
		case *fv > index:
			shifted := *fv - 1
			p.FinalizedVendorIndex = &shifted
		}
	}
	p.Vendors = append(p.Vendors[:index], p.Vendors[index+1:]...)
	return clonePart(*p), nil
}

// FinalizeVendor marks the vendor at the given index as the purchase
// source. It deliberately does not transition the part status; ordering
// is an explicit caller decision.
func (s *Store) FinalizeVendor(key string, index int) (model.Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, pi := s.findPart(key)
	if ci < 0 {
		return model.Part{}, fmt.Errorf("finalize vendor on %q: %w", key, ErrPartNotFound)
	}
	p := &s.categories[ci].Items[pi]
	if index < 0 || index >= len(p.Vendors) {
		return model.Part{}, fmt.Errorf("vendor %d: %w", index, ErrVendorIndexOutOfRange)
	}
	i := index
	p.FinalizedVendorIndex = &i
	return clonePart(*p), nil
}

// ── Documents ────────────────────────────────────────────────────────────────
//
// Part-level and vendor-level document lists are independent ordered
// sequences; duplicates are allowed. Removing a filename drops its first
// occurrence and removing an absent filename is a no-op.

func (s *Store) AddPartDocument(key, filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, pi := s.findPart(key)
	if ci < 0 {
		return fmt.Errorf("add document to %q: %w", key, ErrPartNotFound)
	}
	p := &s.categories[ci].Items[pi]
	p.Documents = append(p.Documents, filename)
	return nil
}

func (s *Store) RemovePartDocument(key, filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, pi := s.findPart(key)
	if ci < 0 {
		return fmt.Errorf("remove document from %q: %w", key, ErrPartNotFound)
	}
	p := &s.categories[ci].Items[pi]
	p.Documents = removeFirst(p.Documents, filename)
	return nil
}

func (s *Store) AddVendorDocument(key string, index int, filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, pi := s.findPart(key)
	if ci < 0 {
		return fmt.Errorf("add vendor document to %q: %w", key, ErrPartNotFound)
	}
	p := &s.categories[ci].Items[pi]
	if index < 0 || index >= len(p.Vendors) {
		return fmt.Errorf("vendor %d: %w", index, ErrVendorIndexOutOfRange)
	}
	p.Vendors[index].Documents = append(p.Vendors[index].Documents, filename)
	return nil
}

func (s *Store) RemoveVendorDocument(key string, index int, filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, pi := s.findPart(key)
	if ci < 0 {
		return fmt.Errorf("remove vendor document from %q: %w", key, ErrPartNotFound)
	}
	p := &s.categories[ci].Items[pi]
	if index < 0 || index >= len(p.Vendors) {
		return fmt.Errorf("vendor %d: %w", index, ErrVendorIndexOutOfRange)
	}
	p.Vendors[index].Documents = removeFirst(p.Vendors[index].Documents, filename)
	return nil
}

// AllDocuments returns a deduplicated merged view of the part's documents
// followed by every vendor's, in list order. It is display-only: the
// underlying lists stay independent.
func (s *Store) AllDocuments(key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, pi := s.findPart(key)
	if ci < 0 {
		return nil, fmt.Errorf("documents of %q: %w", key, ErrPartNotFound)
	}
	p := &s.categories[ci].Items[pi]

	merged := make([]string, 0, len(p.Documents))
	merged = append(merged, p.Documents...)
	for _, v := range p.Vendors {
		merged = append(merged, v.Documents...)
	}
	return lo.Uniq(merged), nil
}

func removeFirst(list []string, name string) []string {
	for i, d := range list {
		if d == name {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func normalizeVendor(v model.Vendor) (model.Vendor, error) {
	if v.Name == "" {
		return model.Vendor{}, fmt.Errorf("%w: name must be non-empty", ErrInvalidVendor)
	}
	if v.Price != nil && v.Price.IsNegative() {
		return model.Vendor{}, fmt.Errorf("%w: price must not be negative", ErrInvalidVendor)
	}
	if v.Availability == "" {
		v.Availability = model.DefaultAvailability
	}
	return v, nil
}

func normalizeVendors(in []model.Vendor) ([]model.Vendor, error) {
	out := make([]model.Vendor, len(in))
	for i, v := range in {
		nv, err := normalizeVendor(cloneVendor(v))
		if err != nil {
			return nil, err
		}
		out[i] = nv
	}
	return out, nil
}
