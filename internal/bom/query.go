package bom

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

// Filter narrows the tree returned by Query. Empty fields mean no
// restriction on that axis.
type Filter struct {
	// Text is matched case-insensitively as a substring of a part's name,
	// part number, or description (any field matching is enough).
	Text string
	// Statuses restricts to parts in any of the listed statuses.
	Statuses []model.PartStatus
	// Categories restricts to the listed category names.
	Categories []string
}

// Query returns a deep copy of the tree reduced to parts matching the
// filter. Categories whose item list becomes empty are dropped. Query
// never mutates the store; two calls with the same filter and no
// intervening mutation return identical results.
func (s *Store) Query(f Filter) []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	text := strings.ToLower(f.Text)
	out := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if len(f.Categories) > 0 && !lo.Contains(f.Categories, c.Name) {
			continue
		}
		items := lo.Filter(c.Items, func(p model.Part, _ int) bool {
			return matchesText(p, text) && matchesStatus(p, f.Statuses)
		})
		if len(items) == 0 {
			continue
		}
		cc := model.Category{Name: c.Name, Items: make([]model.Part, len(items))}
		for i, p := range items {
			cc.Items[i] = clonePart(p)
		}
		out = append(out, cc)
	}
	return out
}

func matchesText(p model.Part, text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), text) ||
		strings.Contains(strings.ToLower(p.PartID), text) ||
		strings.Contains(strings.ToLower(p.Description), text)
}

func matchesStatus(p model.Part, statuses []model.PartStatus) bool {
	return len(statuses) == 0 || lo.Contains(statuses, p.Status)
}

// Categories returns a deep copy of the whole tree, unfiltered.
func (s *Store) Categories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCategories(s.categories)
}

// Part returns a copy of a single part by internal id or part number.
func (s *Store) Part(key string) (model.Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, pi := s.findPart(key)
	if ci < 0 {
		return model.Part{}, ErrPartNotFound
	}
	return clonePart(s.categories[ci].Items[pi]), nil
}

// Summary holds the per-status part counts shown in the BOM header.
type Summary struct {
	Total    int `json:"total"`
	Received int `json:"received"`
	Ordered  int `json:"ordered"`
	Pending  int `json:"pending"`
}

// Summary counts parts per procurement status across the whole tree.
func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum Summary
	for _, c := range s.categories {
		for _, p := range c.Items {
			sum.Total++
			switch p.Status {
			case model.StatusReceived:
				sum.Received++
			case model.StatusOrdered:
				sum.Ordered++
			default:
				sum.Pending++
			}
		}
	}
	return sum
}

// MaterialCost sums finalized-vendor price × quantity across all parts.
// Parts without a finalized vendor (or with a priceless one) contribute
// nothing.
func (s *Store) MaterialCost() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, c := range s.categories {
		for _, p := range c.Items {
			v := p.FinalizedVendor()
			if v == nil || v.Price == nil {
				continue
			}
			total = total.Add(v.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		}
	}
	return total
}
