package bom

import (
	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

// Deep-copy helpers. The store never hands out aliases into its own tree:
// every read returns a copy and every draft/patch is copied on the way in,
// so callers cannot mutate store state behind the lock.

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneEntries(in []model.DescriptionEntry) []model.DescriptionEntry {
	if in == nil {
		return nil
	}
	out := make([]model.DescriptionEntry, len(in))
	copy(out, in)
	return out
}

func cloneVendor(v model.Vendor) model.Vendor {
	out := v
	if v.Price != nil {
		p := *v.Price
		out.Price = &p
	}
	if v.Quantity != nil {
		q := *v.Quantity
		out.Quantity = &q
	}
	out.Documents = cloneStrings(v.Documents)
	return out
}

func cloneVendors(in []model.Vendor) []model.Vendor {
	if in == nil {
		return nil
	}
	out := make([]model.Vendor, len(in))
	for i, v := range in {
		out[i] = cloneVendor(v)
	}
	return out
}

func clonePart(p model.Part) model.Part {
	out := p
	out.DescriptionEntries = cloneEntries(p.DescriptionEntries)
	out.Vendors = cloneVendors(p.Vendors)
	out.Documents = cloneStrings(p.Documents)
	if p.FinalizedVendorIndex != nil {
		i := *p.FinalizedVendorIndex
		out.FinalizedVendorIndex = &i
	}
	return out
}

func cloneCategory(c model.Category) model.Category {
	out := model.Category{Name: c.Name, Items: make([]model.Part, len(c.Items))}
	for i, p := range c.Items {
		out.Items[i] = clonePart(p)
	}
	return out
}

func cloneCategories(in []model.Category) []model.Category {
	out := make([]model.Category, len(in))
	for i, c := range in {
		out[i] = cloneCategory(c)
	}
	return out
}
