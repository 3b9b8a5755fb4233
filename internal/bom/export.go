package bom

import (
	"strconv"
)

// ProjectMeta is the externally supplied project context repeated on every
// export row. The store does not own project data.
type ProjectMeta struct {
	ProjectID   string
	ProjectName string
	ClientName  string
}

// ExportRows produces one row per part across all categories, unfiltered,
// in category-then-insertion order. Field layout matches the fixed export
// header (see export.Header). Values are emitted as-is; quoting and
// escaping belong to the CSV encoder, not the store.
func (s *Store) ExportRows(meta ProjectMeta) [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([][]string, 0)
	for _, c := range s.categories {
		for _, p := range c.Items {
			vendorName, vendorPrice := "", ""
			if v := p.FinalizedVendor(); v != nil {
				vendorName = v.Name
				if v.Price != nil {
					vendorPrice = v.Price.String()
				}
			}
			rows = append(rows, []string{
				meta.ProjectID,
				meta.ProjectName,
				meta.ClientName,
				p.PartID,
				p.Name,
				c.Name,
				strconv.Itoa(p.Quantity),
				p.Status.Human(),
				p.ExpectedDelivery,
				vendorName,
				vendorPrice,
			})
		}
	}
	return rows
}
