package bom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

func TestExportRowsLayout(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddCategory("Optical parts"))
	_, err := s.AddPart("Optical parts", PartDraft{Name: "Sony XYZ", PartID: "OPT001", Quantity: 1})
	require.NoError(t, err)

	meta := ProjectMeta{ProjectID: "PRJ-2024-001", ProjectName: "Vision System Alpha", ClientName: "Manufacturing Corp"}
	rows := s.ExportRows(meta)
	require.Len(t, rows, 1)

	// "not-ordered" renders as "Pending"; unset delivery/vendor/price are blank.
	assert.Equal(t, []string{
		"PRJ-2024-001", "Vision System Alpha", "Manufacturing Corp",
		"OPT001", "Sony XYZ", "Optical parts", "1", "Pending", "", "", "",
	}, rows[0])
}

func TestExportRowsIncludesFinalizedVendor(t *testing.T) {
	s := newSeededStore(t)
	_, err := s.AddVendor("OPT002", VendorDraft{Name: "Vision Systems Inc", Price: decPtr("1250.50"), LeadTime: "2 weeks"})
	require.NoError(t, err)
	_, err = s.FinalizeVendor("OPT002", 0)
	require.NoError(t, err)
	delivery := "2024-03-15"
	status := model.StatusOrdered
	_, err = s.UpdatePart("OPT002", PartPatch{ExpectedDelivery: &delivery, Status: &status})
	require.NoError(t, err)

	rows := s.ExportRows(ProjectMeta{})
	require.Len(t, rows, 3)

	var lens []string
	for _, r := range rows {
		if r[3] == "OPT002" {
			lens = r
		}
	}
	require.NotNil(t, lens)
	assert.Equal(t, "Ordered", lens[7])
	assert.Equal(t, "2024-03-15", lens[8])
	assert.Equal(t, "Vision Systems Inc", lens[9])
	assert.Equal(t, "1250.5", lens[10])
}

func TestExportRowsCategoryThenInsertionOrder(t *testing.T) {
	s := newSeededStore(t)

	rows := s.ExportRows(ProjectMeta{})
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r[3]
	}
	assert.Equal(t, []string{"OPT001", "OPT002", "MECH001"}, ids)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := newSeededStore(t)
	seedVendors(t, s, "OPT001", "Acme")
	_, err := s.FinalizeVendor("OPT001", 0)
	require.NoError(t, err)

	snap := s.Snapshot("session-1")
	assert.Equal(t, "session-1", snap.SessionID)
	assert.False(t, snap.SavedAt.IsZero())

	restored := NewStore()
	restored.Restore(snap)
	assert.Equal(t, s.Categories(), restored.Categories())

	// The snapshot is a copy: later mutations don't leak into it.
	require.NoError(t, s.DeleteCategory("Optical parts"))
	assert.Len(t, snap.Categories, 2)
	assert.Len(t, restored.Categories(), 2)
}
