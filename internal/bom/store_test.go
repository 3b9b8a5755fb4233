package bom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.AddCategory("Optical parts"))
	require.NoError(t, s.AddCategory("Mechanical parts"))
	_, err := s.AddPart("Optical parts", PartDraft{
		Name:        "Sony XYZ",
		PartID:      "OPT001",
		Description: "Area scan camera",
		Quantity:    1,
	})
	require.NoError(t, err)
	_, err = s.AddPart("Optical parts", PartDraft{
		Name:        "Lens",
		PartID:      "OPT002",
		Description: "High quality lens for camera",
		Quantity:    2,
	})
	require.NoError(t, err)
	_, err = s.AddPart("Mechanical parts", PartDraft{
		Name:        "Mounting bracket",
		PartID:      "MECH001",
		Description: "Bracket for mounting camera and accessories",
		Quantity:    1,
	})
	require.NoError(t, err)
	return s
}

func TestAddCategoryDuplicate(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddCategory("Optics"))

	err := s.AddCategory("Optics")
	assert.ErrorIs(t, err, ErrDuplicateCategory)

	// Matching is case-sensitive: a different casing is a new category.
	assert.NoError(t, s.AddCategory("optics"))
	assert.Len(t, s.Categories(), 2)
}

func TestRenameCategoryCascadesToParts(t *testing.T) {
	s := newSeededStore(t)

	require.NoError(t, s.RenameCategory("Optical parts", "Optics"))

	got := s.Query(Filter{Categories: []string{"Optics"}})
	require.Len(t, got, 1)
	assert.Equal(t, "Optics", got[0].Name)
	require.Len(t, got[0].Items, 2)
	for _, p := range got[0].Items {
		assert.Equal(t, "Optics", p.Category)
	}

	// The old name is gone entirely.
	assert.Empty(t, s.Query(Filter{Categories: []string{"Optical parts"}}))
}

func TestRenameCategoryValidation(t *testing.T) {
	s := newSeededStore(t)

	assert.ErrorIs(t, s.RenameCategory("Missing", "Anything"), ErrCategoryNotFound)
	assert.ErrorIs(t, s.RenameCategory("Optical parts", "Mechanical parts"), ErrDuplicateCategory)

	// Renaming to the same name is a no-op, not a duplicate.
	assert.NoError(t, s.RenameCategory("Optical parts", "Optical parts"))
}

func TestDeleteCategoryCascades(t *testing.T) {
	s := newSeededStore(t)

	require.NoError(t, s.DeleteCategory("Optical parts"))

	for _, c := range s.Query(Filter{}) {
		for _, p := range c.Items {
			assert.NotEqual(t, "Optical parts", p.Category)
		}
	}
	assert.Equal(t, 1, s.Summary().Total)

	// Strict validation: deleting again is an error, not a no-op.
	assert.ErrorIs(t, s.DeleteCategory("Optical parts"), ErrCategoryNotFound)
}

func TestAddPartAssignsDefaults(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddCategory("Optics"))

	p, err := s.AddPart("Optics", PartDraft{Name: "Lens", PartID: "P1"})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, model.StatusNotOrdered, p.Status)
	assert.Equal(t, MinQuantity, p.Quantity)
	assert.NotNil(t, p.Vendors)
	assert.Empty(t, p.Vendors)
	assert.Nil(t, p.FinalizedVendorIndex)
}

func TestAddPartValidation(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.AddPart("Nope", PartDraft{Name: "X", PartID: "X1"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = s.AddPart("Optical parts", PartDraft{Name: "X", PartID: ""})
	assert.ErrorIs(t, err, ErrDuplicatePartID)

	_, err = s.AddPart("Optical parts", PartDraft{Name: "", PartID: "X1"})
	assert.ErrorIs(t, err, ErrInvalidPart)
}

func TestAddPartDuplicateIDLeavesStoreUnchanged(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddCategory("Optics"))

	successes := 0
	for i := 0; i < 5; i++ {
		_, err := s.AddPart("Optics", PartDraft{Name: "Lens", PartID: fmt.Sprintf("P%d", i)})
		require.NoError(t, err)
		successes++
	}
	before := s.Categories()

	// Duplicate part ids across categories are rejected too.
	require.NoError(t, s.AddCategory("Other"))
	_, err := s.AddPart("Other", PartDraft{Name: "Dup", PartID: "P3"})
	assert.ErrorIs(t, err, ErrDuplicatePartID)

	assert.Equal(t, successes, s.Summary().Total)
	assert.Equal(t, before[0], s.Categories()[0])
}

func TestAddPartRendersStructuredDescription(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddCategory("Optics"))

	p, err := s.AddPart("Optics", PartDraft{
		Name:   "Sony XYZ",
		PartID: "OPT001",
		DescriptionEntries: []model.DescriptionEntry{
			{Key: "Resolution", Value: "4096x3000 px"},
			{Key: "Type", Value: "Area scan"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "• Resolution: 4096x3000 px\n• Type: Area scan", p.Description)
}

func TestUpdatePartMergesPatch(t *testing.T) {
	s := newSeededStore(t)

	name := "Sony ABC"
	qty := 4
	status := model.StatusOrdered
	po := "PO-1138"
	p, err := s.UpdatePart("OPT001", PartPatch{
		Name:     &name,
		Quantity: &qty,
		Status:   &status,
		PONumber: &po,
	})
	require.NoError(t, err)

	assert.Equal(t, "Sony ABC", p.Name)
	assert.Equal(t, 4, p.Quantity)
	assert.Equal(t, model.StatusOrdered, p.Status)
	assert.Equal(t, "PO-1138", p.PONumber)
	// Unpatched fields survive.
	assert.Equal(t, "OPT001", p.PartID)
	assert.Equal(t, "Area scan camera", p.Description)
}

func TestUpdatePartValidation(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.UpdatePart("missing", PartPatch{})
	assert.ErrorIs(t, err, ErrPartNotFound)

	zero := 0
	_, err = s.UpdatePart("OPT001", PartPatch{Quantity: &zero})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	bad := model.PartStatus("shipped")
	_, err = s.UpdatePart("OPT001", PartPatch{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidPart)

	// A rejected patch applies nothing, even its valid fields.
	name := "Changed"
	_, err = s.UpdatePart("OPT001", PartPatch{Name: &name, Quantity: &zero})
	require.ErrorIs(t, err, ErrInvalidQuantity)
	p, err := s.Part("OPT001")
	require.NoError(t, err)
	assert.Equal(t, "Sony XYZ", p.Name)
}

func TestUpdatePartDescriptionEntriesAreCanonical(t *testing.T) {
	s := newSeededStore(t)

	entries := []model.DescriptionEntry{{Key: "Make", Value: "VisionTech"}}
	p, err := s.UpdatePart("OPT001", PartPatch{DescriptionEntries: &entries})
	require.NoError(t, err)
	assert.Equal(t, "• Make: VisionTech", p.Description)

	// A raw-text patch replaces the structured entries outright.
	raw := "plain text"
	p, err = s.UpdatePart("OPT001", PartPatch{Description: &raw})
	require.NoError(t, err)
	assert.Equal(t, "plain text", p.Description)
	assert.Nil(t, p.DescriptionEntries)
}

func TestDeletePart(t *testing.T) {
	s := newSeededStore(t)

	require.NoError(t, s.DeletePart("OPT001"))
	_, err := s.Part("OPT001")
	assert.ErrorIs(t, err, ErrPartNotFound)

	// Only the part goes; its category and siblings stay.
	got := s.Query(Filter{Categories: []string{"Optical parts"}})
	require.Len(t, got, 1)
	assert.Len(t, got[0].Items, 1)

	assert.ErrorIs(t, s.DeletePart("OPT001"), ErrPartNotFound)
}

func TestSetPartQuantityClampsToBounds(t *testing.T) {
	s := newSeededStore(t)

	q, err := s.SetPartQuantity("OPT001", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, q)

	// A request below the floor never lands below MinQuantity; the
	// delete-confirmation flow is the renderer's, driven by the result.
	q, err = s.SetPartQuantity("OPT001", 0)
	require.NoError(t, err)
	assert.Equal(t, MinQuantity, q)

	q, err = s.SetPartQuantity("OPT001", 10_000)
	require.NoError(t, err)
	assert.Equal(t, MaxQuantity, q)

	_, err = s.SetPartQuantity("missing", 2)
	assert.ErrorIs(t, err, ErrPartNotFound)
}

func TestPartLookupByInternalIDOrPartNumber(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddCategory("Optics"))
	created, err := s.AddPart("Optics", PartDraft{Name: "Lens", PartID: "P1"})
	require.NoError(t, err)

	byNumber, err := s.Part("P1")
	require.NoError(t, err)
	byID, err := s.Part(created.ID)
	require.NoError(t, err)
	assert.Equal(t, byNumber, byID)
}

func TestReturnedPartsAreCopies(t *testing.T) {
	s := newSeededStore(t)

	cats := s.Categories()
	cats[0].Items[0].Name = "mutated"
	cats[0].Name = "mutated"

	p, err := s.Part("OPT001")
	require.NoError(t, err)
	assert.Equal(t, "Sony XYZ", p.Name)
	assert.Equal(t, "Optical parts", p.Category)
}
