package bom

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func seedVendors(t *testing.T, s *Store, key string, names ...string) {
	t.Helper()
	for _, n := range names {
		_, err := s.AddVendor(key, VendorDraft{Name: n, Price: decPtr("100")})
		require.NoError(t, err)
	}
}

func TestAddVendorDefaultsAndValidation(t *testing.T) {
	s := newSeededStore(t)

	p, err := s.AddVendor("OPT001", VendorDraft{Name: "Vision Systems Inc", Price: decPtr("1250")})
	require.NoError(t, err)
	require.Len(t, p.Vendors, 1)
	assert.Equal(t, model.DefaultAvailability, p.Vendors[0].Availability)

	_, err = s.AddVendor("OPT001", VendorDraft{Name: ""})
	assert.ErrorIs(t, err, ErrInvalidVendor)

	_, err = s.AddVendor("OPT001", VendorDraft{Name: "Cheapo", Price: decPtr("-1")})
	assert.ErrorIs(t, err, ErrInvalidVendor)

	_, err = s.AddVendor("missing", VendorDraft{Name: "Acme"})
	assert.ErrorIs(t, err, ErrPartNotFound)
}

func TestUpdateVendor(t *testing.T) {
	s := newSeededStore(t)
	seedVendors(t, s, "OPT001", "Acme")

	lead := "2 weeks"
	avail := "Limited Stock"
	p, err := s.UpdateVendor("OPT001", 0, VendorPatch{
		Price:        decPtr("1180"),
		LeadTime:     &lead,
		Availability: &avail,
	})
	require.NoError(t, err)
	v := p.Vendors[0]
	assert.Equal(t, "Acme", v.Name)
	assert.True(t, v.Price.Equal(decimal.RequireFromString("1180")))
	assert.Equal(t, "2 weeks", v.LeadTime)
	assert.Equal(t, "Limited Stock", v.Availability)

	_, err = s.UpdateVendor("OPT001", 3, VendorPatch{})
	assert.ErrorIs(t, err, ErrVendorIndexOutOfRange)

	empty := ""
	_, err = s.UpdateVendor("OPT001", 0, VendorPatch{Name: &empty})
	assert.ErrorIs(t, err, ErrInvalidVendor)
}

func TestDeleteVendorKeepsFinalizedReferenceCorrect(t *testing.T) {
	cases := []struct {
		name       string
		finalized  int
		deleteAt   int
		wantIndex  *int
		wantVendor string
	}{
		{"deleting the finalized vendor clears it", 1, 1, nil, ""},
		{"deleting an earlier vendor shifts it down", 2, 0, intPtr(1), "C"},
		{"deleting a later vendor leaves it alone", 0, 2, intPtr(0), "A"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSeededStore(t)
			seedVendors(t, s, "OPT001", "A", "B", "C")
			_, err := s.FinalizeVendor("OPT001", tc.finalized)
			require.NoError(t, err)

			p, err := s.DeleteVendor("OPT001", tc.deleteAt)
			require.NoError(t, err)

			if tc.wantIndex == nil {
				assert.Nil(t, p.FinalizedVendorIndex)
				assert.Nil(t, p.FinalizedVendor())
			} else {
				require.NotNil(t, p.FinalizedVendorIndex)
				assert.Equal(t, *tc.wantIndex, *p.FinalizedVendorIndex)
				require.NotNil(t, p.FinalizedVendor())
				assert.Equal(t, tc.wantVendor, p.FinalizedVendor().Name)
			}
		})
	}
}

func TestFinalizeVendor(t *testing.T) {
	s := newSeededStore(t)
	seedVendors(t, s, "OPT001", "Acme")

	p, err := s.FinalizeVendor("OPT001", 0)
	require.NoError(t, err)
	require.NotNil(t, p.FinalizedVendorIndex)
	assert.Equal(t, 0, *p.FinalizedVendorIndex)
	// Finalizing never auto-transitions the procurement status.
	assert.Equal(t, model.StatusNotOrdered, p.Status)

	_, err = s.FinalizeVendor("OPT001", 1)
	assert.ErrorIs(t, err, ErrVendorIndexOutOfRange)
}

func TestUpdatePartShrinkingVendorListDropsDanglingFinalized(t *testing.T) {
	s := newSeededStore(t)
	seedVendors(t, s, "OPT001", "A", "B", "C")
	_, err := s.FinalizeVendor("OPT001", 2)
	require.NoError(t, err)

	vendors := []model.Vendor{{Name: "A"}}
	p, err := s.UpdatePart("OPT001", PartPatch{Vendors: &vendors})
	require.NoError(t, err)
	assert.Nil(t, p.FinalizedVendorIndex)
}

func TestDocumentsAreIndependentSequences(t *testing.T) {
	s := newSeededStore(t)
	seedVendors(t, s, "OPT001", "Acme")

	require.NoError(t, s.AddPartDocument("OPT001", "Datasheet.pdf"))
	require.NoError(t, s.AddPartDocument("OPT001", "Datasheet.pdf")) // duplicates allowed
	require.NoError(t, s.AddVendorDocument("OPT001", 0, "Quote_Acme.pdf"))
	require.NoError(t, s.AddVendorDocument("OPT001", 0, "Datasheet.pdf"))

	p, err := s.Part("OPT001")
	require.NoError(t, err)
	assert.Equal(t, []string{"Datasheet.pdf", "Datasheet.pdf"}, p.Documents)
	assert.Equal(t, []string{"Quote_Acme.pdf", "Datasheet.pdf"}, p.Vendors[0].Documents)

	// Removing a vendor document never touches the part-level list.
	require.NoError(t, s.RemoveVendorDocument("OPT001", 0, "Datasheet.pdf"))
	p, err = s.Part("OPT001")
	require.NoError(t, err)
	assert.Equal(t, []string{"Datasheet.pdf", "Datasheet.pdf"}, p.Documents)

	// Removing drops only the first occurrence.
	require.NoError(t, s.RemovePartDocument("OPT001", "Datasheet.pdf"))
	p, err = s.Part("OPT001")
	require.NoError(t, err)
	assert.Equal(t, []string{"Datasheet.pdf"}, p.Documents)

	_, err = s.Part("OPT001")
	require.NoError(t, err)
	require.NoError(t, s.RemovePartDocument("OPT001", "not-there.pdf")) // absent: no-op

	require.ErrorIs(t, s.AddVendorDocument("OPT001", 5, "x.pdf"), ErrVendorIndexOutOfRange)
}

func TestAllDocumentsMergedViewIsDeduplicated(t *testing.T) {
	s := newSeededStore(t)
	seedVendors(t, s, "OPT001", "Acme", "Optics Direct")

	require.NoError(t, s.AddPartDocument("OPT001", "Datasheet.pdf"))
	require.NoError(t, s.AddVendorDocument("OPT001", 0, "Quote_A.pdf"))
	require.NoError(t, s.AddVendorDocument("OPT001", 0, "Datasheet.pdf"))
	require.NoError(t, s.AddVendorDocument("OPT001", 1, "Quote_B.pdf"))

	docs, err := s.AllDocuments("OPT001")
	require.NoError(t, err)
	assert.Equal(t, []string{"Datasheet.pdf", "Quote_A.pdf", "Quote_B.pdf"}, docs)
}

func intPtr(i int) *int { return &i }
