package timesheet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededSheet(t *testing.T) *Sheet {
	t.Helper()
	s := NewSheet()
	s.AddWeek()
	s.AddWeek()
	s.AddEngineer("John Smith")
	s.AddEngineer("Sarah Johnson")
	require.NoError(t, s.SetHours(0, "Week 1", 20))
	require.NoError(t, s.SetHours(0, "Week 2", 30))
	require.NoError(t, s.SetHours(1, "Week 1", 25))
	require.NoError(t, s.SetHours(1, "Week 2", 28))
	return s
}

func TestAddWeekBackfillsEngineers(t *testing.T) {
	s := newSeededSheet(t)

	week := s.AddWeek()
	assert.Equal(t, "Week 3", week)

	_, engineers := s.View()
	for _, e := range engineers {
		assert.Contains(t, e.Hours, "Week 3")
		assert.Zero(t, e.Hours["Week 3"])
	}
}

func TestAddEngineerDefaults(t *testing.T) {
	s := newSeededSheet(t)

	e := s.AddEngineer("")
	assert.Equal(t, "Engineer 3", e.Name)
	assert.Len(t, e.Hours, 2)
}

func TestSetHoursValidation(t *testing.T) {
	s := newSeededSheet(t)

	assert.ErrorIs(t, s.SetHours(5, "Week 1", 1), ErrEngineerNotFound)
	assert.ErrorIs(t, s.SetHours(0, "Week 9", 1), ErrUnknownWeek)
	assert.ErrorIs(t, s.SetHours(0, "Week 1", -1), ErrNegativeHours)
}

func TestTotals(t *testing.T) {
	s := newSeededSheet(t)

	tt := s.Totals()
	assert.Equal(t, 50.0, tt.PerEngineer["John Smith"])
	assert.Equal(t, 53.0, tt.PerEngineer["Sarah Johnson"])
	assert.Equal(t, 45.0, tt.PerWeek["Week 1"])
	assert.Equal(t, 58.0, tt.PerWeek["Week 2"])
	assert.Equal(t, 103.0, tt.Grand)
	assert.Equal(t, 51.5, tt.AvgPerWeek)
	assert.Equal(t, 2, tt.Engineers)
	assert.Equal(t, 2, tt.ActiveWeeks)
}

func TestExportRows(t *testing.T) {
	s := newSeededSheet(t)

	header, rows := s.ExportRows()
	assert.Equal(t, []string{"Engineer", "Week 1", "Week 2", "Total"}, header)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"John Smith", "20", "30", "50"}, rows[0])
	assert.Equal(t, []string{"Sarah Johnson", "25", "28", "53"}, rows[1])
	assert.Equal(t, []string{"Weekly Total", "45", "58", "103"}, rows[2])
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := newSeededSheet(t)
	require.NoError(t, s.SelectWeek("Week 2"))

	snap := s.Snapshot("session-1")
	assert.Equal(t, "session-1", snap.SessionID)
	assert.False(t, snap.SavedAt.IsZero())

	restored := NewSheet()
	restored.Restore(snap)
	assert.Equal(t, s.Totals(), restored.Totals())

	// Snapshot is a copy; further edits stay out of it.
	require.NoError(t, s.SetHours(0, "Week 1", 99))
	assert.Equal(t, 20.0, snap.Engineers[0].Hours["Week 1"])
}

func TestCostReport(t *testing.T) {
	s := newSeededSheet(t) // 103 hours total

	rate := decimal.NewFromInt(1500)
	budget := decimal.NewFromInt(600000)
	material := decimal.NewFromInt(450000)
	r := s.Cost(rate, budget, material)

	assert.True(t, r.LaborCost.Equal(decimal.NewFromInt(154500)), "labor %s", r.LaborCost)
	assert.True(t, r.TotalCost.Equal(decimal.NewFromInt(604500)), "total %s", r.TotalCost)
	assert.True(t, r.ProfitLoss.Equal(decimal.NewFromInt(-4500)), "pl %s", r.ProfitLoss)
	assert.True(t, r.BudgetUtilization.Equal(decimal.RequireFromString("100.75")), "util %s", r.BudgetUtilization)
}

func TestCostReportZeroBudget(t *testing.T) {
	s := NewSheet()
	r := s.Cost(decimal.NewFromInt(100), decimal.Zero, decimal.Zero)
	assert.True(t, r.BudgetUtilization.IsZero())
}
