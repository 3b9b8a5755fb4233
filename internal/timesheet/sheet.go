// Package timesheet tracks per-engineer man-hours across project weeks
// and derives the cost analysis view. Like the BOM store, a sheet is a
// session-scoped single-editor aggregate.
package timesheet

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

var (
	ErrUnknownWeek      = errors.New("unknown week")
	ErrEngineerNotFound = errors.New("engineer not found")
	ErrNegativeHours    = errors.New("hours must not be negative")
	ErrEmptyName        = errors.New("engineer name must not be empty")
)

// Sheet holds the engineers × weeks hour matrix for one session.
type Sheet struct {
	mu           sync.Mutex
	weeks        []string
	engineers    []model.Engineer
	selectedWeek string
}

func NewSheet() *Sheet {
	return &Sheet{}
}

// AddWeek appends the next week column ("Week N") and backfills a zero
// entry for every engineer. Returns the new week's name.
func (s *Sheet) AddWeek() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	week := fmt.Sprintf("Week %d", len(s.weeks)+1)
	s.weeks = append(s.weeks, week)
	for i := range s.engineers {
		s.engineers[i].Hours[week] = 0
	}
	return week
}

// AddEngineer appends a row with zero hours for every existing week. An
// empty name gets the next default ("Engineer N").
func (s *Sheet) AddEngineer(name string) model.Engineer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		name = fmt.Sprintf("Engineer %d", len(s.engineers)+1)
	}
	hours := make(map[string]float64, len(s.weeks))
	for _, w := range s.weeks {
		hours[w] = 0
	}
	e := model.Engineer{Name: name, Hours: hours}
	s.engineers = append(s.engineers, e)
	return cloneEngineer(e)
}

// RenameEngineer changes the display name of the row at engineerIndex.
func (s *Sheet) RenameEngineer(engineerIndex int, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if engineerIndex < 0 || engineerIndex >= len(s.engineers) {
		return fmt.Errorf("engineer %d: %w", engineerIndex, ErrEngineerNotFound)
	}
	if name == "" {
		return ErrEmptyName
	}
	s.engineers[engineerIndex].Name = name
	return nil
}

// SetHours records hours for one engineer in one week.
func (s *Sheet) SetHours(engineerIndex int, week string, hours float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if engineerIndex < 0 || engineerIndex >= len(s.engineers) {
		return fmt.Errorf("engineer %d: %w", engineerIndex, ErrEngineerNotFound)
	}
	if !s.hasWeek(week) {
		return fmt.Errorf("week %q: %w", week, ErrUnknownWeek)
	}
	if hours < 0 {
		return fmt.Errorf("%.1f: %w", hours, ErrNegativeHours)
	}
	s.engineers[engineerIndex].Hours[week] = hours
	return nil
}

// SelectWeek remembers the week the editor is working in; persisted with
// the snapshot so the view reopens where it was left.
func (s *Sheet) SelectWeek(week string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasWeek(week) {
		return fmt.Errorf("week %q: %w", week, ErrUnknownWeek)
	}
	s.selectedWeek = week
	return nil
}

func (s *Sheet) hasWeek(week string) bool {
	for _, w := range s.weeks {
		if w == week {
			return true
		}
	}
	return false
}

// Totals holds the derived sums shown under the time-entry table.
type Totals struct {
	PerEngineer  map[string]float64 `json:"per_engineer"`
	PerWeek      map[string]float64 `json:"per_week"`
	Grand        float64            `json:"grand"`
	AvgPerWeek   float64            `json:"avg_per_week"`
	Engineers    int                `json:"engineers"`
	ActiveWeeks  int                `json:"active_weeks"`
	SelectedWeek string             `json:"selected_week,omitempty"`
}

// Totals computes all aggregate hour sums in one pass.
func (s *Sheet) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := Totals{
		PerEngineer:  make(map[string]float64, len(s.engineers)),
		PerWeek:      make(map[string]float64, len(s.weeks)),
		Engineers:    len(s.engineers),
		ActiveWeeks:  len(s.weeks),
		SelectedWeek: s.selectedWeek,
	}
	for _, w := range s.weeks {
		t.PerWeek[w] = 0
	}
	for _, e := range s.engineers {
		var sum float64
		for w, h := range e.Hours {
			sum += h
			t.PerWeek[w] += h
		}
		t.PerEngineer[e.Name] = sum
		t.Grand += sum
	}
	if len(s.weeks) > 0 {
		t.AvgPerWeek = t.Grand / float64(len(s.weeks))
	}
	return t
}

// TotalHours is the grand total across all engineers and weeks.
func (s *Sheet) TotalHours() float64 {
	return s.Totals().Grand
}

// View returns a copy of the matrix for rendering.
func (s *Sheet) View() ([]string, []model.Engineer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	weeks := make([]string, len(s.weeks))
	copy(weeks, s.weeks)
	engineers := make([]model.Engineer, len(s.engineers))
	for i, e := range s.engineers {
		engineers[i] = cloneEngineer(e)
	}
	return weeks, engineers
}

// ExportRows produces the CSV body: one row per engineer with hours in
// week order plus a trailing total, followed by a weekly-total row.
func (s *Sheet) ExportRows() (header []string, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	header = append([]string{"Engineer"}, s.weeks...)
	header = append(header, "Total")

	for _, e := range s.engineers {
		row := []string{e.Name}
		var sum float64
		for _, w := range s.weeks {
			h := e.Hours[w]
			sum += h
			row = append(row, formatHours(h))
		}
		row = append(row, formatHours(sum))
		rows = append(rows, row)
	}

	totalRow := []string{"Weekly Total"}
	var grand float64
	for _, w := range s.weeks {
		var sum float64
		for _, e := range s.engineers {
			sum += e.Hours[w]
		}
		grand += sum
		totalRow = append(totalRow, formatHours(sum))
	}
	totalRow = append(totalRow, formatHours(grand))
	rows = append(rows, totalRow)
	return header, rows
}

func formatHours(h float64) string {
	if h == float64(int64(h)) {
		return fmt.Sprintf("%d", int64(h))
	}
	return fmt.Sprintf("%.1f", h)
}

// Snapshot captures the sheet for the persistence transport.
func (s *Sheet) Snapshot(sessionID string) model.TimesheetSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	weeks := make([]string, len(s.weeks))
	copy(weeks, s.weeks)
	engineers := make([]model.Engineer, len(s.engineers))
	for i, e := range s.engineers {
		engineers[i] = cloneEngineer(e)
	}
	return model.TimesheetSnapshot{
		SessionID:    sessionID,
		Weeks:        weeks,
		Engineers:    engineers,
		SelectedWeek: s.selectedWeek,
		SavedAt:      time.Now().UTC(),
	}
}

// Restore replaces the sheet contents from a snapshot.
func (s *Sheet) Restore(snap model.TimesheetSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.weeks = make([]string, len(snap.Weeks))
	copy(s.weeks, snap.Weeks)
	s.engineers = make([]model.Engineer, len(snap.Engineers))
	for i, e := range snap.Engineers {
		s.engineers[i] = cloneEngineer(e)
	}
	s.selectedWeek = snap.SelectedWeek
}

func cloneEngineer(e model.Engineer) model.Engineer {
	hours := make(map[string]float64, len(e.Hours))
	for k, v := range e.Hours {
		hours[k] = v
	}
	return model.Engineer{Name: e.Name, Hours: hours}
}
