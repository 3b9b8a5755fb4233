package model

import "time"

// Engineer is one row of the man-hour matrix: hours logged per week name.
type Engineer struct {
	Name  string             `json:"name"`
	Hours map[string]float64 `json:"hours"`
}

// TimesheetSnapshot is the persistence shape of a session's time tracking
// state, stored alongside the BOM snapshot under the same session key.
type TimesheetSnapshot struct {
	SessionID    string     `json:"session_id"`
	Weeks        []string   `json:"weeks"`
	Engineers    []Engineer `json:"engineers"`
	SelectedWeek string     `json:"selected_week,omitempty"`
	SavedAt      time.Time  `json:"saved_at"`
}
