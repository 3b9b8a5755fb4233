package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SetHoursRequest struct {
	Week  string  `json:"week"  validate:"required,min=1"`
	Hours float64 `json:"hours" validate:"min=0"`
}

type SelectWeekRequest struct {
	Week string `json:"week" validate:"required,min=1"`
}

type RenameEngineerRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type CostAnalysisRequest struct {
	HourlyRate decimal.Decimal `json:"hourly_rate" validate:"required"`
	Budget     decimal.Decimal `json:"budget"      validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EngineerResponse struct {
	Name  string             `json:"name"`
	Hours map[string]float64 `json:"hours"`
}

type TimesheetResponse struct {
	Weeks        []string           `json:"weeks"`
	Engineers    []EngineerResponse `json:"engineers"`
	SelectedWeek string             `json:"selected_week"`
}

type TimesheetTotalsResponse struct {
	PerEngineer  map[string]float64 `json:"per_engineer"`
	PerWeek      map[string]float64 `json:"per_week"`
	Grand        float64            `json:"grand_total"`
	AvgPerWeek   float64            `json:"avg_per_week"`
	Engineers    int                `json:"engineers"`
	ActiveWeeks  int                `json:"active_weeks"`
	SelectedWeek string             `json:"selected_week"`
}

type CostAnalysisResponse struct {
	TotalHours      decimal.Decimal `json:"total_hours"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	LaborCost       decimal.Decimal `json:"labor_cost"`
	MaterialCost    decimal.Decimal `json:"material_cost"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	Budget          decimal.Decimal `json:"budget"`
	ProfitLoss      decimal.Decimal `json:"profit_loss"`
	BudgetUtilization decimal.Decimal `json:"budget_utilization_pct"`
}

type TimesheetSavedResponse struct {
	SessionID string    `json:"session_id"`
	SavedAt   time.Time `json:"saved_at"`
}
