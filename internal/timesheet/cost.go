package timesheet

import (
	"github.com/shopspring/decimal"
)

// CostReport is the cost-analysis view combining labor hours with the BOM
// material cost against the project budget.
type CostReport struct {
	HourlyRate        decimal.Decimal `json:"hourly_rate"`
	TotalHours        decimal.Decimal `json:"total_hours"`
	LaborCost         decimal.Decimal `json:"labor_cost"`
	MaterialCost      decimal.Decimal `json:"material_cost"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	Budget            decimal.Decimal `json:"budget"`
	ProfitLoss        decimal.Decimal `json:"profit_loss"`
	BudgetUtilization decimal.Decimal `json:"budget_utilization_pct"`
}

// Cost derives the report for the given hourly rate, budget and material
// cost. Utilization is a percentage of budget (zero when the budget is
// zero, avoiding a division blowup on unset budgets).
func (s *Sheet) Cost(hourlyRate, budget, materialCost decimal.Decimal) CostReport {
	hours := decimal.NewFromFloat(s.TotalHours())
	labor := hours.Mul(hourlyRate)
	total := labor.Add(materialCost)

	utilization := decimal.Zero
	if !budget.IsZero() {
		utilization = total.Div(budget).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return CostReport{
		HourlyRate:        hourlyRate,
		TotalHours:        hours,
		LaborCost:         labor,
		MaterialCost:      materialCost,
		TotalCost:         total,
		Budget:            budget,
		ProfitLoss:        budget.Sub(total),
		BudgetUtilization: utilization,
	}
}
