package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProjectRequest struct {
	Code     string           `json:"code"   validate:"required,min=2"`
	Name     string           `json:"name"   validate:"required,min=2"`
	Client   string           `json:"client" validate:"required,min=1"`
	Status   string           `json:"status" validate:"omitempty,oneof=planning active delayed completed"`
	Progress int              `json:"progress" validate:"min=0,max=100"`
	Budget   decimal.Decimal  `json:"budget"   validate:"min=0"`
	Spent    *decimal.Decimal `json:"spent"    validate:"omitempty"`
	DueDate  *time.Time       `json:"due_date"`
	TeamSize int              `json:"team_size" validate:"min=0"`
}

type UpdateProjectRequest struct {
	Name           *string          `json:"name"   validate:"omitempty,min=2"`
	Client         *string          `json:"client" validate:"omitempty,min=1"`
	Status         *string          `json:"status" validate:"omitempty,oneof=planning active delayed completed"`
	Progress       *int             `json:"progress" validate:"omitempty,min=0,max=100"`
	Budget         *decimal.Decimal `json:"budget"`
	Spent          *decimal.Decimal `json:"spent"`
	DueDate        *time.Time       `json:"due_date"`
	TeamSize       *int             `json:"team_size" validate:"omitempty,min=0"`
	MaterialsCount *int             `json:"materials_count" validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProjectResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Client         string          `json:"client"`
	Status         string          `json:"status"`
	Progress       int             `json:"progress"`
	Budget         decimal.Decimal `json:"budget"`
	Spent          decimal.Decimal `json:"spent"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	TeamSize       int             `json:"team_size"`
	MaterialsCount int             `json:"materials_count"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type DashboardMetricsResponse struct {
	ActiveProjects  int             `json:"active_projects"`
	DelayedProjects int             `json:"delayed_projects"`
	TotalBudget     decimal.Decimal `json:"total_budget"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
	AvgProgress     decimal.Decimal `json:"avg_progress"`
	TeamMembers     int             `json:"team_members"`
}

func FromProject(p *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID.String(),
		Code:           p.Code,
		Name:           p.Name,
		Client:         p.Client,
		Status:         string(p.Status),
		Progress:       p.Progress,
		Budget:         p.Budget,
		Spent:          p.Spent,
		DueDate:        p.DueDate,
		TeamSize:       p.TeamSize,
		MaterialsCount: p.MaterialsCount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
