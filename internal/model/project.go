package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectStatus is the lifecycle state shown on the dashboard cards.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectDelayed   ProjectStatus = "delayed"
	ProjectCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectDelayed, ProjectCompleted:
		return true
	}
	return false
}

// Project is a dashboard project with budget tracking. Code is the
// human-facing project number (e.g. PRJ-2024-001) repeated on BOM exports.
type Project struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code           string    `gorm:"uniqueIndex;not null"`
	Name           string    `gorm:"index;not null"`
	Client         string    `gorm:"not null"`
	Status         ProjectStatus   `gorm:"not null;default:'planning'"`
	Progress       int             `gorm:"not null;default:0"`
	Budget         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Spent          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	DueDate        *time.Time
	TeamSize       int  `gorm:"not null;default:0"`
	MaterialsCount int  `gorm:"not null;default:0"`
	Active         bool `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Project) TableName() string { return "projects" }
