package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkashyapa/automanage-industrial-hub/internal/dto"
)

func TestProjectServiceCreateAndDuplicate(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateProjectRequest{
		Code: "PRJ-001", Name: "Inspection Cell", Client: "Acme",
		Budget: decimal.NewFromInt(600000),
	})
	require.NoError(t, err)
	assert.Equal(t, "planning", created.Status)

	_, err = svc.Create(ctx, dto.CreateProjectRequest{
		Code: "PRJ-001", Name: "Other", Client: "Acme", Budget: decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrDuplicateProject)
}

func TestProjectServiceUpdateAndDelete(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateProjectRequest{
		Code: "PRJ-002", Name: "Conveyor Retrofit", Client: "Acme",
		Budget: decimal.NewFromInt(100000),
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	status := "active"
	progress := 40
	updated, err := svc.Update(ctx, id, dto.UpdateProjectRequest{Status: &status, Progress: &progress})
	require.NoError(t, err)
	assert.Equal(t, "active", updated.Status)
	assert.Equal(t, 40, updated.Progress)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectServiceDashboardMetrics(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo())
	ctx := context.Background()

	active, delayed := "active", "delayed"
	seed := []dto.CreateProjectRequest{
		{Code: "PRJ-001", Name: "A", Client: "X", Status: active, Progress: 50, Budget: decimal.NewFromInt(100), TeamSize: 3},
		{Code: "PRJ-002", Name: "B", Client: "Y", Status: delayed, Progress: 30, Budget: decimal.NewFromInt(200), TeamSize: 2},
		{Code: "PRJ-003", Name: "C", Client: "Z", Status: active, Progress: 70, Budget: decimal.NewFromInt(300), TeamSize: 5},
	}
	for _, req := range seed {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	m, err := svc.DashboardMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, m.ActiveProjects)
	assert.Equal(t, 1, m.DelayedProjects)
	assert.True(t, m.TotalBudget.Equal(decimal.NewFromInt(600)), "budget %s", m.TotalBudget)
	assert.Equal(t, 10, m.TeamMembers)
	assert.True(t, m.AvgProgress.Equal(decimal.NewFromInt(50)), "avg %s", m.AvgProgress)
}
