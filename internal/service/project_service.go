package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rkashyapa/automanage-industrial-hub/internal/dto"
	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
	"github.com/rkashyapa/automanage-industrial-hub/internal/repository"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrDuplicateProject = errors.New("project code already exists")
)

type ProjectService interface {
	Create(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error)
	List(ctx context.Context) ([]dto.ProjectResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DashboardMetrics(ctx context.Context) (*dto.DashboardMetricsResponse, error)
}

type projectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) Create(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if existing, err := s.repo.FindByCode(ctx, req.Code); err == nil && existing != nil {
		return nil, ErrDuplicateProject
	}

	status := model.ProjectPlanning
	if req.Status != "" {
		status = model.ProjectStatus(req.Status)
	}
	spent := decimal.Zero
	if req.Spent != nil {
		spent = *req.Spent
	}
	p := &model.Project{
		Code:     req.Code,
		Name:     req.Name,
		Client:   req.Client,
		Status:   status,
		Progress: req.Progress,
		Budget:   req.Budget,
		Spent:    spent,
		DueDate:  req.DueDate,
		TeamSize: req.TeamSize,
		Active:   true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := dto.FromProject(p)
	return &resp, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromProject(p)
	return &resp, nil
}

func (s *projectService) List(ctx context.Context) ([]dto.ProjectResponse, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, dto.FromProject(&projects[i]))
	}
	return out, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Client != nil {
		p.Client = *req.Client
	}
	if req.Status != nil {
		p.Status = model.ProjectStatus(*req.Status)
	}
	if req.Progress != nil {
		p.Progress = *req.Progress
	}
	if req.Budget != nil {
		p.Budget = *req.Budget
	}
	if req.Spent != nil {
		p.Spent = *req.Spent
	}
	if req.DueDate != nil {
		p.DueDate = req.DueDate
	}
	if req.TeamSize != nil {
		p.TeamSize = *req.TeamSize
	}
	if req.MaterialsCount != nil {
		p.MaterialsCount = *req.MaterialsCount
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := dto.FromProject(p)
	return &resp, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

// DashboardMetrics aggregates the landing-page cards from all active
// projects in one pass.
func (s *projectService) DashboardMetrics(ctx context.Context) (*dto.DashboardMetricsResponse, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	m := &dto.DashboardMetricsResponse{
		TotalBudget: decimal.Zero,
		TotalSpent:  decimal.Zero,
		AvgProgress: decimal.Zero,
	}
	progressSum := 0
	for i := range projects {
		p := &projects[i]
		switch p.Status {
		case model.ProjectActive:
			m.ActiveProjects++
		case model.ProjectDelayed:
			m.DelayedProjects++
		}
		m.TotalBudget = m.TotalBudget.Add(p.Budget)
		m.TotalSpent = m.TotalSpent.Add(p.Spent)
		m.TeamMembers += p.TeamSize
		progressSum += p.Progress
	}
	if len(projects) > 0 {
		m.AvgProgress = decimal.NewFromInt(int64(progressSum)).
			Div(decimal.NewFromInt(int64(len(projects)))).Round(1)
	}
	return m, nil
}

func (s *projectService) find(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}
