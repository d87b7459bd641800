package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	p.CompanyCode = strings.ToUpper(strings.TrimSpace(p.CompanyCode))
	if err := p.ValidateCompanyCode(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	p.Active = p.Status != domain.ProjectArchived
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) GetByCompanyCode(ctx context.Context, code string) (*domain.Project, error) {
	return s.projects.GetByCompanyCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

func (s *projectService) List(ctx context.Context, filter repository.ProjectFilter) ([]*domain.Project, error) {
	return s.projects.List(ctx, filter)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	p.CompanyCode = strings.ToUpper(strings.TrimSpace(p.CompanyCode))
	if err := p.ValidateCompanyCode(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	p.Active = p.Status != domain.ProjectArchived
	return s.projects.Update(ctx, p)
}

func (s *projectService) Archive(ctx context.Context, id string) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Status = domain.ProjectArchived
	p.Active = false
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}
