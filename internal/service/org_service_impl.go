package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/repository"
)

type sectionService struct {
	sections repository.SectionRepo
}

func NewSectionService(sections repository.SectionRepo) SectionService {
	return &sectionService{sections: sections}
}

func (s *sectionService) Create(ctx context.Context, sec *domain.Section) error {
	if sec.Name == "" {
		return fmt.Errorf("section name is required")
	}
	if sec.ID == "" {
		sec.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sec.CreatedAt = now
	sec.UpdatedAt = now
	return s.sections.Create(ctx, sec)
}

func (s *sectionService) GetByID(ctx context.Context, id string) (*domain.Section, error) {
	return s.sections.GetByID(ctx, id)
}

func (s *sectionService) List(ctx context.Context) ([]*domain.Section, error) {
	return s.sections.List(ctx)
}

func (s *sectionService) Rename(ctx context.Context, id, name string) error {
	if name == "" {
		return fmt.Errorf("section name is required")
	}
	sec, err := s.sections.GetByID(ctx, id)
	if err != nil {
		return err
	}
	sec.Name = name
	sec.UpdatedAt = time.Now().UTC()
	return s.sections.Update(ctx, sec)
}

func (s *sectionService) Delete(ctx context.Context, id string) error {
	return s.sections.Delete(ctx, id)
}

type teamService struct {
	teams    repository.TeamRepo
	sections repository.SectionRepo
}

func NewTeamService(teams repository.TeamRepo, sections repository.SectionRepo) TeamService {
	return &teamService{teams: teams, sections: sections}
}

func (s *teamService) Create(ctx context.Context, t *domain.Team) error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	// The section is fixed at creation, so it must exist now.
	if _, err := s.sections.GetByID(ctx, t.SectionID); err != nil {
		return fmt.Errorf("section %s: %w", t.SectionID, err)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.teams.Create(ctx, t)
}

func (s *teamService) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	return s.teams.GetByID(ctx, id)
}

func (s *teamService) ListBySection(ctx context.Context, sectionID string) ([]*domain.Team, error) {
	return s.teams.ListBySection(ctx, sectionID)
}

func (s *teamService) List(ctx context.Context) ([]*domain.Team, error) {
	return s.teams.List(ctx)
}

func (s *teamService) Rename(ctx context.Context, id, name string) error {
	if name == "" {
		return fmt.Errorf("team name is required")
	}
	return s.teams.Rename(ctx, id, name)
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	return s.teams.Delete(ctx, id)
}

type resourceService struct {
	resources repository.ResourceRepo
	teams     repository.TeamRepo
}

func NewResourceService(resources repository.ResourceRepo, teams repository.TeamRepo) ResourceService {
	return &resourceService{resources: resources, teams: teams}
}

func (s *resourceService) Create(ctx context.Context, r *domain.Resource) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.TeamID != nil {
		if _, err := s.teams.GetByID(ctx, *r.TeamID); err != nil {
			return fmt.Errorf("team %s: %w", *r.TeamID, err)
		}
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	r.Active = true
	return s.resources.Create(ctx, r)
}

func (s *resourceService) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	return s.resources.GetByID(ctx, id)
}

func (s *resourceService) List(ctx context.Context, filter repository.ResourceFilter) ([]*domain.Resource, error) {
	return s.resources.List(ctx, filter)
}

func (s *resourceService) Update(ctx context.Context, r *domain.Resource) error {
	if err := r.Validate(); err != nil {
		return err
	}
	r.UpdatedAt = time.Now().UTC()
	return s.resources.Update(ctx, r)
}

func (s *resourceService) Deactivate(ctx context.Context, id string) error {
	r, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return err
	}
	r.Active = false
	r.UpdatedAt = time.Now().UTC()
	return s.resources.Update(ctx, r)
}

func (s *resourceService) Delete(ctx context.Context, id string) error {
	return s.resources.Delete(ctx, id)
}
