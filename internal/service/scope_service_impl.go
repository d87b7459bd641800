package service

import (
	"context"
	"time"

	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/repository"
)

type scopeService struct {
	sections  repository.SectionRepo
	teams     repository.TeamRepo
	resources repository.ResourceRepo
	projects  repository.ProjectRepo
	observer  UseCaseObserver
}

func NewScopeService(
	sections repository.SectionRepo,
	teams repository.TeamRepo,
	resources repository.ResourceRepo,
	projects repository.ProjectRepo,
	observers ...UseCaseObserver,
) ScopeService {
	return &scopeService{
		sections:  sections,
		teams:     teams,
		resources: resources,
		projects:  projects,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Resolve returns the option lists for every level of the hierarchy,
// each narrowed by the ancestors set in scope. A resource selection
// with no team backfills the team from the resource's primary team.
// Repo failures degrade that level to an empty list instead of failing
// the whole resolution; filters are advisory.
func (s *scopeService) Resolve(ctx context.Context, scope contract.Scope) (*contract.ScopeResponse, error) {
	started := time.Now()
	resp := &contract.ScopeResponse{Scope: scope}
	degraded := false

	if scope.ResourceID != "" && scope.TeamID == "" {
		if res, err := s.resources.GetByID(ctx, scope.ResourceID); err == nil && res.TeamID != nil {
			resp.Scope.TeamID = *res.TeamID
		}
	}

	if opts, err := s.sectionOptions(ctx); err != nil {
		degraded = true
	} else {
		resp.Options.Sections = opts
	}
	if opts, err := s.teamOptions(ctx, resp.Scope); err != nil {
		degraded = true
	} else {
		resp.Options.Teams = opts
	}
	if opts, err := s.resourceOptions(ctx, resp.Scope); err != nil {
		degraded = true
	} else {
		resp.Options.Resources = opts
	}
	if opts, err := s.projectOptions(ctx, resp.Scope); err != nil {
		degraded = true
	} else {
		resp.Options.Projects = opts
	}

	s.ensureSelected(ctx, resp)

	if degraded {
		resp.Warnings = append(resp.Warnings, contract.Warning{
			Code:    contract.WarnScopeDegraded,
			Message: "some filter options could not be loaded",
		})
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "scope_resolve",
		Duration:  time.Since(started),
		Success:   !degraded,
		StartedAt: started,
		Fields: map[string]any{
			"section_id": resp.Scope.SectionID,
			"team_id":    resp.Scope.TeamID,
		},
	})
	return resp, nil
}

// ensureSelected keeps current selections displayable. A selected entity
// can fall out of its filtered list (a deactivated resource, an archived
// project, a resource selected before narrowing the section); its name is
// fetched and a display-only option synthesized so the selection never
// degrades to a raw ID.
func (s *scopeService) ensureSelected(ctx context.Context, resp *contract.ScopeResponse) {
	scope := resp.Scope
	if scope.SectionID != "" {
		if sec, err := s.sections.GetByID(ctx, scope.SectionID); err == nil {
			resp.Options.Sections = contract.EnsureOption(resp.Options.Sections, sec.ID, sec.Name)
		}
	}
	if scope.TeamID != "" {
		if team, err := s.teams.GetByID(ctx, scope.TeamID); err == nil {
			resp.Options.Teams = contract.EnsureOption(resp.Options.Teams, team.ID, team.Name)
		}
	}
	if scope.ResourceID != "" {
		if res, err := s.resources.GetByID(ctx, scope.ResourceID); err == nil {
			resp.Options.Resources = contract.EnsureOption(resp.Options.Resources, res.ID, res.Name)
		}
	}
	if scope.ProjectID != "" {
		if proj, err := s.projects.GetByID(ctx, scope.ProjectID); err == nil {
			resp.Options.Projects = contract.EnsureOption(resp.Options.Projects, proj.ID, proj.Name)
		}
	}
}

func (s *scopeService) sectionOptions(ctx context.Context) ([]contract.Option, error) {
	sections, err := s.sections.List(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]contract.Option, 0, len(sections))
	for _, sec := range sections {
		opts = append(opts, contract.Option{ID: sec.ID, Name: sec.Name})
	}
	return opts, nil
}

func (s *scopeService) teamOptions(ctx context.Context, scope contract.Scope) ([]contract.Option, error) {
	var (
		teams []*domain.Team
		err   error
	)
	if scope.SectionID != "" {
		teams, err = s.teams.ListBySection(ctx, scope.SectionID)
	} else {
		teams, err = s.teams.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	opts := make([]contract.Option, 0, len(teams))
	for _, t := range teams {
		opts = append(opts, contract.Option{ID: t.ID, Name: t.Name})
	}
	return opts, nil
}

func (s *scopeService) resourceOptions(ctx context.Context, scope contract.Scope) ([]contract.Option, error) {
	resources, err := s.resources.List(ctx, repository.ResourceFilter{
		SectionID:  scope.SectionID,
		TeamID:     scope.TeamID,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}
	opts := make([]contract.Option, 0, len(resources))
	for _, r := range resources {
		opts = append(opts, contract.Option{ID: r.ID, Name: r.Name})
	}
	return opts, nil
}

func (s *scopeService) projectOptions(ctx context.Context, scope contract.Scope) ([]contract.Option, error) {
	projects, err := s.projects.List(ctx, repository.ProjectFilter{
		SectionID:  scope.SectionID,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}
	opts := make([]contract.Option, 0, len(projects))
	for _, p := range projects {
		opts = append(opts, contract.Option{ID: p.ID, Name: p.Name})
	}
	return opts, nil
}
