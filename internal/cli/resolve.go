package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ricardofreitas/staffing/internal/repository"
)

// resolveProjectID accepts a company code, a full UUID or a UUID prefix
// and returns the canonical project ID.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	if p, err := app.Projects.GetByCompanyCode(ctx, strings.ToUpper(input)); err == nil {
		return p.ID, nil
	}

	projects, err := app.Projects.List(ctx, repository.ProjectFilter{})
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveResourceID accepts a full UUID, a UUID prefix or an exact name
// (case-insensitive) and returns the canonical resource ID.
func resolveResourceID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("resource ID is required")
	}

	resources, err := app.Resources.List(ctx, repository.ResourceFilter{})
	if err != nil {
		return "", err
	}

	for _, r := range resources {
		if r.ID == input {
			return r.ID, nil
		}
	}
	for _, r := range resources {
		if strings.EqualFold(r.Name, input) {
			return r.ID, nil
		}
	}

	var matches []string
	for _, r := range resources {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("resource not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("resource ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTeamID accepts a full UUID, a UUID prefix or an exact name.
func resolveTeamID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("team ID is required")
	}

	teams, err := app.Teams.List(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range teams {
		if t.ID == input {
			return t.ID, nil
		}
	}
	for _, t := range teams {
		if strings.EqualFold(t.Name, input) {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range teams {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("team not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("team ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveSectionID accepts a full UUID, a UUID prefix or an exact name.
func resolveSectionID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("section ID is required")
	}

	sections, err := app.Sections.List(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range sections {
		if s.ID == input {
			return s.ID, nil
		}
	}
	for _, s := range sections {
		if strings.EqualFold(s.Name, input) {
			return s.ID, nil
		}
	}

	var matches []string
	for _, s := range sections {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("section not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("section ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
