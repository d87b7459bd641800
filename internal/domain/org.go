package domain

import (
	"fmt"
	"regexp"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Section is the root of the organizational hierarchy.
type Section struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Team belongs to exactly one Section. The section never changes after
// creation; moving people between sections happens at the resource level.
type Team struct {
	ID        string
	Name      string
	SectionID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Resource is a person whose hours are planned against projects.
// DailyHours is the capacity basis: available hours default to
// daily_hours x business days for months without an explicit capacity fact.
type Resource struct {
	ID         string
	Name       string
	Email      string
	DailyHours float64
	TeamID     *string // primary team, nil for unassigned
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate runs the field checks performed before any persistence call.
func (r *Resource) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("resource name is required")
	}
	if r.Email != "" && !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("invalid email %q", r.Email)
	}
	if r.DailyHours < 0 {
		return fmt.Errorf("daily hours must be non-negative, got %v", r.DailyHours)
	}
	return nil
}
