package domain

import (
	"fmt"
	"regexp"
	"time"
)

var companyCodePattern = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

// Project is a unit of work resources are allocated to. It hangs off a
// Section so the cascading filters can narrow projects by organizational
// scope.
type Project struct {
	ID          string
	Name        string
	CompanyCode string
	SectionID   string
	Status      ProjectStatus
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateCompanyCode checks that CompanyCode is non-empty and matches the
// required format: 2-10 uppercase letters or digits (e.g. ACME01).
func (p *Project) ValidateCompanyCode() error {
	if p.CompanyCode == "" {
		return fmt.Errorf("company code is required")
	}
	if !companyCodePattern.MatchString(p.CompanyCode) {
		return fmt.Errorf("company code %q must be 2-10 uppercase letters or digits (e.g. ACME01)", p.CompanyCode)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers CompanyCode; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.CompanyCode != "" {
		return p.CompanyCode
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
