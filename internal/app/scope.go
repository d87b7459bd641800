package app

// ScopeField names one level of the section→team→resource→project
// hierarchy. Each level depends on every level above it.
type ScopeField string

const (
	FieldSection  ScopeField = "section"
	FieldTeam     ScopeField = "team"
	FieldResource ScopeField = "resource"
	FieldProject  ScopeField = "project"
)

// Scope is the currently selected filter hierarchy. Empty string means
// the level is unset.
type Scope struct {
	SectionID  string
	TeamID     string
	ResourceID string
	ProjectID  string
}

// Set returns the scope after changing one level, clearing every
// descendant of the changed level. Setting a level to the value it
// already holds still clears descendants, because their option lists
// are about to be re-resolved anyway.
func (s Scope) Set(field ScopeField, value string) Scope {
	switch field {
	case FieldSection:
		s.SectionID = value
		s.TeamID = ""
		s.ResourceID = ""
		s.ProjectID = ""
	case FieldTeam:
		s.TeamID = value
		s.ResourceID = ""
		s.ProjectID = ""
	case FieldResource:
		s.ResourceID = value
		s.ProjectID = ""
	case FieldProject:
		s.ProjectID = value
	}
	return s
}

// ScopeOptions is the resolved set of children for a scope. Every list
// is already narrowed by the ancestors set in the originating scope.
type ScopeOptions struct {
	Sections  []Option
	Teams     []Option
	Resources []Option
	Projects  []Option
}

// ScopeResponse pairs the resolved options with the scope they answer,
// possibly adjusted by the resolver (resource selection backfills the
// team from the resource's primary team when unset).
type ScopeResponse struct {
	Scope    Scope
	Options  ScopeOptions
	Warnings []Warning
}

// EnsureOption prepends a synthesized {id, name} entry when the given
// id is absent from the list, so an existing record whose reference
// fell out of the filtered options still displays. The synthesized
// entry exists for display only.
func EnsureOption(opts []Option, id, name string) []Option {
	if id == "" {
		return opts
	}
	for _, o := range opts {
		if o.ID == id {
			return opts
		}
	}
	return append([]Option{{ID: id, Name: name}}, opts...)
}
