package cli

import (
	"github.com/ricardofreitas/staffing/internal/contract"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Active hierarchy filter. Views read it, the filter view owns it.
	Scope contract.Scope

	// Options from the last completed resolver round trip.
	Options contract.ScopeOptions

	// ScopeGen counts filter changes. Each resolver round trip carries
	// the generation it was started for; responses for an older
	// generation are dropped instead of overwriting newer options.
	ScopeGen int

	// Terminal dimensions
	Width  int
	Height int
}

// NextScopeGen advances the filter generation and returns it.
func (s *SharedState) NextScopeGen() int {
	s.ScopeGen++
	return s.ScopeGen
}

// SetScope applies a single field change with the cascade rules and
// advances the generation.
func (s *SharedState) SetScope(field contract.ScopeField, value string) int {
	s.Scope = s.Scope.Set(field, value)
	return s.NextScopeGen()
}

// ContentHeight returns the available height for view content,
// accounting for the header (2 lines) and status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
