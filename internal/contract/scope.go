package contract

import "github.com/ricardofreitas/staffing/internal/app"

type ScopeField = app.ScopeField

const (
	FieldSection  ScopeField = app.FieldSection
	FieldTeam     ScopeField = app.FieldTeam
	FieldResource ScopeField = app.FieldResource
	FieldProject  ScopeField = app.FieldProject
)

type Scope = app.Scope

type ScopeOptions = app.ScopeOptions

type ScopeResponse = app.ScopeResponse

func EnsureOption(opts []Option, id, name string) []Option {
	return app.EnsureOption(opts, id, name)
}
