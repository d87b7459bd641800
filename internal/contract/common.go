package contract

import "github.com/ricardofreitas/staffing/internal/app"

type Option = app.Option

type FieldError = app.FieldError

type FieldErrors = app.FieldErrors

type WarningCode = app.WarningCode

const (
	WarnSampleData    WarningCode = app.WarnSampleData
	WarnScopeDegraded WarningCode = app.WarnScopeDegraded
)

type Warning = app.Warning
