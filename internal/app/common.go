package app

import "strings"

// Option is one selectable entry in a filter or form list.
type Option struct {
	ID   string
	Name string
}

// FieldError is a validation failure tied to a single form field so
// callers can surface it next to the input instead of as one toast.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors collects per-field validation failures for one request.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// HasField reports whether any collected error targets the named field.
func (e FieldErrors) HasField(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Warning severities attached to responses. A warning never blocks the
// triggering action.
type WarningCode string

const (
	// WarnSampleData flags that live aggregation data was unavailable
	// and the response carries the labeled example dataset instead.
	WarnSampleData WarningCode = "SAMPLE_DATA"
	// WarnScopeDegraded flags that the hierarchy resolver failed and
	// the option lists were emptied rather than blocking the form.
	WarnScopeDegraded WarningCode = "SCOPE_DEGRADED"
)

type Warning struct {
	Code    WarningCode
	Message string
}
