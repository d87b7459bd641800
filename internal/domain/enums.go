package domain

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectPaused   ProjectStatus = "paused"
	ProjectDone     ProjectStatus = "done"
	ProjectArchived ProjectStatus = "archived"
)

type AllocationStatus string

const (
	AllocationPlanned   AllocationStatus = "planned"
	AllocationConfirmed AllocationStatus = "confirmed"
	AllocationClosed    AllocationStatus = "closed"
)

// MetricKind selects which hours column a drill-down breaks down by.
type MetricKind string

const (
	MetricPlanned MetricKind = "planned"
	MetricActual  MetricKind = "actual"
)

// ValidAllocationStatuses is the canonical set of accepted allocation status strings.
var ValidAllocationStatuses = map[string]bool{
	"planned": true, "confirmed": true, "closed": true,
}
