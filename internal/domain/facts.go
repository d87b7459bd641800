package domain

import "time"

// TrackedHours is a read-only fact supplied by the external time tracker:
// hours actually logged by a resource against a project in one month.
type TrackedHours struct {
	ResourceID  string
	ProjectID   string
	Period      Period
	ActualHours float64
	SyncedAt    time.Time
}

// CapacityFact is an explicit availability override for a resource/month,
// supplied by the external availability calendar. Months without a fact
// fall back to DefaultCapacity.
type CapacityFact struct {
	ResourceID     string
	Period         Period
	AvailableHours float64
}

// DefaultCapacity derives a month's available hours from a resource's daily
// hours when no explicit capacity fact exists.
func DefaultCapacity(r *Resource, p Period) float64 {
	if r == nil || r.DailyHours <= 0 {
		return 0
	}
	return r.DailyHours * float64(p.BusinessDays())
}
