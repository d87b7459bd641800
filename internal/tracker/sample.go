package tracker

import (
	"context"
	"time"

	"github.com/ricardofreitas/staffing/internal/domain"
)

// SampleSource is the offline stand-in used when no tracker endpoint is
// configured. It fabricates a small, clearly labeled set of facts so
// syncs and dashboards stay usable in demos.
type SampleSource struct {
	ResourceIDs []string
	ProjectID   string
}

var sampleLoadHours = []float64{72, 95, 140, 165, 120, 88}

func (s *SampleSource) FetchTrackedHours(ctx context.Context, rng domain.PeriodRange) ([]*domain.TrackedHours, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	syncedAt := time.Now().UTC()
	var facts []*domain.TrackedHours
	for i, p := range rng.Periods() {
		for j, resID := range s.ResourceIDs {
			facts = append(facts, &domain.TrackedHours{
				ResourceID:  resID,
				ProjectID:   s.ProjectID,
				Period:      p,
				ActualHours: sampleLoadHours[(i+j)%len(sampleLoadHours)],
				SyncedAt:    syncedAt,
			})
		}
	}
	return facts, nil
}

func (s *SampleSource) Available(ctx context.Context) bool {
	return true
}
