package service

import (
	"context"
	"time"

	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/repository"
)

type syncService struct {
	source   TrackedHoursSource
	tracked  repository.TrackedHoursRepo
	observer UseCaseObserver
}

func NewSyncService(source TrackedHoursSource, tracked repository.TrackedHoursRepo, observers ...UseCaseObserver) SyncService {
	return &syncService{
		source:   source,
		tracked:  tracked,
		observer: useCaseObserverOrNoop(observers),
	}
}

// SyncTrackedHours pulls actuals from the time tracker for the range
// and upserts them into the local fact cache. Each (resource, project,
// month) fact replaces the previous sync's row.
func (s *syncService) SyncTrackedHours(ctx context.Context, rng domain.PeriodRange) (*contract.SyncResult, error) {
	started := time.Now()
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	facts, err := s.source.FetchTrackedHours(ctx, rng)
	if err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name: "tracked_hours_sync", Duration: time.Since(started),
			Err: err, StartedAt: started,
		})
		return nil, err
	}

	result := &contract.SyncResult{}
	seen := make(map[string]bool)
	for _, f := range facts {
		if f.SyncedAt.IsZero() {
			f.SyncedAt = time.Now().UTC()
		}
		if err := s.tracked.Upsert(ctx, f); err != nil {
			return result, err
		}
		result.FactsUpserted++
		if !seen[f.ResourceID] {
			seen[f.ResourceID] = true
			result.ResourcesSynced++
		}
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "tracked_hours_sync",
		Duration: time.Since(started),
		Success:  true,
		Fields: map[string]any{
			"facts":     result.FactsUpserted,
			"resources": result.ResourcesSynced,
		},
		StartedAt: started,
	})
	return result, nil
}
