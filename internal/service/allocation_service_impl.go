package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ricardofreitas/staffing/internal/app"
	"github.com/ricardofreitas/staffing/internal/contract"
	"github.com/ricardofreitas/staffing/internal/db"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/repository"
)

type allocationService struct {
	allocations repository.AllocationRepo
	plans       repository.MonthlyPlanRepo
	resources   repository.ResourceRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewAllocationService(
	allocations repository.AllocationRepo,
	plans repository.MonthlyPlanRepo,
	resources repository.ResourceRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) AllocationService {
	return &allocationService{
		allocations: allocations,
		plans:       plans,
		resources:   resources,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// Save runs the two-phase protocol. Phase 1 commits the allocation
// header in its own transaction; if it fails, no period is ever
// written. Phase 2 then writes the period batch and retracts absent
// periods. Phase 2 runs after every successful Phase 1, for creates
// and edits alike. A Phase 2 failure surfaces as PartialSaveError: the
// header is committed and successfully written periods stay written.
func (s *allocationService) Save(ctx context.Context, req contract.SaveAllocationRequest) (*contract.SaveAllocationResponse, error) {
	started := time.Now()
	resp, err := s.save(ctx, req)

	fields := map[string]any{"resource_id": req.Allocation.ResourceID, "plans": len(req.Plans)}
	if resp != nil {
		fields["allocation_id"] = resp.AllocationID
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "allocation_save",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
	return resp, err
}

func (s *allocationService) save(ctx context.Context, req contract.SaveAllocationRequest) (*contract.SaveAllocationResponse, error) {
	if errs := validateSaveRequest(&req); len(errs) > 0 {
		return nil, errs
	}

	alloc := req.Allocation
	creating := alloc.ID == ""
	now := time.Now().UTC()
	if creating {
		alloc.ID = uuid.New().String()
		alloc.CreatedAt = now
	}
	alloc.UpdatedAt = now
	if alloc.Status == "" {
		alloc.Status = domain.AllocationPlanned
	}
	if alloc.TeamID == nil {
		if res, err := s.resources.GetByID(ctx, alloc.ResourceID); err == nil {
			alloc.TeamID = res.TeamID
		}
	}

	// Phase 1: header, alone in its transaction.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAllocations := repository.NewSQLiteAllocationRepo(tx)
		if creating {
			return txAllocations.Create(ctx, &alloc)
		}
		return txAllocations.Update(ctx, &alloc)
	})
	if err != nil {
		return nil, err
	}

	// Phase 2: period batch. Each period write is independent; a failed
	// one does not roll back the others or the header.
	failed, phaseErr := s.writePlans(ctx, alloc.ID, req.Plans)
	if phaseErr != nil {
		return nil, &app.PartialSaveError{
			AllocationID:  alloc.ID,
			FailedPeriods: failed,
			Err:           phaseErr,
		}
	}

	if err := s.plans.DeleteAbsent(ctx, alloc.ID, req.KeepPeriods); err != nil {
		return nil, &app.PartialSaveError{AllocationID: alloc.ID, Err: err}
	}

	return &contract.SaveAllocationResponse{
		AllocationID: alloc.ID,
		PlansSaved:   len(req.Plans),
	}, nil
}

// writePlans fans the period upserts out and joins them, reporting
// which periods failed. Successful writes are not rolled back.
func (s *allocationService) writePlans(ctx context.Context, allocationID string, plans []domain.MonthlyPlan) ([]domain.Period, error) {
	if len(plans) == 0 {
		return nil, nil
	}

	type outcome struct {
		period domain.Period
		err    error
	}

	var wg sync.WaitGroup
	results := make(chan outcome, len(plans))
	now := time.Now().UTC()
	for _, plan := range plans {
		plan := plan
		plan.AllocationID = allocationID
		if plan.ID == "" {
			plan.ID = uuid.New().String()
		}
		if plan.CreatedAt.IsZero() {
			plan.CreatedAt = now
		}
		plan.UpdatedAt = now
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- outcome{period: plan.Period, err: s.plans.Upsert(ctx, &plan)}
		}()
	}
	wg.Wait()
	close(results)

	var failed []domain.Period
	var errs []error
	for r := range results {
		if r.err != nil {
			failed = append(failed, r.period)
			errs = append(errs, r.err)
		}
	}
	if len(errs) == 0 {
		return nil, nil
	}
	sort.Slice(failed, func(i, j int) bool { return failed[i].Before(failed[j]) })
	return failed, errors.Join(errs...)
}

func validateSaveRequest(req *contract.SaveAllocationRequest) contract.FieldErrors {
	var errs contract.FieldErrors
	a := &req.Allocation
	if a.ResourceID == "" {
		errs = append(errs, contract.FieldError{Field: "resource_id", Message: "is required"})
	}
	if a.ProjectID == "" {
		errs = append(errs, contract.FieldError{Field: "project_id", Message: "is required"})
	}
	if a.StartDate.IsZero() {
		errs = append(errs, contract.FieldError{Field: "start_date", Message: "is required"})
	}
	if a.EndDate != nil && a.EndDate.Before(a.StartDate) {
		errs = append(errs, contract.FieldError{Field: "end_date", Message: "precedes start date"})
	}
	if a.Status != "" && !domain.ValidAllocationStatuses[string(a.Status)] {
		errs = append(errs, contract.FieldError{Field: "status", Message: "is not a valid status"})
	}
	for _, p := range req.Plans {
		if p.PlannedHours <= 0 {
			errs = append(errs, contract.FieldError{Field: "planned_hours", Message: "batch must only contain positive hours"})
			break
		}
		if err := p.Period.Validate(); err != nil {
			errs = append(errs, contract.FieldError{Field: "period", Message: err.Error()})
			break
		}
	}
	return errs
}

func (s *allocationService) Get(ctx context.Context, id string) (*domain.Allocation, []domain.MonthlyPlan, error) {
	alloc, err := s.allocations.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	stored, err := s.plans.ListByAllocation(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	plans := make([]domain.MonthlyPlan, 0, len(stored))
	for _, p := range stored {
		plans = append(plans, *p)
	}
	return alloc, plans, nil
}

func (s *allocationService) List(ctx context.Context, filter repository.AllocationFilter) ([]repository.AllocationDetail, error) {
	return s.allocations.List(ctx, filter)
}

func (s *allocationService) Delete(ctx context.Context, id string) error {
	return s.allocations.Delete(ctx, id)
}
