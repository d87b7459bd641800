package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ricardofreitas/staffing/internal/db"
	"github.com/ricardofreitas/staffing/internal/domain"
)

// SQLiteTrackedHoursRepo implements TrackedHoursRepo over the local fact
// cache filled by tracker syncs.
type SQLiteTrackedHoursRepo struct {
	db db.DBTX
}

func NewSQLiteTrackedHoursRepo(db db.DBTX) *SQLiteTrackedHoursRepo {
	return &SQLiteTrackedHoursRepo{db: db}
}

func (r *SQLiteTrackedHoursRepo) Upsert(ctx context.Context, f *domain.TrackedHours) error {
	query := `INSERT INTO tracked_hours (resource_id, project_id, year, month, actual_hours, synced_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(resource_id, project_id, year, month) DO UPDATE
		SET actual_hours = excluded.actual_hours, synced_at = excluded.synced_at`
	_, err := r.db.ExecContext(ctx, query,
		f.ResourceID,
		f.ProjectID,
		f.Period.Year,
		f.Period.Month,
		f.ActualHours,
		f.SyncedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting tracked hours: %w", err)
	}
	return nil
}

func (r *SQLiteTrackedHoursRepo) SumByResource(ctx context.Context, resourceID string, rng domain.PeriodRange, projectID string) ([]PeriodSum, error) {
	query := `SELECT year, month, SUM(actual_hours)
		FROM tracked_hours
		WHERE resource_id = ?
		  AND (year * 100 + month) BETWEEN ? AND ?`
	args := []any{resourceID, rng.From.Year*100 + rng.From.Month, rng.To.Year*100 + rng.To.Month}
	if projectID != "" {
		query += ` AND project_id = ?`
		args = append(args, projectID)
	}
	query += ` GROUP BY year, month ORDER BY year, month`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("summing tracked hours: %w", err)
	}
	defer rows.Close()
	return scanPeriodSums(rows)
}

func (r *SQLiteTrackedHoursRepo) BreakdownByProject(ctx context.Context, resourceID string, p domain.Period) ([]ProjectHours, error) {
	query := `SELECT t.project_id, pr.name, SUM(t.actual_hours)
		FROM tracked_hours t
		JOIN projects pr ON pr.id = t.project_id
		WHERE t.resource_id = ? AND t.year = ? AND t.month = ?
		GROUP BY t.project_id, pr.name
		ORDER BY pr.name`
	rows, err := r.db.QueryContext(ctx, query, resourceID, p.Year, p.Month)
	if err != nil {
		return nil, fmt.Errorf("actual breakdown: %w", err)
	}
	defer rows.Close()
	return scanProjectHours(rows)
}

// SQLiteCapacityRepo implements CapacityRepo for explicit per-month
// availability overrides.
type SQLiteCapacityRepo struct {
	db db.DBTX
}

func NewSQLiteCapacityRepo(db db.DBTX) *SQLiteCapacityRepo {
	return &SQLiteCapacityRepo{db: db}
}

func (r *SQLiteCapacityRepo) Upsert(ctx context.Context, f *domain.CapacityFact) error {
	query := `INSERT INTO capacity_facts (resource_id, year, month, available_hours)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(resource_id, year, month) DO UPDATE
		SET available_hours = excluded.available_hours`
	_, err := r.db.ExecContext(ctx, query,
		f.ResourceID, f.Period.Year, f.Period.Month, f.AvailableHours)
	if err != nil {
		return fmt.Errorf("upserting capacity fact: %w", err)
	}
	return nil
}

func (r *SQLiteCapacityRepo) Get(ctx context.Context, resourceID string, p domain.Period) (*domain.CapacityFact, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT resource_id, year, month, available_hours FROM capacity_facts
		WHERE resource_id = ? AND year = ? AND month = ?`,
		resourceID, p.Year, p.Month)

	var f domain.CapacityFact
	if err := row.Scan(&f.ResourceID, &f.Period.Year, &f.Period.Month, &f.AvailableHours); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("capacity fact: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning capacity fact: %w", err)
	}
	return &f, nil
}
