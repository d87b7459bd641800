package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ricardofreitas/staffing/internal/db"
	"github.com/ricardofreitas/staffing/internal/domain"
)

// SQLiteMonthlyPlanRepo implements MonthlyPlanRepo using a SQLite database.
//
// (allocation_id, year, month) is the unique key; Upsert replaces an
// existing row in place, which keeps re-submitting the same batch
// idempotent.
type SQLiteMonthlyPlanRepo struct {
	db db.DBTX
}

func NewSQLiteMonthlyPlanRepo(db db.DBTX) *SQLiteMonthlyPlanRepo {
	return &SQLiteMonthlyPlanRepo{db: db}
}

func (r *SQLiteMonthlyPlanRepo) Upsert(ctx context.Context, m *domain.MonthlyPlan) error {
	query := `INSERT INTO monthly_plans (id, allocation_id, year, month, planned_hours, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(allocation_id, year, month) DO UPDATE
		SET planned_hours = excluded.planned_hours, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.AllocationID,
		m.Period.Year,
		m.Period.Month,
		m.PlannedHours,
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting monthly plan: %w", err)
	}
	return nil
}

func (r *SQLiteMonthlyPlanRepo) ListByAllocation(ctx context.Context, allocationID string) ([]*domain.MonthlyPlan, error) {
	query := `SELECT id, allocation_id, year, month, planned_hours, created_at, updated_at
		FROM monthly_plans WHERE allocation_id = ? ORDER BY year, month`
	rows, err := r.db.QueryContext(ctx, query, allocationID)
	if err != nil {
		return nil, fmt.Errorf("listing monthly plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.MonthlyPlan
	for rows.Next() {
		var m domain.MonthlyPlan
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&m.ID, &m.AllocationID, &m.Period.Year, &m.Period.Month,
			&m.PlannedHours, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning monthly plan row: %w", err)
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
		plans = append(plans, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monthly plans: %w", err)
	}
	return plans, nil
}

func (r *SQLiteMonthlyPlanRepo) DeleteAbsent(ctx context.Context, allocationID string, keep []domain.Period) error {
	if len(keep) == 0 {
		if _, err := r.db.ExecContext(ctx,
			`DELETE FROM monthly_plans WHERE allocation_id = ?`, allocationID); err != nil {
			return fmt.Errorf("pruning monthly plans: %w", err)
		}
		return nil
	}

	var tuples []string
	args := []any{allocationID}
	for _, p := range keep {
		tuples = append(tuples, `(?, ?)`)
		args = append(args, p.Year, p.Month)
	}
	query := `DELETE FROM monthly_plans WHERE allocation_id = ? AND (year, month) NOT IN (VALUES ` +
		strings.Join(tuples, ", ") + `)`
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("pruning monthly plans: %w", err)
	}
	return nil
}

func (r *SQLiteMonthlyPlanRepo) SumByResource(ctx context.Context, resourceID string, rng domain.PeriodRange, projectID string) ([]PeriodSum, error) {
	query := `SELECT m.year, m.month, SUM(m.planned_hours)
		FROM monthly_plans m
		JOIN allocations a ON a.id = m.allocation_id
		WHERE a.resource_id = ?
		  AND (m.year * 100 + m.month) BETWEEN ? AND ?`
	args := []any{resourceID, rng.From.Year*100 + rng.From.Month, rng.To.Year*100 + rng.To.Month}
	if projectID != "" {
		query += ` AND a.project_id = ?`
		args = append(args, projectID)
	}
	query += ` GROUP BY m.year, m.month ORDER BY m.year, m.month`

	return r.querySums(ctx, query, args...)
}

func (r *SQLiteMonthlyPlanRepo) BreakdownByProject(ctx context.Context, resourceID string, p domain.Period) ([]ProjectHours, error) {
	query := `SELECT a.project_id, pr.name, SUM(m.planned_hours)
		FROM monthly_plans m
		JOIN allocations a ON a.id = m.allocation_id
		JOIN projects pr ON pr.id = a.project_id
		WHERE a.resource_id = ? AND m.year = ? AND m.month = ?
		GROUP BY a.project_id, pr.name
		ORDER BY pr.name`
	rows, err := r.db.QueryContext(ctx, query, resourceID, p.Year, p.Month)
	if err != nil {
		return nil, fmt.Errorf("planned breakdown: %w", err)
	}
	defer rows.Close()
	return scanProjectHours(rows)
}

func (r *SQLiteMonthlyPlanRepo) querySums(ctx context.Context, query string, args ...any) ([]PeriodSum, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("summing planned hours: %w", err)
	}
	defer rows.Close()
	return scanPeriodSums(rows)
}

func scanPeriodSums(rows *sql.Rows) ([]PeriodSum, error) {
	var sums []PeriodSum
	for rows.Next() {
		var s PeriodSum
		if err := rows.Scan(&s.Period.Year, &s.Period.Month, &s.Hours); err != nil {
			return nil, fmt.Errorf("scanning period sum: %w", err)
		}
		sums = append(sums, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating period sums: %w", err)
	}
	return sums, nil
}

func scanProjectHours(rows *sql.Rows) ([]ProjectHours, error) {
	var out []ProjectHours
	for rows.Next() {
		var ph ProjectHours
		if err := rows.Scan(&ph.ProjectID, &ph.ProjectName, &ph.Hours); err != nil {
			return nil, fmt.Errorf("scanning project hours: %w", err)
		}
		out = append(out, ph)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project hours: %w", err)
	}
	return out, nil
}
