package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ricardofreitas/staffing/internal/db"
	"github.com/ricardofreitas/staffing/internal/domain"
)

const allocationColumnsAliased = `a.id, a.resource_id, a.project_id, a.team_id,
	a.start_date, a.end_date, a.status, a.observation, a.created_at, a.updated_at`

// SQLiteAllocationRepo implements AllocationRepo using a SQLite database.
type SQLiteAllocationRepo struct {
	db db.DBTX
}

func NewSQLiteAllocationRepo(db db.DBTX) *SQLiteAllocationRepo {
	return &SQLiteAllocationRepo{db: db}
}

func (r *SQLiteAllocationRepo) Create(ctx context.Context, a *domain.Allocation) error {
	query := `INSERT INTO allocations (id, resource_id, project_id, team_id, start_date, end_date, status, observation, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.ResourceID,
		a.ProjectID,
		nullableStr(a.TeamID),
		a.StartDate.Format(dateLayout),
		nullableTimeToString(a.EndDate, dateLayout),
		string(a.Status),
		a.Observation,
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting allocation: %w", err)
	}
	return nil
}

func (r *SQLiteAllocationRepo) GetByID(ctx context.Context, id string) (*domain.Allocation, error) {
	query := `SELECT id, resource_id, project_id, team_id, start_date, end_date, status, observation, created_at, updated_at
		FROM allocations WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	a, err := scanAllocation(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("allocation: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning allocation: %w", err)
	}
	return a, nil
}

func (r *SQLiteAllocationRepo) List(ctx context.Context, f AllocationFilter) ([]AllocationDetail, error) {
	query := `SELECT ` + allocationColumnsAliased + `, r.name, p.name, p.company_code
		FROM allocations a
		JOIN resources r ON r.id = a.resource_id
		JOIN projects p ON p.id = a.project_id`
	var conds []string
	var args []any

	if f.ResourceID != "" {
		conds = append(conds, `a.resource_id = ?`)
		args = append(args, f.ResourceID)
	}
	if f.ProjectID != "" {
		conds = append(conds, `a.project_id = ?`)
		args = append(args, f.ProjectID)
	}
	if f.TeamID != "" {
		conds = append(conds, `a.team_id = ?`)
		args = append(args, f.TeamID)
	}
	if f.OverlapEnd != nil {
		conds = append(conds, `a.start_date <= ?`)
		args = append(args, f.OverlapEnd.Format(dateLayout))
	}
	if f.OverlapStart != nil {
		conds = append(conds, `(a.end_date IS NULL OR a.end_date >= ?)`)
		args = append(args, f.OverlapStart.Format(dateLayout))
	}
	for i, c := range conds {
		if i == 0 {
			query += ` WHERE ` + c
		} else {
			query += ` AND ` + c
		}
	}
	query += ` ORDER BY a.start_date, r.name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing allocations: %w", err)
	}
	defer rows.Close()

	var details []AllocationDetail
	for rows.Next() {
		var d AllocationDetail
		a, err := scanAllocation(func(dest ...any) error {
			dest = append(dest, &d.ResourceName, &d.ProjectName, &d.ProjectCode)
			return rows.Scan(dest...)
		})
		if err != nil {
			return nil, fmt.Errorf("scanning allocation row: %w", err)
		}
		d.Allocation = *a
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating allocations: %w", err)
	}
	return details, nil
}

func (r *SQLiteAllocationRepo) Update(ctx context.Context, a *domain.Allocation) error {
	// team_id stays as denormalized at creation; reports depend on it
	// not drifting when the resource changes teams later.
	query := `UPDATE allocations SET resource_id = ?, project_id = ?, start_date = ?, end_date = ?, status = ?, observation = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		a.ResourceID,
		a.ProjectID,
		a.StartDate.Format(dateLayout),
		nullableTimeToString(a.EndDate, dateLayout),
		string(a.Status),
		a.Observation,
		a.UpdatedAt.Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating allocation: %w", err)
	}
	return nil
}

func (r *SQLiteAllocationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM allocations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting allocation: %w", err)
	}
	return nil
}

func scanAllocation(scan func(dest ...any) error) (*domain.Allocation, error) {
	var a domain.Allocation
	var teamID, endDateStr sql.NullString
	var startDateStr, statusStr, createdAtStr, updatedAtStr string

	if err := scan(&a.ID, &a.ResourceID, &a.ProjectID, &teamID,
		&startDateStr, &endDateStr, &statusStr, &a.Observation,
		&createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}

	a.TeamID = strPtrFromNull(teamID)
	a.Status = domain.AllocationStatus(statusStr)
	a.EndDate = parseNullableTime(endDateStr, dateLayout)

	var parseErr error
	a.StartDate, parseErr = time.Parse(dateLayout, startDateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	a.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	a.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &a, nil
}
