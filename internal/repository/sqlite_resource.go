package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ricardofreitas/staffing/internal/db"
	"github.com/ricardofreitas/staffing/internal/domain"
)

const resourceColumns = `id, name, email, daily_hours, team_id, active, created_at, updated_at`

// SQLiteResourceRepo implements ResourceRepo using a SQLite database.
type SQLiteResourceRepo struct {
	db db.DBTX
}

func NewSQLiteResourceRepo(db db.DBTX) *SQLiteResourceRepo {
	return &SQLiteResourceRepo{db: db}
}

func (r *SQLiteResourceRepo) Create(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (` + resourceColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		res.ID,
		res.Name,
		res.Email,
		res.DailyHours,
		nullableStr(res.TeamID),
		boolToInt(res.Active),
		res.CreatedAt.Format(time.RFC3339),
		res.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting resource: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE id = ?`, id)
	res, err := scanResource(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("resource: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning resource: %w", err)
	}
	return res, nil
}

func (r *SQLiteResourceRepo) List(ctx context.Context, f ResourceFilter) ([]*domain.Resource, error) {
	query := `SELECT r.id, r.name, r.email, r.daily_hours, r.team_id, r.active, r.created_at, r.updated_at
		FROM resources r`
	var conds []string
	var args []any

	if f.SectionID != "" {
		query += ` JOIN teams t ON t.id = r.team_id`
		conds = append(conds, `t.section_id = ?`)
		args = append(args, f.SectionID)
	}
	if f.TeamID != "" {
		conds = append(conds, `r.team_id = ?`)
		args = append(args, f.TeamID)
	}
	if f.ActiveOnly {
		conds = append(conds, `r.active = 1`)
	}
	for i, c := range conds {
		if i == 0 {
			query += ` WHERE ` + c
		} else {
			query += ` AND ` + c
		}
	}
	query += ` ORDER BY r.name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	defer rows.Close()

	var resources []*domain.Resource
	for rows.Next() {
		res, err := scanResource(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning resource row: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resources: %w", err)
	}
	return resources, nil
}

func (r *SQLiteResourceRepo) Update(ctx context.Context, res *domain.Resource) error {
	query := `UPDATE resources SET name = ?, email = ?, daily_hours = ?, team_id = ?, active = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		res.Name,
		res.Email,
		res.DailyHours,
		nullableStr(res.TeamID),
		boolToInt(res.Active),
		res.UpdatedAt.Format(time.RFC3339),
		res.ID,
	)
	if err != nil {
		return fmt.Errorf("updating resource: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM resources WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting resource: %w", err)
	}
	return nil
}

func scanResource(scan func(dest ...any) error) (*domain.Resource, error) {
	var res domain.Resource
	var teamID sql.NullString
	var active int
	var createdAtStr, updatedAtStr string

	if err := scan(&res.ID, &res.Name, &res.Email, &res.DailyHours,
		&teamID, &active, &createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}

	res.TeamID = strPtrFromNull(teamID)
	res.Active = intToBool(active)

	var parseErr error
	res.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	res.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &res, nil
}
