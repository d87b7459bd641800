package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ricardofreitas/staffing/internal/db"
	"github.com/ricardofreitas/staffing/internal/domain"
)

const projectColumns = `id, name, company_code, section_id, status, active, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(db db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.CompanyCode,
		p.SectionID,
		string(p.Status),
		boolToInt(p.Active),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	return scanProjectRow(row)
}

func (r *SQLiteProjectRepo) GetByCompanyCode(ctx context.Context, code string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE UPPER(company_code) = UPPER(?)`, code)
	return scanProjectRow(row)
}

func (r *SQLiteProjectRepo) List(ctx context.Context, f ProjectFilter) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	var conds []string
	var args []any

	if f.SectionID != "" {
		conds = append(conds, `section_id = ?`)
		args = append(args, f.SectionID)
	}
	if f.ActiveOnly {
		conds = append(conds, `active = 1`)
	}
	for i, c := range conds {
		if i == 0 {
			query += ` WHERE ` + c
		} else {
			query += ` AND ` + c
		}
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, company_code = ?, section_id = ?, status = ?, active = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.CompanyCode,
		p.SectionID,
		string(p.Status),
		boolToInt(p.Active),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func scanProjectRow(row *sql.Row) (*domain.Project, error) {
	p, err := scanProject(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return p, nil
}

func scanProject(scan func(dest ...any) error) (*domain.Project, error) {
	var p domain.Project
	var statusStr string
	var active int
	var createdAtStr, updatedAtStr string

	if err := scan(&p.ID, &p.Name, &p.CompanyCode, &p.SectionID,
		&statusStr, &active, &createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}

	p.Status = domain.ProjectStatus(statusStr)
	p.Active = intToBool(active)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &p, nil
}
