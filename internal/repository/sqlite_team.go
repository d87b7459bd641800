package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ricardofreitas/staffing/internal/db"
	"github.com/ricardofreitas/staffing/internal/domain"
)

// SQLiteTeamRepo implements TeamRepo using a SQLite database.
//
// A team's section is set at creation and has no update path: the Rename
// mutator only touches the name.
type SQLiteTeamRepo struct {
	db db.DBTX
}

func NewSQLiteTeamRepo(db db.DBTX) *SQLiteTeamRepo {
	return &SQLiteTeamRepo{db: db}
}

func (r *SQLiteTeamRepo) Create(ctx context.Context, t *domain.Team) error {
	query := `INSERT INTO teams (id, name, section_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.SectionID,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting team: %w", err)
	}
	return nil
}

func (r *SQLiteTeamRepo) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, section_id, created_at, updated_at FROM teams WHERE id = ?`, id)
	t, err := scanTeam(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("team: %w", ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTeamRepo) List(ctx context.Context) ([]*domain.Team, error) {
	return r.list(ctx, `SELECT id, name, section_id, created_at, updated_at FROM teams ORDER BY name`)
}

func (r *SQLiteTeamRepo) ListBySection(ctx context.Context, sectionID string) ([]*domain.Team, error) {
	return r.list(ctx,
		`SELECT id, name, section_id, created_at, updated_at FROM teams WHERE section_id = ? ORDER BY name`,
		sectionID)
}

func (r *SQLiteTeamRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Team, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		t, err := scanTeam(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating teams: %w", err)
	}
	return teams, nil
}

func (r *SQLiteTeamRepo) Rename(ctx context.Context, id, name string) error {
	query := `UPDATE teams SET name = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, name, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("renaming team: %w", err)
	}
	return nil
}

func (r *SQLiteTeamRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}
	return nil
}

func scanTeam(scan func(dest ...any) error) (*domain.Team, error) {
	var t domain.Team
	var createdAtStr, updatedAtStr string
	if err := scan(&t.ID, &t.Name, &t.SectionID, &createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}
	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &t, nil
}
