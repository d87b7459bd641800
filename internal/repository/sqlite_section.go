package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ricardofreitas/staffing/internal/db"
	"github.com/ricardofreitas/staffing/internal/domain"
)

const dateLayout = "2006-01-02"

// SQLiteSectionRepo implements SectionRepo using a SQLite database.
type SQLiteSectionRepo struct {
	db db.DBTX
}

func NewSQLiteSectionRepo(db db.DBTX) *SQLiteSectionRepo {
	return &SQLiteSectionRepo{db: db}
}

func (r *SQLiteSectionRepo) Create(ctx context.Context, s *domain.Section) error {
	query := `INSERT INTO sections (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting section: %w", err)
	}
	return nil
}

func (r *SQLiteSectionRepo) GetByID(ctx context.Context, id string) (*domain.Section, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM sections WHERE id = ?`, id)

	var s domain.Section
	var createdAtStr, updatedAtStr string
	if err := row.Scan(&s.ID, &s.Name, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("section: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning section: %w", err)
	}

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &s, nil
}

func (r *SQLiteSectionRepo) List(ctx context.Context) ([]*domain.Section, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM sections ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	var sections []*domain.Section
	for rows.Next() {
		var s domain.Section
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&s.ID, &s.Name, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning section row: %w", err)
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
		sections = append(sections, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	return sections, nil
}

func (r *SQLiteSectionRepo) Update(ctx context.Context, s *domain.Section) error {
	query := `UPDATE sections SET name = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, s.Name, s.UpdatedAt.Format(time.RFC3339), s.ID)
	if err != nil {
		return fmt.Errorf("updating section: %w", err)
	}
	return nil
}

func (r *SQLiteSectionRepo) Delete(ctx context.Context, id string) error {
	// Sections referenced by teams are immutable; the FK constraint
	// rejects the delete.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sections WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting section: %w", err)
	}
	return nil
}
