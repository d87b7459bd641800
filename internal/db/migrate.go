package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sections (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS teams (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		section_id TEXT NOT NULL REFERENCES sections(id),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_teams_section ON teams(section_id)`,

	`CREATE TABLE IF NOT EXISTS resources (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL DEFAULT '',
		daily_hours REAL NOT NULL DEFAULT 8 CHECK(daily_hours >= 0),
		team_id     TEXT REFERENCES teams(id),
		active      INTEGER NOT NULL DEFAULT 1,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_resources_team ON resources(team_id)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		company_code TEXT NOT NULL DEFAULT '',
		section_id   TEXT NOT NULL REFERENCES sections(id),
		status       TEXT NOT NULL DEFAULT 'active'
		             CHECK(status IN ('active','paused','done','archived')),
		active       INTEGER NOT NULL DEFAULT 1,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_section ON projects(section_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_company_code
		ON projects(company_code) WHERE company_code != ''`,

	`CREATE TABLE IF NOT EXISTS allocations (
		id          TEXT PRIMARY KEY,
		resource_id TEXT NOT NULL REFERENCES resources(id) ON DELETE CASCADE,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		team_id     TEXT REFERENCES teams(id),
		start_date  TEXT NOT NULL,
		end_date    TEXT,
		status      TEXT NOT NULL DEFAULT 'planned'
		            CHECK(status IN ('planned','confirmed','closed')),
		observation TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_allocations_resource ON allocations(resource_id)`,
	`CREATE INDEX IF NOT EXISTS idx_allocations_project ON allocations(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_allocations_team ON allocations(team_id)`,

	`CREATE TABLE IF NOT EXISTS monthly_plans (
		id            TEXT PRIMARY KEY,
		allocation_id TEXT NOT NULL REFERENCES allocations(id) ON DELETE CASCADE,
		year          INTEGER NOT NULL,
		month         INTEGER NOT NULL CHECK(month BETWEEN 1 AND 12),
		planned_hours REAL NOT NULL CHECK(planned_hours >= 0),
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL,
		UNIQUE(allocation_id, year, month)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_monthly_plans_allocation ON monthly_plans(allocation_id)`,

	`CREATE TABLE IF NOT EXISTS tracked_hours (
		resource_id  TEXT NOT NULL REFERENCES resources(id) ON DELETE CASCADE,
		project_id   TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		year         INTEGER NOT NULL,
		month        INTEGER NOT NULL CHECK(month BETWEEN 1 AND 12),
		actual_hours REAL NOT NULL CHECK(actual_hours >= 0),
		synced_at    TEXT NOT NULL,
		PRIMARY KEY (resource_id, project_id, year, month)
	)`,

	`CREATE TABLE IF NOT EXISTS capacity_facts (
		resource_id     TEXT NOT NULL REFERENCES resources(id) ON DELETE CASCADE,
		year            INTEGER NOT NULL,
		month           INTEGER NOT NULL CHECK(month BETWEEN 1 AND 12),
		available_hours REAL NOT NULL CHECK(available_hours >= 0),
		PRIMARY KEY (resource_id, year, month)
	)`,
}
