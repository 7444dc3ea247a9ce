package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Storage provides SQLite database access for reconciliation runs.
// It implements the Repository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	s := &Storage{db: db}
	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// SaveRun persists one reconciliation run
func (s *Storage) SaveRun(run *RunRecord) error {
	query := `
	INSERT OR REPLACE INTO reconcile_runs
	(id, created_at, timezone, overall, field_count, mismatch_count, report_json)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		run.ID,
		run.CreatedAt,
		run.Timezone,
		run.Overall,
		run.FieldCount,
		run.MismatchCount,
		run.ReportJSON,
	)
	return err
}

// GetRun retrieves a run by ID
func (s *Storage) GetRun(id string) (*RunRecord, error) {
	query := `
	SELECT id, created_at, timezone, overall, field_count, mismatch_count, report_json
	FROM reconcile_runs WHERE id = ?
	`
	run := &RunRecord{}
	err := s.db.QueryRow(query, id).Scan(
		&run.ID,
		&run.CreatedAt,
		&run.Timezone,
		&run.Overall,
		&run.FieldCount,
		&run.MismatchCount,
		&run.ReportJSON,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

// ListRuns returns runs newest-first with pagination
func (s *Storage) ListRuns(filters RunFilters) ([]*RunRecord, int, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}

	where := ""
	args := []interface{}{}
	if filters.Overall != "" {
		where = " WHERE overall = ?"
		args = append(args, filters.Overall)
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM reconcile_runs"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count runs: %w", err)
	}

	query := `
	SELECT id, created_at, timezone, overall, field_count, mismatch_count, report_json
	FROM reconcile_runs` + where + `
	ORDER BY created_at DESC
	LIMIT ? OFFSET ?
	`
	rows, err := s.db.Query(query, append(args, limit, filters.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*RunRecord
	for rows.Next() {
		run := &RunRecord{}
		if err := rows.Scan(
			&run.ID,
			&run.CreatedAt,
			&run.Timezone,
			&run.Overall,
			&run.FieldCount,
			&run.MismatchCount,
			&run.ReportJSON,
		); err != nil {
			return nil, 0, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, total, rows.Err()
}

// GetStats returns aggregate statistics
func (s *Storage) GetStats() (*Stats, error) {
	stats := &Stats{}
	query := `
	SELECT
		COUNT(*),
		COALESCE(SUM(CASE WHEN mismatch_count = 0 THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN mismatch_count > 0 THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(field_count), 0)
	FROM reconcile_runs
	`
	err := s.db.QueryRow(query).Scan(
		&stats.TotalRuns,
		&stats.CleanRuns,
		&stats.MismatchRuns,
		&stats.FieldsChecked,
	)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}
