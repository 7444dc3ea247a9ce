package storage

// Repository defines the run-history storage interface. The reconcile
// engine itself is stateless; only the API layer records runs, so this
// interface stays small and easy to mock.
type Repository interface {
	// SaveRun persists one reconciliation run.
	SaveRun(run *RunRecord) error

	// GetRun retrieves a run by its ID.
	GetRun(id string) (*RunRecord, error)

	// ListRuns returns runs newest-first with pagination, plus the
	// total count across all pages.
	ListRuns(filters RunFilters) ([]*RunRecord, int, error)

	// GetStats returns aggregate statistics over all runs.
	GetStats() (*Stats, error)

	Close() error
}

// RunFilters defines filters for listing runs
type RunFilters struct {
	Overall string // Filter by overall status (empty = all)
	Limit   int    // Max results (0 = default 50)
	Offset  int    // Pagination offset
}
