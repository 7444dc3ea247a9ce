package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/platewise/reconcile-backend/internal/domain/reconcile"
)

// RunRecord is one persisted reconciliation run. The full report is kept
// as JSON; the scalar columns exist for listing and stats queries.
type RunRecord struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Timezone      string    `json:"timezone"`
	Overall       string    `json:"overall"`
	FieldCount    int       `json:"field_count"`
	MismatchCount int       `json:"mismatch_count"`
	ReportJSON    string    `json:"-"`
}

// SetReport serializes a report into the record and fills the derived
// columns from it.
func (r *RunRecord) SetReport(report *reconcile.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	r.ReportJSON = string(data)
	r.Overall = string(report.Overall)
	r.FieldCount = len(report.Comparisons)
	r.MismatchCount = report.MismatchCount
	return nil
}

// Report deserializes the stored report.
func (r *RunRecord) Report() (*reconcile.Report, error) {
	var report reconcile.Report
	if err := json.Unmarshal([]byte(r.ReportJSON), &report); err != nil {
		return nil, fmt.Errorf("unmarshal report for run %s: %w", r.ID, err)
	}
	return &report, nil
}

// Stats holds aggregate run statistics
type Stats struct {
	TotalRuns     int `json:"total_runs"`
	CleanRuns     int `json:"clean_runs"`
	MismatchRuns  int `json:"mismatch_runs"`
	FieldsChecked int `json:"fields_checked"`
}
