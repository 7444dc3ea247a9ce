package dto

import (
	"time"

	"github.com/platewise/reconcile-backend/internal/adapters/places"
	"github.com/platewise/reconcile-backend/internal/domain/reconcile"
	"github.com/platewise/reconcile-backend/internal/infrastructure/storage"
)

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ReconcileResponse wraps a report with the ID of its persisted run.
type ReconcileResponse struct {
	RunID  string           `json:"run_id"`
	Report reconcile.Report `json:"report"`
}

// ApplyResponse carries the value to write back into the form field.
type ApplyResponse struct {
	Field reconcile.Field `json:"field"`
	Value string          `json:"value"`
}

// RestaurantResponse is the places proxy payload. Address is always the
// single assembled line regardless of how the upstream stored it.
type RestaurantResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// NewRestaurantResponse converts an upstream restaurant record.
func NewRestaurantResponse(id string, r *places.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:      id,
		Name:    r.Name,
		Address: r.Address(),
		Phone:   r.Phone,
		Website: r.Website,
	}
}

// RunSummary is one row of the run-history listing.
type RunSummary struct {
	ID            string `json:"id"`
	CreatedAt     string `json:"created_at"`
	Timezone      string `json:"timezone"`
	Overall       string `json:"overall"`
	FieldCount    int    `json:"field_count"`
	MismatchCount int    `json:"mismatch_count"`
}

// RunListResponse is the paginated run-history listing.
type RunListResponse struct {
	Runs  []RunSummary `json:"runs"`
	Total int          `json:"total"`
}

// RunDetailResponse adds the full report to a run summary.
type RunDetailResponse struct {
	RunSummary
	Report *reconcile.Report `json:"report"`
}

// NewRunSummary converts a stored run record.
func NewRunSummary(run *storage.RunRecord) RunSummary {
	return RunSummary{
		ID:            run.ID,
		CreatedAt:     run.CreatedAt.Format(time.RFC3339),
		Timezone:      run.Timezone,
		Overall:       run.Overall,
		FieldCount:    run.FieldCount,
		MismatchCount: run.MismatchCount,
	}
}
