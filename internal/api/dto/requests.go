package dto

import (
	"encoding/json"

	"github.com/platewise/reconcile-backend/internal/domain/reconcile"
)

// ReconcileRequest is the body of POST /api/reconcile. Extracted is the
// raw extraction-service payload; it is validated by the extraction
// adapter on ingress rather than bound here, since its amount field may
// be a string or a number.
type ReconcileRequest struct {
	Form      reconcile.FormRecord `json:"form" binding:"required"`
	Extracted json.RawMessage      `json:"extracted" binding:"required"`

	// Timezone overrides the server's default zone for this request.
	// The UI sends the browser zone so receipt instants fold into the
	// user's calendar, not the server's.
	Timezone string `json:"timezone,omitempty"`
}

// ReconcileReceiptRequest is the body of POST /api/reconcile/receipts/:id.
// The extracted side is fetched from the extraction service by the
// receipt ID in the path, not supplied by the caller.
type ReconcileReceiptRequest struct {
	Form     reconcile.FormRecord `json:"form" binding:"required"`
	Timezone string               `json:"timezone,omitempty"`
}

// ApplyRequest is the body of POST /api/reconcile/apply.
type ApplyRequest struct {
	Field  reconcile.Field   `json:"field" binding:"required"`
	Report *reconcile.Report `json:"report" binding:"required"`
}

// RunListParams represents query parameters for listing runs.
type RunListParams struct {
	Overall string `form:"overall"`
	Limit   int    `form:"limit"`
	Offset  int    `form:"offset"`
}

// DefaultRunListParams returns default values for run list params.
func DefaultRunListParams() RunListParams {
	return RunListParams{
		Limit:  50,
		Offset: 0,
	}
}
