// Package reconcile decides, field by field, whether a user-entered
// expense record and a machine-extracted receipt record agree.
//
// Every field type gets its own equivalence rule:
//   - Amount: within one cent (strict)
//   - Date: same civil calendar day in the user's timezone, +/- one day
//   - Time: within 15 minutes of circular clock distance
//   - Name: upstream verdict if scored, else exact (case-insensitive)
//   - Address: canonical equality or substring, with format-differs
//     detection for postal abbreviations
//   - Phone/Website: canonical equality
//
// The engine is stateless: Reconcile is a pure function over its two
// inputs and is safe to call concurrently.
//
// Example usage:
//
//	tz, _ := reconcile.NewTimezoneResolver("America/Chicago")
//	engine := reconcile.NewEngine(tz, similarity.NewOverlap(), reconcile.DefaultConfig())
//	report := engine.Reconcile(form, extracted)
//	if value, ok := reconcile.ApplySuggestion(reconcile.FieldAmount, &report); ok {
//		// caller writes value back into the form
//	}
package reconcile

import (
	"strings"

	"github.com/platewise/reconcile-backend/internal/domain/similarity"
)

// Config holds the per-field tolerances.
type Config struct {
	AmountTolerance      float64 // dollars, match strictly under (default 0.01)
	DateToleranceDays    int     // max civil day difference (default 1)
	TimeToleranceMinutes int     // max circular clock distance (default 15)
}

// DefaultConfig returns the product tolerances.
func DefaultConfig() Config {
	return Config{
		AmountTolerance:      0.01,
		DateToleranceDays:    1,
		TimeToleranceMinutes: 15,
	}
}

// Engine reconciles form records against extracted receipt records.
type Engine struct {
	tz     *TimezoneResolver
	scorer similarity.Scorer
	config Config
}

// NewEngine creates an engine. A nil resolver defaults to UTC and a nil
// scorer to the overlap scorer.
func NewEngine(tz *TimezoneResolver, scorer similarity.Scorer, config Config) *Engine {
	if tz == nil {
		tz = UTC()
	}
	if scorer == nil {
		scorer = similarity.NewOverlap()
	}
	return &Engine{tz: tz, scorer: scorer, config: config}
}

// Reconcile compares every field the extracted record carries and returns
// the aggregated report. Fields absent from the receipt produce no row,
// except phone and website, which are evaluated whenever either side has
// a value so the report can state "not on receipt" explicitly.
func (e *Engine) Reconcile(form FormRecord, extracted ExtractedRecord) Report {
	var rows []FieldComparison

	if present(extracted.Amount) {
		rows = append(rows, e.compareAmount(form.Amount, extracted.Amount))
	}
	if present(extracted.Date) {
		rows = append(rows, e.compareDate(form.Date, extracted.Date))
	}
	if present(extracted.Time) {
		rows = append(rows, e.compareTime(form.Time, extracted.Time))
	}
	if present(extracted.RestaurantName) {
		rows = append(rows, e.compareName(form.RestaurantName, extracted.RestaurantName, extracted.Upstream))
	}
	if present(extracted.RestaurantAddress) {
		rows = append(rows, e.compareAddress(form.RestaurantAddress, extracted.RestaurantAddress))
	}
	if present(form.RestaurantPhone) || present(extracted.RestaurantPhone) {
		rows = append(rows, e.comparePhone(form.RestaurantPhone, extracted.RestaurantPhone))
	}
	if present(form.RestaurantWebsite) || present(extracted.RestaurantWebsite) {
		rows = append(rows, e.compareWebsite(form.RestaurantWebsite, extracted.RestaurantWebsite))
	}

	report := Report{Comparisons: rows}
	for _, row := range rows {
		if row.Status == StatusMismatch {
			report.MismatchCount++
		}
	}
	report.Overall = overallStatus(rows, report.MismatchCount)
	return report
}

// ApplySuggestion returns the receipt-side value to write back into the
// form for the named field. It returns ok=false unless the row is a
// mismatch with a suggestion on offer; the actual write into the form
// record is the caller's responsibility.
func ApplySuggestion(field Field, report *Report) (string, bool) {
	if report == nil {
		return "", false
	}
	row := report.Comparison(field)
	if row == nil || row.Status != StatusMismatch || row.SuggestedValue == "" {
		return "", false
	}
	return row.SuggestedValue, true
}

func overallStatus(rows []FieldComparison, mismatches int) Status {
	if mismatches > 0 {
		return StatusMismatch
	}
	overall := StatusNoData
	for _, row := range rows {
		switch row.Status {
		case StatusMatchFormatDiffers:
			return StatusMatchFormatDiffers
		case StatusMatch:
			overall = StatusMatch
		}
	}
	return overall
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}
