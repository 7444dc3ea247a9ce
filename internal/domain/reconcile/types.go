package reconcile

// Field identifies one comparable field of an expense record.
type Field string

const (
	FieldAmount            Field = "amount"
	FieldDate              Field = "date"
	FieldTime              Field = "time"
	FieldRestaurantName    Field = "restaurant_name"
	FieldRestaurantAddress Field = "restaurant_address"
	FieldRestaurantPhone   Field = "restaurant_phone"
	FieldRestaurantWebsite Field = "restaurant_website"
)

// Fields lists every comparable field in report order.
var Fields = []Field{
	FieldAmount,
	FieldDate,
	FieldTime,
	FieldRestaurantName,
	FieldRestaurantAddress,
	FieldRestaurantPhone,
	FieldRestaurantWebsite,
}

// Status is the outcome of comparing one field.
type Status string

const (
	// StatusMatch means both sides agree under the field's tolerance rule.
	StatusMatch Status = "match"

	// StatusMatchFormatDiffers means both sides refer to the same value
	// but are written differently (e.g. "St" vs "Street").
	StatusMatchFormatDiffers Status = "match_format_differs"

	// StatusMismatch means the sides disagree; a suggestion is offered
	// when the receipt side has a value.
	StatusMismatch Status = "mismatch"

	// StatusNoData means the field could not be compared, usually because
	// the receipt side is empty or unparseable.
	StatusNoData Status = "no_data"
)

// FormRecord is the user's current form state for one expense.
// Date is a civil YYYY-MM-DD string, Time a 24-hour HH:MM string; both are
// interpreted in the user's local calendar, not UTC.
type FormRecord struct {
	Amount            string `json:"amount"`
	Date              string `json:"date"`
	Time              string `json:"time,omitempty"`
	RestaurantName    string `json:"restaurant_name"`
	RestaurantAddress string `json:"restaurant_address,omitempty"`
	RestaurantPhone   string `json:"restaurant_phone,omitempty"`
	RestaurantWebsite string `json:"restaurant_website,omitempty"`
	RestaurantID      string `json:"restaurant_id,omitempty"`
}

// ExtractedRecord is the receipt-extraction service's view of the same
// expense. Date is an ISO-8601 UTC instant (the extractor cannot know the
// photographer's civil timezone); Time is a free-form 12-hour string such
// as "12:55 PM". All fields are optional.
type ExtractedRecord struct {
	Amount            string `json:"amount,omitempty"`
	Date              string `json:"date,omitempty"`
	Time              string `json:"time,omitempty"`
	RestaurantName    string `json:"restaurant_name,omitempty"`
	RestaurantAddress string `json:"restaurant_address,omitempty"`
	RestaurantPhone   string `json:"restaurant_phone,omitempty"`
	RestaurantWebsite string `json:"restaurant_website,omitempty"`

	// Upstream carries match signals already scored by the extraction
	// service. Nil when the service did not score the record.
	Upstream *UpstreamSignal `json:"upstream,omitempty"`
}

// UpstreamSignal is the extraction service's own reconciliation verdict.
// When present for a field it is authoritative over local fuzzy matching.
type UpstreamSignal struct {
	Matches              map[Field]bool `json:"matches,omitempty"`
	RestaurantSimilarity *float64       `json:"restaurant_similarity,omitempty"`
}

// NameScored reports whether the upstream service scored the restaurant
// name, and the verdict if so.
func (u *UpstreamSignal) NameScored() (matched, ok bool) {
	if u == nil || u.RestaurantSimilarity == nil {
		return false, false
	}
	matched, ok = u.Matches[FieldRestaurantName]
	return matched, ok
}

// FieldComparison is one row of a reconciliation report.
type FieldComparison struct {
	Field          Field  `json:"field"`
	FormValue      string `json:"form_value"`
	ExtractedValue string `json:"extracted_value"`
	Status         Status `json:"status"`

	// SuggestedValue is the receipt-side value offered to the user.
	// Present only when Status is StatusMismatch and a value exists.
	SuggestedValue string `json:"suggested_value,omitempty"`

	// Similarity is an advisory 0-1 score for name/address rows. It is
	// display-only and never turns a mismatch into a match.
	Similarity *float64 `json:"similarity,omitempty"`
}

// Report is the ordered result of reconciling a form record against an
// extracted receipt record.
type Report struct {
	Comparisons   []FieldComparison `json:"comparisons"`
	MismatchCount int               `json:"mismatch_count"`
	Overall       Status            `json:"overall"`
}

// Comparison returns the row for the given field, or nil if the report
// has no row for it.
func (r *Report) Comparison(field Field) *FieldComparison {
	for i := range r.Comparisons {
		if r.Comparisons[i].Field == field {
			return &r.Comparisons[i]
		}
	}
	return nil
}
