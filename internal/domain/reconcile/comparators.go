package reconcile

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Each comparator produces one FieldComparison. They are total functions:
// malformed input on either side degrades to StatusNoData or a plain
// mismatch, never an error. Shared edge policy:
//   - receipt side empty or unparseable: StatusNoData, no suggestion
//   - form side empty, receipt side present: StatusMismatch with the
//     receipt value offered as the suggestion
//
// Phone and website deviate: absence of either side is StatusNoData, so
// the report can surface "not on receipt" without nagging the user.

func (e *Engine) compareAmount(formRaw, extractedRaw string) FieldComparison {
	c := FieldComparison{Field: FieldAmount, FormValue: strings.TrimSpace(formRaw), ExtractedValue: strings.TrimSpace(extractedRaw)}

	extracted, ok := NormalizeAmount(extractedRaw)
	if !ok {
		c.Status = StatusNoData
		return c
	}
	form, ok := NormalizeAmount(formRaw)
	if !ok {
		c.Status = StatusMismatch
		c.SuggestedValue = c.ExtractedValue
		return c
	}

	// Strictly under one cent: a diff of exactly 0.01 is a real
	// discrepancy, anything smaller is rounding noise.
	tolerance := decimal.NewFromFloat(e.config.AmountTolerance)
	if form.Sub(extracted).Abs().LessThan(tolerance) {
		c.Status = StatusMatch
		return c
	}
	// The suggestion is the receipt value as the extractor rendered it,
	// not the parsed decimal re-serialized.
	c.Status = StatusMismatch
	c.SuggestedValue = c.ExtractedValue
	return c
}

func (e *Engine) compareDate(formRaw, extractedRaw string) FieldComparison {
	// The receipt date is a UTC capture instant; fold it into the user's
	// civil calendar before comparing.
	extracted := e.tz.CivilDate(extractedRaw)
	form := strings.TrimSpace(formRaw)
	c := FieldComparison{Field: FieldDate, FormValue: form, ExtractedValue: extracted}

	if extracted == "" {
		c.Status = StatusNoData
		return c
	}
	if form == "" {
		c.Status = StatusMismatch
		c.SuggestedValue = extracted
		return c
	}
	if form == extracted {
		c.Status = StatusMatch
		return c
	}

	formDay, errF := time.Parse(civilDateLayout, form)
	extractedDay, errE := time.Parse(civilDateLayout, extracted)
	if errF == nil && errE == nil {
		days := formDay.Sub(extractedDay).Hours() / 24
		if days < 0 {
			days = -days
		}
		// One day of slack absorbs the capture instant landing on the
		// far side of a timezone midnight.
		if days <= float64(e.config.DateToleranceDays) {
			c.Status = StatusMatch
			return c
		}
	}
	c.Status = StatusMismatch
	c.SuggestedValue = extracted
	return c
}

func (e *Engine) compareTime(formRaw, extractedRaw string) FieldComparison {
	c := FieldComparison{Field: FieldTime, FormValue: strings.TrimSpace(formRaw), ExtractedValue: strings.TrimSpace(extractedRaw)}

	extracted, ok := NormalizeClockTime(extractedRaw)
	if !ok {
		c.Status = StatusNoData
		return c
	}
	form, ok := NormalizeClockTime(formRaw)
	if !ok {
		c.Status = StatusMismatch
		c.SuggestedValue = FormatClockTime(extracted)
		return c
	}

	// Circular distance on the 1440-minute wheel: 23:58 and 00:02 are
	// four minutes apart, not 1436.
	d := form - extracted
	if d < 0 {
		d = -d
	}
	if 1440-d < d {
		d = 1440 - d
	}
	if d <= e.config.TimeToleranceMinutes {
		c.Status = StatusMatch
		return c
	}
	c.Status = StatusMismatch
	c.SuggestedValue = FormatClockTime(extracted)
	return c
}

func (e *Engine) compareName(formRaw, extractedRaw string, upstream *UpstreamSignal) FieldComparison {
	c := FieldComparison{Field: FieldRestaurantName, FormValue: strings.TrimSpace(formRaw), ExtractedValue: strings.TrimSpace(extractedRaw)}

	extracted := NormalizeName(extractedRaw)
	if extracted == "" {
		c.Status = StatusNoData
		return c
	}
	form := NormalizeName(formRaw)
	if form == "" {
		c.Status = StatusMismatch
		c.SuggestedValue = c.ExtractedValue
		return c
	}

	// When the extraction service already scored the name its verdict is
	// authoritative; local matching only runs without one.
	if matched, scored := upstream.NameScored(); scored {
		c.Similarity = upstream.RestaurantSimilarity
		if matched {
			c.Status = StatusMatch
			return c
		}
		c.Status = StatusMismatch
		c.SuggestedValue = c.ExtractedValue
		return c
	}

	if form == extracted {
		c.Status = StatusMatch
		return c
	}
	// The fallback score is advisory display context for the user; it
	// never promotes a mismatch.
	score := e.scorer.Score(form, extracted)
	c.Similarity = &score
	c.Status = StatusMismatch
	c.SuggestedValue = c.ExtractedValue
	return c
}

func (e *Engine) compareAddress(formRaw, extractedRaw string) FieldComparison {
	c := FieldComparison{Field: FieldRestaurantAddress, FormValue: strings.TrimSpace(formRaw), ExtractedValue: strings.TrimSpace(extractedRaw)}

	extracted := NormalizeAddress(extractedRaw)
	if extracted == "" {
		c.Status = StatusNoData
		return c
	}
	form := NormalizeAddress(formRaw)
	if form == "" {
		c.Status = StatusMismatch
		c.SuggestedValue = c.ExtractedValue
		return c
	}

	if form == extracted || strings.Contains(form, extracted) || strings.Contains(extracted, form) {
		c.Status = StatusMatch
		return c
	}

	// Same address written differently ("123 Main St" vs
	// "123 Main Street") is a match with a format flag, not a mismatch.
	formFull, extractedFull := expandAddressAbbrevs(form), expandAddressAbbrevs(extracted)
	if formFull == extractedFull || strings.Contains(formFull, extractedFull) || strings.Contains(extractedFull, formFull) {
		c.Status = StatusMatchFormatDiffers
		return c
	}

	score := e.scorer.Score(form, extracted)
	c.Similarity = &score
	c.Status = StatusMismatch
	c.SuggestedValue = c.ExtractedValue
	return c
}

func (e *Engine) comparePhone(formRaw, extractedRaw string) FieldComparison {
	c := FieldComparison{Field: FieldRestaurantPhone, FormValue: strings.TrimSpace(formRaw), ExtractedValue: strings.TrimSpace(extractedRaw)}

	form, extracted := NormalizePhone(formRaw), NormalizePhone(extractedRaw)
	if form == "" || extracted == "" {
		c.Status = StatusNoData
		return c
	}
	if form == extracted {
		c.Status = StatusMatch
		return c
	}
	c.Status = StatusMismatch
	c.SuggestedValue = c.ExtractedValue
	return c
}

func (e *Engine) compareWebsite(formRaw, extractedRaw string) FieldComparison {
	c := FieldComparison{Field: FieldRestaurantWebsite, FormValue: strings.TrimSpace(formRaw), ExtractedValue: strings.TrimSpace(extractedRaw)}

	form, extracted := NormalizeWebsite(formRaw), NormalizeWebsite(extractedRaw)
	if form == "" || extracted == "" {
		c.Status = StatusNoData
		return c
	}
	if form == extracted {
		c.Status = StatusMatch
		return c
	}
	c.Status = StatusMismatch
	c.SuggestedValue = c.ExtractedValue
	return c
}

// streetAbbrevs maps common postal abbreviations to their long form, for
// format-differs detection on addresses.
var streetAbbrevs = map[string]string{
	"st":   "street",
	"ave":  "avenue",
	"rd":   "road",
	"blvd": "boulevard",
	"dr":   "drive",
	"ln":   "lane",
	"ct":   "court",
	"pl":   "place",
	"hwy":  "highway",
	"pkwy": "parkway",
	"ste":  "suite",
	"apt":  "apartment",
	"n":    "north",
	"s":    "south",
	"e":    "east",
	"w":    "west",
}

func expandAddressAbbrevs(canonical string) string {
	words := strings.Fields(canonical)
	for i, w := range words {
		if full, ok := streetAbbrevs[w]; ok {
			words[i] = full
		}
	}
	return strings.Join(words, " ")
}
