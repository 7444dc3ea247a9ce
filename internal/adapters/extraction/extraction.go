// Package extraction is the boundary to the receipt-extraction (OCR)
// service. The service returns loosely-typed JSON: amounts arrive as
// strings or numbers, every field is optional, and match signals hide in
// a nested object. This package validates that shape once on ingress so
// the rest of the code works against the closed reconcile types.
package extraction

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/platewise/reconcile-backend/internal/domain/reconcile"
)

// payload mirrors the extraction service's wire format.
type payload struct {
	Amount            json.RawMessage `json:"amount,omitempty"`
	Date              string          `json:"date,omitempty"`
	Time              string          `json:"time,omitempty"`
	RestaurantName    string          `json:"restaurant_name,omitempty"`
	RestaurantAddress string          `json:"restaurant_address,omitempty"`
	RestaurantPhone   string          `json:"restaurant_phone,omitempty"`
	RestaurantWebsite string          `json:"restaurant_website,omitempty"`
	Reconciliation    *struct {
		Matches     map[string]bool `json:"matches,omitempty"`
		Suggestions struct {
			RestaurantSimilarity *float64 `json:"restaurant_similarity,omitempty"`
		} `json:"suggestions,omitempty"`
	} `json:"reconciliation,omitempty"`
}

// Parse validates raw extraction-service JSON into a typed record.
func Parse(data []byte) (reconcile.ExtractedRecord, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return reconcile.ExtractedRecord{}, fmt.Errorf("parse extraction payload: %w", err)
	}

	amount, err := amountString(p.Amount)
	if err != nil {
		return reconcile.ExtractedRecord{}, err
	}

	record := reconcile.ExtractedRecord{
		Amount:            amount,
		Date:              strings.TrimSpace(p.Date),
		Time:              strings.TrimSpace(p.Time),
		RestaurantName:    strings.TrimSpace(p.RestaurantName),
		RestaurantAddress: strings.TrimSpace(p.RestaurantAddress),
		RestaurantPhone:   strings.TrimSpace(p.RestaurantPhone),
		RestaurantWebsite: strings.TrimSpace(p.RestaurantWebsite),
	}

	if r := p.Reconciliation; r != nil {
		signal := &reconcile.UpstreamSignal{
			Matches:              make(map[reconcile.Field]bool, len(r.Matches)),
			RestaurantSimilarity: r.Suggestions.RestaurantSimilarity,
		}
		for name, matched := range r.Matches {
			field, ok := fieldByName(name)
			if !ok {
				continue // unknown field names are the service's business, not ours
			}
			signal.Matches[field] = matched
		}
		record.Upstream = signal
	}

	return record, nil
}

// amountString accepts the amount as either a JSON string or number.
func amountString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("extraction amount is neither string nor number: %s", raw)
}

func fieldByName(name string) (reconcile.Field, bool) {
	for _, field := range reconcile.Fields {
		if string(field) == name {
			return field, true
		}
	}
	return "", false
}
