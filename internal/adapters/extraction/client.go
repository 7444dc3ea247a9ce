package extraction

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/platewise/reconcile-backend/internal/domain/reconcile"
)

// Client fetches extraction results over HTTP with retries. The OCR run
// itself happens on the service side; we only consume its output.
type Client struct {
	baseURL string
	apiKey  string
	http    *retryablehttp.Client
}

// NewClient creates an extraction-service client. The retry policy is
// retryablehttp's default (exponential backoff, 4 retries).
func NewClient(baseURL, apiKey string) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	return &Client{baseURL: baseURL, apiKey: apiKey, http: rc}
}

// Fetch retrieves the extracted record for an uploaded receipt.
func (c *Client) Fetch(ctx context.Context, receiptID string) (reconcile.ExtractedRecord, error) {
	url := fmt.Sprintf("%s/receipts/%s/extraction", c.baseURL, receiptID)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return reconcile.ExtractedRecord{}, fmt.Errorf("build extraction request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return reconcile.ExtractedRecord{}, fmt.Errorf("fetch extraction for receipt %s: %w", receiptID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return reconcile.ExtractedRecord{}, fmt.Errorf("extraction service returned %d for receipt %s", resp.StatusCode, receiptID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return reconcile.ExtractedRecord{}, fmt.Errorf("read extraction response: %w", err)
	}
	return Parse(body)
}
