// Package places is the boundary to the restaurant-lookup service, which
// supplies the canonical address, phone and website for a restaurant ID.
// Lookups feed the second reconcile pass when the receipt itself carried
// no usable address; a failed lookup just leaves the field absent.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

// Restaurant is the lookup service's record. FullAddress may be empty
// with the address split across component fields instead.
type Restaurant struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	FullAddress  string `json:"full_address,omitempty"`
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Website      string `json:"website,omitempty"`
}

// Address returns one display line, assembling the component fields when
// the service omitted full_address.
func (r *Restaurant) Address() string {
	if strings.TrimSpace(r.FullAddress) != "" {
		return strings.TrimSpace(r.FullAddress)
	}
	parts := make([]string, 0, 5)
	for _, p := range []string{r.AddressLine1, r.AddressLine2, r.City, r.State, r.PostalCode} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Client looks up restaurants over HTTP with retries.
type Client struct {
	baseURL string
	apiKey  string
	http    *retryablehttp.Client
}

// NewClient creates a restaurant-lookup client.
func NewClient(baseURL, apiKey string) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	return &Client{baseURL: baseURL, apiKey: apiKey, http: rc}
}

// Lookup fetches the restaurant with the given ID.
func (c *Client) Lookup(ctx context.Context, restaurantID string) (*Restaurant, error) {
	url := fmt.Sprintf("%s/restaurants/%s", c.baseURL, restaurantID)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build lookup request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup restaurant %s: %w", restaurantID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("restaurant lookup returned %d for %s", resp.StatusCode, restaurantID)
	}

	var restaurant Restaurant
	if err := json.NewDecoder(resp.Body).Decode(&restaurant); err != nil {
		return nil, fmt.Errorf("decode restaurant %s: %w", restaurantID, err)
	}
	if restaurant.ID == "" {
		restaurant.ID = restaurantID
	}
	return &restaurant, nil
}
