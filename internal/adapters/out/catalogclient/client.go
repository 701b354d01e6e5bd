// Package catalogclient implements the ProductCatalog contract against the
// catalog service's REST API.
package catalogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fulfillment/internal/core/ports"
)

// Client resolves product and bill-of-materials lookups over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// ProductExists reports whether the product code is known and sellable.
func (c *Client) ProductExists(ctx context.Context, productCode string) (bool, error) {
	resp, err := c.get(ctx, "/api/v1/products/"+url.PathEscape(productCode))
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("catalog service returned status %d", resp.StatusCode)
	}
}

// MaterialsFor resolves the materials consumed per order of the product.
func (c *Client) MaterialsFor(ctx context.Context, productCode string) ([]ports.MaterialRequirement, error) {
	resp, err := c.get(ctx, "/api/v1/products/"+url.PathEscape(productCode)+"/materials")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog service returned status %d", resp.StatusCode)
	}

	var body []struct {
		MaterialCode  string `json:"materialCode"`
		UnitsPerOrder int    `json:"unitsPerOrder"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding catalog response: %w", err)
	}

	requirements := make([]ports.MaterialRequirement, len(body))
	for i, item := range body {
		requirements[i] = ports.MaterialRequirement{
			MaterialCode:  item.MaterialCode,
			UnitsPerOrder: item.UnitsPerOrder,
		}
	}
	return requirements, nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}
