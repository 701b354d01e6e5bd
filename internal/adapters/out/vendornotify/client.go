// Package vendornotify implements the VendorNotifier contract against the
// notification dispatcher's webhook endpoint.
package vendornotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
)

// Client dispatches allocation-request notifications over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a notifier client for the given webhook endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// NotifyAllocationRequested informs the vendor that a new allocation
// request awaits its response.
func (c *Client) NotifyAllocationRequested(ctx context.Context, a *allocation.Allocation) error {
	payload, err := json.Marshal(map[string]any{
		"allocationId":      a.ID().String(),
		"date":              a.Date().Format(time.DateOnly),
		"productCode":       a.ProductCode(),
		"vendorId":          a.VendorID().String(),
		"requestedQuantity": a.RequestedQuantity(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification dispatcher returned status %d", resp.StatusCode)
	}
	return nil
}
