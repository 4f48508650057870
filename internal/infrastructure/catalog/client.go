package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"smartshop-backend/internal/domains/catalog/model"
)

// Client fetches the product list from the upstream catalog API.
// The fetch happens once at startup; the result is immutable for the
// session.
type Client struct {
	httpClient *http.Client
	url        string
}

func NewClient(url string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		url:        url,
	}
}

// FetchProducts retrieves the full product list. Callers treat any
// error as "empty catalog" and keep the rest of the system running.
func (c *Client) FetchProducts(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var products []model.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return products, nil
}
