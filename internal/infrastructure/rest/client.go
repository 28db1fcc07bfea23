// Package rest implements the PostgREST-style client the front-ends use to
// reach the hosted data service.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/yourusername/grocery-order-bot/internal/domain/constants"
	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
	"github.com/yourusername/grocery-order-bot/internal/domain/repository"
)

// Client talks to the data service. It never retries: every failure is
// terminal for the single user action that triggered it.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL (no trailing slash).
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// StatusError is a non-success response from the data service. Body carries
// the raw response for diagnostics.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("data service returned status %d: %s", e.StatusCode, e.Body)
}

// Products fetches the catalog. The request URL is constructed fresh on
// every call so filter parameters can never leak between searches.
func (c *Client) Products(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	params := url.Values{}
	params.Set("select", "*")
	if filter.Name != "" {
		params.Set("name", "ilike.%"+filter.Name+"%")
	}
	if filter.Category != "" {
		params.Set("category", "ilike.%"+filter.Category+"%")
	}
	if filter.PriceMax > 0 {
		params.Set("price", fmt.Sprintf("lte.%d", filter.PriceMax))
	}

	endpoint := c.baseURL + "/products?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, readStatusError(resp)
	}

	var products []entity.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// Create submits an order and returns the created record. A 2xx response
// with an empty or unparsable body is treated as "id unknown": the input
// order comes back with OrderNo zero, not an error.
func (c *Client) Create(ctx context.Context, order entity.Order) (entity.Order, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return entity.Order{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return entity.Order{}, err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.Order{}, fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entity.Order{}, readStatusError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return order, nil
	}

	// PostgREST echoes an array; some deployments echo a single object.
	var created []entity.Order
	if err := json.Unmarshal(raw, &created); err == nil && len(created) > 0 {
		return created[0], nil
	}
	var single entity.Order
	if err := json.Unmarshal(raw, &single); err == nil {
		return single, nil
	}
	return order, nil
}

// ByOrderNo fetches one order by its number. A missing order is (nil, nil).
func (c *Client) ByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("order_no", "eq."+orderNo)

	endpoint := c.baseURL + "/orders?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, readStatusError(resp)
	}

	var orders []entity.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return &orders[0], nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func readStatusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, int64(constants.MaxDiagnosticLen)))
	return &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
}
