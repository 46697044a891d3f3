package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// restClient speaks the back-office JSON API.
type restClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func newRestClient(baseURL, apiKey string, timeout time.Duration) *restClient {
	return &restClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// do performs one API call. A non-nil out is decoded from the response body;
// non-2xx statuses are returned as errors.
func (c *restClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("API returned status %d for %s %s", resp.StatusCode, method, path)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// CategoryService provides categories over the REST API.
type CategoryService struct {
	c *restClient
}

func NewCategoryService(baseURL, apiKey string, timeout time.Duration) *CategoryService {
	return &CategoryService{c: newRestClient(baseURL, apiKey, timeout)}
}

func (s *CategoryService) FetchItems(ctx context.Context) ([]Category, error) {
	var resp []categoryResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/v1/categories", nil, &resp); err != nil {
		return nil, err
	}
	items := make([]Category, 0, len(resp))
	for _, r := range resp {
		items = append(items, r.toItem())
	}
	return items, nil
}

func (s *CategoryService) AddItem(ctx context.Context, item Category) (Category, error) {
	payload := map[string]any{"name": item.Name}
	var resp categoryResponse
	if err := s.c.do(ctx, http.MethodPost, "/api/v1/categories", payload, &resp); err != nil {
		return Category{}, err
	}
	return resp.toItem(), nil
}

func (s *CategoryService) UpdateItem(ctx context.Context, item Category) (Category, error) {
	payload := map[string]any{"name": item.Name}
	var resp categoryResponse
	if err := s.c.do(ctx, http.MethodPatch, "/api/v1/categories/"+item.ID, payload, &resp); err != nil {
		return Category{}, err
	}
	return resp.toItem(), nil
}

func (s *CategoryService) DeleteItem(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/v1/categories/"+id, nil, nil)
}

func (s *CategoryService) ItemID(item Category) string {
	return item.ID
}

// ProductService provides products over the REST API.
type ProductService struct {
	c *restClient
}

func NewProductService(baseURL, apiKey string, timeout time.Duration) *ProductService {
	return &ProductService{c: newRestClient(baseURL, apiKey, timeout)}
}

func (s *ProductService) FetchItems(ctx context.Context) ([]Product, error) {
	var resp []productResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/v1/products", nil, &resp); err != nil {
		return nil, err
	}
	items := make([]Product, 0, len(resp))
	for _, r := range resp {
		items = append(items, r.toItem())
	}
	return items, nil
}

func (s *ProductService) AddItem(ctx context.Context, item Product) (Product, error) {
	var resp productResponse
	if err := s.c.do(ctx, http.MethodPost, "/api/v1/products", productPayload(item), &resp); err != nil {
		return Product{}, err
	}
	return resp.toItem(), nil
}

func (s *ProductService) UpdateItem(ctx context.Context, item Product) (Product, error) {
	var resp productResponse
	if err := s.c.do(ctx, http.MethodPatch, "/api/v1/products/"+item.ID, productPayload(item), &resp); err != nil {
		return Product{}, err
	}
	return resp.toItem(), nil
}

func (s *ProductService) DeleteItem(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/v1/products/"+id, nil, nil)
}

func (s *ProductService) ItemID(item Product) string {
	return item.ID
}

func productPayload(item Product) map[string]any {
	return map[string]any{
		"name":        item.Name,
		"description": item.Description,
		"price":       item.Price,
		"categoryIds": item.CategoryIDs,
		"imageUrl":    item.ImageURL,
	}
}

// OrderService provides orders over the REST API.
type OrderService struct {
	c *restClient
}

func NewOrderService(baseURL, apiKey string, timeout time.Duration) *OrderService {
	return &OrderService{c: newRestClient(baseURL, apiKey, timeout)}
}

func (s *OrderService) FetchItems(ctx context.Context) ([]Order, error) {
	var resp []orderResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/v1/orders", nil, &resp); err != nil {
		return nil, err
	}
	items := make([]Order, 0, len(resp))
	for _, r := range resp {
		items = append(items, r.toItem())
	}
	return items, nil
}

func (s *OrderService) AddItem(ctx context.Context, item Order) (Order, error) {
	var resp orderResponse
	if err := s.c.do(ctx, http.MethodPost, "/api/v1/orders", orderPayload(item), &resp); err != nil {
		return Order{}, err
	}
	return resp.toItem(), nil
}

func (s *OrderService) UpdateItem(ctx context.Context, item Order) (Order, error) {
	var resp orderResponse
	if err := s.c.do(ctx, http.MethodPatch, "/api/v1/orders/"+item.ID, orderPayload(item), &resp); err != nil {
		return Order{}, err
	}
	return resp.toItem(), nil
}

func (s *OrderService) DeleteItem(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/api/v1/orders/"+id, nil, nil)
}

func (s *OrderService) ItemID(item Order) string {
	return item.ID
}

func orderPayload(item Order) map[string]any {
	payload := map[string]any{
		"productIds": item.ProductIDs,
		"total":      item.Total,
	}
	if item.Date != "" {
		payload["date"] = item.Date
	}
	return payload
}
