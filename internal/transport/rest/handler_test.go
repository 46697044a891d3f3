package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	berrors "github.com/andrerobles/backoffice/internal/errors"
	"github.com/andrerobles/backoffice/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// mockCategoryService is a mock implementation of the CategoryService interface
type mockCategoryService struct {
	category   *service.CategoryDto
	categories []service.CategoryDto
	error      error
}

func (m *mockCategoryService) FindAll(_ context.Context) ([]service.CategoryDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.categories, nil
}

func (m *mockCategoryService) FindByID(_ context.Context, _ uuid.UUID) (*service.CategoryDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.category, nil
}

func (m *mockCategoryService) Create(_ context.Context, _ service.CategoryCreateDto) (*service.CategoryDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.category, nil
}

func (m *mockCategoryService) Update(_ context.Context, _ uuid.UUID, _ service.CategoryUpdateDto) (*service.CategoryDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.category, nil
}

func (m *mockCategoryService) Delete(_ context.Context, _ uuid.UUID) error {
	return m.error
}

// mockProductService is a mock implementation of the ProductService interface
type mockProductService struct {
	product  *service.ProductDto
	products []service.ProductDto
	error    error
}

func (m *mockProductService) FindAll(_ context.Context) ([]service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

func (m *mockProductService) FindByID(_ context.Context, _ uuid.UUID) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) Create(_ context.Context, _ service.ProductCreateDto) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) Update(_ context.Context, _ uuid.UUID, _ service.ProductUpdateDto) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) Delete(_ context.Context, _ uuid.UUID) error {
	return m.error
}

// mockOrderService is a mock implementation of the OrderService interface
type mockOrderService struct {
	order  *service.OrderDto
	orders []service.OrderDto
	error  error
}

func (m *mockOrderService) FindAll(_ context.Context) ([]service.OrderDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.orders, nil
}

func (m *mockOrderService) FindByID(_ context.Context, _ uuid.UUID) (*service.OrderDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.order, nil
}

func (m *mockOrderService) Create(_ context.Context, _ service.OrderCreateDto) (*service.OrderDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.order, nil
}

func (m *mockOrderService) Update(_ context.Context, _ uuid.UUID, _ service.OrderUpdateDto) (*service.OrderDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.order, nil
}

func (m *mockOrderService) Delete(_ context.Context, _ uuid.UUID) error {
	return m.error
}

func newTestRouter(categories service.CategoryService, products service.ProductService, orders service.OrderService, apiKey string) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if categories == nil {
		categories = &mockCategoryService{}
	}
	if products == nil {
		products = &mockProductService{}
	}
	if orders == nil {
		orders = &mockOrderService{}
	}
	mux := chi.NewRouter()
	NewHandler(categories, products, orders, logger).RegisterRoutes(mux, apiKey)
	return mux
}

func Test_CategoryAPI_FindByID(t *testing.T) {
	mockID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	testCases := []struct {
		name         string
		mockService  *mockCategoryService
		categoryID   string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - category found",
			mockService: &mockCategoryService{
				category: &service.CategoryDto{ID: mockID.String(), Name: "Books"},
			},
			categoryID:   mockID.String(),
			expectedCode: http.StatusOK,
			expectedBody: `{"_id":"` + mockID.String() + `","name":"Books"}`,
		},
		{
			name:         "Error - category not found",
			mockService:  &mockCategoryService{error: berrors.ErrCategoryNotFound},
			categoryID:   mockID.String(),
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Category with ID ` + mockID.String() + ` not found"}`,
		},
		{
			name:         "Error - invalid id",
			mockService:  &mockCategoryService{},
			categoryID:   "abc",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid ID: abc"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(tc.mockService, nil, nil, "")
			req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/"+tc.categoryID, nil)
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_CategoryAPI_Create(t *testing.T) {
	mockID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	testCases := []struct {
		name         string
		body         string
		mockService  *mockCategoryService
		expectedCode int
	}{
		{
			name: "Success - category created",
			body: `{"name":"Books"}`,
			mockService: &mockCategoryService{
				category: &service.CategoryDto{ID: mockID.String(), Name: "Books"},
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Error - missing name",
			body:         `{}`,
			mockService:  &mockCategoryService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Error - malformed body",
			body:         `{`,
			mockService:  &mockCategoryService{},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(tc.mockService, nil, nil, "")
			req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}

func Test_ProductAPI_List(t *testing.T) {
	// given
	mockID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	products := &mockProductService{
		products: []service.ProductDto{{
			ID:          mockID.String(),
			Name:        "Chess Set",
			Price:       49.90,
			CategoryIds: []service.CategoryDto{},
		}},
	}
	router := newTestRouter(nil, products, nil, "")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rr := httptest.NewRecorder()

	// when
	router.ServeHTTP(rr, req)

	// then
	assert.Equal(t, http.StatusOK, rr.Code)
	expected := `[{"_id":"` + mockID.String() + `","name":"Chess Set","description":"","price":49.9,"categoryIds":[],"imageUrl":""}]`
	assert.JSONEq(t, expected, rr.Body.String())
}

func Test_OrderAPI_Delete(t *testing.T) {
	mockID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	testCases := []struct {
		name         string
		mockService  *mockOrderService
		expectedCode int
	}{
		{
			name:         "Success - order deleted",
			mockService:  &mockOrderService{},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Error - order not found",
			mockService:  &mockOrderService{error: berrors.ErrOrderNotFound},
			expectedCode: http.StatusNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(nil, nil, tc.mockService, "")
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/orders/"+mockID.String(), nil)
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}

func Test_API_BearerAuth(t *testing.T) {
	testCases := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "valid token", header: "Bearer secret", expectedCode: http.StatusOK},
		{name: "wrong token", header: "Bearer wrong", expectedCode: http.StatusUnauthorized},
		{name: "missing header", header: "", expectedCode: http.StatusUnauthorized},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(nil, nil, nil, "secret")
			req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			// when
			router.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}

func Test_HealthCheck_BypassesAuth(t *testing.T) {
	// given
	router := newTestRouter(nil, nil, nil, "secret")
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()

	// when
	router.ServeHTTP(rr, req)

	// then
	assert.Equal(t, http.StatusOK, rr.Code)
}
