// Package rest provides the HTTP handlers for the back-office API.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/andrerobles/backoffice/internal/service"
	"github.com/andrerobles/backoffice/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	categories service.CategoryService
	products   service.ProductService
	orders     service.OrderService
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewHandler creates a new Handler with the provided services.
func NewHandler(categories service.CategoryService, products service.ProductService, orders service.OrderService, logger *slog.Logger) *Handler {
	return &Handler{
		categories: categories,
		products:   products,
		orders:     orders,
		validate:   validator.New(),
		logger:     logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the CRUD routes for the three resources.
func (h *Handler) RegisterRoutes(r *chi.Mux, apiKey string) {
	r.Group(func(r chi.Router) {
		r.Use(web.BearerAuth(apiKey))
		r.Route("/api/v1", func(r chi.Router) {
			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.ListCategories)
				r.Post("/", h.CreateCategory)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.FindCategoryByID)
					r.Patch("/", h.UpdateCategory)
					r.Delete("/", h.DeleteCategory)
				})
			})
			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.ListProducts)
				r.Post("/", h.CreateProduct)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.FindProductByID)
					r.Patch("/", h.UpdateProduct)
					r.Delete("/", h.DeleteProduct)
				})
			})
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.ListOrders)
				r.Post("/", h.CreateOrder)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.FindOrderByID)
					r.Patch("/", h.UpdateOrder)
					r.Delete("/", h.DeleteOrder)
				})
			})
		})
	})
	r.Get("/healthz", h.HealthCheck)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}

// decodeValid decodes the request body into T and validates it. On failure
// it writes the error response and returns false.
func decodeValid[T any](h *Handler, w http.ResponseWriter, r *http.Request, mLogger *slog.Logger) (T, bool) {
	var dto T
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return dto, false
	}
	if err := h.validate.Struct(dto); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return dto, false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return dto, false
	}
	return dto, true
}
