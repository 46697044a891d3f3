package service

import (
	"context"
	"log/slog"
	"time"

	berrors "github.com/andrerobles/backoffice/internal/errors"
	"github.com/andrerobles/backoffice/internal/store"
	"github.com/andrerobles/backoffice/pkg/messaging"
	"github.com/andrerobles/backoffice/pkg/messaging/events"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// OrderDto is the wire representation of an order with its product
// references expanded to full documents.
type OrderDto struct {
	ID         string       `json:"_id"`
	Date       time.Time    `json:"date"`
	ProductIds []ProductDto `json:"productIds"`
	Total      float64      `json:"total"`
}

// OrderCreateDto carries the fields of an order to be created. Date defaults
// to the creation time. When ProductIds are supplied the total is recomputed
// from the referenced products' prices and the client value is ignored.
type OrderCreateDto struct {
	Date       *time.Time `json:"date"`
	ProductIds []string   `json:"productIds" validate:"omitempty,dive,uuid"`
	Total      float64    `json:"total" validate:"gte=0"`
}

// OrderUpdateDto carries a partial update: only non-nil fields are applied.
type OrderUpdateDto struct {
	Date       *time.Time `json:"date"`
	ProductIds *[]string  `json:"productIds" validate:"omitempty,dive,uuid"`
	Total      *float64   `json:"total" validate:"omitempty,gte=0"`
}

// OrderService defines the methods for managing orders.
type OrderService interface {
	// FindAll returns orders most-recent-first.
	FindAll(ctx context.Context) ([]OrderDto, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OrderDto, error)

	// Create records an order and publishes an order-created event.
	Create(ctx context.Context, dto OrderCreateDto) (*OrderDto, error)

	Update(ctx context.Context, id uuid.UUID, dto OrderUpdateDto) (*OrderDto, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderServiceImpl implements OrderService.
type OrderServiceImpl struct {
	orderStore    store.OrderStore
	products      *ProductServiceImpl
	publisher     messaging.Publisher
	ordersCreated prometheus.Counter
	logger        *slog.Logger
}

func NewOrderService(orderStore store.OrderStore, products *ProductServiceImpl, publisher messaging.Publisher, ordersCreated prometheus.Counter, logger *slog.Logger) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderStore:    orderStore,
		products:      products,
		publisher:     publisher,
		ordersCreated: ordersCreated,
		logger:        logger.With("component", "order_service"),
	}
}

func (s *OrderServiceImpl) FindAll(ctx context.Context) ([]OrderDto, error) {
	orders, err := s.orderStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]OrderDto, len(orders))
	for i, o := range orders {
		dto, err := s.expandOrder(ctx, &o)
		if err != nil {
			return nil, err
		}
		dtos[i] = *dto
	}
	return dtos, nil
}

func (s *OrderServiceImpl) FindByID(ctx context.Context, id uuid.UUID) (*OrderDto, error) {
	order, err := s.orderStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expandOrder(ctx, order)
}

func (s *OrderServiceImpl) Create(ctx context.Context, dto OrderCreateDto) (*OrderDto, error) {
	productIDs, err := parseUUIDs(dto.ProductIds)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if dto.Date != nil {
		date = *dto.Date
	}

	total := dto.Total
	if len(productIDs) > 0 {
		// The referenced products' prices are authoritative for the total.
		products, err := s.products.productStore.FindByIDs(ctx, productIDs)
		if err != nil {
			return nil, err
		}
		prices := make(map[uuid.UUID]float64, len(products))
		for _, p := range products {
			prices[p.ID] = p.Price
		}
		total = 0
		for _, id := range productIDs {
			total += prices[id]
		}
	}

	created, err := s.orderStore.Create(ctx, &store.Order{
		Date:       date,
		ProductIDs: productIDs,
		Total:      total,
	})
	if err != nil {
		return nil, err
	}

	event := events.OrderCreatedEvent{
		OrderID: created.ID,
		Total:   created.Total,
		Date:    created.Date,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Notification delivery is best-effort; the order is already recorded.
		s.logger.ErrorContext(ctx, "Failed to publish order created event", "order_id", created.ID, "error", err)
	}
	s.ordersCreated.Inc()

	return s.expandOrder(ctx, created)
}

func (s *OrderServiceImpl) Update(ctx context.Context, id uuid.UUID, dto OrderUpdateDto) (*OrderDto, error) {
	current, err := s.orderStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dto.Date != nil {
		current.Date = *dto.Date
	}
	if dto.ProductIds != nil {
		productIDs, err := parseUUIDs(*dto.ProductIds)
		if err != nil {
			return nil, err
		}
		current.ProductIDs = productIDs
	}
	if dto.Total != nil {
		current.Total = *dto.Total
	}
	updated, err := s.orderStore.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	return s.expandOrder(ctx, updated)
}

func (s *OrderServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.orderStore.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return berrors.ErrOrderNotFound
	}
	return nil
}

// expandOrder resolves product references (and their categories) to full
// documents. Dangling references are dropped, not errors.
func (s *OrderServiceImpl) expandOrder(ctx context.Context, order *store.Order) (*OrderDto, error) {
	expanded := make([]ProductDto, 0, len(order.ProductIDs))
	if len(order.ProductIDs) > 0 {
		products, err := s.products.productStore.FindByIDs(ctx, order.ProductIDs)
		if err != nil {
			return nil, err
		}
		dtos, err := s.products.expandProducts(ctx, products)
		if err != nil {
			return nil, err
		}
		byID := make(map[string]ProductDto, len(dtos))
		for _, dto := range dtos {
			byID[dto.ID] = dto
		}
		for _, id := range order.ProductIDs {
			if dto, ok := byID[id.String()]; ok {
				expanded = append(expanded, dto)
			}
		}
	}
	return &OrderDto{
		ID:         order.ID.String(),
		Date:       order.Date,
		ProductIds: expanded,
		Total:      order.Total,
	}, nil
}
