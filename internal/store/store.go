// Package store provides persistence for categories, products and orders.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Category is a stored product category.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Product is a stored product. CategoryIDs are weak references: the
// referenced categories may have been deleted since.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	CategoryIDs []uuid.UUID
	ImageURL    string
	CreatedAt   time.Time
}

// Order is a stored order. ProductIDs are weak references.
type Order struct {
	ID         uuid.UUID
	Date       time.Time
	ProductIDs []uuid.UUID
	Total      float64
	CreatedAt  time.Time
}

// CategoryStore is the storage boundary for categories.
type CategoryStore interface {
	// FindByID returns ErrCategoryNotFound if no category exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindByIDs returns the categories matching ids; missing ids are silently skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Category, error)

	// FindAll returns all categories in insertion order.
	FindAll(ctx context.Context) ([]Category, error)

	// Create persists a new category and returns it with its assigned ID.
	Create(ctx context.Context, name string) (*Category, error)

	// Update overwrites the stored row with the given state.
	// Returns ErrCategoryNotFound if no category exists with the given ID.
	Update(ctx context.Context, category *Category) (*Category, error)

	// DeleteByID removes a category. The returned bool reports whether a row existed.
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// ProductStore is the storage boundary for products.
type ProductStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, product *Product) (*Product, error)
	Update(ctx context.Context, product *Product) (*Product, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// OrderStore is the storage boundary for orders.
// FindAll returns orders most-recent-first.
type OrderStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	Create(ctx context.Context, order *Order) (*Order, error)
	Update(ctx context.Context, order *Order) (*Order, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}
