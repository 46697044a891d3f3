// Package seed fills the stores with demo data for local development.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/andrerobles/backoffice/internal/store"
	"github.com/google/uuid"
)

const (
	productCount = 50
	orderCount   = 200
)

var categoryNames = []string{
	"Electronics", "Clothing", "Food", "Books", "Games",
	"Furniture", "Sports", "Beauty", "Health", "Tools",
}

var productAdjectives = []string{
	"Compact", "Deluxe", "Classic", "Portable", "Wireless",
	"Handmade", "Premium", "Everyday", "Rugged", "Sleek",
}

var productNouns = []string{
	"Speaker", "Jacket", "Mug", "Notebook", "Controller",
	"Desk Lamp", "Backpack", "Blender", "Keyboard", "Water Bottle",
}

// Seeder wipes the stores and repopulates them with generated demo data.
type Seeder struct {
	categories store.CategoryStore
	products   store.ProductStore
	orders     store.OrderStore
	logger     *slog.Logger
	rand       *rand.Rand
	now        func() time.Time
}

func NewSeeder(categories store.CategoryStore, products store.ProductStore, orders store.OrderStore, logger *slog.Logger) *Seeder {
	return &Seeder{
		categories: categories,
		products:   products,
		orders:     orders,
		logger:     logger,
		rand:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:        time.Now,
	}
}

// Run replaces everything in the stores with a fresh data set: the fixed
// category list, generated products referencing 1 to 3 categories each, and
// generated orders referencing 1 to 5 products each. Order totals are the sum
// of the referenced product prices and order dates fall within the last 30
// days.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.wipe(ctx); err != nil {
		return fmt.Errorf("failed to wipe existing data: %w", err)
	}

	categories, err := s.seedCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	products, err := s.seedProducts(ctx, categories)
	if err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	if err := s.seedOrders(ctx, products); err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}

	s.logger.Info("seeding complete",
		slog.Int("categories", len(categories)),
		slog.Int("products", len(products)),
		slog.Int("orders", orderCount))
	return nil
}

// wipe deletes orders first, then products, then categories, so the weak
// references never point at rows that outlived their referrers.
func (s *Seeder) wipe(ctx context.Context) error {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		if _, err := s.orders.DeleteByID(ctx, o.ID); err != nil {
			return err
		}
	}
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		if _, err := s.products.DeleteByID(ctx, p.ID); err != nil {
			return err
		}
	}
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if _, err := s.categories.DeleteByID(ctx, c.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context) ([]store.Category, error) {
	created := make([]store.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		category, err := s.categories.Create(ctx, name)
		if err != nil {
			return nil, err
		}
		created = append(created, *category)
	}
	return created, nil
}

func (s *Seeder) seedProducts(ctx context.Context, categories []store.Category) ([]store.Product, error) {
	created := make([]store.Product, 0, productCount)
	for i := 0; i < productCount; i++ {
		name := fmt.Sprintf("%s %s",
			productAdjectives[s.rand.IntN(len(productAdjectives))],
			productNouns[s.rand.IntN(len(productNouns))])
		product := &store.Product{
			Name:        name,
			Description: fmt.Sprintf("Demo product: %s", name),
			Price:       s.randomPrice(),
			CategoryIDs: pickIDs(s.rand, categories, 1, 3, func(c store.Category) uuid.UUID { return c.ID }),
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%d/400/300", i),
		}
		saved, err := s.products.Create(ctx, product)
		if err != nil {
			return nil, err
		}
		created = append(created, *saved)
	}
	return created, nil
}

func (s *Seeder) seedOrders(ctx context.Context, products []store.Product) error {
	for i := 0; i < orderCount; i++ {
		ids := pickIDs(s.rand, products, 1, 5, func(p store.Product) uuid.UUID { return p.ID })
		total := 0.0
		for _, id := range ids {
			for _, p := range products {
				if p.ID == id {
					total += p.Price
					break
				}
			}
		}
		order := &store.Order{
			Date:       s.randomRecentDate(),
			ProductIDs: ids,
			Total:      total,
		}
		if _, err := s.orders.Create(ctx, order); err != nil {
			return err
		}
	}
	return nil
}

// randomPrice returns a price between 10 and 1000, rounded to cents.
func (s *Seeder) randomPrice() float64 {
	cents := 1000 + s.rand.Int64N(99001)
	return float64(cents) / 100
}

// randomRecentDate returns a time within the last 30 days.
func (s *Seeder) randomRecentDate() time.Time {
	offset := time.Duration(s.rand.Int64N(int64(30 * 24 * time.Hour)))
	return s.now().Add(-offset)
}

// pickIDs draws between min and max distinct elements from items.
func pickIDs[T any](r *rand.Rand, items []T, min, max int, id func(T) uuid.UUID) []uuid.UUID {
	count := min + r.IntN(max-min+1)
	if count > len(items) {
		count = len(items)
	}
	perm := r.Perm(len(items))
	ids := make([]uuid.UUID, 0, count)
	for _, idx := range perm[:count] {
		ids = append(ids, id(items[idx]))
	}
	return ids
}
