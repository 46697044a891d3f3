package store

import (
	"context"
	"sort"
	"sync"
	"time"

	berrors "github.com/andrerobles/backoffice/internal/errors"
	"github.com/google/uuid"
)

// inMemoryCategories implements CategoryStore using an in-memory map.
type inMemoryCategories struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]Category
}

// NewInMemoryCategoryStore creates an in-memory CategoryStore.
func NewInMemoryCategoryStore() CategoryStore {
	return &inMemoryCategories{categories: make(map[uuid.UUID]Category)}
}

func (s *inMemoryCategories) FindByID(_ context.Context, id uuid.UUID) (*Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, berrors.ErrCategoryNotFound
	}
	return &c, nil
}

func (s *inMemoryCategories) FindByIDs(_ context.Context, ids []uuid.UUID) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.categories[id]; ok {
			list = append(list, c)
		}
	}
	return list, nil
}

func (s *inMemoryCategories) FindAll(_ context.Context) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		list = append(list, c)
	}
	sortByCreation(list, func(c Category) time.Time { return c.CreatedAt })
	return list, nil
}

func (s *inMemoryCategories) Create(_ context.Context, name string) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := Category{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	s.categories[c.ID] = c
	return &c, nil
}

func (s *inMemoryCategories) Update(_ context.Context, category *Category) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.categories[category.ID]
	if !ok {
		return nil, berrors.ErrCategoryNotFound
	}
	current.Name = category.Name
	s.categories[current.ID] = current
	return &current, nil
}

func (s *inMemoryCategories) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return false, nil
	}
	delete(s.categories, id)
	return true, nil
}

// inMemoryProducts implements ProductStore using an in-memory map.
type inMemoryProducts struct {
	mu       sync.RWMutex
	products map[uuid.UUID]Product
}

// NewInMemoryProductStore creates an in-memory ProductStore.
func NewInMemoryProductStore() ProductStore {
	return &inMemoryProducts{products: make(map[uuid.UUID]Product)}
}

func (s *inMemoryProducts) FindByID(_ context.Context, id uuid.UUID) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, berrors.ErrProductNotFound
	}
	return &p, nil
}

func (s *inMemoryProducts) FindByIDs(_ context.Context, ids []uuid.UUID) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			list = append(list, p)
		}
	}
	return list, nil
}

func (s *inMemoryProducts) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	sortByCreation(list, func(p Product) time.Time { return p.CreatedAt })
	return list, nil
}

func (s *inMemoryProducts) Create(_ context.Context, product *Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := *product
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	s.products[p.ID] = p
	return &p, nil
}

func (s *inMemoryProducts) Update(_ context.Context, product *Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.products[product.ID]
	if !ok {
		return nil, berrors.ErrProductNotFound
	}
	updated := *product
	updated.CreatedAt = current.CreatedAt
	s.products[updated.ID] = updated
	return &updated, nil
}

func (s *inMemoryProducts) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

// inMemoryOrders implements OrderStore using an in-memory map.
type inMemoryOrders struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]Order
}

// NewInMemoryOrderStore creates an in-memory OrderStore.
func NewInMemoryOrderStore() OrderStore {
	return &inMemoryOrders{orders: make(map[uuid.UUID]Order)}
}

func (s *inMemoryOrders) FindByID(_ context.Context, id uuid.UUID) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, berrors.ErrOrderNotFound
	}
	return &o, nil
}

func (s *inMemoryOrders) FindAll(_ context.Context) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		list = append(list, o)
	}
	// most-recent-first
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func (s *inMemoryOrders) Create(_ context.Context, order *Order) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := *order
	o.ID = uuid.New()
	o.CreatedAt = time.Now()
	if o.Date.IsZero() {
		o.Date = o.CreatedAt
	}
	s.orders[o.ID] = o
	return &o, nil
}

func (s *inMemoryOrders) Update(_ context.Context, order *Order) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.orders[order.ID]
	if !ok {
		return nil, berrors.ErrOrderNotFound
	}
	updated := *order
	updated.CreatedAt = current.CreatedAt
	s.orders[updated.ID] = updated
	return &updated, nil
}

func (s *inMemoryOrders) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return false, nil
	}
	delete(s.orders, id)
	return true, nil
}

func sortByCreation[T any](list []T, createdAt func(T) time.Time) {
	sort.SliceStable(list, func(i, j int) bool {
		return createdAt(list[i]).Before(createdAt(list[j]))
	})
}
