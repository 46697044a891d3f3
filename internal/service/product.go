package service

import (
	"context"

	berrors "github.com/andrerobles/backoffice/internal/errors"
	"github.com/andrerobles/backoffice/internal/store"
	"github.com/google/uuid"
)

// ProductDto is the wire representation of a product with its category
// references expanded to full documents.
type ProductDto struct {
	ID          string        `json:"_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	CategoryIds []CategoryDto `json:"categoryIds"`
	ImageUrl    string        `json:"imageUrl"`
}

// ProductCreateDto carries the fields of a product to be created.
// CategoryIds are bare identifiers; they are not checked for existence.
type ProductCreateDto struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	CategoryIds []string `json:"categoryIds" validate:"omitempty,dive,uuid"`
	ImageUrl    string   `json:"imageUrl"`
}

// ProductUpdateDto carries a partial update: only non-nil fields are applied.
type ProductUpdateDto struct {
	Name        *string   `json:"name" validate:"omitempty,min=1"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	CategoryIds *[]string `json:"categoryIds" validate:"omitempty,dive,uuid"`
	ImageUrl    *string   `json:"imageUrl"`
}

// ProductService defines the methods for managing products.
type ProductService interface {
	FindAll(ctx context.Context) ([]ProductDto, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error)
	Create(ctx context.Context, dto ProductCreateDto) (*ProductDto, error)
	Update(ctx context.Context, id uuid.UUID, dto ProductUpdateDto) (*ProductDto, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductServiceImpl implements ProductService.
type ProductServiceImpl struct {
	productStore  store.ProductStore
	categoryStore store.CategoryStore
}

func NewProductService(productStore store.ProductStore, categoryStore store.CategoryStore) *ProductServiceImpl {
	return &ProductServiceImpl{productStore: productStore, categoryStore: categoryStore}
}

func (s *ProductServiceImpl) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.productStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.expandProducts(ctx, products)
}

func (s *ProductServiceImpl) FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error) {
	product, err := s.productStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dtos, err := s.expandProducts(ctx, []store.Product{*product})
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

func (s *ProductServiceImpl) Create(ctx context.Context, dto ProductCreateDto) (*ProductDto, error) {
	categoryIDs, err := parseUUIDs(dto.CategoryIds)
	if err != nil {
		return nil, err
	}
	created, err := s.productStore.Create(ctx, &store.Product{
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
		CategoryIDs: categoryIDs,
		ImageURL:    dto.ImageUrl,
	})
	if err != nil {
		return nil, err
	}
	dtos, err := s.expandProducts(ctx, []store.Product{*created})
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

func (s *ProductServiceImpl) Update(ctx context.Context, id uuid.UUID, dto ProductUpdateDto) (*ProductDto, error) {
	current, err := s.productStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dto.Name != nil {
		current.Name = *dto.Name
	}
	if dto.Description != nil {
		current.Description = *dto.Description
	}
	if dto.Price != nil {
		current.Price = *dto.Price
	}
	if dto.CategoryIds != nil {
		categoryIDs, err := parseUUIDs(*dto.CategoryIds)
		if err != nil {
			return nil, err
		}
		current.CategoryIDs = categoryIDs
	}
	if dto.ImageUrl != nil {
		current.ImageURL = *dto.ImageUrl
	}
	updated, err := s.productStore.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	dtos, err := s.expandProducts(ctx, []store.Product{*updated})
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.productStore.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return berrors.ErrProductNotFound
	}
	return nil
}

// expandProducts resolves category references for a batch of products with
// a single store round-trip. Dangling references are dropped, not errors.
func (s *ProductServiceImpl) expandProducts(ctx context.Context, products []store.Product) ([]ProductDto, error) {
	ids := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for _, p := range products {
		for _, id := range p.CategoryIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	byID := make(map[uuid.UUID]store.Category, len(ids))
	if len(ids) > 0 {
		categories, err := s.categoryStore.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			byID[c.ID] = c
		}
	}

	dtos := make([]ProductDto, len(products))
	for i, p := range products {
		expanded := make([]CategoryDto, 0, len(p.CategoryIDs))
		for _, id := range p.CategoryIDs {
			if c, ok := byID[id]; ok {
				expanded = append(expanded, toCategoryDto(&c))
			}
		}
		dtos[i] = ProductDto{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			CategoryIds: expanded,
			ImageUrl:    p.ImageURL,
		}
	}
	return dtos, nil
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
