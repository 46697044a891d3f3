// Package service implements the business logic for the back-office resources.
package service

import (
	"context"

	berrors "github.com/andrerobles/backoffice/internal/errors"
	"github.com/andrerobles/backoffice/internal/store"
	"github.com/google/uuid"
)

// CategoryDto is the wire representation of a category. The identifier is
// marshalled as _id, matching the store-assigned identifier convention the
// admin client translates at its boundary.
type CategoryDto struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// CategoryCreateDto carries the fields of a category to be created.
type CategoryCreateDto struct {
	Name string `json:"name" validate:"required"`
}

// CategoryUpdateDto carries a partial update: only non-nil fields are applied.
type CategoryUpdateDto struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

// CategoryService defines the methods for managing categories.
type CategoryService interface {
	FindAll(ctx context.Context) ([]CategoryDto, error)

	// FindByID returns ErrCategoryNotFound if no category exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*CategoryDto, error)

	Create(ctx context.Context, dto CategoryCreateDto) (*CategoryDto, error)

	// Update merges only the supplied fields into the stored category.
	// Returns ErrCategoryNotFound if no category exists with the given ID.
	Update(ctx context.Context, id uuid.UUID, dto CategoryUpdateDto) (*CategoryDto, error)

	// Delete returns ErrCategoryNotFound if no category existed to remove.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryServiceImpl implements CategoryService.
type CategoryServiceImpl struct {
	categoryStore store.CategoryStore
}

func NewCategoryService(categoryStore store.CategoryStore) *CategoryServiceImpl {
	return &CategoryServiceImpl{categoryStore: categoryStore}
}

func (s *CategoryServiceImpl) FindAll(ctx context.Context) ([]CategoryDto, error) {
	categories, err := s.categoryStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]CategoryDto, len(categories))
	for i, c := range categories {
		dtos[i] = toCategoryDto(&c)
	}
	return dtos, nil
}

func (s *CategoryServiceImpl) FindByID(ctx context.Context, id uuid.UUID) (*CategoryDto, error) {
	category, err := s.categoryStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toCategoryDto(category)
	return &dto, nil
}

func (s *CategoryServiceImpl) Create(ctx context.Context, dto CategoryCreateDto) (*CategoryDto, error) {
	created, err := s.categoryStore.Create(ctx, dto.Name)
	if err != nil {
		return nil, err
	}
	out := toCategoryDto(created)
	return &out, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, id uuid.UUID, dto CategoryUpdateDto) (*CategoryDto, error) {
	current, err := s.categoryStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dto.Name != nil {
		current.Name = *dto.Name
	}
	updated, err := s.categoryStore.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	out := toCategoryDto(updated)
	return &out, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.categoryStore.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return berrors.ErrCategoryNotFound
	}
	return nil
}

func toCategoryDto(c *store.Category) CategoryDto {
	return CategoryDto{ID: c.ID.String(), Name: c.Name}
}
