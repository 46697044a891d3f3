package service

import (
	"context"
	"testing"

	berrors "github.com/andrerobles/backoffice/internal/errors"
	"github.com/andrerobles/backoffice/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture(t *testing.T) (*ProductServiceImpl, *CategoryServiceImpl) {
	t.Helper()
	categoryStore := store.NewInMemoryCategoryStore()
	return NewProductService(store.NewInMemoryProductStore(), categoryStore), NewCategoryService(categoryStore)
}

func Test_ProductService_Create_ExpandsCategories(t *testing.T) {
	// given
	products, categories := newProductFixture(t)
	books, err := categories.Create(context.Background(), CategoryCreateDto{Name: "Books"})
	require.NoError(t, err)
	games, err := categories.Create(context.Background(), CategoryCreateDto{Name: "Games"})
	require.NoError(t, err)

	// when
	created, err := products.Create(context.Background(), ProductCreateDto{
		Name:        "Chess Set",
		Description: "Wooden pieces",
		Price:       49.90,
		CategoryIds: []string{books.ID, games.ID},
		ImageUrl:    "https://example.com/chess.jpg",
	})

	// then
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	require.Len(t, created.CategoryIds, 2)
	assert.Equal(t, "Books", created.CategoryIds[0].Name)
	assert.Equal(t, "Games", created.CategoryIds[1].Name)
}

func Test_ProductService_Create_InvalidCategoryID(t *testing.T) {
	// given
	products, _ := newProductFixture(t)

	// when
	_, err := products.Create(context.Background(), ProductCreateDto{
		Name:        "Chess Set",
		CategoryIds: []string{"not-a-uuid"},
	})

	// then
	assert.Error(t, err)
}

func Test_ProductService_DanglingCategoryDropped(t *testing.T) {
	// given
	products, categories := newProductFixture(t)
	books, err := categories.Create(context.Background(), CategoryCreateDto{Name: "Books"})
	require.NoError(t, err)
	created, err := products.Create(context.Background(), ProductCreateDto{
		Name:        "Atlas",
		CategoryIds: []string{books.ID},
	})
	require.NoError(t, err)

	// when the referenced category disappears
	require.NoError(t, categories.Delete(context.Background(), uuid.MustParse(books.ID)))
	found, err := products.FindByID(context.Background(), uuid.MustParse(created.ID))

	// then the dangling reference is silently dropped
	require.NoError(t, err)
	assert.Empty(t, found.CategoryIds)
}

func Test_ProductService_Update_Partial(t *testing.T) {
	// given
	products, _ := newProductFixture(t)
	created, err := products.Create(context.Background(), ProductCreateDto{
		Name:        "Atlas",
		Description: "World maps",
		Price:       30,
	})
	require.NoError(t, err)

	// when only the price is updated
	newPrice := 25.5
	updated, err := products.Update(context.Background(), uuid.MustParse(created.ID), ProductUpdateDto{Price: &newPrice})

	// then the other fields are untouched
	require.NoError(t, err)
	assert.Equal(t, 25.5, updated.Price)
	assert.Equal(t, "Atlas", updated.Name)
	assert.Equal(t, "World maps", updated.Description)
}

func Test_ProductService_Update_NoOpIsIdempotent(t *testing.T) {
	// given
	products, _ := newProductFixture(t)
	created, err := products.Create(context.Background(), ProductCreateDto{Name: "Atlas", Price: 30})
	require.NoError(t, err)

	// when
	updated, err := products.Update(context.Background(), uuid.MustParse(created.ID), ProductUpdateDto{})

	// then
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func Test_ProductService_Delete(t *testing.T) {
	// given
	products, _ := newProductFixture(t)
	created, err := products.Create(context.Background(), ProductCreateDto{Name: "Atlas"})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	// when
	require.NoError(t, products.Delete(context.Background(), id))

	// then
	_, err = products.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, berrors.ErrProductNotFound)
	assert.ErrorIs(t, products.Delete(context.Background(), id), berrors.ErrProductNotFound)
}
