package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_InMemoryProducts_UpdateKeepsCreatedAt(t *testing.T) {
	// given
	store := NewInMemoryProductStore()
	created, err := store.Create(context.Background(), &Product{Name: "Atlas"})
	require.NoError(t, err)

	// when
	created.Name = "World Atlas"
	updated, err := store.Update(context.Background(), created)

	// then
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "World Atlas", updated.Name)
}

func Test_InMemoryOrders_DateDefaultsToCreation(t *testing.T) {
	// given an order without a date
	store := NewInMemoryOrderStore()

	// when
	created, err := store.Create(context.Background(), &Order{Total: 10})

	// then
	require.NoError(t, err)
	assert.False(t, created.Date.IsZero())
	assert.Equal(t, created.CreatedAt, created.Date)
}

func Test_InMemoryOrders_ExplicitDateKept(t *testing.T) {
	// given
	store := NewInMemoryOrderStore()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// when
	created, err := store.Create(context.Background(), &Order{Date: date, Total: 10})

	// then
	require.NoError(t, err)
	assert.Equal(t, date, created.Date)
}

func Test_InMemoryCategories_DeleteByID(t *testing.T) {
	// given
	store := NewInMemoryCategoryStore()
	created, err := store.Create(context.Background(), "Books")
	require.NoError(t, err)

	// when
	deleted, err := store.DeleteByID(context.Background(), created.ID)

	// then
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.DeleteByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}
