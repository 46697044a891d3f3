package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ProductService_FetchItems_TranslatesWireFormat(t *testing.T) {
	// given a server speaking the _id wire convention
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"_id": "p1",
			"name": "Chess Set",
			"description": "Wooden pieces",
			"price": 49.9,
			"categoryIds": [{"_id": "c1", "name": "Games"}, {"_id": "c2", "name": "Gifts"}],
			"imageUrl": "https://example.com/chess.jpg"
		}]`))
	}))
	defer server.Close()
	service := NewProductService(server.URL, "", time.Second)

	// when
	items, err := service.FetchItems(context.Background())

	// then ids are flattened and category names joined for display
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "Games, Gifts", items[0].Categories)
	assert.Equal(t, []string{"c1", "c2"}, items[0].CategoryIDs)
}

func Test_CategoryService_AddItem(t *testing.T) {
	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/categories", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, map[string]any{"name": "Books"}, payload)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id": "c9", "name": "Books"}`))
	}))
	defer server.Close()
	service := NewCategoryService(server.URL, "secret", time.Second)

	// when
	created, err := service.AddItem(context.Background(), Category{Name: "Books"})

	// then
	require.NoError(t, err)
	assert.Equal(t, "c9", created.ID)
}

func Test_OrderService_DeleteItem(t *testing.T) {
	// given
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()
	service := NewOrderService(server.URL, "", time.Second)

	// when
	err := service.DeleteItem(context.Background(), "o1")

	// then
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/orders/o1", gotPath)
}

func Test_RestClient_NonSuccessStatus(t *testing.T) {
	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()
	service := NewCategoryService(server.URL, "", time.Second)

	// when
	_, err := service.FetchItems(context.Background())

	// then
	assert.ErrorContains(t, err, "status 401")
}
