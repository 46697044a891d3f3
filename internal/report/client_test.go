package report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_HTTPOrdersClient_FetchOrders(t *testing.T) {
	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"a1","date":"2025-06-01T12:00:00Z","total":100.5},{"_id":"b2","date":"2025-06-02T12:00:00Z","total":50}]`))
	}))
	defer server.Close()
	client := NewHTTPOrdersClient(server.URL, "secret", time.Second)

	// when
	orders, err := client.FetchOrders(context.Background())

	// then
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "a1", orders[0].ID)
	assert.Equal(t, 100.5, orders[0].Total)
}

func Test_HTTPOrdersClient_FetchOrders_ServerError(t *testing.T) {
	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	client := NewHTTPOrdersClient(server.URL, "", time.Second)

	// when
	_, err := client.FetchOrders(context.Background())

	// then
	assert.ErrorContains(t, err, "status 500")
}
