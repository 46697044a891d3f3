package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BearerAuth(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	testCases := []struct {
		name         string
		apiKey       string
		header       string
		expectedCode int
	}{
		{name: "valid key", apiKey: "secret", header: "Bearer secret", expectedCode: http.StatusOK},
		{name: "invalid key", apiKey: "secret", header: "Bearer wrong", expectedCode: http.StatusUnauthorized},
		{name: "missing header", apiKey: "secret", header: "", expectedCode: http.StatusUnauthorized},
		{name: "auth disabled", apiKey: "", header: "", expectedCode: http.StatusOK},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			handler := BearerAuth(tc.apiKey)(okHandler)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			// when
			handler.ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}

func Test_Recoverer(t *testing.T) {
	// given a handler that panics
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := Recoverer(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	// when
	handler.ServeHTTP(rr, req)

	// then the panic is converted to a 500
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
