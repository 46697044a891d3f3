// Package app contains the application setup for the back-office API server.
package app

import (
	"log/slog"
	"net/http"
	"net/http/pprof"

	"github.com/andrerobles/backoffice/internal/config"
	"github.com/andrerobles/backoffice/internal/service"
	"github.com/andrerobles/backoffice/internal/store"
	"github.com/andrerobles/backoffice/internal/transport/rest"
	"github.com/andrerobles/backoffice/pkg/messaging"
	"github.com/andrerobles/backoffice/pkg/server"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Dependencies struct {
	Categories service.CategoryService
	Products   service.ProductService
	Orders     service.OrderService
	Registry   *prometheus.Registry
	Logger     *slog.Logger
}

func SetupDependencies(dbPool *pgxpool.Pool, publisher messaging.Publisher, logger *slog.Logger) *Dependencies {
	categoryStore := store.NewPgCategoryStore(dbPool)
	productStore := store.NewPgProductStore(dbPool)
	orderStore := store.NewPgOrderStore(dbPool)

	registry := prometheus.NewRegistry()
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of created orders",
	})
	registry.MustRegister(ordersCreated)

	categories := service.NewCategoryService(categoryStore)
	products := service.NewProductService(productStore, categoryStore)
	orders := service.NewOrderService(orderStore, products, publisher, ordersCreated, logger)

	return &Dependencies{
		Categories: categories,
		Products:   products,
		Orders:     orders,
		Registry:   registry,
		Logger:     logger,
	}
}

// SetupHttpHandler initializes the router for the API server.
// Used by tests to exercise the full middleware and route stack.
func SetupHttpHandler(deps *Dependencies, apiKey string) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps, apiKey)
	return mux
}

// wireRoutes sets up the HTTP routes for the API server.
func wireRoutes(mux *chi.Mux, deps *Dependencies, apiKey string) {
	handler := rest.NewHandler(deps.Categories, deps.Products, deps.Orders, deps.Logger)
	handler.RegisterRoutes(mux, apiKey)
}

// SetupHttpServer creates and configures the API HTTP server.
func SetupHttpServer(deps *Dependencies, cfg *config.ServerConfig) *http.Server {
	mux := SetupHttpHandler(deps, cfg.Auth.ApiKey)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}
	return server.NewHTTPServer(httpCfg, mux)
}

// SetupOpsServer creates the side listener serving pprof and Prometheus metrics.
func SetupOpsServer(deps *Dependencies, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return &http.Server{Addr: addr, Handler: mux}
}
