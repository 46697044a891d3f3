// Package report computes aggregate sales figures from the orders API.
package report

import (
	"context"
	"log/slog"
	"time"
)

// OrderReport is the aggregate produced from a single pass over all orders.
type OrderReport struct {
	TotalSales        float64   `json:"totalSales"`
	OrderCount        int       `json:"orderCount"`
	AverageOrderValue float64   `json:"averageOrderValue"`
	GeneratedAt       time.Time `json:"generatedAt"`
}

// Envelope is the result of a report run, shaped like an HTTP response so the
// job can be fronted by any trigger.
type Envelope struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       Body              `json:"body"`
}

// Body carries the outcome message and, on success, the report itself.
type Body struct {
	Message string       `json:"message"`
	Data    *OrderReport `json:"data,omitempty"`
}

// OrdersClient fetches the orders the report is computed over.
type OrdersClient interface {
	FetchOrders(ctx context.Context) ([]Order, error)
}

// Order is the slice of an order the report cares about.
type Order struct {
	ID    string    `json:"_id"`
	Date  time.Time `json:"date"`
	Total float64   `json:"total"`
}

// Generator produces sales reports on demand.
type Generator struct {
	client OrdersClient
	logger *slog.Logger
	now    func() time.Time
}

func NewGenerator(client OrdersClient, logger *slog.Logger) *Generator {
	return &Generator{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// Run fetches all orders, aggregates them, and returns the result wrapped in
// an envelope. A fetch failure yields a 500 envelope with a generic message;
// the underlying error is logged, never surfaced to the caller.
func (g *Generator) Run(ctx context.Context) Envelope {
	orders, err := g.client.FetchOrders(ctx)
	if err != nil {
		g.logger.Error("failed to fetch orders for report", slog.Any("error", err))
		return Envelope{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       Body{Message: "Error processing report"},
		}
	}

	rep := Aggregate(orders, g.now())
	g.logger.Info("report generated",
		slog.Float64("total_sales", rep.TotalSales),
		slog.Int("order_count", rep.OrderCount),
		slog.Float64("average_order_value", rep.AverageOrderValue),
	)
	return Envelope{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       Body{Message: "Report processed successfully", Data: &rep},
	}
}

// Aggregate sums totals over the given orders. The average is zero when there
// are no orders.
func Aggregate(orders []Order, generatedAt time.Time) OrderReport {
	rep := OrderReport{GeneratedAt: generatedAt}
	for _, o := range orders {
		rep.TotalSales += o.Total
	}
	rep.OrderCount = len(orders)
	if rep.OrderCount > 0 {
		rep.AverageOrderValue = rep.TotalSales / float64(rep.OrderCount)
	}
	return rep
}
