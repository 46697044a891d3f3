// Package notifier relays order created events to the notification subject.
package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andrerobles/backoffice/pkg/config"
	"github.com/andrerobles/backoffice/pkg/messaging"
	"github.com/andrerobles/backoffice/pkg/messaging/events"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"golang.org/x/sync/errgroup"
)

// Msg is the slice of a JetStream message the relay needs.
type Msg interface {
	Data() []byte
	Ack() error
	Nak() error
}

// Result records the outcome of relaying a single message.
type Result struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// BatchSummary is an informational envelope describing one processed batch.
type BatchSummary struct {
	StatusCode int       `json:"statusCode"`
	Body       BatchBody `json:"body"`
}

// BatchBody carries the outcome message and the per-message results.
type BatchBody struct {
	Message string   `json:"message"`
	Results []Result `json:"results"`
}

// Relay transforms order created events into customer notifications and
// publishes them downstream.
type Relay struct {
	publisher messaging.Publisher
	logger    *slog.Logger
}

func NewRelay(publisher messaging.Publisher, logger *slog.Logger) *Relay {
	return &Relay{publisher: publisher, logger: logger}
}

// ProcessBatch handles each message independently: a failure is recorded,
// nak'd, and does not stop the rest of the batch. Successfully relayed
// messages are ack'd even when a sibling fails.
func (r *Relay) ProcessBatch(ctx context.Context, msgs []Msg) BatchSummary {
	results := make([]Result, 0, len(msgs))
	failed := 0
	for _, msg := range msgs {
		res := r.processMessage(ctx, msg)
		if res.Status != "success" {
			failed++
		}
		results = append(results, res)
	}

	summary := BatchSummary{
		StatusCode: 200,
		Body: BatchBody{
			Message: fmt.Sprintf("Processed %d orders", len(msgs)),
			Results: results,
		},
	}
	if failed > 0 {
		summary.StatusCode = 500
		summary.Body.Message = fmt.Sprintf("Processed %d orders, %d failed", len(msgs), failed)
	}
	return summary
}

func (r *Relay) processMessage(ctx context.Context, msg Msg) Result {
	var event events.OrderCreatedEvent
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		r.logger.Error("failed to unmarshal order event", slog.Any("error", err))
		r.nak(msg)
		return Result{Status: "error", Error: "invalid order event payload"}
	}

	notification := events.OrderNotification{
		OrderID: event.OrderID,
		Total:   event.Total,
		Date:    event.Date,
		Message: fmt.Sprintf("New order #%s for $%.2f", event.OrderID, event.Total),
	}
	if err := r.publisher.Publish(ctx, notification); err != nil {
		r.logger.Error("failed to publish notification",
			slog.String("order_id", event.OrderID.String()),
			slog.Any("error", err))
		r.nak(msg)
		return Result{OrderID: event.OrderID.String(), Status: "error", Error: "failed to publish notification"}
	}

	r.logger.Info("notification published",
		slog.String("order_id", event.OrderID.String()),
		slog.Float64("total", event.Total))
	if err := msg.Ack(); err != nil {
		r.logger.Error("failed to ack message", slog.Any("error", err))
	}
	return Result{OrderID: event.OrderID.String(), Status: "success"}
}

func (r *Relay) nak(msg Msg) {
	if err := msg.Nak(); err != nil {
		r.logger.Error("failed to nak message", slog.Any("error", err))
	}
}

// Start creates the durable consumer and runs worker goroutines until ctx is
// cancelled.
func Start(ctx context.Context, js jetstream.JetStream, subscriberCfg config.SubscriberConfig, relay *Relay, logger *slog.Logger) error {
	cfg := jetstream.ConsumerConfig{
		FilterSubject: subscriberCfg.Subject,
		Durable:       subscriberCfg.Consumer,
		AckPolicy:     jetstream.AckExplicitPolicy,
	}
	consumer, err := js.CreateOrUpdateConsumer(ctx, subscriberCfg.Stream, cfg)
	if err != nil {
		return err
	}
	g, gCtx := errgroup.WithContext(ctx)
	for i := 0; i < subscriberCfg.Workers; i++ {
		g.Go(func() error {
			return runWorker(gCtx, consumer, subscriberCfg, relay, logger)
		})
	}
	return g.Wait()
}

// runWorker fetches message batches from the consumer and hands them to the relay.
func runWorker(ctx context.Context, consumer jetstream.Consumer, cfg config.SubscriberConfig, relay *Relay, logger *slog.Logger) error {
	for {
		select {
		case <-ctx.Done():
			// ctx was cancelled or timed out (e.g., application shutdown)
			return ctx.Err()
		default:
			batch, err := consumer.Fetch(cfg.Batch, jetstream.FetchMaxWait(cfg.Timeout))
			if err != nil {
				// a fetch timeout just means the stream is idle
				if errors.Is(err, nats.ErrTimeout) {
					continue
				}
				logger.Error("failed to fetch messages", slog.Any("error", err))
				time.Sleep(cfg.Interval)
				continue
			}
			msgs := make([]Msg, 0, cfg.Batch)
			for msg := range batch.Messages() {
				msgs = append(msgs, msg)
			}
			if len(msgs) == 0 {
				continue
			}
			summary := relay.ProcessBatch(ctx, msgs)
			if summary.StatusCode != 200 {
				logger.Warn("batch completed with failures", slog.String("summary", summary.Body.Message))
			}
		}
	}
}
