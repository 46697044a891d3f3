// Package events holds the concrete event types flowing through the
// order pipeline.
package events

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/andrerobles/backoffice/pkg/messaging"
	"github.com/google/uuid"
)

// OrderCreatedEvent is the queue message emitted when an order is recorded.
type OrderCreatedEvent struct {
	OrderID uuid.UUID `json:"orderId"`
	Total   float64   `json:"total"`
	Date    time.Time `json:"date"`
}

func (o OrderCreatedEvent) Subject() string {
	return messaging.OrdersCreatedSubject
}

func (o OrderCreatedEvent) Payload() ([]byte, error) {
	return json.Marshal(o)
}

// OrderNotification is the human-oriented message relayed to the broadcast
// topic for each processed order event.
type OrderNotification struct {
	OrderID uuid.UUID `json:"orderId"`
	Total   float64   `json:"total"`
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
}

func (o OrderNotification) Subject() string {
	return messaging.OrderNotificationsSubject
}

func (o OrderNotification) Payload() ([]byte, error) {
	return json.Marshal(o)
}

// Attributes tags the published message for downstream filtering.
func (o OrderNotification) Attributes() map[string]string {
	return map[string]string{
		"OrderId":    o.OrderID.String(),
		"OrderTotal": strconv.FormatFloat(o.Total, 'f', -1, 64),
	}
}
