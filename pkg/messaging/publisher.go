// Package messaging defines the event contracts shared by the API server
// and the notification relay.
package messaging

import (
	"context"
)

// OrdersCreatedSubject is the queue subject the API publishes order-created
// events to; the notification relay consumes it.
const OrdersCreatedSubject = "orders.created"

// OrderNotificationsSubject is the broadcast topic derived notifications
// are published to for downstream consumers.
const OrderNotificationsSubject = "notifications.orders"

type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

// AttributeCarrier is implemented by events that carry structured
// attributes for downstream filtering.
type AttributeCarrier interface {
	Attributes() map[string]string
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
