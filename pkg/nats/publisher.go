package nats

import (
	"context"
	"fmt"

	"github.com/andrerobles/backoffice/pkg/messaging"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

type NatsPublisher struct {
	js jetstream.JetStream
}

func NewNatsPublisher(js jetstream.JetStream) *NatsPublisher {
	return &NatsPublisher{js: js}
}

func (p *NatsPublisher) Publish(ctx context.Context, event messaging.Event) error {
	data, err := event.Payload()
	if err != nil {
		return fmt.Errorf("failed to get event payload: %w", err)
	}
	msg := &nats.Msg{
		Subject: event.Subject(),
		Data:    data,
		Header:  nats.Header{},
	}
	if carrier, ok := event.(messaging.AttributeCarrier); ok {
		for key, value := range carrier.Attributes() {
			msg.Header.Set(key, value)
		}
	}
	_, err = p.js.PublishMsg(ctx, msg)
	return err
}
