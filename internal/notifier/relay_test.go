package notifier

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/andrerobles/backoffice/pkg/messaging"
	"github.com/andrerobles/backoffice/pkg/messaging/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAckableMsg struct {
	mock.Mock
}

func (m *mockAckableMsg) Data() []byte {
	args := m.Called()
	return args.Get(0).([]byte)
}

func (m *mockAckableMsg) Ack() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockAckableMsg) Nak() error {
	args := m.Called()
	return args.Error(0)
}

type capturingPublisher struct {
	published []messaging.Event
	err       error
}

func (p *capturingPublisher) Publish(_ context.Context, event messaging.Event) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, event)
	return nil
}

func validOrderMsg(t *testing.T, orderID uuid.UUID, total float64) *mockAckableMsg {
	t.Helper()
	payload, err := json.Marshal(&events.OrderCreatedEvent{
		OrderID: orderID,
		Total:   total,
		Date:    time.Now(),
	})
	require.NoError(t, err)
	msg := new(mockAckableMsg)
	msg.On("Data").Return(payload).Times(1)
	msg.On("Ack").Return(nil).Times(1)
	return msg
}

func Test_Relay_ProcessBatch(t *testing.T) {
	// given a batch where the second message is garbage
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := &capturingPublisher{}
	relay := NewRelay(publisher, logger)

	first := validOrderMsg(t, uuid.New(), 100)
	second := new(mockAckableMsg)
	second.On("Data").Return([]byte("invalid data")).Times(1)
	second.On("Nak").Return(nil).Times(1)
	third := validOrderMsg(t, uuid.New(), 50)

	// when
	summary := relay.ProcessBatch(context.Background(), []Msg{first, second, third})

	// then every message gets a result and only the valid ones publish
	require.Len(t, summary.Body.Results, 3)
	assert.Equal(t, "success", summary.Body.Results[0].Status)
	assert.Equal(t, "error", summary.Body.Results[1].Status)
	assert.NotEmpty(t, summary.Body.Results[1].Error)
	assert.Equal(t, "success", summary.Body.Results[2].Status)
	assert.Equal(t, 500, summary.StatusCode)
	assert.Len(t, publisher.published, 2)

	first.AssertExpectations(t)
	second.AssertExpectations(t)
	third.AssertExpectations(t)
}

func Test_Relay_ProcessBatch_AllValid(t *testing.T) {
	// given
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := &capturingPublisher{}
	relay := NewRelay(publisher, logger)
	orderID := uuid.New()
	msg := validOrderMsg(t, orderID, 49.9)

	// when
	summary := relay.ProcessBatch(context.Background(), []Msg{msg})

	// then
	assert.Equal(t, 200, summary.StatusCode)
	assert.Equal(t, "Processed 1 orders", summary.Body.Message)
	require.Len(t, summary.Body.Results, 1)
	assert.Equal(t, orderID.String(), summary.Body.Results[0].OrderID)

	// the message and results live under a body field on the wire
	raw, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"body":{"message":"Processed 1 orders","results":[`)

	require.Len(t, publisher.published, 1)
	notification, ok := publisher.published[0].(events.OrderNotification)
	require.True(t, ok)
	assert.Equal(t, orderID, notification.OrderID)
	assert.Contains(t, notification.Message, "New order #"+orderID.String())
	assert.Contains(t, notification.Message, "$49.90")
	msg.AssertExpectations(t)
}

func Test_Relay_ProcessBatch_PublishFailureNaks(t *testing.T) {
	// given a publisher that is down
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	relay := NewRelay(&capturingPublisher{err: assert.AnError}, logger)

	payload, err := json.Marshal(&events.OrderCreatedEvent{OrderID: uuid.New(), Total: 10})
	require.NoError(t, err)
	msg := new(mockAckableMsg)
	msg.On("Data").Return(payload).Times(1)
	msg.On("Nak").Return(nil).Times(1)

	// when
	summary := relay.ProcessBatch(context.Background(), []Msg{msg})

	// then the message is redelivered later, not acked
	assert.Equal(t, 500, summary.StatusCode)
	assert.Equal(t, "error", summary.Body.Results[0].Status)
	msg.AssertExpectations(t)
}
