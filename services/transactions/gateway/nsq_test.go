package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pradipta/paystream/internal/pkg/models"
	"github.com/pradipta/paystream/services/transactions"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePublisher records published messages and optionally fails
type fakePublisher struct {
	topic   string
	message interface{}
	err     error
}

func (f *fakePublisher) Publish(topic string, message interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.topic = topic
	f.message = message
	return nil
}

func testEvent() *models.TransactionEvent {
	return &models.TransactionEvent{
		TransactionID: "tx-001",
		Amount:        decimal.RequireFromString("10.50"),
		Currency:      "USD",
		CustomerID:    "cust-001",
		Timestamp:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublishTransactionEvent(t *testing.T) {
	publisher := &fakePublisher{}
	gw := NewTransactionGW(publisher, "transactions-topic")

	event := testEvent()
	err := gw.PublishTransactionEvent(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, "transactions-topic", publisher.topic)
	assert.Equal(t, event, publisher.message)
}

func TestPublishTransactionEvent_Failure(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("nsqd unreachable")}
	gw := NewTransactionGW(publisher, "transactions-topic")

	err := gw.PublishTransactionEvent(context.Background(), testEvent())

	// An enqueue failure must surface as an error, never be dropped
	assert.Error(t, err)
	assert.True(t, errors.Is(err, transactions.ErrTransport))
	assert.Contains(t, err.Error(), "tx-001")
}
