package gateway

import (
	"context"
	"fmt"

	"github.com/pradipta/paystream/internal/pkg/models"
	"github.com/pradipta/paystream/services/transactions"
)

// publisher is the subset of the NSQ producer the gateway needs
type publisher interface {
	Publish(topic string, message interface{}) error
}

// TransactionGW implements the transactions.TransactionGW interface over NSQ
type TransactionGW struct {
	producer publisher
	topic    string
}

// NewTransactionGW creates a new transaction gateway
func NewTransactionGW(producer publisher, topic string) *TransactionGW {
	return &TransactionGW{
		producer: producer,
		topic:    topic,
	}
}

// PublishTransactionEvent places an event onto the transactions topic. The
// transaction identifier travels in the payload; transport-level keying is
// best effort. Failures are surfaced to the caller, never dropped.
func (g *TransactionGW) PublishTransactionEvent(_ context.Context, event *models.TransactionEvent) error {
	if err := g.producer.Publish(g.topic, event); err != nil {
		return fmt.Errorf("%w: publish transaction %s: %v", transactions.ErrTransport, event.TransactionID, err)
	}

	return nil
}
