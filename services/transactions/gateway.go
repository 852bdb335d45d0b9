package transactions

import (
	"context"

	"github.com/pradipta/paystream/internal/pkg/models"
)

// TransactionGW defines the outbound queue operations
type TransactionGW interface {
	// PublishTransactionEvent places an event onto the transactions topic.
	// Enqueue failures are always surfaced, never dropped silently.
	PublishTransactionEvent(ctx context.Context, event *models.TransactionEvent) error
}
