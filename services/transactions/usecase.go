package transactions

import (
	"context"

	"github.com/pradipta/paystream/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_transactions.go -package=mocks github.com/pradipta/paystream/services/transactions TransactionRepo,TransactionGW,TransactionUC

// TransactionUC defines the transaction use case operations
type TransactionUC interface {
	// SubmitTransaction relays an event onto the queue for asynchronous
	// processing and returns it as an accepted-for-processing acknowledgment
	SubmitTransaction(ctx context.Context, event *models.TransactionEvent) (*models.TransactionEvent, error)

	// ProcessEvent runs the ingestion pipeline for one inbound event:
	// validate, map to a record, persist, and record the outcome
	ProcessEvent(ctx context.Context, event *models.TransactionEvent) (*models.TransactionRecord, error)

	// GetSummary aggregates all persisted transactions into a summary
	GetSummary(ctx context.Context) (*models.TransactionSummary, error)

	// GetCustomerTransactions returns all records for one customer
	GetCustomerTransactions(ctx context.Context, customerID string) ([]models.TransactionRecord, error)
}
