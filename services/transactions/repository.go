package transactions

import (
	"context"

	"github.com/pradipta/paystream/internal/pkg/models"
)

// TransactionRepo defines the persistence operations for transaction records
type TransactionRepo interface {
	// Save persists a record. A record with the same transaction ID is
	// overwritten (last write wins); callers must not rely on this
	// operation for duplicate detection.
	Save(ctx context.Context, record *models.TransactionRecord) (*models.TransactionRecord, error)

	// FindAll returns every persisted record in storage-natural order.
	// Intended for bulk aggregation; no pagination.
	FindAll(ctx context.Context) ([]models.TransactionRecord, error)

	// FindByCustomer returns all records for one customer
	FindByCustomer(ctx context.Context, customerID string) ([]models.TransactionRecord, error)
}
