package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pradipta/paystream/internal/pkg/models"
	"github.com/pradipta/paystream/services/transactions"
)

// PostgresTransactionRepo implements the TransactionRepo interface
type PostgresTransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sqlx.DB) *PostgresTransactionRepo {
	return &PostgresTransactionRepo{
		db: db,
	}
}

// Save persists a transaction record. The transaction ID is the primary
// key; a conflicting write overwrites the existing row (last write wins).
func (r *PostgresTransactionRepo) Save(ctx context.Context, record *models.TransactionRecord) (*models.TransactionRecord, error) {
	query := `
		INSERT INTO transactions (
			transaction_id, amount, currency, customer_id, "timestamp"
		) VALUES (
			:transaction_id, :amount, :currency, :customer_id, :timestamp
		)
		ON CONFLICT (transaction_id) DO UPDATE SET
			amount = EXCLUDED.amount,
			currency = EXCLUDED.currency,
			customer_id = EXCLUDED.customer_id,
			"timestamp" = EXCLUDED."timestamp"
	`

	_, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		return nil, fmt.Errorf("%w: save transaction %s: %v", transactions.ErrStorage, record.TransactionID, err)
	}

	return record, nil
}

// FindAll returns every persisted transaction record
func (r *PostgresTransactionRepo) FindAll(ctx context.Context) ([]models.TransactionRecord, error) {
	query := `
		SELECT transaction_id, amount, currency, customer_id, "timestamp"
		FROM transactions
	`

	records := []models.TransactionRecord{}
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("%w: find all transactions: %v", transactions.ErrStorage, err)
	}

	return records, nil
}

// FindByCustomer returns all transaction records for one customer
func (r *PostgresTransactionRepo) FindByCustomer(ctx context.Context, customerID string) ([]models.TransactionRecord, error) {
	query := `
		SELECT transaction_id, amount, currency, customer_id, "timestamp"
		FROM transactions
		WHERE customer_id = $1
	`

	records := []models.TransactionRecord{}
	if err := r.db.SelectContext(ctx, &records, query, customerID); err != nil {
		return nil, fmt.Errorf("%w: find transactions for customer %s: %v", transactions.ErrStorage, customerID, err)
	}

	return records, nil
}
