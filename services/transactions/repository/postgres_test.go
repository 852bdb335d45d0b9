package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/pradipta/paystream/internal/pkg/models"
	"github.com/pradipta/paystream/services/transactions"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTransactionRepoTest(t *testing.T) (*PostgresTransactionRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return NewTransactionRepository(sqlxDB), mock
}

func sampleRecord() *models.TransactionRecord {
	return &models.TransactionRecord{
		TransactionID: "tx-001",
		Amount:        decimal.RequireFromString("10.50"),
		Currency:      "USD",
		CustomerID:    "cust-001",
		Timestamp:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSave_InsertsWithUpsert(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)
	record := sampleRecord()

	// Save must be an upsert keyed on transaction_id (last write wins)
	mock.ExpectExec("INSERT INTO transactions (.+) ON CONFLICT \\(transaction_id\\) DO UPDATE").
		WithArgs(record.TransactionID, record.Amount, record.Currency, record.CustomerID, record.Timestamp).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.Save(context.Background(), record)

	require.NoError(t, err)
	assert.Equal(t, record, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_DuplicateIdentifierOverwrites(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)
	record := sampleRecord()

	// Two saves of the same identifier both succeed; the second one
	// reports an updated row rather than a uniqueness rejection
	mock.ExpectExec("INSERT INTO transactions (.+) ON CONFLICT \\(transaction_id\\) DO UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transactions (.+) ON CONFLICT \\(transaction_id\\) DO UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := repo.Save(context.Background(), record)
	require.NoError(t, err)

	record.Amount = decimal.RequireFromString("99.99")
	saved, err := repo.Save(context.Background(), record)
	require.NoError(t, err)
	assert.True(t, saved.Amount.Equal(decimal.RequireFromString("99.99")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_ConnectivityFailure(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)
	record := sampleRecord()

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnError(errors.New("connection refused"))

	saved, err := repo.Save(context.Background(), record)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, transactions.ErrStorage))
	assert.Nil(t, saved)
}

func TestFindAll(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"transaction_id", "amount", "currency", "customer_id", "timestamp"}).
		AddRow("tx-001", "10.00", "USD", "cust-001", now).
		AddRow("tx-002", "5.50", "EUR", "cust-002", now)
	mock.ExpectQuery("SELECT (.+) FROM transactions").WillReturnRows(rows)

	records, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "tx-001", records[0].TransactionID)
	assert.True(t, records[0].Amount.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, "tx-002", records[1].TransactionID)
	assert.True(t, records[1].Amount.Equal(decimal.RequireFromString("5.50")))
}

func TestFindAll_EmptyStore(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	rows := sqlmock.NewRows([]string{"transaction_id", "amount", "currency", "customer_id", "timestamp"})
	mock.ExpectQuery("SELECT (.+) FROM transactions").WillReturnRows(rows)

	records, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestFindAll_ConnectivityFailure(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WillReturnError(errors.New("connection refused"))

	records, err := repo.FindAll(context.Background())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, transactions.ErrStorage))
	assert.Nil(t, records)
}

func TestFindByCustomer(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"transaction_id", "amount", "currency", "customer_id", "timestamp"}).
		AddRow("tx-001", "10.00", "USD", "cust-001", now)
	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE customer_id").
		WithArgs("cust-001").
		WillReturnRows(rows)

	records, err := repo.FindByCustomer(context.Background(), "cust-001")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "cust-001", records[0].CustomerID)
}
