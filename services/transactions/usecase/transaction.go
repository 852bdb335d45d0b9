package usecase

import (
	"context"
	"fmt"

	"github.com/pradipta/paystream/internal/pkg/logger"
	"github.com/pradipta/paystream/internal/pkg/models"
	"github.com/pradipta/paystream/internal/pkg/telemetry"
	"github.com/pradipta/paystream/services/transactions"
	"github.com/sirupsen/logrus"
)

// TransactionUC implements the transactions.TransactionUC interface
type TransactionUC struct {
	cfg  *models.Config
	repo transactions.TransactionRepo
	gw   transactions.TransactionGW
	sink telemetry.Sink
}

// NewTransactionUC creates a new transaction use case
func NewTransactionUC(cfg *models.Config, repo transactions.TransactionRepo, gw transactions.TransactionGW, sink telemetry.Sink) *TransactionUC {
	return &TransactionUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
		sink: sink,
	}
}

// SubmitTransaction relays an event onto the queue without validating it.
// The returned event acknowledges "accepted for processing", not "processed".
func (uc *TransactionUC) SubmitTransaction(ctx context.Context, event *models.TransactionEvent) (*models.TransactionEvent, error) {
	if event == nil {
		return nil, fmt.Errorf("transaction event cannot be nil")
	}

	if err := uc.gw.PublishTransactionEvent(ctx, event); err != nil {
		return nil, err
	}

	logger.Info("transaction event accepted", logrus.Fields{
		"transaction_id": event.TransactionID,
	})

	return event, nil
}

// ProcessEvent runs the ingestion pipeline for one inbound event:
// validate, map to a record, persist, count the outcome. A failure is
// terminal for this event only; subsequent events are unaffected.
func (uc *TransactionUC) ProcessEvent(ctx context.Context, event *models.TransactionEvent) (*models.TransactionRecord, error) {
	if err := validateEvent(event); err != nil {
		uc.sink.IncrementFailure(ctx)
		logger.Warn("transaction event rejected", logrus.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	record := toRecord(event)

	saved, err := uc.repo.Save(ctx, record)
	if err != nil {
		uc.sink.IncrementFailure(ctx)
		logger.Error("failed to persist transaction", logrus.Fields{
			"transaction_id": event.TransactionID,
			"error":          err.Error(),
		})
		return nil, err
	}

	uc.sink.IncrementSuccess(ctx)
	logger.Info("transaction persisted", logrus.Fields{
		"transaction_id": saved.TransactionID,
	})

	return saved, nil
}

// GetCustomerTransactions returns all persisted records for one customer
func (uc *TransactionUC) GetCustomerTransactions(ctx context.Context, customerID string) ([]models.TransactionRecord, error) {
	records, err := uc.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer transactions: %w", err)
	}

	return records, nil
}

// toRecord maps a transaction event to its durable record, a field-for-field
// copy. Must only be invoked after validation succeeds.
func toRecord(event *models.TransactionEvent) *models.TransactionRecord {
	return &models.TransactionRecord{
		TransactionID: event.TransactionID,
		Amount:        event.Amount,
		Currency:      event.Currency,
		CustomerID:    event.CustomerID,
		Timestamp:     event.Timestamp,
	}
}
