package usecase

import (
	"testing"
	"time"

	"github.com/pradipta/paystream/internal/pkg/models"
	"github.com/pradipta/paystream/services/transactions"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validEvent() *models.TransactionEvent {
	return &models.TransactionEvent{
		TransactionID: "tx-001",
		Amount:        decimal.RequireFromString("10.50"),
		Currency:      "USD",
		CustomerID:    "cust-001",
		Timestamp:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestValidateEvent(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(event *models.TransactionEvent)
		wantErr bool
	}{
		{
			name:    "valid event",
			mutate:  func(event *models.TransactionEvent) {},
			wantErr: false,
		},
		{
			name: "empty transaction ID",
			mutate: func(event *models.TransactionEvent) {
				event.TransactionID = ""
			},
			wantErr: true,
		},
		{
			name: "whitespace-only transaction ID",
			mutate: func(event *models.TransactionEvent) {
				event.TransactionID = "   "
			},
			wantErr: true,
		},
		{
			name: "zero amount",
			mutate: func(event *models.TransactionEvent) {
				event.Amount = decimal.Zero
			},
			wantErr: true,
		},
		{
			name: "negative amount",
			mutate: func(event *models.TransactionEvent) {
				event.Amount = decimal.RequireFromString("-0.01")
			},
			wantErr: true,
		},
		{
			name: "blank currency",
			mutate: func(event *models.TransactionEvent) {
				event.Currency = " "
			},
			wantErr: true,
		},
		{
			name: "blank customer ID",
			mutate: func(event *models.TransactionEvent) {
				event.CustomerID = ""
			},
			wantErr: true,
		},
		{
			name: "missing timestamp",
			mutate: func(event *models.TransactionEvent) {
				event.Timestamp = time.Time{}
			},
			wantErr: true,
		},
		{
			name: "large amount has no upper bound",
			mutate: func(event *models.TransactionEvent) {
				event.Amount = decimal.RequireFromString("999999999999.99")
			},
			wantErr: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := validEvent()
			tc.mutate(event)

			err := validateEvent(event)

			if tc.wantErr {
				assert.Error(t, err)
				assert.True(t, transactions.IsInvalidTransaction(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEvent_NilEvent(t *testing.T) {
	err := validateEvent(nil)

	assert.Error(t, err)
	assert.True(t, transactions.IsInvalidTransaction(err))
}

func TestValidateEvent_ErrorCarriesTransactionID(t *testing.T) {
	event := validEvent()
	event.Amount = decimal.Zero

	err := validateEvent(event)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tx-001")
}
