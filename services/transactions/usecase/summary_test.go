package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pradipta/paystream/internal/pkg/models"
	"github.com/pradipta/paystream/internal/pkg/telemetry"
	"github.com/pradipta/paystream/services/transactions"
	"github.com/pradipta/paystream/services/transactions/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSummaryUC(t *testing.T) (*TransactionUC, *mocks.MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo, nil, telemetry.NewCounters())
	return uc, mockRepo
}

func TestGetSummary_EmptyStore(t *testing.T) {
	uc, mockRepo := newSummaryUC(t)

	mockRepo.EXPECT().FindAll(gomock.Any()).Return([]models.TransactionRecord{}, nil)

	before := time.Now().UTC()
	summary, err := uc.GetSummary(context.Background())
	after := time.Now().UTC()

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, "USD", summary.Currency)
	assert.Equal(t, int64(0), summary.TransactionCount)
	assert.True(t, summary.TotalVolume.IsZero())

	// Last updated is the generation time, not data time
	assert.False(t, summary.LastUpdated.Before(before))
	assert.False(t, summary.LastUpdated.After(after))
}

func TestGetSummary_CountsAndSums(t *testing.T) {
	uc, mockRepo := newSummaryUC(t)

	records := []models.TransactionRecord{
		{TransactionID: "A", Amount: decimal.RequireFromString("10.00"), Currency: "USD"},
		{TransactionID: "B", Amount: decimal.RequireFromString("5.50"), Currency: "EUR"},
	}
	mockRepo.EXPECT().FindAll(gomock.Any()).Return(records, nil)

	summary, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TransactionCount)
	// All currencies aggregate into one bucket with a fixed label
	assert.Equal(t, "USD", summary.Currency)
	assert.True(t, summary.TotalVolume.Equal(decimal.RequireFromString("15.50")),
		"expected 15.50, got %s", summary.TotalVolume)
}

func TestGetSummary_ExactDecimalAddition(t *testing.T) {
	uc, mockRepo := newSummaryUC(t)

	records := []models.TransactionRecord{
		{TransactionID: "A", Amount: decimal.RequireFromString("0.10")},
		{TransactionID: "B", Amount: decimal.RequireFromString("0.20")},
	}
	mockRepo.EXPECT().FindAll(gomock.Any()).Return(records, nil)

	summary, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	// Exactly 0.30, no floating-point artifacts
	assert.True(t, summary.TotalVolume.Equal(decimal.RequireFromString("0.30")),
		"expected 0.30, got %s", summary.TotalVolume)
	assert.Equal(t, "0.30", summary.TotalVolume.StringFixed(2))
}

func TestGetSummary_StorageFailurePropagates(t *testing.T) {
	uc, mockRepo := newSummaryUC(t)

	mockRepo.EXPECT().FindAll(gomock.Any()).Return(nil, transactions.ErrStorage)

	summary, err := uc.GetSummary(context.Background())

	// A read failure surfaces as a failed aggregation, never a false
	// empty summary
	assert.Error(t, err)
	assert.True(t, errors.Is(err, transactions.ErrStorage))
	assert.Nil(t, summary)
}
