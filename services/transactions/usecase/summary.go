package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pradipta/paystream/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// summaryCurrency is the fixed label applied to the summary regardless of
// the currencies present in the data. Multi-currency breakdown is a known
// simplification left out of this service.
const summaryCurrency = "USD"

// GetSummary computes the aggregate over every record visible at call time:
// a full scan, an exact decimal sum, and a fresh generation timestamp.
// An empty store yields a zero summary, never an error.
func (uc *TransactionUC) GetSummary(ctx context.Context) (*models.TransactionSummary, error) {
	records, err := uc.repo.FindAll(ctx)
	if err != nil {
		// A read failure must surface as a failed aggregation, not as a
		// false empty summary.
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}

	totalVolume := decimal.Zero
	for _, record := range records {
		totalVolume = totalVolume.Add(record.Amount)
	}

	return &models.TransactionSummary{
		Currency:         summaryCurrency,
		TransactionCount: int64(len(records)),
		TotalVolume:      totalVolume,
		LastUpdated:      time.Now().UTC(),
	}, nil
}
