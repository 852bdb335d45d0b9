package usecase

import (
	"strings"

	"github.com/pradipta/paystream/internal/pkg/models"
	"github.com/pradipta/paystream/services/transactions"
)

// validateEvent checks a transaction event against the validity rules.
// All rules must hold; any single violation rejects the whole event.
// Pure function, no side effects.
func validateEvent(event *models.TransactionEvent) error {
	if event == nil {
		return &transactions.InvalidTransactionError{}
	}

	valid := strings.TrimSpace(event.TransactionID) != "" &&
		event.Amount.IsPositive() &&
		strings.TrimSpace(event.Currency) != "" &&
		strings.TrimSpace(event.CustomerID) != "" &&
		!event.Timestamp.IsZero()

	if !valid {
		return &transactions.InvalidTransactionError{TransactionID: event.TransactionID}
	}

	return nil
}
