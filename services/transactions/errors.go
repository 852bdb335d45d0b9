package transactions

import (
	"errors"
	"fmt"
)

// ErrStorage marks failures coming from the transaction store
var ErrStorage = errors.New("transaction storage failure")

// ErrTransport marks failures relaying an event onto the queue
var ErrTransport = errors.New("transaction transport failure")

// InvalidTransactionError reports a transaction event that failed validation
type InvalidTransactionError struct {
	TransactionID string
}

func (e *InvalidTransactionError) Error() string {
	return fmt.Sprintf("invalid transaction event: %s", e.TransactionID)
}

// IsInvalidTransaction reports whether err represents a validation failure
func IsInvalidTransaction(err error) bool {
	var invalidErr *InvalidTransactionError
	return errors.As(err, &invalidErr)
}
