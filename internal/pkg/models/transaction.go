package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEvent represents an inbound transaction event, either received
// from the queue or submitted by a caller for relay onto the queue.
// The JSON shape is the wire contract for the transactions topic.
type TransactionEvent struct {
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CustomerID    string          `json:"customerId"`
	Timestamp     time.Time       `json:"timestamp"`
}

// TransactionRecord represents a transaction persisted in the transactions
// table, keyed by transaction_id.
type TransactionRecord struct {
	TransactionID string          `json:"transactionId" db:"transaction_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Currency      string          `json:"currency" db:"currency"`
	CustomerID    string          `json:"customerId" db:"customer_id"`
	Timestamp     time.Time       `json:"timestamp" db:"timestamp"`
}

// TransactionSummary is the aggregate computed over all persisted
// transactions at query time. It is never persisted.
type TransactionSummary struct {
	Currency         string          `json:"currency"`
	TransactionCount int64           `json:"transactionCount"`
	TotalVolume      decimal.Decimal `json:"totalVolume"`
	LastUpdated      time.Time       `json:"lastUpdated"`
}
