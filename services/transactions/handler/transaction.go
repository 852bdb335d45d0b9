package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pradipta/paystream/internal/pkg/models"
	"github.com/pradipta/paystream/services/transactions"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionUC transactions.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUC transactions.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
	}
}

// RegisterRoutes registers the transaction routes
func (h *TransactionHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/transactions")

	g.POST("", h.SubmitTransaction)
	g.GET("/summary", h.GetSummary)
	g.GET("/customers/:customerId", h.GetCustomerTransactions)
}

// SubmitTransaction accepts a transaction event and relays it onto the
// queue. The event is echoed back with 202 Accepted: accepted for
// processing, not processed. Downstream validation failures are not
// visible to this caller.
func (h *TransactionHandler) SubmitTransaction(c echo.Context) error {
	var event models.TransactionEvent
	if err := c.Bind(&event); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	accepted, err := h.transactionUC.SubmitTransaction(c.Request().Context(), &event)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusAccepted, accepted)
}

// GetSummary returns the aggregate over all persisted transactions
func (h *TransactionHandler) GetSummary(c echo.Context) error {
	summary, err := h.transactionUC.GetSummary(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetCustomerTransactions returns all transaction records for one customer
func (h *TransactionHandler) GetCustomerTransactions(c echo.Context) error {
	customerID := c.Param("customerId")

	records, err := h.transactionUC.GetCustomerTransactions(c.Request().Context(), customerID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, records)
}

// errorResponse maps domain errors to HTTP responses: validation failures
// are client errors with the error message as body, everything else is a
// server error with a generic prefix.
func errorResponse(c echo.Context, err error) error {
	if transactions.IsInvalidTransaction(err) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "An unexpected error occurred: " + err.Error(),
	})
}
