package handler

import (
	"context"
	"time"

	"github.com/pradipta/paystream/internal/pkg/logger"
	"github.com/pradipta/paystream/internal/pkg/models"
	nsqpkg "github.com/pradipta/paystream/internal/pkg/nsq"
	"github.com/pradipta/paystream/internal/pkg/telemetry"
	"github.com/pradipta/paystream/services/transactions"
	"github.com/sirupsen/logrus"
)

// handleTimeout bounds the processing of a single queue message
const handleTimeout = 30 * time.Second

// QueueHandler consumes transaction events from the queue and feeds them
// through the ingestion pipeline
type QueueHandler struct {
	transactionUC transactions.TransactionUC
	sink          telemetry.Sink
	cfg           *models.Config
	consumer      *nsqpkg.Consumer
}

// NewQueueHandler creates a new queue handler
func NewQueueHandler(transactionUC transactions.TransactionUC, sink telemetry.Sink, cfg *models.Config) *QueueHandler {
	return &QueueHandler{
		transactionUC: transactionUC,
		sink:          sink,
		cfg:           cfg,
	}
}

// Start subscribes the persistence channel to the transactions topic
func (h *QueueHandler) Start() error {
	consumer, err := nsqpkg.NewConsumer(h.cfg.NSQ.Topic, h.cfg.NSQ.Channel, h.cfg.NSQ.Address, h.HandleMessage)
	if err != nil {
		return err
	}

	if len(h.cfg.NSQ.LookupdAddresses) > 0 {
		if err := consumer.ConnectToLookupd(h.cfg.NSQ.LookupdAddresses); err != nil {
			consumer.Stop()
			return err
		}
	}

	h.consumer = consumer

	logger.Info("transaction consumer started", logrus.Fields{
		"topic":   h.cfg.NSQ.Topic,
		"channel": h.cfg.NSQ.Channel,
	})

	return nil
}

// HandleMessage processes one queue message. It always returns nil: a
// failed event is counted, logged, and dropped rather than requeued, so
// one bad event never blocks processing of subsequent events.
func (h *QueueHandler) HandleMessage(message []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	var event models.TransactionEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		h.sink.IncrementFailure(ctx)
		logger.Error("failed to decode transaction event", logrus.Fields{
			"error": err.Error(),
		})
		return nil
	}

	// Validation and storage failures are already counted and logged by
	// the pipeline; they are terminal for this event only.
	_, _ = h.transactionUC.ProcessEvent(ctx, &event)

	return nil
}

// Stop gracefully stops the consumer
func (h *QueueHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}
