package main

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/aws/aws-lambda-go/events"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/interfaces"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/business"
)

// Processor turns order event messages into notification emails.
type Processor struct {
	notifications interfaces.NotificationService
	logger        *zap.Logger
}

// NewProcessor creates a processor that delegates to notifications.
func NewProcessor(notifications interfaces.NotificationService, logger *zap.Logger) *Processor {
	return &Processor{notifications: notifications, logger: logger}
}

// HandleSQSEvent processes a batch and reports the messages that should be
// retried. Malformed messages and events for missing orders are dropped.
func (p *Processor) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	var resp events.SQSEventResponse
	succeeded := 0

	for _, record := range event.Records {
		log := p.logger.With(zap.String("message_id", record.MessageId))

		var orderEvent business.OrderEvent
		if err := json.Unmarshal([]byte(record.Body), &orderEvent); err != nil {
			log.Error("Dropping malformed order event", zap.Error(err))
			continue
		}
		log = log.With(
			zap.String("type", orderEvent.Type),
			zap.String("order_number", orderEvent.OrderNumber),
		)

		err := p.notifications.HandleOrderEvent(ctx, orderEvent)
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, pgx.ErrNoRows):
			log.Error("Dropping event for unknown order", zap.Error(err))
		default:
			log.Error("Order notification failed, will retry", zap.Error(err))
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: record.MessageId,
			})
		}
	}

	p.logger.Info("Order event batch processed",
		zap.Int("total", len(event.Records)),
		zap.Int("succeeded", succeeded),
		zap.Int("retrying", len(resp.BatchItemFailures)))

	return resp, nil
}
