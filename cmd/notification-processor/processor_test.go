package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/constants"
	"github.com/reachfood2024-code/reachfood-sub000/internal/mocks"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/business"
)

func message(t *testing.T, id string, event business.OrderEvent) events.SQSMessage {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return events.SQSMessage{MessageId: id, Body: string(body)}
}

func TestProcessor_HandleSQSEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifications := mocks.NewMockNotificationService(ctrl)
	p := NewProcessor(notifications, zap.NewNop())

	ok := business.OrderEvent{Type: constants.OrderCreatedEvent, OrderID: uuid.New(), OrderNumber: "RF-20250314-AAAAAA"}
	flaky := business.OrderEvent{Type: constants.OrderCreatedEvent, OrderID: uuid.New(), OrderNumber: "RF-20250314-BBBBBB"}
	gone := business.OrderEvent{Type: constants.OrderStatusChangedEvent, OrderID: uuid.New(), OrderNumber: "RF-20250314-CCCCCC"}

	notifications.EXPECT().HandleOrderEvent(gomock.Any(), ok).Return(nil)
	notifications.EXPECT().HandleOrderEvent(gomock.Any(), flaky).Return(errors.New("resend: 503"))
	notifications.EXPECT().HandleOrderEvent(gomock.Any(), gone).
		Return(fmt.Errorf("failed to load order %s: %w", gone.OrderNumber, pgx.ErrNoRows))

	resp, err := p.HandleSQSEvent(context.Background(), events.SQSEvent{Records: []events.SQSMessage{
		message(t, "m-1", ok),
		message(t, "m-2", flaky),
		{MessageId: "m-3", Body: "{not json"},
		message(t, "m-4", gone),
	}})
	require.NoError(t, err)
	assert.Equal(t, []events.SQSBatchItemFailure{{ItemIdentifier: "m-2"}}, resp.BatchItemFailures)
}

func TestProcessor_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := NewProcessor(mocks.NewMockNotificationService(ctrl), zap.NewNop())

	resp, err := p.HandleSQSEvent(context.Background(), events.SQSEvent{})
	require.NoError(t, err)
	assert.Empty(t, resp.BatchItemFailures)
}
