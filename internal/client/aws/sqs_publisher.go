package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/business"
)

// Message attribute names set on order event messages.
const (
	EventTypeAttribute   = "EventType"
	OrderNumberAttribute = "OrderNumber"
)

type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher publishes order events to an SQS queue.
type SQSPublisher struct {
	client   sqsAPI
	queueURL string
}

// NewSQSPublisher creates a publisher for queueURL. A non-empty endpoint
// points the client at a local SQS emulator with static test credentials.
func NewSQSPublisher(ctx context.Context, queueURL, endpoint string) (*SQSPublisher, error) {
	if queueURL == "" {
		return nil, fmt.Errorf("queue URL is required")
	}

	var opts []func(*config.LoadOptions) error
	if endpoint != "" {
		opts = append(opts,
			config.WithRegion("us-east-1"),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("local", "local", "")),
		)
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &SQSPublisher{client: client, queueURL: queueURL}, nil
}

// PublishOrderEvent sends event as a JSON message body.
func (p *SQSPublisher) PublishOrderEvent(ctx context.Context, event business.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	out, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			EventTypeAttribute: {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.Type),
			},
			OrderNumberAttribute: {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.OrderNumber),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	logger.Log.Debug("Order event queued",
		zap.String("type", event.Type),
		zap.String("order_number", event.OrderNumber),
		zap.String("message_id", aws.ToString(out.MessageId)))

	return nil
}
