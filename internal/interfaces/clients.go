package interfaces

import (
	"context"

	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/business"
)

// OrderEventPublisher delivers order lifecycle events to the notification pipeline
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event business.OrderEvent) error
}

// EmailSender sends transactional email
type EmailSender interface {
	SendTransactionalEmail(ctx context.Context, params params.TransactionalEmailParams) error
}

// SecretsProvider resolves secrets for deployed stages
type SecretsProvider interface {
	GetSecretString(ctx context.Context, secretIdEnvVar, fallbackEnvVar string) (string, error)
}
