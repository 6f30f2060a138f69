package mocks

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
)

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockOrderEventPublisherForTest creates a new mock OrderEventPublisher for testing
func NewMockOrderEventPublisherForTest(t *testing.T) *MockOrderEventPublisher {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockOrderEventPublisher(ctrl)
}

// NewMockEmailSenderForTest creates a new mock EmailSender for testing
func NewMockEmailSenderForTest(t *testing.T) *MockEmailSender {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEmailSender(ctrl)
}

// InlineTxRunner runs transaction bodies directly against a Querier. It
// records how many transactions were started.
type InlineTxRunner struct {
	Queries db.Querier
	Calls   int
}

// RunInTx calls fn with the wrapped Querier.
func (r *InlineTxRunner) RunInTx(ctx context.Context, fn func(q db.Querier) error) error {
	r.Calls++
	return fn(r.Queries)
}
