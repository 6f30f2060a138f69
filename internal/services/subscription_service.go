package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/constants"
	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
)

// SubscriptionService manages recurring meal-box deliveries
type SubscriptionService struct {
	queries db.Querier
	logger  *zap.Logger
	now     func() time.Time
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(queries db.Querier) *SubscriptionService {
	return &SubscriptionService{
		queries: queries,
		logger:  logger.Log,
		now:     time.Now,
	}
}

// WithClock overrides the service clock.
func (s *SubscriptionService) WithClock(now func() time.Time) *SubscriptionService {
	s.now = now
	return s
}

// NextDeliveryDate returns the first delivery day after from for plan.
func NextDeliveryDate(plan string, from time.Time) (time.Time, error) {
	day := helpers.StartOfDay(from)
	switch plan {
	case constants.PlanWeekly:
		return day.AddDate(0, 0, 7), nil
	case constants.PlanBiweekly:
		return day.AddDate(0, 0, 14), nil
	case constants.PlanMonthly:
		return day.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPlan, plan)
	}
}

// CreateSubscription starts a subscription. Only one open (active or paused)
// subscription may exist per email and product.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, p params.CreateSubscriptionParams) (*db.Subscription, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))
	if !slices.Contains(constants.SubscriptionPlans, p.Plan) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlan, p.Plan)
	}

	quantity := p.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 || quantity > maxLineQuantity {
		return nil, ErrInvalidQuantity
	}

	product, err := s.queries.GetProductBySlug(ctx, p.ProductSlug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, p.ProductSlug)
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if !product.Active {
		return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, p.ProductSlug)
	}

	_, err = s.queries.GetOpenSubscription(ctx, db.GetOpenSubscriptionParams{
		Email:     email,
		ProductID: product.ID,
	})
	switch {
	case err == nil:
		return nil, ErrDuplicateSubscription
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("failed to check existing subscriptions: %w", err)
	}

	next, err := NextDeliveryDate(p.Plan, s.now())
	if err != nil {
		return nil, err
	}

	sub, err := s.queries.CreateSubscription(ctx, db.CreateSubscriptionParams{
		Email:            email,
		Name:             strings.TrimSpace(p.Name),
		Plan:             p.Plan,
		ProductID:        product.ID,
		Quantity:         quantity,
		NextDeliveryDate: helpers.TimeToDate(next),
	})
	if err != nil {
		if helpers.IsUniqueViolation(err) {
			return nil, ErrDuplicateSubscription
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	s.logger.Info("Subscription created",
		zap.String("subscription_id", sub.ID.String()),
		zap.String("plan", sub.Plan),
		zap.String("product", product.Slug))

	return &sub, nil
}

// ListSubscriptions returns a page of subscriptions and the total count.
func (s *SubscriptionService) ListSubscriptions(ctx context.Context, p params.ListSubscriptionsParams) ([]db.Subscription, int64, error) {
	var status pgtype.Text
	if p.Status != "" {
		switch p.Status {
		case constants.SubscriptionActive, constants.SubscriptionPaused, constants.SubscriptionCancelled:
			status = helpers.StringToNullableText(p.Status)
		default:
			return nil, 0, fmt.Errorf("%w: %q", ErrInvalidSubscriptionStatus, p.Status)
		}
	}

	subs, err := s.queries.ListSubscriptions(ctx, db.ListSubscriptionsParams{
		Status: status,
		Limit:  p.Limit,
		Offset: p.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	total, err := s.queries.CountSubscriptions(ctx, status)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	return subs, total, nil
}

// ApplyAction pauses, resumes or cancels a subscription. Resuming
// recomputes the next delivery date from today; cancelling clears it.
func (s *SubscriptionService) ApplyAction(ctx context.Context, id uuid.UUID, action string) (*db.Subscription, error) {
	sub, err := s.queries.GetSubscription(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	update := db.UpdateSubscriptionStatusParams{
		ID:               id,
		NextDeliveryDate: sub.NextDeliveryDate,
	}

	switch {
	case action == constants.PauseAction && sub.Status == constants.SubscriptionActive:
		update.Status = constants.SubscriptionPaused
	case action == constants.ResumeAction && sub.Status == constants.SubscriptionPaused:
		next, err := NextDeliveryDate(sub.Plan, s.now())
		if err != nil {
			return nil, err
		}
		update.Status = constants.SubscriptionActive
		update.NextDeliveryDate = helpers.TimeToDate(next)
	case action == constants.CancelAction && sub.Status != constants.SubscriptionCancelled:
		update.Status = constants.SubscriptionCancelled
		update.NextDeliveryDate = pgtype.Date{}
	default:
		return nil, fmt.Errorf("%w: %s while %s", ErrInvalidSubscriptionTransition, action, sub.Status)
	}

	updated, err := s.queries.UpdateSubscriptionStatus(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	s.logger.Info("Subscription updated",
		zap.String("subscription_id", id.String()),
		zap.String("action", action),
		zap.String("status", updated.Status))

	return &updated, nil
}
