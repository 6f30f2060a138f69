package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/reachfood2024-code/reachfood-sub000/internal/constants"
	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/mocks"
	"github.com/reachfood2024-code/reachfood-sub000/internal/services"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDeliveryDate(t *testing.T) {
	from := time.Date(2025, 1, 31, 18, 45, 0, 0, time.UTC)
	tests := []struct {
		plan    string
		want    time.Time
		wantErr bool
	}{
		{plan: constants.PlanWeekly, want: date(2025, 2, 7)},
		{plan: constants.PlanBiweekly, want: date(2025, 2, 14)},
		{plan: constants.PlanMonthly, want: date(2025, 3, 3)},
		{plan: "daily", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.plan, func(t *testing.T) {
			got, err := services.NextDeliveryDate(tt.plan, from)
			if tt.wantErr {
				assert.ErrorIs(t, err, services.ErrInvalidPlan)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestSubscriptionService_CreateSubscription(t *testing.T) {
	ctx := context.Background()
	product := db.Product{ID: uuid.New(), Slug: "healthy-lunch-box", Active: true, InStock: true}
	req := params.CreateSubscriptionParams{
		Email:       " Omar@Example.com",
		Name:        "Omar",
		Plan:        constants.PlanWeekly,
		ProductSlug: product.Slug,
	}

	newService := func(t *testing.T) (*services.SubscriptionService, *mocks.MockQuerier) {
		q := mocks.NewMockQuerierForTest(t)
		return services.NewSubscriptionService(q).WithClock(func() time.Time { return fixedNow }), q
	}

	t.Run("creates with default quantity", func(t *testing.T) {
		svc, q := newService(t)
		q.EXPECT().GetProductBySlug(ctx, product.Slug).Return(product, nil)
		q.EXPECT().GetOpenSubscription(ctx, db.GetOpenSubscriptionParams{Email: "omar@example.com", ProductID: product.ID}).
			Return(db.Subscription{}, pgx.ErrNoRows)
		q.EXPECT().CreateSubscription(ctx, db.CreateSubscriptionParams{
			Email:            "omar@example.com",
			Name:             "Omar",
			Plan:             constants.PlanWeekly,
			ProductID:        product.ID,
			Quantity:         1,
			NextDeliveryDate: pgtype.Date{Time: date(2025, 3, 21), Valid: true},
		}).Return(db.Subscription{ID: uuid.New(), Plan: constants.PlanWeekly, Status: constants.SubscriptionActive}, nil)

		sub, err := svc.CreateSubscription(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, constants.SubscriptionActive, sub.Status)
	})

	t.Run("open subscription is a duplicate", func(t *testing.T) {
		svc, q := newService(t)
		q.EXPECT().GetProductBySlug(ctx, product.Slug).Return(product, nil)
		q.EXPECT().GetOpenSubscription(ctx, gomock.Any()).Return(db.Subscription{ID: uuid.New()}, nil)

		_, err := svc.CreateSubscription(ctx, req)
		assert.ErrorIs(t, err, services.ErrDuplicateSubscription)
	})

	t.Run("unique violation race is a duplicate", func(t *testing.T) {
		svc, q := newService(t)
		q.EXPECT().GetProductBySlug(ctx, product.Slug).Return(product, nil)
		q.EXPECT().GetOpenSubscription(ctx, gomock.Any()).Return(db.Subscription{}, pgx.ErrNoRows)
		q.EXPECT().CreateSubscription(ctx, gomock.Any()).Return(db.Subscription{}, &pgconn.PgError{Code: "23505"})

		_, err := svc.CreateSubscription(ctx, req)
		assert.ErrorIs(t, err, services.ErrDuplicateSubscription)
	})

	t.Run("invalid plan", func(t *testing.T) {
		svc, _ := newService(t)
		bad := req
		bad.Plan = "yearly"
		_, err := svc.CreateSubscription(ctx, bad)
		assert.ErrorIs(t, err, services.ErrInvalidPlan)
	})

	t.Run("inactive product", func(t *testing.T) {
		svc, q := newService(t)
		inactive := product
		inactive.Active = false
		q.EXPECT().GetProductBySlug(ctx, product.Slug).Return(inactive, nil)

		_, err := svc.CreateSubscription(ctx, req)
		assert.ErrorIs(t, err, services.ErrProductUnavailable)
	})
}

func TestSubscriptionService_ApplyAction(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	scheduled := pgtype.Date{Time: date(2025, 3, 1), Valid: true}

	tests := []struct {
		name    string
		status  string
		action  string
		want    db.UpdateSubscriptionStatusParams
		wantErr error
	}{
		{
			name:   "pause active",
			status: constants.SubscriptionActive,
			action: constants.PauseAction,
			want:   db.UpdateSubscriptionStatusParams{ID: id, Status: constants.SubscriptionPaused, NextDeliveryDate: scheduled},
		},
		{
			name:   "resume paused recomputes date",
			status: constants.SubscriptionPaused,
			action: constants.ResumeAction,
			want: db.UpdateSubscriptionStatusParams{
				ID:               id,
				Status:           constants.SubscriptionActive,
				NextDeliveryDate: pgtype.Date{Time: date(2025, 4, 14), Valid: true},
			},
		},
		{
			name:   "cancel clears date",
			status: constants.SubscriptionPaused,
			action: constants.CancelAction,
			want:   db.UpdateSubscriptionStatusParams{ID: id, Status: constants.SubscriptionCancelled},
		},
		{
			name:    "resume active is rejected",
			status:  constants.SubscriptionActive,
			action:  constants.ResumeAction,
			wantErr: services.ErrInvalidSubscriptionTransition,
		},
		{
			name:    "cancelled is final",
			status:  constants.SubscriptionCancelled,
			action:  constants.CancelAction,
			wantErr: services.ErrInvalidSubscriptionTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mocks.NewMockQuerierForTest(t)
			svc := services.NewSubscriptionService(q).WithClock(func() time.Time { return fixedNow })

			q.EXPECT().GetSubscription(ctx, id).Return(db.Subscription{
				ID:               id,
				Plan:             constants.PlanMonthly,
				Status:           tt.status,
				NextDeliveryDate: scheduled,
			}, nil)

			if tt.wantErr != nil {
				_, err := svc.ApplyAction(ctx, id, tt.action)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			q.EXPECT().UpdateSubscriptionStatus(ctx, tt.want).Return(db.Subscription{ID: id, Status: tt.want.Status}, nil)
			sub, err := svc.ApplyAction(ctx, id, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Status, sub.Status)
		})
	}
}

func TestSubscriptionService_ListSubscriptions(t *testing.T) {
	ctx := context.Background()
	q := mocks.NewMockQuerierForTest(t)
	svc := services.NewSubscriptionService(q)

	_, _, err := svc.ListSubscriptions(ctx, params.ListSubscriptionsParams{Status: "expired"})
	assert.ErrorIs(t, err, services.ErrInvalidSubscriptionStatus)

	status := pgtype.Text{String: constants.SubscriptionPaused, Valid: true}
	q.EXPECT().ListSubscriptions(ctx, db.ListSubscriptionsParams{Status: status, Limit: 10}).Return([]db.Subscription{{}}, nil)
	q.EXPECT().CountSubscriptions(ctx, status).Return(int64(1), nil)

	subs, total, err := svc.ListSubscriptions(ctx, params.ListSubscriptionsParams{Status: constants.SubscriptionPaused, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, subs, 1)
	assert.Equal(t, int64(1), total)
}
