package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/reachfood2024-code/reachfood-sub000/internal/constants"
	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/services"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/requests"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/responses"
)

func testSubscription(status string) db.Subscription {
	return db.Subscription{
		ID:               uuid.New(),
		Email:            "omar@example.com",
		Name:             "Omar",
		Plan:             constants.PlanWeekly,
		ProductID:        uuid.New(),
		Quantity:         2,
		Status:           status,
		NextDeliveryDate: pgtype.Date{Time: fixedNow.AddDate(0, 0, 7), Valid: true},
	}
}

func TestSubscriptionHandler_CreateSubscription(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "duplicate", err: services.ErrDuplicateSubscription, wantStatus: http.StatusConflict},
		{name: "bad plan", err: services.ErrInvalidPlan, wantStatus: http.StatusBadRequest},
		{name: "unknown product", err: pgx.ErrNoRows, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.router.POST("/subscriptions", NewSubscriptionHandler(env.common).CreateSubscription)

			sub := testSubscription(constants.SubscriptionActive)
			call := env.subscriptions.EXPECT().CreateSubscription(gomock.Any(), params.CreateSubscriptionParams{
				Email:       "omar@example.com",
				Name:        "Omar",
				Plan:        constants.PlanWeekly,
				ProductSlug: "family-box",
				Quantity:    2,
			})
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&sub, nil)
			}

			w := env.do(t, http.MethodPost, "/subscriptions", requests.CreateSubscriptionRequest{
				Email:       "omar@example.com",
				Name:        "Omar",
				Plan:        constants.PlanWeekly,
				ProductSlug: "family-box",
				Quantity:    2,
			})
			mustStatus(t, w, tt.wantStatus)

			if tt.err == nil {
				resp := decode[responses.SubscriptionResponse](t, w)
				assert.Equal(t, "subscription", resp.Object)
				assert.Equal(t, "2025-03-21", resp.NextDeliveryDate)
			}
		})
	}
}

func TestSubscriptionHandler_ListSubscriptions(t *testing.T) {
	env := newTestEnv(t)
	env.router.GET("/admin/subscriptions", NewSubscriptionHandler(env.common).ListSubscriptions)

	env.subscriptions.EXPECT().
		ListSubscriptions(gomock.Any(), params.ListSubscriptionsParams{Status: "paused", Limit: 20}).
		Return([]db.Subscription{testSubscription(constants.SubscriptionPaused)}, int64(1), nil)

	w := env.do(t, http.MethodGet, "/admin/subscriptions?status=paused", nil)
	mustStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), `"status":"paused"`)
}

func TestSubscriptionHandler_ApplyAction(t *testing.T) {
	sub := testSubscription(constants.SubscriptionPaused)

	tests := []struct {
		name       string
		path       string
		setup      func(env *testEnv)
		wantStatus int
	}{
		{
			name: "pause",
			path: "/admin/subscriptions/" + sub.ID.String() + "/pause",
			setup: func(env *testEnv) {
				env.subscriptions.EXPECT().ApplyAction(gomock.Any(), sub.ID, constants.PauseAction).Return(&sub, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "cancelled subscriptions cannot resume",
			path: "/admin/subscriptions/" + sub.ID.String() + "/resume",
			setup: func(env *testEnv) {
				env.subscriptions.EXPECT().
					ApplyAction(gomock.Any(), sub.ID, constants.ResumeAction).
					Return(nil, services.ErrInvalidSubscriptionTransition)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown action",
			path:       "/admin/subscriptions/" + sub.ID.String() + "/upgrade",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad id",
			path:       "/admin/subscriptions/42/pause",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing subscription",
			path: "/admin/subscriptions/" + sub.ID.String() + "/cancel",
			setup: func(env *testEnv) {
				env.subscriptions.EXPECT().
					ApplyAction(gomock.Any(), sub.ID, constants.CancelAction).
					Return(nil, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.router.POST("/admin/subscriptions/:id/:action", NewSubscriptionHandler(env.common).ApplyAction)
			if tt.setup != nil {
				tt.setup(env)
			}

			w := env.do(t, http.MethodPost, tt.path, nil)
			mustStatus(t, w, tt.wantStatus)
		})
	}
}
