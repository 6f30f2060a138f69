package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/reachfood2024-code/reachfood-sub000/internal/constants"
	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/mocks"
	"github.com/reachfood2024-code/reachfood-sub000/internal/services"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
)

func TestTrackingService_Track(t *testing.T) {
	ctx := context.Background()

	t.Run("stores event with properties", func(t *testing.T) {
		q := mocks.NewMockQuerierForTest(t)
		svc := services.NewTrackingService(q)

		q.EXPECT().CreateTrackingEvent(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreateTrackingEventParams) (db.TrackingEvent, error) {
				assert.Equal(t, constants.EventAddToCart, arg.Event)
				assert.Equal(t, "sess-1", arg.SessionID)
				assert.Equal(t, "/products/premium-dates", arg.Page.String)
				assert.False(t, arg.Referrer.Valid)

				var props map[string]interface{}
				require.NoError(t, json.Unmarshal(arg.Properties, &props))
				assert.Equal(t, "premium-dates", props["slug"])
				return db.TrackingEvent{ID: 1}, nil
			})

		err := svc.Track(ctx, params.TrackEventParams{
			Event:      constants.EventAddToCart,
			SessionID:  "sess-1",
			Page:       "/products/premium-dates",
			Properties: map[string]interface{}{"slug": "premium-dates"},
		})
		require.NoError(t, err)
	})

	t.Run("nil properties become an empty object", func(t *testing.T) {
		q := mocks.NewMockQuerierForTest(t)
		svc := services.NewTrackingService(q)

		q.EXPECT().CreateTrackingEvent(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreateTrackingEventParams) (db.TrackingEvent, error) {
				assert.JSONEq(t, `{}`, string(arg.Properties))
				return db.TrackingEvent{}, nil
			})

		require.NoError(t, svc.Track(ctx, params.TrackEventParams{Event: constants.EventPageView, SessionID: "s"}))
	})

	t.Run("rejects unknown events and missing sessions", func(t *testing.T) {
		svc := services.NewTrackingService(mocks.NewMockQuerierForTest(t))

		err := svc.Track(ctx, params.TrackEventParams{Event: "checkout_hover", SessionID: "s"})
		assert.ErrorIs(t, err, services.ErrUnknownEvent)

		err = svc.Track(ctx, params.TrackEventParams{Event: constants.EventPageView, SessionID: "  "})
		assert.ErrorIs(t, err, services.ErrMissingSession)
	})

	t.Run("storage failure", func(t *testing.T) {
		q := mocks.NewMockQuerierForTest(t)
		svc := services.NewTrackingService(q)
		q.EXPECT().CreateTrackingEvent(ctx, gomock.Any()).Return(db.TrackingEvent{}, errors.New("disk full"))

		err := svc.Track(ctx, params.TrackEventParams{Event: constants.EventPageView, SessionID: "s"})
		require.Error(t, err)
		assert.False(t, services.IsValidationError(err))
	})
}
