package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
	"github.com/reachfood2024-code/reachfood-sub000/internal/mocks"
)

func init() {
	logger.InitLogger("test")
}

func TestUntilNextRun(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"before today's run", time.Date(2025, 3, 14, 0, 3, 0, 0, time.UTC), 2 * time.Minute},
		{"exactly at run time", time.Date(2025, 3, 14, 0, 5, 0, 0, time.UTC), 24 * time.Hour},
		{"mid afternoon", time.Date(2025, 3, 14, 15, 5, 0, 0, time.UTC), 9 * time.Hour},
		{"non UTC input", time.Date(2025, 3, 14, 4, 0, 0, 0, time.FixedZone("GST", 4*3600)), 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, untilNextRun(tt.now))
		})
	}
}

func TestMetricsScheduler_StartRollsUpYesterday(t *testing.T) {
	q := mocks.NewMockQuerierForTest(t)
	tx := &mocks.InlineTxRunner{Queries: q}
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	done := make(chan struct{})
	q.EXPECT().OrderTotalsByCurrency(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w db.TimeWindowParams) ([]db.OrderTotalsByCurrencyRow, error) {
			assert.Equal(t, time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), w.From.Time)
			return nil, nil
		})
	q.EXPECT().TrackingTotalsByEvent(gomock.Any(), gomock.Any()).Return(nil, nil)
	q.EXPECT().CountDistinctSessions(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	q.EXPECT().CountSubscriptionsCreated(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	q.EXPECT().UpsertDailyMetric(gomock.Any(), gomock.Any()).Return(nil).Times(14)
	svc := NewMetricsService(q, tx).WithClock(func() time.Time { return now })

	s := NewMetricsScheduler(svc)
	s.now = func() time.Time { return now }

	s.Start()
	s.Start()
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	s.Stop()
	assert.Equal(t, 1, tx.Calls)
}
