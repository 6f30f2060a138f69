package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
)

// MetricsScheduler runs the daily metrics rollup
type MetricsScheduler struct {
	metricsService *MetricsService
	logger         *zap.Logger
	timeout        time.Duration
	now            func() time.Time
	stopCh         chan struct{}
	wg             sync.WaitGroup
	stopOnce       sync.Once
	started        bool
	mu             sync.Mutex
}

// NewMetricsScheduler creates a new metrics scheduler
func NewMetricsScheduler(metricsService *MetricsService) *MetricsScheduler {
	return &MetricsScheduler{
		metricsService: metricsService,
		logger:         logger.Log,
		timeout:        2 * time.Minute,
		now:            time.Now,
		stopCh:         make(chan struct{}),
	}
}

// Start rolls up yesterday immediately, then again shortly after every
// UTC midnight. Calling Start more than once is a no-op.
func (s *MetricsScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	s.logger.Info("Starting metrics scheduler")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.rollupYesterday()
	}()

	s.wg.Add(1)
	go s.runDailySchedule()
}

// Stop gracefully shuts down the scheduler
func (s *MetricsScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping metrics scheduler")
		close(s.stopCh)
		s.wg.Wait()
	})
}

// untilNextRun is the delay until the next 00:05 UTC.
func untilNextRun(now time.Time) time.Duration {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 5, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

func (s *MetricsScheduler) runDailySchedule() {
	defer s.wg.Done()

	select {
	case <-time.After(untilNextRun(s.now())):
	case <-s.stopCh:
		return
	}

	s.rollupYesterday()

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.rollupYesterday()
		case <-s.stopCh:
			return
		}
	}
}

func (s *MetricsScheduler) rollupYesterday() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	yesterday := s.now().UTC().AddDate(0, 0, -1)
	s.logger.Info("Starting daily metrics rollup", zap.Time("date", yesterday))

	if _, err := s.metricsService.RollupDay(ctx, yesterday); err != nil {
		s.logger.Error("Failed to roll up daily metrics",
			zap.Time("date", yesterday),
			zap.Error(err),
		)
	}
}
