package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/interfaces"
)

// RollupRequest is the invocation payload. The scheduled rule sends an
// empty object, which rolls up yesterday.
type RollupRequest struct {
	Date string `json:"date,omitempty"`
}

// RollupResult is returned to the caller.
type RollupResult struct {
	Date    string `json:"date"`
	Metrics int    `json:"metrics"`
}

// Application holds all dependencies for the Lambda handler
type Application struct {
	metrics interfaces.MetricsService
	logger  *zap.Logger
	now     func() time.Time
}

// HandleRequest rolls up one day of metrics.
func (app *Application) HandleRequest(ctx context.Context, req RollupRequest) (RollupResult, error) {
	day := helpers.StartOfDay(app.now()).AddDate(0, 0, -1)
	if req.Date != "" {
		parsed, err := helpers.ParseDate(req.Date)
		if err != nil {
			return RollupResult{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
		day = parsed
	}

	app.logger.Info("Rolling up daily metrics", zap.String("date", helpers.DateKey(day)))

	rollup, err := app.metrics.RollupDay(ctx, day)
	if err != nil {
		app.logger.Error("Daily metrics rollup failed", zap.String("date", helpers.DateKey(day)), zap.Error(err))
		return RollupResult{}, fmt.Errorf("rollup %s: %w", helpers.DateKey(day), err)
	}

	return RollupResult{Date: helpers.DateKey(day), Metrics: len(rollup.Values)}, nil
}
