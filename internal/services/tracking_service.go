package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/constants"
	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
)

// TrackingService stores storefront analytics events
type TrackingService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewTrackingService creates a new tracking service
func NewTrackingService(queries db.Querier) *TrackingService {
	return &TrackingService{queries: queries, logger: logger.Log}
}

// Track validates and stores one event.
func (s *TrackingService) Track(ctx context.Context, p params.TrackEventParams) error {
	if !slices.Contains(constants.TrackingEvents, p.Event) {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, p.Event)
	}
	if strings.TrimSpace(p.SessionID) == "" {
		return ErrMissingSession
	}

	props := p.Properties
	if props == nil {
		props = map[string]interface{}{}
	}
	raw, err := json.Marshal(props)
	if err != nil {
		return fmt.Errorf("failed to encode properties: %w", err)
	}

	_, err = s.queries.CreateTrackingEvent(ctx, db.CreateTrackingEventParams{
		Event:      p.Event,
		SessionID:  p.SessionID,
		Page:       helpers.StringToNullableText(p.Page),
		Referrer:   helpers.StringToNullableText(p.Referrer),
		Properties: raw,
	})
	if err != nil {
		s.logger.Error("Failed to store tracking event", zap.String("event", p.Event), zap.Error(err))
		return fmt.Errorf("failed to store tracking event: %w", err)
	}

	return nil
}
