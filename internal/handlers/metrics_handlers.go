package handlers

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/chart"
	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
	"github.com/reachfood2024-code/reachfood-sub000/internal/middleware"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/responses"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/business"
)

const (
	defaultMetricsDays = 30
	maxCompareSeries   = 4
	svgContentType     = "image/svg+xml"
	rollupTimeout      = 2 * time.Minute
)

// DefaultChartDimensions is used for any dimension the query leaves out.
var DefaultChartDimensions = chart.Dimensions{Width: 600, Height: 240, PaddingX: 8, PaddingY: 16}

// MetricsHandler serves the admin dashboard metrics and charts
type MetricsHandler struct {
	common   *CommonServices
	now      func() time.Time
	runAsync func(func())
}

// NewMetricsHandler creates a new MetricsHandler instance
func NewMetricsHandler(common *CommonServices) *MetricsHandler {
	return &MetricsHandler{
		common:   common,
		now:      time.Now,
		runAsync: func(fn func()) { go fn() },
	}
}

// GetSummary godoc
// @Summary Metrics summary
// @Description Totals of the rolled-up metrics over the last days days
// @Tags admin
// @Produce json
// @Param days query int false "Window in days (default 30, max 365)"
// @Success 200 {object} business.MetricsSummary
// @Failure 400 {object} responses.ErrorResponse
// @Security AdminKey
// @Router /admin/metrics/summary [get]
func (h *MetricsHandler) GetSummary(c *gin.Context) {
	days, err := queryInt(c, "days", defaultMetricsDays)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	summary, err := h.common.Metrics.GetSummary(c.Request.Context(), days)
	if err != nil {
		handleServiceError(c, err, "Metrics not found")
		return
	}

	sendSuccess(c, http.StatusOK, summary)
}

// GetChart godoc
// @Summary Render a metric chart
// @Description Daily series of one metric rendered as a smooth curve, as JSON geometry or an SVG document
// @Tags admin
// @Produce json,image/svg+xml
// @Param metric path string true "revenue, orders, average_order_value, page_views, sessions, subscriptions or add_to_cart"
// @Param days query int false "Window in days (default 30, max 365)"
// @Param currency query string false "Currency of money metrics (default USD)"
// @Param width query number false "Canvas width"
// @Param height query number false "Canvas height"
// @Param padding_x query number false "Horizontal padding"
// @Param padding_y query number false "Vertical padding"
// @Param format query string false "json or svg"
// @Success 200 {object} responses.ChartResponse
// @Failure 400 {object} responses.ErrorResponse
// @Security AdminKey
// @Router /admin/metrics/charts/{metric} [get]
func (h *MetricsHandler) GetChart(c *gin.Context) {
	q, err := parseChartQuery(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	rendered, err := h.common.Metrics.RenderChart(c.Request.Context(), params.ChartParams{
		Metric:     c.Param("metric"),
		Currency:   c.Query("currency"),
		Days:       q.days,
		Dimensions: q.dims,
	})
	if err != nil {
		handleServiceError(c, err, "Metric not found")
		return
	}

	if q.svg {
		style := chart.DefaultStyle
		style.Title = rendered.Data.Title
		c.Data(http.StatusOK, svgContentType, chart.SVG(rendered.Result, style))
		return
	}

	sendSuccess(c, http.StatusOK, responses.ChartResponse{
		ChartSeriesResponse: toSeriesResponse(*rendered),
		Days:                q.days,
		Dimensions:          q.dims,
	})
}

// CompareCharts godoc
// @Summary Compare metrics
// @Description Several metrics rendered against one shared value scale
// @Tags admin
// @Produce json,image/svg+xml
// @Param series query string true "Comma separated metrics, e.g. orders,page_views"
// @Param days query int false "Window in days (default 30, max 365)"
// @Param currency query string false "Currency of money metrics (default USD)"
// @Param format query string false "json or svg"
// @Success 200 {object} responses.CompareChartResponse
// @Failure 400 {object} responses.ErrorResponse
// @Security AdminKey
// @Router /admin/metrics/charts/compare [get]
func (h *MetricsHandler) CompareCharts(c *gin.Context) {
	q, err := parseChartQuery(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	var metrics []string
	for _, m := range strings.Split(c.Query("series"), ",") {
		if m = strings.TrimSpace(m); m != "" {
			metrics = append(metrics, m)
		}
	}
	if len(metrics) == 0 || len(metrics) > maxCompareSeries {
		sendError(c, http.StatusBadRequest, fmt.Sprintf("series must name 1 to %d metrics", maxCompareSeries), nil)
		return
	}

	charts, err := h.common.Metrics.CompareCharts(c.Request.Context(), params.CompareChartParams{
		Metrics:    metrics,
		Currency:   c.Query("currency"),
		Days:       q.days,
		Dimensions: q.dims,
	})
	if err != nil {
		handleServiceError(c, err, "Metric not found")
		return
	}

	if q.svg {
		layers := make([]chart.Layer, len(charts))
		titles := make([]string, len(charts))
		for i, rc := range charts {
			layers[i] = chart.Layer{Result: rc.Result, Style: chart.SeriesStyle(i)}
			titles[i] = rc.Data.Title
		}
		c.Data(http.StatusOK, svgContentType, chart.SVGLayers(q.dims, strings.Join(titles, " vs "), "", layers...))
		return
	}

	resp := responses.CompareChartResponse{
		Days:       q.days,
		Dimensions: q.dims,
		Series:     make([]responses.ChartSeriesResponse, 0, len(charts)),
	}
	for _, rc := range charts {
		resp.Series = append(resp.Series, toSeriesResponse(rc))
	}
	sendSuccess(c, http.StatusOK, resp)
}

// TriggerRollup godoc
// @Summary Roll up one day
// @Description Schedules the daily metrics rollup for date (default yesterday, UTC)
// @Tags admin
// @Produce json
// @Param date query string false "Day to roll up, YYYY-MM-DD"
// @Success 202 {object} responses.RollupResponse
// @Failure 400 {object} responses.ErrorResponse
// @Security AdminKey
// @Router /admin/metrics/rollup [post]
func (h *MetricsHandler) TriggerRollup(c *gin.Context) {
	day := helpers.StartOfDay(h.now()).AddDate(0, 0, -1)
	if s := c.Query("date"); s != "" {
		parsed, err := helpers.ParseDate(s)
		if err != nil {
			sendError(c, http.StatusBadRequest, "date must be YYYY-MM-DD", err)
			return
		}
		day = parsed
	}
	if day.After(h.now()) {
		sendError(c, http.StatusBadRequest, "date must not be in the future", nil)
		return
	}

	log := middleware.LogWithCorrelationID(c.Request.Context())
	parent := context.WithoutCancel(c.Request.Context())
	h.runAsync(func() {
		ctx, cancel := context.WithTimeout(parent, rollupTimeout)
		defer cancel()
		if _, err := h.common.Metrics.RollupDay(ctx, day); err != nil {
			log.Error("Manual metrics rollup failed", zap.String("date", helpers.DateKey(day)), zap.Error(err))
		}
	})

	logger.Info("Metrics rollup scheduled", zap.String("date", helpers.DateKey(day)))
	sendSuccess(c, http.StatusAccepted, responses.RollupResponse{Status: "accepted", Date: helpers.DateKey(day)})
}

type chartQuery struct {
	days int
	dims chart.Dimensions
	svg  bool
}

func parseChartQuery(c *gin.Context) (chartQuery, error) {
	q := chartQuery{dims: DefaultChartDimensions}

	var err error
	if q.days, err = queryInt(c, "days", defaultMetricsDays); err != nil {
		return q, err
	}

	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"width", &q.dims.Width},
		{"height", &q.dims.Height},
		{"padding_x", &q.dims.PaddingX},
		{"padding_y", &q.dims.PaddingY},
	} {
		raw := c.Query(f.name)
		if raw == "" {
			continue
		}
		v, err := cast.ToFloat64E(raw)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return q, fmt.Errorf("%s must be a number", f.name)
		}
		*f.dst = v
	}

	if q.dims.Width < 50 || q.dims.Width > 4000 || q.dims.Height < 50 || q.dims.Height > 4000 {
		return q, fmt.Errorf("width and height must be between 50 and 4000")
	}
	if q.dims.PaddingX < 0 || q.dims.PaddingY < 0 || q.dims.DrawWidth() <= 0 || q.dims.DrawHeight() <= 0 {
		return q, fmt.Errorf("padding must leave a drawable area")
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
	case "svg":
		q.svg = true
	default:
		return q, fmt.Errorf("format must be json or svg")
	}

	return q, nil
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	// Atoi keeps "010" decimal; cast would read it as octal.
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func toSeriesResponse(rc business.RenderedChart) responses.ChartSeriesResponse {
	return responses.ChartSeriesResponse{
		Metric:     rc.Data.Metric,
		Title:      rc.Data.Title,
		Currency:   rc.Data.Currency,
		Labels:     rc.Data.Labels(),
		Values:     rc.Data.Values(),
		Points:     rc.Result.Points,
		StrokePath: rc.Result.Stroke.String(),
		AreaPath:   rc.Result.Area.String(),
		Summary:    rc.Result.Summary,
	}
}
