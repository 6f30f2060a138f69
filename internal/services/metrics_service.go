package services

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/chart"
	"github.com/reachfood2024-code/reachfood-sub000/internal/constants"
	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/business"
)

const (
	// ChartCacheTTL is how long a rendered chart is served from memory.
	ChartCacheTTL = time.Minute
	// MaxChartDays bounds the chart and summary window.
	MaxChartDays = 365
)

type metricDef struct {
	title string
	money bool
}

var metricDefs = map[string]metricDef{
	constants.MetricRevenue:           {title: "Revenue", money: true},
	constants.MetricOrders:            {title: "Orders"},
	constants.MetricAverageOrderValue: {title: "Average order value", money: true},
	constants.MetricPageViews:         {title: "Page views"},
	constants.MetricSessions:          {title: "Sessions"},
	constants.MetricSubscriptions:     {title: "New subscriptions"},
	constants.MetricAddToCart:         {title: "Add to cart"},
}

// MetricsService rolls tracked activity up into daily_metrics and renders
// dashboard charts from it.
type MetricsService struct {
	queries  db.Querier
	txRunner db.TxRunner
	cache    *cache.Cache
	logger   *zap.Logger
	now      func() time.Time
}

// RollupConflictRetries bounds replays of a rollup transaction that loses a
// write conflict on daily_metrics.
const RollupConflictRetries = 3

// NewMetricsService creates a new metrics service
func NewMetricsService(queries db.Querier, txRunner db.TxRunner) *MetricsService {
	return &MetricsService{
		queries:  queries,
		txRunner: txRunner,
		cache:    cache.New(ChartCacheTTL, 5*ChartCacheTTL),
		logger:   logger.Log,
		now:      time.Now,
	}
}

// WithClock overrides the service clock.
func (s *MetricsService) WithClock(now func() time.Time) *MetricsService {
	s.now = now
	return s
}

// IsChartMetric reports whether metric can be charted.
func IsChartMetric(metric string) bool {
	_, ok := metricDefs[metric]
	return ok
}

// SeriesCurrency picks the daily_metrics currency a metric is read from.
// Money metrics default to USD; orders may be filtered by currency; the
// rest are currency independent.
func SeriesCurrency(metric, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	switch {
	case metricDefs[metric].money:
		if currency == "" || currency == constants.AllCurrencies {
			return constants.USDCurrency
		}
		return currency
	case metric == constants.MetricOrders && currency != "":
		return currency
	default:
		return constants.AllCurrencies
	}
}

// RollupDay aggregates the activity of one UTC day and upserts it into
// daily_metrics. Re-running a day overwrites its values.
func (s *MetricsService) RollupDay(ctx context.Context, day time.Time) (*business.DailyRollup, error) {
	start := helpers.StartOfDay(day)
	window := db.TimeWindowParams{
		From: helpers.TimeToNullableTimestamptz(start),
		To:   helpers.TimeToNullableTimestamptz(start.AddDate(0, 0, 1)),
	}

	orderRows, err := s.queries.OrderTotalsByCurrency(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to total orders: %w", err)
	}
	eventRows, err := s.queries.TrackingTotalsByEvent(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to total tracking events: %w", err)
	}
	sessions, err := s.queries.CountDistinctSessions(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}
	subscriptions, err := s.queries.CountSubscriptionsCreated(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	rollup := &business.DailyRollup{
		Date:   start,
		Values: BuildRollupValues(orderRows, eventRows, sessions, subscriptions),
	}

	err = s.txRunner.RunInTx(ctx, func(q db.Querier) error {
		for _, v := range rollup.Values {
			if err := q.UpsertDailyMetric(ctx, db.UpsertDailyMetricParams{
				MetricDate: helpers.TimeToDate(start),
				Metric:     v.Metric,
				Currency:   v.Currency,
				Value:      v.Value,
			}); err != nil {
				return fmt.Errorf("failed to upsert %s/%s: %w", v.Metric, v.Currency, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Flush()

	s.logger.Info("Daily metrics rolled up",
		zap.String("date", helpers.DateKey(start)),
		zap.Int("values", len(rollup.Values)))

	return rollup, nil
}

// BuildRollupValues turns the raw daily aggregates into daily_metrics rows.
// Every supported currency gets a row so a re-run can zero out a day.
func BuildRollupValues(orders []db.OrderTotalsByCurrencyRow, events []db.TrackingTotalsByEventRow, sessions, subscriptions int64) []business.MetricValue {
	byCurrency := make(map[string]db.OrderTotalsByCurrencyRow, len(orders))
	currencies := slices.Clone(constants.SupportedCurrencies)
	for _, row := range orders {
		byCurrency[row.Currency] = row
		if !slices.Contains(currencies, row.Currency) {
			currencies = append(currencies, row.Currency)
		}
	}

	var values []business.MetricValue
	var allOrders int64
	for _, currency := range currencies {
		row := byCurrency[currency]
		allOrders += row.Orders

		var aov int64
		if row.Orders > 0 {
			aov = int64(math.Round(float64(row.RevenueCents) / float64(row.Orders)))
		}

		values = append(values,
			business.MetricValue{Metric: constants.MetricOrders, Currency: currency, Value: row.Orders},
			business.MetricValue{Metric: constants.MetricRevenue, Currency: currency, Value: row.RevenueCents},
			business.MetricValue{Metric: constants.MetricAverageOrderValue, Currency: currency, Value: aov},
		)
	}

	eventCount := make(map[string]int64, len(events))
	for _, row := range events {
		eventCount[row.Event] = row.Events
	}

	return append(values,
		business.MetricValue{Metric: constants.MetricOrders, Currency: constants.AllCurrencies, Value: allOrders},
		business.MetricValue{Metric: constants.MetricPageViews, Currency: constants.AllCurrencies, Value: eventCount[constants.EventPageView]},
		business.MetricValue{Metric: constants.MetricAddToCart, Currency: constants.AllCurrencies, Value: eventCount[constants.EventAddToCart]},
		business.MetricValue{Metric: constants.MetricSessions, Currency: constants.AllCurrencies, Value: sessions},
		business.MetricValue{Metric: constants.MetricSubscriptions, Currency: constants.AllCurrencies, Value: subscriptions},
	)
}

// window returns the first and last day of a days-long window ending today.
func (s *MetricsService) window(days int) (time.Time, time.Time, error) {
	if days < 1 || days > MaxChartDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidDateRange, MaxChartDays)
	}
	end := helpers.StartOfDay(s.now())
	return end.AddDate(0, 0, -(days - 1)), end, nil
}

// GetSeries loads one metric as a daily series, oldest first. Days without
// a rollup are reported as zero. Money metrics are in major units.
func (s *MetricsService) GetSeries(ctx context.Context, metric, currency string, days int) (*business.ChartData, error) {
	def, ok := metricDefs[metric]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	from, to, err := s.window(days)
	if err != nil {
		return nil, err
	}

	currency = SeriesCurrency(metric, currency)
	rows, err := s.queries.ListDailyMetrics(ctx, db.ListDailyMetricsParams{
		Metric:   metric,
		Currency: currency,
		FromDate: helpers.TimeToDate(from),
		ToDate:   helpers.TimeToDate(to),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s series: %w", metric, err)
	}

	byDay := make(map[string]int64, len(rows))
	for _, row := range rows {
		byDay[helpers.DateKey(row.MetricDate.Time)] = row.Value
	}

	data := &business.ChartData{
		Metric:   metric,
		Title:    def.title,
		Currency: currency,
		Period:   fmt.Sprintf("%dd", days),
		Data:     make([]business.ChartDataPoint, 0, days),
	}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := helpers.DateKey(day)
		value := float64(byDay[key])
		point := business.ChartDataPoint{Date: key, Value: value}
		if def.money {
			point.Value = value / 100
			point.Label = helpers.FormatMoney(byDay[key], currency)
		}
		data.Data = append(data.Data, point)
	}

	return data, nil
}

// RenderChart loads a metric series and renders it. Results are cached for
// ChartCacheTTL per distinct query.
func (s *MetricsService) RenderChart(ctx context.Context, p params.ChartParams) (*business.RenderedChart, error) {
	key := fmt.Sprintf("chart:%s:%s:%d:%v", p.Metric, SeriesCurrency(p.Metric, p.Currency), p.Days, p.Dimensions)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*business.RenderedChart), nil
	}

	data, err := s.GetSeries(ctx, p.Metric, p.Currency, p.Days)
	if err != nil {
		return nil, err
	}

	rendered := &business.RenderedChart{
		Data:   *data,
		Result: chart.Render(chart.SamplesFromValues(data.Values()), p.Dimensions),
	}
	s.cache.SetDefault(key, rendered)
	return rendered, nil
}

// CompareCharts renders several metrics against one shared value scale.
func (s *MetricsService) CompareCharts(ctx context.Context, p params.CompareChartParams) ([]business.RenderedChart, error) {
	if len(p.Metrics) == 0 {
		return nil, fmt.Errorf("%w: no metrics requested", ErrUnknownMetric)
	}

	key := fmt.Sprintf("compare:%s:%s:%d:%v", strings.Join(p.Metrics, ","), p.Currency, p.Days, p.Dimensions)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]business.RenderedChart), nil
	}

	series := make(map[string][]chart.Sample, len(p.Metrics))
	data := make(map[string]*business.ChartData, len(p.Metrics))
	for _, metric := range p.Metrics {
		if _, dup := data[metric]; dup {
			continue
		}
		d, err := s.GetSeries(ctx, metric, p.Currency, p.Days)
		if err != nil {
			return nil, err
		}
		data[metric] = d
		series[metric] = chart.SamplesFromValues(d.Values())
	}

	results := chart.RenderSeries(series, p.Dimensions)

	out := make([]business.RenderedChart, 0, len(data))
	for _, metric := range p.Metrics {
		d, ok := data[metric]
		if !ok {
			continue
		}
		out = append(out, business.RenderedChart{Data: *d, Result: results[metric]})
		delete(data, metric)
	}

	s.cache.SetDefault(key, out)
	return out, nil
}

// GetSummary totals the rolled-up metrics over the last days days.
func (s *MetricsService) GetSummary(ctx context.Context, days int) (*business.MetricsSummary, error) {
	from, to, err := s.window(days)
	if err != nil {
		return nil, err
	}

	rows, err := s.queries.SumDailyMetrics(ctx, db.SumDailyMetricsParams{
		FromDate: helpers.TimeToDate(from),
		ToDate:   helpers.TimeToDate(to),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum daily metrics: %w", err)
	}

	summary := &business.MetricsSummary{
		From:              from,
		To:                to,
		Days:              days,
		RevenueByCurrency: make(map[string]business.MoneyAmount),
	}

	for _, row := range rows {
		switch {
		case row.Metric == constants.MetricRevenue && row.Currency != constants.AllCurrencies:
			if row.Total > 0 {
				summary.RevenueByCurrency[row.Currency] = helpers.NewMoneyAmount(row.Total, row.Currency)
			}
		case row.Currency != constants.AllCurrencies:
			continue
		case row.Metric == constants.MetricOrders:
			summary.Orders = row.Total
		case row.Metric == constants.MetricPageViews:
			summary.PageViews = row.Total
		case row.Metric == constants.MetricSessions:
			summary.Sessions = row.Total
		case row.Metric == constants.MetricAddToCart:
			summary.AddToCart = row.Total
		case row.Metric == constants.MetricSubscriptions:
			summary.NewSubscriptions = row.Total
		}
	}

	if summary.Sessions > 0 {
		summary.ConversionRate = math.Round(float64(summary.Orders)/float64(summary.Sessions)*10000) / 100
	}

	return summary, nil
}
