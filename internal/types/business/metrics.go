package business

import "time"

// MetricsSummary totals the dashboard metrics over a window.
type MetricsSummary struct {
	From              time.Time              `json:"from"`
	To                time.Time              `json:"to"`
	Days              int                    `json:"days"`
	Orders            int64                  `json:"orders"`
	PageViews         int64                  `json:"page_views"`
	Sessions          int64                  `json:"sessions"`
	AddToCart         int64                  `json:"add_to_cart"`
	NewSubscriptions  int64                  `json:"new_subscriptions"`
	ConversionRate    float64                `json:"conversion_rate"`
	RevenueByCurrency map[string]MoneyAmount `json:"revenue_by_currency"`
}

// DailyRollup is the set of values written for one day.
type DailyRollup struct {
	Date   time.Time
	Values []MetricValue
}

// MetricValue is one daily_metrics row.
type MetricValue struct {
	Metric   string
	Currency string
	Value    int64
}
