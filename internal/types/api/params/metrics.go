package params

import "github.com/reachfood2024-code/reachfood-sub000/internal/chart"

// ChartParams selects a dashboard chart
type ChartParams struct {
	Metric     string
	Currency   string
	Days       int
	Dimensions chart.Dimensions
}

// CompareChartParams selects several metrics drawn on a shared scale
type CompareChartParams struct {
	Metrics    []string
	Currency   string
	Days       int
	Dimensions chart.Dimensions
}
