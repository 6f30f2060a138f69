package responses

import "github.com/reachfood2024-code/reachfood-sub000/internal/chart"

// ChartSeriesResponse is one rendered series
type ChartSeriesResponse struct {
	Metric     string         `json:"metric"`
	Title      string         `json:"title"`
	Currency   string         `json:"currency,omitempty"`
	Labels     []string       `json:"labels"`
	Values     []float64      `json:"values"`
	Points     []chart.Point  `json:"points"`
	StrokePath string         `json:"stroke_path"`
	AreaPath   string         `json:"area_path"`
	Summary    *chart.Summary `json:"summary"`
}

// ChartResponse is the rendered dashboard chart for one metric
type ChartResponse struct {
	ChartSeriesResponse
	Days       int              `json:"days"`
	Dimensions chart.Dimensions `json:"dimensions"`
}

// CompareChartResponse holds several series drawn on a shared scale
type CompareChartResponse struct {
	Days       int                   `json:"days"`
	Dimensions chart.Dimensions      `json:"dimensions"`
	Series     []ChartSeriesResponse `json:"series"`
}

// RollupResponse acknowledges a scheduled rollup
type RollupResponse struct {
	Status string `json:"status"`
	Date   string `json:"date"`
}
