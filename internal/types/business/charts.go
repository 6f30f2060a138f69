package business

import "github.com/reachfood2024-code/reachfood-sub000/internal/chart"

// ChartDataPoint represents a single data point for charts
type ChartDataPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
}

// ChartData is a daily series for one dashboard metric. Data is ordered
// oldest first and has one entry per day of the period.
type ChartData struct {
	Metric   string           `json:"metric"`
	Title    string           `json:"title"`
	Currency string           `json:"currency"`
	Data     []ChartDataPoint `json:"data"`
	Period   string           `json:"period"`
}

// Values returns the series values in order.
func (c ChartData) Values() []float64 {
	vs := make([]float64, len(c.Data))
	for i, p := range c.Data {
		vs[i] = p.Value
	}
	return vs
}

// Labels returns the series dates in order.
func (c ChartData) Labels() []string {
	ls := make([]string, len(c.Data))
	for i, p := range c.Data {
		ls[i] = p.Date
	}
	return ls
}

// RenderedChart is a metric series with its rendered geometry.
type RenderedChart struct {
	Data   ChartData
	Result chart.Result
}
