package chart

import "math"

// Summary holds the figures shown next to a chart. Average is rounded half
// away from zero.
type Summary struct {
	Total   float64 `json:"total"`
	Average int64   `json:"average"`
	Minimum float64 `json:"minimum"`
	Maximum float64 `json:"maximum"`
	Latest  float64 `json:"latest"`
}

// Summarize aggregates raw sample values. vs must not be empty; callers
// check the length first and Summarize panics otherwise.
func Summarize(vs []float64) Summary {
	if len(vs) == 0 {
		panic("chart: Summarize called with no values")
	}

	s := Summary{
		Minimum: vs[0],
		Maximum: vs[0],
		Latest:  vs[len(vs)-1],
	}
	for _, v := range vs {
		s.Total += v
		s.Minimum = math.Min(s.Minimum, v)
		s.Maximum = math.Max(s.Maximum, v)
	}
	s.Average = int64(math.Round(s.Total / float64(len(vs))))

	return s
}
