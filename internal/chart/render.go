package chart

import "sort"

// Result is the geometry and summary for one series.
type Result struct {
	Dimensions Dimensions `json:"dimensions"`
	Points     []Point    `json:"points"`
	Stroke     Path       `json:"-"`
	Area       Path       `json:"-"`
	// Summary is nil when there were no samples.
	Summary *Summary `json:"summary"`
}

// Option tunes a render.
type Option func(*renderOptions)

type renderOptions struct {
	tension float64
}

// WithTension overrides DefaultTension.
func WithTension(t float64) Option {
	return func(o *renderOptions) {
		o.tension = t
	}
}

func buildOptions(opts []Option) renderOptions {
	o := renderOptions{tension: DefaultTension}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Render maps samples into dims and builds the stroke and area paths.
// Empty input yields an empty result with a nil summary. Non-finite values
// are not sanitized and produce NaN geometry.
func Render(samples []Sample, dims Dimensions, opts ...Option) Result {
	vs := values(samples)
	return renderWithScale(vs, NewScale(vs, dims), dims, buildOptions(opts))
}

func renderWithScale(vs []float64, scale Scale, dims Dimensions, o renderOptions) Result {
	res := Result{Dimensions: dims, Points: scale.Project(vs)}
	if len(vs) == 0 {
		return res
	}

	res.Stroke = Spline(res.Points, o.tension)
	res.Area = Area(res.Stroke, dims.Baseline())

	summary := Summarize(vs)
	res.Summary = &summary

	return res
}

// RenderSeries renders several series against one shared value scale so
// their curves can be compared on the same canvas. Each series keeps its
// own horizontal spacing.
func RenderSeries(series map[string][]Sample, dims Dimensions, opts ...Option) map[string]Result {
	var all []float64
	for _, name := range SeriesNames(series) {
		all = append(all, values(series[name])...)
	}

	scale := NewScale(all, dims)
	o := buildOptions(opts)

	out := make(map[string]Result, len(series))
	for name, samples := range series {
		out[name] = renderWithScale(values(samples), scale, dims, o)
	}
	return out
}

// SeriesNames returns the keys of series in sorted order.
func SeriesNames[T any](series map[string]T) []string {
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
