// Package chart renders smooth trend curves for the admin dashboard.
//
// A render is a pure function of an ordered sample sequence and the target
// pixel box: values are mapped onto a top-left origin canvas, joined with
// cubic Bezier segments whose control points come from a clamped
// Catmull-Rom tangent estimate, and closed against the baseline to produce
// a fillable area. Nothing is cached or shared between renders.
package chart

// Sample is one data point in a time series. Its position is its index in
// the slice handed to Render.
type Sample struct {
	Value float64 `json:"value"`
}

// Point is a position in pixel space. Y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dimensions describes the target canvas. PaddingX is applied on the left
// and the right, PaddingY on the top and the bottom.
type Dimensions struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	PaddingX float64 `json:"padding_x"`
	PaddingY float64 `json:"padding_y"`
}

// DrawWidth is the horizontal extent available to the curve.
func (d Dimensions) DrawWidth() float64 {
	return d.Width - 2*d.PaddingX
}

// DrawHeight is the vertical extent available to the curve.
func (d Dimensions) DrawHeight() float64 {
	return d.Height - 2*d.PaddingY
}

// Baseline is the Y coordinate the area path is closed against.
func (d Dimensions) Baseline() float64 {
	return d.Height - d.PaddingY
}

// SamplesFromValues wraps raw values as samples, preserving order.
func SamplesFromValues(values []float64) []Sample {
	samples := make([]Sample, len(values))
	for i, v := range values {
		samples[i] = Sample{Value: v}
	}
	return samples
}

func values(samples []Sample) []float64 {
	vs := make([]float64, len(samples))
	for i, s := range samples {
		vs[i] = s.Value
	}
	return vs
}
