package chart

// Scale maps sample values and indexes onto the canvas. It is derived from
// the current sample set and lives for a single render.
type Scale struct {
	dims Dimensions
	min  float64
	max  float64
	span float64
	flat bool
}

// NewScale computes the value range of vs. A zero range (identical values or
// a single sample) is replaced by 1 and the curve collapses onto the
// vertical centre of the drawable area.
func NewScale(vs []float64, dims Dimensions) Scale {
	s := Scale{dims: dims, span: 1}
	if len(vs) == 0 {
		s.flat = true
		return s
	}

	s.min, s.max = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}

	if span := s.max - s.min; span != 0 {
		s.span = span
	} else {
		s.flat = true
	}

	return s
}

// Min returns the smallest value seen by the scale.
func (s Scale) Min() float64 { return s.min }

// Max returns the largest value seen by the scale.
func (s Scale) Max() float64 { return s.max }

// Range returns max-min, or 1 when the input has no spread.
func (s Scale) Range() float64 { return s.span }

// ValueToY maps a value to its vertical pixel coordinate. Larger values
// land higher on screen.
func (s Scale) ValueToY(v float64) float64 {
	if s.flat {
		return s.dims.PaddingY + s.dims.DrawHeight()/2
	}
	return s.dims.PaddingY + (1-(v-s.min)/s.span)*s.dims.DrawHeight()
}

// XForIndex spreads n points evenly across the drawable width. A lone point
// sits on the left edge.
func (s Scale) XForIndex(i, n int) float64 {
	if n <= 1 {
		return s.dims.PaddingX
	}
	return s.dims.PaddingX + float64(i)/float64(n-1)*s.dims.DrawWidth()
}

// Project maps every value to a canvas point in input order.
func (s Scale) Project(vs []float64) []Point {
	points := make([]Point, len(vs))
	for i, v := range vs {
		points[i] = Point{X: s.XForIndex(i, len(vs)), Y: s.ValueToY(v)}
	}
	return points
}
