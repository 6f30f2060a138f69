package chart

// DefaultTension is the Catmull-Rom tangent scale used by the dashboard.
const DefaultTension = 0.3

// Spline builds a smooth stroke path through points using cubic Bezier
// segments. Control points come from a Catmull-Rom tangent estimate with a
// clamped boundary: the first segment reuses p1 as its previous neighbour and
// the last segment reuses p2 as its next one.
//
// Fewer than two points yield an empty path.
func Spline(points []Point, tension float64) Path {
	if len(points) < 2 {
		return nil
	}

	path := make(Path, 0, len(points))
	path = path.MoveTo(points[0])

	for i := 0; i < len(points)-1; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, len(points)-1)]

		cp1 := Point{
			X: p1.X + (p2.X-p0.X)*tension,
			Y: p1.Y + (p2.Y-p0.Y)*tension,
		}
		cp2 := Point{
			X: p2.X - (p3.X-p1.X)*tension,
			Y: p2.Y - (p3.Y-p1.Y)*tension,
		}

		path = path.CurveTo(cp1, cp2, p2)
	}

	return path
}
