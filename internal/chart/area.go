package chart

// Area closes a stroke path against baselineY so it can be filled. The
// stroke is copied, never modified. An empty stroke gives an empty area.
func Area(stroke Path, baselineY float64) Path {
	first, ok := stroke.Start()
	if !ok {
		return nil
	}
	last, _ := stroke.End()

	area := make(Path, len(stroke), len(stroke)+3)
	copy(area, stroke)

	return area.
		LineTo(Point{X: last.X, Y: baselineY}).
		LineTo(Point{X: first.X, Y: baselineY}).
		Close()
}
