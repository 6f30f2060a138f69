package chart_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reachfood2024-code/reachfood-sub000/internal/chart"
)

var dashboardDims = chart.Dimensions{Width: 400, Height: 200, PaddingX: 8, PaddingY: 16}

func TestRender_ConcreteScenario(t *testing.T) {
	dims := chart.Dimensions{Width: 100, Height: 100}
	res := chart.Render(chart.SamplesFromValues([]float64{0, 10, 5}), dims)

	require.Len(t, res.Points, 3)
	wantX := []float64{0, 50, 100}
	wantY := []float64{100, 0, 50}
	for i, pt := range res.Points {
		assert.InDelta(t, wantX[i], pt.X, 1e-9, "x[%d]", i)
		assert.InDelta(t, wantY[i], pt.Y, 1e-9, "y[%d]", i)
	}

	assert.Equal(t, "M 0 100 C 15 70, 20 15, 50 0 C 80 -15, 85 35, 100 50", res.Stroke.String())
	assert.Equal(t, "M 0 100 C 15 70, 20 15, 50 0 C 80 -15, 85 35, 100 50 L 100 100 L 0 100 Z", res.Area.String())

	require.NotNil(t, res.Summary)
	assert.Equal(t, chart.Summary{Total: 15, Average: 5, Minimum: 0, Maximum: 10, Latest: 5}, *res.Summary)
}

func TestRender_SegmentCount(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{name: "empty", values: nil, want: 0},
		{name: "single", values: []float64{3}, want: 0},
		{name: "pair", values: []float64{3, 9}, want: 1},
		{name: "week", values: []float64{4, 8, 15, 16, 23, 42, 7}, want: 6},
		{name: "month", values: make([]float64, 30), want: 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := chart.Render(chart.SamplesFromValues(tt.values), dashboardDims)
			assert.Equal(t, tt.want, res.Stroke.Segments())
			if tt.want > 0 {
				assert.Len(t, res.Stroke, tt.want+1, "one move-to plus n-1 curves")
			}
		})
	}
}

func TestRender_EndpointsAnchored(t *testing.T) {
	inputs := [][]float64{
		{1, 2},
		{120, 80, 95, 300, 10},
		{-5, 5, -5, 5},
	}

	for _, vs := range inputs {
		res := chart.Render(chart.SamplesFromValues(vs), dashboardDims)
		scale := chart.NewScale(vs, dashboardDims)

		start, ok := res.Stroke.Start()
		require.True(t, ok)
		assert.Equal(t, chart.Point{X: scale.XForIndex(0, len(vs)), Y: scale.ValueToY(vs[0])}, start)

		end, ok := res.Stroke.End()
		require.True(t, ok)
		last := len(vs) - 1
		assert.InDelta(t, scale.XForIndex(last, len(vs)), end.X, 1e-9)
		assert.InDelta(t, scale.ValueToY(vs[last]), end.Y, 1e-9)
	}
}

func TestRender_Idempotent(t *testing.T) {
	samples := chart.SamplesFromValues([]float64{12, 7, 19, 3, 3, 25})

	first := chart.Render(samples, dashboardDims)
	second := chart.Render(samples, dashboardDims)

	assert.Equal(t, first, second)
	assert.Equal(t, string(chart.SVG(first, chart.DefaultStyle)), string(chart.SVG(second, chart.DefaultStyle)))
}

func TestRender_Monotonic(t *testing.T) {
	base := []float64{10, 40, 25, 60, 5, 30}
	lo, hi := slices.Min(base), slices.Max(base)

	checked := 0
	for i := range base {
		// the extremes stay pinned to the edges of the drawable area
		if base[i] == lo || base[i] == hi {
			continue
		}
		bumped := append([]float64(nil), base...)
		bumped[i] += 5

		before := chart.Render(chart.SamplesFromValues(base), dashboardDims)
		after := chart.Render(chart.SamplesFromValues(bumped), dashboardDims)

		assert.Less(t, after.Points[i].Y, before.Points[i].Y, "sample %d", i)
		checked++
	}
	assert.Equal(t, 4, checked)
}

func TestRender_SingleSample(t *testing.T) {
	res := chart.Render([]chart.Sample{{Value: 5}}, dashboardDims)

	assert.True(t, res.Stroke.Empty())
	assert.True(t, res.Area.Empty())
	assert.Equal(t, 0, res.Stroke.Segments())
	require.Len(t, res.Points, 1)
	assert.Equal(t, chart.Point{X: 8, Y: 100}, res.Points[0])

	require.NotNil(t, res.Summary)
	assert.Equal(t, chart.Summary{Total: 5, Average: 5, Minimum: 5, Maximum: 5, Latest: 5}, *res.Summary)
}

func TestRender_Empty(t *testing.T) {
	res := chart.Render(nil, dashboardDims)

	assert.Empty(t, res.Points)
	assert.True(t, res.Stroke.Empty())
	assert.True(t, res.Area.Empty())
	assert.Nil(t, res.Summary)
	assert.Equal(t, "", res.Stroke.String())
}

func TestRender_FlatLineCentred(t *testing.T) {
	res := chart.Render(chart.SamplesFromValues([]float64{10, 10, 10}), dashboardDims)

	mid := dashboardDims.PaddingY + dashboardDims.DrawHeight()/2
	require.Len(t, res.Points, 3)
	for _, pt := range res.Points {
		assert.Equal(t, mid, pt.Y)
	}
	assert.Equal(t, 2, res.Stroke.Segments())
}

func TestRender_NonFinitePropagates(t *testing.T) {
	res := chart.Render(chart.SamplesFromValues([]float64{1, math.NaN(), 3}), dashboardDims)

	require.Len(t, res.Points, 3)
	assert.True(t, math.IsNaN(res.Points[1].Y))
	require.NotNil(t, res.Summary)
	assert.True(t, math.IsNaN(res.Summary.Total))
}

func TestRender_WithTension(t *testing.T) {
	dims := chart.Dimensions{Width: 100, Height: 100}
	res := chart.Render(chart.SamplesFromValues([]float64{0, 10}), dims, chart.WithTension(0))

	// zero tension puts the control points on the segment endpoints
	require.Len(t, res.Stroke, 2)
	curve := res.Stroke[1]
	assert.Equal(t, chart.OpCurveTo, curve.Op)
	assert.Equal(t, chart.Point{X: 0, Y: 100}, curve.C1)
	assert.Equal(t, chart.Point{X: 100, Y: 0}, curve.C2)
}

func TestArea_DoesNotMutateStroke(t *testing.T) {
	stroke := chart.Path(nil).
		MoveTo(chart.Point{X: 0, Y: 10}).
		CurveTo(chart.Point{X: 1, Y: 9}, chart.Point{X: 2, Y: 8}, chart.Point{X: 3, Y: 7})
	before := stroke.String()

	area := chart.Area(stroke, 20)

	assert.Equal(t, before, stroke.String())
	assert.Equal(t, before+" L 3 20 L 0 20 Z", area.String())
	assert.Nil(t, chart.Area(nil, 20))
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   chart.Summary
	}{
		{
			name:   "single",
			values: []float64{7},
			want:   chart.Summary{Total: 7, Average: 7, Minimum: 7, Maximum: 7, Latest: 7},
		},
		{
			name:   "rounds half away from zero",
			values: []float64{1, 2},
			want:   chart.Summary{Total: 3, Average: 2, Minimum: 1, Maximum: 2, Latest: 2},
		},
		{
			name:   "negative half",
			values: []float64{-1, -2},
			want:   chart.Summary{Total: -3, Average: -2, Minimum: -2, Maximum: -1, Latest: -2},
		},
		{
			name:   "latest is last not max",
			values: []float64{3, 90, 12},
			want:   chart.Summary{Total: 105, Average: 35, Minimum: 3, Maximum: 90, Latest: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chart.Summarize(tt.values))
		})
	}
}

func TestSummarize_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { chart.Summarize(nil) })
}

func TestScale(t *testing.T) {
	dims := chart.Dimensions{Width: 100, Height: 60, PaddingX: 10, PaddingY: 5}
	scale := chart.NewScale([]float64{2, 8, 4}, dims)

	assert.Equal(t, 2.0, scale.Min())
	assert.Equal(t, 8.0, scale.Max())
	assert.Equal(t, 6.0, scale.Range())
	assert.Equal(t, 5.0, scale.ValueToY(8))
	assert.Equal(t, 55.0, scale.ValueToY(2))
	assert.Equal(t, 10.0, scale.XForIndex(0, 3))
	assert.Equal(t, 90.0, scale.XForIndex(2, 3))
	assert.Equal(t, 10.0, scale.XForIndex(0, 1))

	flat := chart.NewScale([]float64{4}, dims)
	assert.Equal(t, 1.0, flat.Range())
	assert.Equal(t, 30.0, flat.ValueToY(4))
}

func TestRenderSeries_SharedScale(t *testing.T) {
	dims := chart.Dimensions{Width: 100, Height: 100}
	out := chart.RenderSeries(map[string][]chart.Sample{
		"orders":     chart.SamplesFromValues([]float64{0, 10}),
		"page_views": chart.SamplesFromValues([]float64{5, 5}),
	}, dims)

	require.Contains(t, out, "orders")
	require.Contains(t, out, "page_views")

	assert.Equal(t, 100.0, out["orders"].Points[0].Y)
	assert.Equal(t, 0.0, out["orders"].Points[1].Y)
	assert.Equal(t, 50.0, out["page_views"].Points[0].Y)
	assert.Equal(t, 50.0, out["page_views"].Points[1].Y)
	assert.Equal(t, []string{"orders", "page_views"}, chart.SeriesNames(out))
}

func TestSVG(t *testing.T) {
	t.Run("curve with gradient area", func(t *testing.T) {
		res := chart.Render(chart.SamplesFromValues([]float64{0, 10, 5}), chart.Dimensions{Width: 100, Height: 100})
		doc := string(chart.SVG(res, chart.DefaultStyle))

		assert.Contains(t, doc, `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100"`)
		assert.Contains(t, doc, `<linearGradient id="area-fill-0"`)
		assert.Contains(t, doc, `d="`+res.Stroke.String()+`" fill="none"`)
		assert.Contains(t, doc, `d="`+res.Area.String()+`" fill="url(#area-fill-0)"`)
		assert.NotContains(t, doc, "<circle")
	})

	t.Run("single sample marker", func(t *testing.T) {
		res := chart.Render([]chart.Sample{{Value: 5}}, dashboardDims)
		doc := string(chart.SVG(res, chart.DefaultStyle))

		assert.Contains(t, doc, `<circle cx="8" cy="100" r="4"`)
		assert.NotContains(t, doc, "<path")
	})

	t.Run("escapes title", func(t *testing.T) {
		style := chart.DefaultStyle
		style.Title = "Orders <daily>"
		doc := string(chart.SVG(chart.Render(nil, dashboardDims), style))

		assert.Contains(t, doc, "<title>Orders &lt;daily&gt;</title>")
		assert.NotContains(t, doc, "<path")
	})
}

func TestSVGLayers(t *testing.T) {
	dims := chart.Dimensions{Width: 100, Height: 100}
	series := chart.RenderSeries(map[string][]chart.Sample{
		"orders":     chart.SamplesFromValues([]float64{1, 2, 3}),
		"page_views": chart.SamplesFromValues([]float64{30, 20, 10}),
	}, dims)

	doc := string(chart.SVGLayers(dims, "Orders vs Page views", "#ffffff",
		chart.Layer{Result: series["orders"], Style: chart.SeriesStyle(0)},
		chart.Layer{Result: series["page_views"], Style: chart.SeriesStyle(1)},
	))

	assert.Contains(t, doc, `<rect width="100%" height="100%" fill="#ffffff"/>`)
	assert.Contains(t, doc, `id="area-fill-0"`)
	assert.Contains(t, doc, `id="area-fill-1"`)
	assert.Contains(t, doc, `stroke="`+chart.SeriesColors[1]+`"`)
}

func TestSeriesStyle_Wraps(t *testing.T) {
	first := chart.SeriesStyle(0)
	assert.Equal(t, chart.SeriesColors[0], first.Stroke)
	assert.Equal(t, first.Stroke, first.Fill)
	assert.Equal(t, first, chart.SeriesStyle(len(chart.SeriesColors)))
}
