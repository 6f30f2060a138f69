package chart

import (
	"bytes"
	"fmt"
	"html"
)

// Style controls the SVG output.
type Style struct {
	Stroke      string
	StrokeWidth float64
	Fill        string
	FillOpacity float64
	Background  string
	Title       string
}

// DefaultStyle matches the dashboard's revenue chart.
var DefaultStyle = Style{
	Stroke:      "#16a34a",
	StrokeWidth: 2,
	Fill:        "#16a34a",
	FillOpacity: 0.25,
}

// SeriesColors is the palette for multi-series charts.
var SeriesColors = []string{"#16a34a", "#2563eb", "#f59e0b", "#dc2626"}

// SeriesStyle is the style of the i-th layer of a multi-series chart. The
// palette repeats after len(SeriesColors) series.
func SeriesStyle(i int) Style {
	style := DefaultStyle
	style.Stroke = SeriesColors[i%len(SeriesColors)]
	style.Fill = style.Stroke
	style.FillOpacity = 0.12
	return style
}

// Layer is one series drawn by SVGLayers.
type Layer struct {
	Result Result
	Style  Style
}

// SVG writes res as a standalone SVG document. A single-sample series is
// drawn as a marker dot.
func SVG(res Result, style Style) []byte {
	return SVGLayers(res.Dimensions, style.Title, style.Background, Layer{Result: res, Style: style})
}

// SVGLayers draws several series on one canvas in the given order.
func SVGLayers(dims Dimensions, title, background string, layers ...Layer) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		formatCoord(dims.Width), formatCoord(dims.Height), formatCoord(dims.Width), formatCoord(dims.Height))
	buf.WriteByte('\n')

	if title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(title))
	}

	buf.WriteString("  <defs>\n")
	for i, l := range layers {
		fmt.Fprintf(&buf, `    <linearGradient id="area-fill-%d" x1="0" y1="0" x2="0" y2="1">`, i)
		buf.WriteByte('\n')
		fmt.Fprintf(&buf, `      <stop offset="0%%" stop-color="%s" stop-opacity="%s"/>`,
			html.EscapeString(l.Style.Fill), formatCoord(l.Style.FillOpacity))
		buf.WriteByte('\n')
		fmt.Fprintf(&buf, `      <stop offset="100%%" stop-color="%s" stop-opacity="0"/>`, html.EscapeString(l.Style.Fill))
		buf.WriteByte('\n')
		buf.WriteString("    </linearGradient>\n")
	}
	buf.WriteString("  </defs>\n")

	if background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`, html.EscapeString(background))
		buf.WriteByte('\n')
	}

	for i, l := range layers {
		writeLayer(&buf, i, l)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeLayer(buf *bytes.Buffer, i int, l Layer) {
	res := l.Result

	if !res.Area.Empty() {
		fmt.Fprintf(buf, `  <path d="%s" fill="url(#area-fill-%d)" stroke="none"/>`, res.Area, i)
		buf.WriteByte('\n')
	}

	if !res.Stroke.Empty() {
		fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`,
			res.Stroke, html.EscapeString(l.Style.Stroke), formatCoord(l.Style.StrokeWidth))
		buf.WriteByte('\n')
		return
	}

	if len(res.Points) == 1 {
		pt := res.Points[0]
		r := l.Style.StrokeWidth * 2
		if r <= 0 {
			r = 3
		}
		fmt.Fprintf(buf, `  <circle cx="%s" cy="%s" r="%s" fill="%s"/>`,
			formatCoord(pt.X), formatCoord(pt.Y), formatCoord(r), html.EscapeString(l.Style.Stroke))
		buf.WriteByte('\n')
	}
}
