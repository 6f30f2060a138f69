package chart

import (
	"strconv"
	"strings"
)

// Op identifies a drawing instruction.
type Op int

const (
	OpMoveTo Op = iota
	OpCurveTo
	OpLineTo
	OpClose
)

func (o Op) letter() byte {
	switch o {
	case OpMoveTo:
		return 'M'
	case OpCurveTo:
		return 'C'
	case OpLineTo:
		return 'L'
	default:
		return 'Z'
	}
}

// Command is one drawing instruction. Curve commands carry two control
// points in C1 and C2; every command except Close carries its end point in To.
type Command struct {
	Op Op    `json:"op"`
	C1 Point `json:"c1"`
	C2 Point `json:"c2"`
	To Point `json:"to"`
}

// Path is an ordered list of drawing instructions.
type Path []Command

// MoveTo appends a move-to instruction.
func (p Path) MoveTo(to Point) Path {
	return append(p, Command{Op: OpMoveTo, To: to})
}

// CurveTo appends a cubic Bezier segment.
func (p Path) CurveTo(c1, c2, to Point) Path {
	return append(p, Command{Op: OpCurveTo, C1: c1, C2: c2, To: to})
}

// LineTo appends a straight segment.
func (p Path) LineTo(to Point) Path {
	return append(p, Command{Op: OpLineTo, To: to})
}

// Close appends a close-path instruction.
func (p Path) Close() Path {
	return append(p, Command{Op: OpClose})
}

// Empty reports whether the path has nothing to draw.
func (p Path) Empty() bool {
	return len(p) == 0
}

// Segments counts the cubic segments in the path.
func (p Path) Segments() int {
	n := 0
	for _, c := range p {
		if c.Op == OpCurveTo {
			n++
		}
	}
	return n
}

// Start returns the point of the leading move-to.
func (p Path) Start() (Point, bool) {
	if len(p) == 0 || p[0].Op != OpMoveTo {
		return Point{}, false
	}
	return p[0].To, true
}

// End returns the end point of the last instruction that has one.
func (p Path) End() (Point, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Op != OpClose {
			return p[i].To, true
		}
	}
	return Point{}, false
}

// String renders the path as an SVG path "d" attribute. Coordinates are
// written with two decimals, which is below pixel resolution.
func (p Path) String() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(c.Op.letter())
		switch c.Op {
		case OpCurveTo:
			b.WriteByte(' ')
			writePoint(&b, c.C1)
			b.WriteString(", ")
			writePoint(&b, c.C2)
			b.WriteString(", ")
			writePoint(&b, c.To)
		case OpMoveTo, OpLineTo:
			b.WriteByte(' ')
			writePoint(&b, c.To)
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, pt Point) {
	b.WriteString(formatCoord(pt.X))
	b.WriteByte(' ')
	b.WriteString(formatCoord(pt.Y))
}

func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
