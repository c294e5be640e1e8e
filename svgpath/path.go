// Provides an abstract representation of SVG path geometry,
// decoupled from any particular path-command grammar.
// Paths are parsed from path data, scaled, and serialized
// back to path-data syntax.
package svgpath

import (
	"strconv"
	"strings"
)

// Point is a coordinate pair in document units.
type Point struct {
	X, Y float64
}

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathQuadTo
	pathCubicTo
	pathArcTo
	pathClose
)

// Operation groups the different SVG commands
type Operation interface {
	command() pathCommand
}

type MoveTo Point

type LineTo Point

type QuadTo [2]Point

type CubicTo [3]Point

// ArcTo is an elliptical arc segment, kept in its native form
// rather than flattened to cubics, so that it survives a
// parse/serialize round trip.
type ArcTo struct {
	Rx, Ry   float64
	Rotation float64 // x-axis rotation, in degrees
	LargeArc bool
	Sweep    bool
	End      Point
}

type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (QuadTo) command() pathCommand  { return pathQuadTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (ArcTo) command() pathCommand   { return pathArcTo }
func (Close) command() pathCommand   { return pathClose }

// Path describes a sequence of basic SVG operations, which should not be nil.
// Higher-level shapes may be reduced to a path.
type Path []Operation

func coord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// ToSVGPath returns the path-data representation of the path,
// with absolute commands and full float precision.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = "M" + coord(op.X) + " " + coord(op.Y)
		case LineTo:
			chunks[i] = "L" + coord(op.X) + " " + coord(op.Y)
		case QuadTo:
			chunks[i] = "Q" + coord(op[0].X) + " " + coord(op[0].Y) +
				" " + coord(op[1].X) + " " + coord(op[1].Y)
		case CubicTo:
			chunks[i] = "C" + coord(op[0].X) + " " + coord(op[0].Y) +
				" " + coord(op[1].X) + " " + coord(op[1].Y) +
				" " + coord(op[2].X) + " " + coord(op[2].Y)
		case ArcTo:
			chunks[i] = "A" + coord(op.Rx) + " " + coord(op.Ry) +
				" " + coord(op.Rotation) +
				" " + flag(op.LargeArc) + " " + flag(op.Sweep) +
				" " + coord(op.End.X) + " " + coord(op.End.Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Start starts a new curve at the given point.
func (p *Path) Start(a Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b Point) {
	*p = append(*p, LineTo(b))
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c Point) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d Point) {
	*p = append(*p, CubicTo{b, c, d})
}

// Arc adds an elliptical arc segment to the current curve.
func (p *Path) Arc(rx, ry, rot float64, largeArc, sweep bool, end Point) {
	*p = append(*p, ArcTo{Rx: rx, Ry: ry, Rotation: rot, LargeArc: largeArc, Sweep: sweep, End: end})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}
