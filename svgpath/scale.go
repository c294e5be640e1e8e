package svgpath

// Scale returns a new Path with every control point's X coordinate
// multiplied by sx and Y coordinate by sy, independently. Segment
// kinds and ordering are preserved; arc radii scale with their axis
// and the sweep direction flips under a mirroring transform
// (sx*sy < 0). The receiver is not modified, so paths of one
// document can be scaled in any order or concurrently.
func (p Path) Scale(sx, sy float64) Path {
	scale := func(pt Point) Point {
		return Point{pt.X * sx, pt.Y * sy}
	}
	out := make(Path, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			out[i] = MoveTo(scale(Point(op)))
		case LineTo:
			out[i] = LineTo(scale(Point(op)))
		case QuadTo:
			out[i] = QuadTo{scale(op[0]), scale(op[1])}
		case CubicTo:
			out[i] = CubicTo{scale(op[0]), scale(op[1]), scale(op[2])}
		case ArcTo:
			sweep := op.Sweep
			if sx*sy < 0 {
				sweep = !sweep
			}
			out[i] = ArcTo{
				Rx:       op.Rx * abs(sx),
				Ry:       op.Ry * abs(sy),
				Rotation: op.Rotation,
				LargeArc: op.LargeArc,
				Sweep:    sweep,
				End:      scale(op.End),
			}
		case Close:
			out[i] = op
		}
	}
	return out
}
