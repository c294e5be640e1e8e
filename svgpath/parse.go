package svgpath

import (
	"fmt"
	"strconv"
)

// Parse compiles SVG path data (the "d" attribute mini-language)
// into a Path. All commands are normalized to absolute coordinates:
// relative commands are resolved against the current point, H and V
// become full line segments, and the S and T shorthands are expanded
// to cubic and quadratic segments with their reflected control point.
func Parse(d string) (Path, error) {
	c := &pathCursor{s: d}
	var out Path
	var lastCmd, prevCmd byte
	for {
		c.skipSeparators()
		if c.done() {
			break
		}
		b := c.s[c.i]
		if isCommand(b) {
			c.i++
			lastCmd = b
		} else if lastCmd == 0 {
			return nil, fmt.Errorf("invalid path data %q: expected a command, got %q", d, b)
		} else {
			// implicit command repetition; a repeated moveto degrades to lineto
			switch lastCmd {
			case 'M':
				lastCmd = 'L'
			case 'm':
				lastCmd = 'l'
			case 'Z', 'z':
				return nil, fmt.Errorf("invalid path data %q: number after close command", d)
			}
		}
		rel := lastCmd >= 'a'
		var err error
		switch upper(lastCmd) {
		case 'M':
			var pt Point
			if pt, err = c.point(rel); err == nil {
				c.place = pt
				c.start = pt
				out.Start(pt)
			}
		case 'L':
			var pt Point
			if pt, err = c.point(rel); err == nil {
				c.place = pt
				out.Line(pt)
			}
		case 'H':
			var x float64
			if x, err = c.number(); err == nil {
				if rel {
					x += c.place.X
				}
				c.place.X = x
				out.Line(c.place)
			}
		case 'V':
			var y float64
			if y, err = c.number(); err == nil {
				if rel {
					y += c.place.Y
				}
				c.place.Y = y
				out.Line(c.place)
			}
		case 'C':
			var b1, b2, end Point
			if b1, b2, end, err = c.threePoints(rel); err == nil {
				out.CubeBezier(b1, b2, end)
				c.cntl = b2
				c.place = end
			}
		case 'S':
			var b2, end Point
			if b2, end, err = c.twoPoints(rel); err == nil {
				b1 := c.place
				if prevCmd == 'C' || prevCmd == 'S' {
					b1 = reflect(c.place, c.cntl)
				}
				out.CubeBezier(b1, b2, end)
				c.cntl = b2
				c.place = end
			}
		case 'Q':
			var b1, end Point
			if b1, end, err = c.twoPoints(rel); err == nil {
				out.QuadBezier(b1, end)
				c.cntl = b1
				c.place = end
			}
		case 'T':
			var end Point
			if end, err = c.point(rel); err == nil {
				b1 := c.place
				if prevCmd == 'Q' || prevCmd == 'T' {
					b1 = reflect(c.place, c.cntl)
				}
				out.QuadBezier(b1, end)
				c.cntl = b1
				c.place = end
			}
		case 'A':
			err = c.arc(rel, &out)
		case 'Z':
			out.Stop(true)
			c.place = c.start
		}
		if err != nil {
			return nil, fmt.Errorf("invalid path data %q: %v", d, err)
		}
		prevCmd = upper(lastCmd)
	}
	if len(out) > 0 {
		if _, ok := out[0].(MoveTo); !ok {
			return nil, fmt.Errorf("invalid path data %q: must start with a moveto command", d)
		}
	}
	return out, nil
}

// pathCursor scans path data and tracks the state the command
// grammar depends on: the current point, the current subpath start,
// and the last bezier control point.
type pathCursor struct {
	s     string
	i     int
	place Point // current point
	start Point // start of current subpath, restored by Z
	cntl  Point // last control point, for S/T reflection
}

func isCommand(b byte) bool {
	switch b {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func upper(b byte) byte {
	if b >= 'a' {
		return b - ('a' - 'A')
	}
	return b
}

func isSeparator(b byte) bool {
	return b == ' ' || b == ',' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func (c *pathCursor) done() bool { return c.i >= len(c.s) }

func (c *pathCursor) skipSeparators() {
	for c.i < len(c.s) && isSeparator(c.s[c.i]) {
		c.i++
	}
}

// number scans one signed decimal literal, with optional exponent.
func (c *pathCursor) number() (float64, error) {
	c.skipSeparators()
	start := c.i
	if c.i < len(c.s) && (c.s[c.i] == '+' || c.s[c.i] == '-') {
		c.i++
	}
	for c.i < len(c.s) && isDigit(c.s[c.i]) {
		c.i++
	}
	if c.i < len(c.s) && c.s[c.i] == '.' {
		c.i++
		for c.i < len(c.s) && isDigit(c.s[c.i]) {
			c.i++
		}
	}
	if c.i < len(c.s) && (c.s[c.i] == 'e' || c.s[c.i] == 'E') {
		c.i++
		if c.i < len(c.s) && (c.s[c.i] == '+' || c.s[c.i] == '-') {
			c.i++
		}
		for c.i < len(c.s) && isDigit(c.s[c.i]) {
			c.i++
		}
	}
	if c.i == start {
		return 0, fmt.Errorf("expected number at offset %d", c.i)
	}
	return strconv.ParseFloat(c.s[start:c.i], 64)
}

// arcFlag scans a single 0/1 flag, which may be written without a
// separator before the following number.
func (c *pathCursor) arcFlag() (bool, error) {
	c.skipSeparators()
	if c.done() || (c.s[c.i] != '0' && c.s[c.i] != '1') {
		return false, fmt.Errorf("expected arc flag at offset %d", c.i)
	}
	b := c.s[c.i]
	c.i++
	return b == '1', nil
}

func (c *pathCursor) point(rel bool) (Point, error) {
	x, err := c.number()
	if err != nil {
		return Point{}, err
	}
	y, err := c.number()
	if err != nil {
		return Point{}, err
	}
	if rel {
		x += c.place.X
		y += c.place.Y
	}
	return Point{x, y}, nil
}

func (c *pathCursor) twoPoints(rel bool) (Point, Point, error) {
	a, err := c.point(rel)
	if err != nil {
		return Point{}, Point{}, err
	}
	b, err := c.point(rel)
	return a, b, err
}

func (c *pathCursor) threePoints(rel bool) (Point, Point, Point, error) {
	a, b, err := c.twoPoints(rel)
	if err != nil {
		return Point{}, Point{}, Point{}, err
	}
	d, err := c.point(rel)
	return a, b, d, err
}

func (c *pathCursor) arc(rel bool, out *Path) error {
	rx, err := c.number()
	if err != nil {
		return err
	}
	ry, err := c.number()
	if err != nil {
		return err
	}
	rot, err := c.number()
	if err != nil {
		return err
	}
	largeArc, err := c.arcFlag()
	if err != nil {
		return err
	}
	sweep, err := c.arcFlag()
	if err != nil {
		return err
	}
	end, err := c.point(rel)
	if err != nil {
		return err
	}
	out.Arc(abs(rx), abs(ry), rot, largeArc, sweep, end)
	c.place = end
	return nil
}

// reflect mirrors the control point cntl about the current point.
func reflect(place, cntl Point) Point {
	return Point{2*place.X - cntl.X, 2*place.Y - cntl.Y}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
