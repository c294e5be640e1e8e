package svgicon

import (
	"encoding/xml"
	"errors"
	"strconv"
	"strings"

	"github.com/surquest/icon-picker/svgpath"
)

// This file reduces path-producing shape elements to their
// path equivalent.

type shapeFunc func(attrs []xml.Attr) (svgpath.Path, error)

var shapeFuncs = map[string]shapeFunc{
	"path":     pathF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  circleF, // circleF handles ellipse also
	"line":     lineF,
	"polyline": polylineF,
	"polygon":  polygonF,
}

func parseFloat(v string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

// getPoints parses a whitespace- or comma-separated list of numbers.
func getPoints(v string) ([]float64, error) {
	parts := splitOnCommaOrSpace(v)
	points := make([]float64, len(parts))
	for i, p := range parts {
		f, err := parseFloat(p)
		if err != nil {
			return nil, err
		}
		points[i] = f
	}
	return points, nil
}

func pathF(attrs []xml.Attr) (svgpath.Path, error) {
	for _, attr := range attrs {
		if attr.Name.Local == "d" {
			return svgpath.Parse(attr.Value)
		}
	}
	return nil, nil
}

func rectF(attrs []xml.Attr) (svgpath.Path, error) {
	var x, y, w, h, rx, ry float64
	var hasRx, hasRy bool
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x, err = parseFloat(attr.Value)
		case "y":
			y, err = parseFloat(attr.Value)
		case "width":
			w, err = parseFloat(attr.Value)
		case "height":
			h, err = parseFloat(attr.Value)
		case "rx":
			rx, err = parseFloat(attr.Value)
			hasRx = true
		case "ry":
			ry, err = parseFloat(attr.Value)
			hasRy = true
		}
		if err != nil {
			return nil, err
		}
	}
	if w == 0 || h == 0 { // not drawn, but not an error
		return nil, nil
	}
	// a missing corner radius defaults to the other one
	if hasRx && !hasRy {
		ry = rx
	}
	if hasRy && !hasRx {
		rx = ry
	}
	if rx <= 0 || ry <= 0 {
		var p svgpath.Path
		p.Start(svgpath.Point{X: x, Y: y})
		p.Line(svgpath.Point{X: x + w, Y: y})
		p.Line(svgpath.Point{X: x + w, Y: y + h})
		p.Line(svgpath.Point{X: x, Y: y + h})
		p.Stop(true)
		return p, nil
	}
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	corner := func(p *svgpath.Path, ex, ey float64) {
		p.Arc(rx, ry, 0, false, true, svgpath.Point{X: ex, Y: ey})
	}
	var p svgpath.Path
	p.Start(svgpath.Point{X: x + rx, Y: y})
	p.Line(svgpath.Point{X: x + w - rx, Y: y})
	corner(&p, x+w, y+ry)
	p.Line(svgpath.Point{X: x + w, Y: y + h - ry})
	corner(&p, x+w-rx, y+h)
	p.Line(svgpath.Point{X: x + rx, Y: y + h})
	corner(&p, x, y+h-ry)
	p.Line(svgpath.Point{X: x, Y: y + ry})
	corner(&p, x+rx, y)
	p.Stop(true)
	return p, nil
}

func circleF(attrs []xml.Attr) (svgpath.Path, error) {
	var cx, cy, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			cx, err = parseFloat(attr.Value)
		case "cy":
			cy, err = parseFloat(attr.Value)
		case "r":
			rx, err = parseFloat(attr.Value)
			ry = rx
		case "rx":
			rx, err = parseFloat(attr.Value)
		case "ry":
			ry, err = parseFloat(attr.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	if rx == 0 || ry == 0 { // not drawn, but not an error
		return nil, nil
	}
	// two half arcs make the full ellipse
	var p svgpath.Path
	p.Start(svgpath.Point{X: cx + rx, Y: cy})
	p.Arc(rx, ry, 0, true, true, svgpath.Point{X: cx - rx, Y: cy})
	p.Arc(rx, ry, 0, true, true, svgpath.Point{X: cx + rx, Y: cy})
	p.Stop(true)
	return p, nil
}

func lineF(attrs []xml.Attr) (svgpath.Path, error) {
	var x1, y1, x2, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = parseFloat(attr.Value)
		case "y1":
			y1, err = parseFloat(attr.Value)
		case "x2":
			x2, err = parseFloat(attr.Value)
		case "y2":
			y2, err = parseFloat(attr.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	var p svgpath.Path
	p.Start(svgpath.Point{X: x1, Y: y1})
	p.Line(svgpath.Point{X: x2, Y: y2})
	return p, nil
}

func polylineF(attrs []xml.Attr) (svgpath.Path, error) {
	var points []float64
	var err error
	for _, attr := range attrs {
		if attr.Name.Local == "points" {
			points, err = getPoints(attr.Value)
			if err != nil {
				return nil, err
			}
			if len(points)%2 != 0 {
				return nil, errors.New("polygon has odd number of points")
			}
		}
	}
	if len(points) < 4 {
		return nil, nil
	}
	var p svgpath.Path
	p.Start(svgpath.Point{X: points[0], Y: points[1]})
	for i := 2; i < len(points)-1; i += 2 {
		p.Line(svgpath.Point{X: points[i], Y: points[i+1]})
	}
	return p, nil
}

func polygonF(attrs []xml.Attr) (svgpath.Path, error) {
	p, err := polylineF(attrs)
	if err != nil || len(p) == 0 {
		return p, err
	}
	p.Stop(true)
	return p, nil
}
