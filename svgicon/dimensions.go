package svgicon

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Dimensions is the authoring width and height of a document,
// in document units. Both are positive once resolved.
type Dimensions struct {
	W, H float64
}

// defaultSize is the SVG intrinsic-size default, used when a document
// declares neither a viewBox nor width/height attributes.
const defaultSize = 100.0

var unitSuffix = regexp.MustCompile(`[a-zA-Z%]+$`)

// parseLength parses a width/height attribute value, stripping a
// trailing unit suffix such as px, em or %.
func parseLength(v string) (float64, error) {
	return strconv.ParseFloat(unitSuffix.ReplaceAllString(strings.TrimSpace(v), ""), 64)
}

// ResolveDimensions infers the authoring width and height from the
// root attribute set. A viewBox wins over width/height attributes;
// a document declaring neither resolves to 100x100. A resolved
// dimension of exactly zero fails with ErrInvalidDimensions, since
// a scale factor cannot be computed from it.
func ResolveDimensions(attrs map[string]string) (Dimensions, error) {
	d := Dimensions{W: defaultSize, H: defaultSize}

	if vb, ok := attrs["viewBox"]; ok {
		parts := splitOnCommaOrSpace(vb)
		if len(parts) != 4 {
			return Dimensions{}, fmt.Errorf("%w: viewBox %q: expected 4 values, got %d",
				ErrMalformedAttribute, vb, len(parts))
		}
		nums := make([]float64, 4)
		for i, p := range parts {
			f, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return Dimensions{}, fmt.Errorf("%w: viewBox %q: bad value %q",
					ErrMalformedAttribute, vb, p)
			}
			nums[i] = f
		}
		d.W, d.H = nums[2], nums[3]
	} else if w, okW := attrs["width"]; okW {
		if h, okH := attrs["height"]; okH {
			var err error
			if d.W, err = parseLength(w); err != nil {
				return Dimensions{}, fmt.Errorf("%w: width %q", ErrMalformedAttribute, w)
			}
			if d.H, err = parseLength(h); err != nil {
				return Dimensions{}, fmt.Errorf("%w: height %q", ErrMalformedAttribute, h)
			}
		}
	}

	if d.W == 0 || d.H == 0 {
		return Dimensions{}, fmt.Errorf("%w: resolved to %gx%g", ErrInvalidDimensions, d.W, d.H)
	}
	return d, nil
}
