package svgicon

import "errors"

// Sentinel errors for the parsing and dimension-resolution stages.
// They are wrapped with file or attribute context; match with errors.Is.
var (
	// ErrNotFound reports an input file path that does not exist.
	ErrNotFound = errors.New("svg file not found")

	// ErrParse reports a document that is not well-formed SVG/XML.
	ErrParse = errors.New("malformed svg document")

	// ErrMalformedAttribute reports an unparseable viewBox, width or
	// height attribute.
	ErrMalformedAttribute = errors.New("malformed svg attribute")

	// ErrInvalidDimensions reports a document whose resolved width or
	// height is zero, which cannot be scaled.
	ErrInvalidDimensions = errors.New("svg has zero width or height")
)
