// Assembles canonical minimal SVG documents: a fixed root element,
// an optional style child, and one path element per input path,
// serialized pretty-printed or minified.
package svgbuild

import (
	"strconv"
	"strings"
)

const (
	xmlns = "http://www.w3.org/2000/svg"

	// rootStyle makes the icon recolorable through a CSS variable.
	rootStyle = "--icon-color:#D4D4D4; fill:var(--icon-color);"

	// styleRule is the default rule injected as a style child
	// when Options.AddStyle is set.
	styleRule = "svg { --icon-color: #D4D4D4; }"
)

// Options control the emitted document.
type Options struct {
	// AddStyle injects a style element with the default icon-color
	// CSS variable block before the path elements.
	AddStyle bool
	// AddWidthHeight emits explicit width and height attributes
	// besides the viewBox.
	AddWidthHeight bool
	// Minify emits the document on a single line with no
	// inter-element whitespace instead of pretty-printing.
	Minify bool
}

func dim(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Build assembles the final SVG document from the new dimensions and
// the already scaled and formatted path-data strings, which are
// emitted in input order. The root element always carries the
// canonical viewBox, xmlns, fill and style attributes.
func Build(width, height float64, opts Options, paths []string) string {
	sep, indent := "\n", "  "
	if opts.Minify {
		sep, indent = "", ""
	}

	var b strings.Builder
	b.WriteString(`<svg viewBox="0 0 ` + dim(width) + " " + dim(height) + `"`)
	if opts.AddWidthHeight {
		b.WriteString(` width="` + dim(width) + `" height="` + dim(height) + `"`)
	}
	b.WriteString(` xmlns="` + xmlns + `" fill="currentColor" style="` + rootStyle + `">`)

	if opts.AddStyle {
		b.WriteString(sep + indent + "<style>" + styleRule + "</style>")
	}
	for _, d := range paths {
		b.WriteString(sep + indent + `<path d="` + attrEscaper.Replace(d) + `"/>`)
	}
	b.WriteString(sep + "</svg>")
	return b.String()
}
