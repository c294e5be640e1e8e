// Provides parsing of SVG documents into an abstract representation:
// the root attribute set plus the drawable path geometry, with
// path-producing shapes reduced to paths. Styling, gradients,
// transforms and text content are not interpreted; only path
// geometry and the root coordinate frame survive.
package svgicon

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/surquest/icon-picker/svgpath"
)

// Icon holds data from a parsed SVG: the root element's attributes
// and every path geometry found in the document, in document order.
// An Icon is immutable after parsing and lives for one processing run.
type Icon struct {
	Attrs map[string]string
	Paths []svgpath.Path
}

// ReadIconStream reads an Icon from the given io.Reader.
// Elements that do not produce path geometry are skipped;
// a document that is not well-formed XML, or that contains no
// svg element at all, fails with ErrParse.
func ReadIconStream(stream io.Reader) (*Icon, error) {
	icon := &Icon{Attrs: make(map[string]string)}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenSVG := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenSVG {
					return nil, fmt.Errorf("%w: missing svg root element", ErrParse)
				}
				break
			}
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local == "svg" {
			if !seenSVG {
				seenSVG = true
				for _, attr := range se.Attr {
					icon.Attrs[attr.Name.Local] = attr.Value
				}
			}
			continue
		}
		sf, ok := shapeFuncs[se.Name.Local]
		if !ok {
			// out of scope content (defs, text, gradients, ...)
			continue
		}
		path, err := sf(se.Attr)
		if err != nil {
			return nil, fmt.Errorf("%w: <%s>: %v", ErrParse, se.Name.Local, err)
		}
		if len(path) > 0 {
			icon.Paths = append(icon.Paths, path)
		}
	}
	return icon, nil
}

// ReadIcon reads an Icon from the named file, failing with
// ErrNotFound if the path does not exist.
func ReadIcon(iconFile string) (*Icon, error) {
	if _, err := os.Stat(iconFile); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, iconFile)
	}
	fin, err := os.Open(iconFile)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadIconStream(fin)
}
