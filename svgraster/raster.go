// Implements a raster backend that converts finished SVG documents
// to PNG, by wrapping oksvg and rasterx.
package svgraster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"regexp"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// oksvg has no CSS engine: the custom-property idiom used by the
// builder (a "--icon-color" declaration referenced through var() and
// currentColor) is not a color its parser accepts. Substitute the
// declared value, or black when none is declared, before parsing.
var iconColorDecl = regexp.MustCompile(`--icon-color:\s*([^;"']+)`)

func resolveColors(svg []byte) []byte {
	color := []byte("#000000")
	if m := iconColorDecl.FindSubmatch(svg); m != nil {
		color = bytes.TrimSpace(m[1])
	}
	svg = bytes.ReplaceAll(svg, []byte("var(--icon-color)"), color)
	return bytes.ReplaceAll(svg, []byte("currentColor"), color)
}

// ErrRasterization reports a failure of the underlying rasterizer,
// wrapping its diagnostic.
var ErrRasterization = errors.New("svg rasterization failed")

// Options select the pixel size of the output raster.
// Explicit Width/Height win over Scale; a single explicit dimension
// preserves the document's intrinsic aspect ratio; Scale alone
// multiplies the intrinsic viewBox size; all zero means the
// intrinsic size is used as-is.
type Options struct {
	Width, Height int
	Scale         float64
}

func (o Options) targetSize(w, h float64) (int, int) {
	switch {
	case o.Width > 0 && o.Height > 0:
		return o.Width, o.Height
	case o.Width > 0:
		return o.Width, int(math.Round(float64(o.Width) * h / w))
	case o.Height > 0:
		return int(math.Round(float64(o.Height) * w / h)), o.Height
	case o.Scale > 0:
		return int(math.Round(w * o.Scale)), int(math.Round(h * o.Scale))
	default:
		return int(math.Ceil(w)), int(math.Ceil(h))
	}
}

// Render rasterizes an SVG document to an RGBA image.
func Render(svg []byte, opt Options) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(resolveColors(svg)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterization, err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: document has no usable size", ErrRasterization)
	}
	outW, outH := opt.targetSize(w, h)
	if outW <= 0 || outH <= 0 {
		return nil, fmt.Errorf("%w: target raster is empty (%dx%d)", ErrRasterization, outW, outH)
	}

	icon.SetTarget(0, 0, float64(outW), float64(outH))
	img := image.NewRGBA(image.Rect(0, 0, outW, outH))
	scanner := rasterx.NewScannerGV(outW, outH, img, img.Bounds())
	raster := rasterx.NewDasher(outW, outH, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// EncodePNG rasterizes an SVG document and returns the PNG encoding.
func EncodePNG(svg []byte, opt Options) ([]byte, error) {
	img, err := Render(svg, opt)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterization, err)
	}
	return buf.Bytes(), nil
}

// WriteFile rasterizes an SVG document to a PNG file, creating
// parent directories as needed.
func WriteFile(path string, svg []byte, opt Options) error {
	b, err := EncodePNG(svg, opt)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, b, 0o644)
}
