// Package iconpicker normalizes SVG icons. It extracts the drawable
// path geometry of a document, infers the authoring coordinate space
// from the root attributes, rescales every path to a requested target
// size (independently per axis), and re-emits a canonical minimal SVG
// containing only the scaled path data. The result can optionally be
// rasterized to PNG through the svgraster package.
//
// Every operation is stateless: each call parses, transforms and
// serializes one document with no shared state, so independent calls
// may run concurrently.
package iconpicker

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/surquest/icon-picker/svgbuild"
	"github.com/surquest/icon-picker/svgicon"
	"github.com/surquest/icon-picker/svgpath"
	"github.com/surquest/icon-picker/svgraster"
)

// Error taxonomy of the processing pipeline, re-exported from the
// packages that produce them; match with errors.Is.
var (
	ErrNotFound           = svgicon.ErrNotFound
	ErrParse              = svgicon.ErrParse
	ErrMalformedAttribute = svgicon.ErrMalformedAttribute
	ErrInvalidDimensions  = svgicon.ErrInvalidDimensions
	ErrRasterization      = svgraster.ErrRasterization
)

// Resize processes a raw SVG document and returns the normalized
// document at the configured target size.
func Resize(svg []byte, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	icon, err := svgicon.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return "", err
	}
	return resize(icon, cfg)
}

// ResizeFile processes the SVG file at inputPath and writes the
// normalized document to outputPath, creating parent directories as
// needed. Nothing is written when processing fails.
func ResizeFile(inputPath, outputPath string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	icon, err := svgicon.ReadIcon(inputPath)
	if err != nil {
		return err
	}
	out, err := resize(icon, cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(outputPath, []byte(out), 0o644)
}

// resize runs the scale/format/build chain on a parsed document.
func resize(icon *svgicon.Icon, cfg Config) (string, error) {
	dims, err := svgicon.ResolveDimensions(icon.Attrs)
	if err != nil {
		return "", err
	}
	scaleX := cfg.Width / dims.W
	scaleY := cfg.Height / dims.H

	paths := make([]string, len(icon.Paths))
	for i, p := range icon.Paths {
		paths[i] = svgpath.FormatNumbers(p.Scale(scaleX, scaleY).ToSVGPath())
	}

	opts := svgbuild.Options{
		AddStyle:       cfg.AddStyle,
		AddWidthHeight: cfg.AddWidthHeight,
		Minify:         cfg.Minify,
	}
	return svgbuild.Build(cfg.Width, cfg.Height, opts, paths), nil
}

// ConvertOptions select the pixel size of a rasterized icon.
type ConvertOptions = svgraster.Options

// ConvertToPNG rasterizes an SVG document to PNG bytes. When
// outputPath is not empty the bytes are also written there, creating
// parent directories as needed.
func ConvertToPNG(svg []byte, outputPath string, opt ConvertOptions) ([]byte, error) {
	b, err := svgraster.EncodePNG(svg, opt)
	if err != nil {
		return nil, err
	}
	if outputPath != "" {
		if dir := filepath.Dir(outputPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		if err := os.WriteFile(outputPath, b, 0o644); err != nil {
			return nil, err
		}
	}
	return b, nil
}
