// Command iconpicker resizes and normalizes SVG icons.
//
// Single file:
//
//	iconpicker -in icon.svg -out icon-48.svg -width 48 -height 48
//
// Batch (every .svg in the directory, into a subdirectory):
//
//	iconpicker -in ./icons -out resized -width 48 -height 48
//
// An optional -png flag additionally rasterizes the resized document.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	iconpicker "github.com/surquest/icon-picker"
)

func main() {
	var (
		in       = flag.String("in", "", "input SVG file, or directory for batch mode")
		out      = flag.String("out", "", "output file (file mode, empty writes to stdout), or output subdirectory name (batch mode, default \"resized\")")
		width    = flag.Float64("width", 0, "target width (required)")
		height   = flag.Float64("height", 0, "target height (required)")
		addStyle = flag.Bool("style", false, "inject the default icon-color style element")
		addAttrs = flag.Bool("attrs", false, "emit explicit width/height attributes")
		minify   = flag.Bool("minify", false, "emit minified output")
		workers  = flag.Int("workers", 0, "concurrent files in batch mode (0 = default)")
		pngOut   = flag.String("png", "", "also rasterize the resized document to this PNG file (file mode)")
		pngW     = flag.Int("png-width", 0, "raster width in pixels")
		pngH     = flag.Int("png-height", 0, "raster height in pixels")
		pngScale = flag.Float64("png-scale", 0, "raster scale factor")
		jsonLog  = flag.Bool("json", false, "log as JSON")
	)
	flag.Parse()

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, nil)
	if *jsonLog {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	log := slog.New(handler)

	cfg := iconpicker.Config{
		Width:          *width,
		Height:         *height,
		AddStyle:       *addStyle,
		AddWidthHeight: *addAttrs,
		Minify:         *minify,
		Workers:        *workers,
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if *in == "" {
		log.Error("missing -in flag")
		os.Exit(1)
	}

	info, err := os.Stat(*in)
	if err != nil {
		log.Error("cannot read input", "path", *in, "error", err)
		os.Exit(1)
	}

	if info.IsDir() {
		subdir := *out
		if subdir == "" {
			subdir = "resized"
		}
		// per-file failures are recorded in the summary, not fatal
		if _, err := iconpicker.BulkProcess(*in, subdir, cfg, log); err != nil {
			log.Error("batch failed", "error", err)
			os.Exit(1)
		}
		return
	}

	src, err := os.ReadFile(*in)
	if err != nil {
		log.Error("cannot read input", "path", *in, "error", err)
		os.Exit(1)
	}
	doc, err := iconpicker.Resize(src, cfg)
	if err != nil {
		log.Error("failed to process icon", "file", *in, "error", err)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Println(doc)
	} else {
		if dir := filepath.Dir(*out); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Error("failed to create output directory", "dir", dir, "error", err)
				os.Exit(1)
			}
		}
		if err := os.WriteFile(*out, []byte(doc), 0o644); err != nil {
			log.Error("failed to write output", "file", *out, "error", err)
			os.Exit(1)
		}
		log.Info("processed icon", "input", *in, "output", *out)
	}

	if *pngOut != "" {
		opt := iconpicker.ConvertOptions{Width: *pngW, Height: *pngH, Scale: *pngScale}
		if _, err := iconpicker.ConvertToPNG([]byte(doc), *pngOut, opt); err != nil {
			log.Error("failed to rasterize icon", "file", *pngOut, "error", err)
			os.Exit(1)
		}
		log.Info("generated png", "output", *pngOut)
	}
}
