package iconpicker

import "fmt"

// defaultWorkers bounds batch concurrency when Config.Workers is unset.
const defaultWorkers = 4

// Config is the processing configuration for one resize run.
// Width and Height are the target document size and are required;
// the remaining options default to false.
type Config struct {
	// Width and Height are the target dimensions, in document units.
	// Both must be strictly positive.
	Width, Height float64

	// AddStyle injects the default CSS variable block for icon
	// recoloring as a style element.
	AddStyle bool

	// AddWidthHeight emits explicit width/height attributes on the
	// root element besides the viewBox.
	AddWidthHeight bool

	// Minify emits the document without pretty-printing whitespace.
	Minify bool

	// Workers bounds concurrent file processing in BulkProcess.
	// Zero means the default of 4.
	Workers int
}

// Validate reports whether the configuration can be processed.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("target size must be positive, got %gx%g", c.Width, c.Height)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return defaultWorkers
}
