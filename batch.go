package iconpicker

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// BatchResult summarizes one BulkProcess run.
type BatchResult struct {
	// Processed counts files written successfully.
	Processed int
	// Failed maps a file name to the error that skipped it.
	Failed map[string]error
}

// BulkProcess processes every file with a .svg extension
// (case-insensitive) in inputDir into a subdirectory named
// outputSubdir created under inputDir, keeping file names. A file
// that fails is recorded in the result and logged, never fatal to
// the batch; a directory with no SVG files is a logged no-op.
// Files are processed with bounded concurrency (Config.Workers).
// A nil logger falls back to slog.Default.
func BulkProcess(inputDir, outputSubdir string, cfg Config, log *slog.Logger) (*BatchResult, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, inputDir)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".svg") {
			files = append(files, e.Name())
		}
	}
	res := &BatchResult{Failed: make(map[string]error)}
	if len(files) == 0 {
		log.Warn("no svg files found", "dir", inputDir)
		return res, nil
	}

	outputDir := filepath.Join(inputDir, outputSubdir)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, err
	}
	log.Info("processing svg files", "dir", inputDir, "count", len(files))

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, cfg.workers())
	)
	for _, name := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(name string) {
			defer wg.Done()
			defer func() { <-sem }()

			input := filepath.Join(inputDir, name)
			output := filepath.Join(outputDir, name)
			if err := ResizeFile(input, output, cfg); err != nil {
				log.Error("failed to process icon", "file", name, "error", err)
				mu.Lock()
				res.Failed[name] = err
				mu.Unlock()
				return
			}
			log.Info("processed icon", "input", input, "output", output)
			mu.Lock()
			res.Processed++
			mu.Unlock()
		}(name)
	}
	wg.Wait()

	log.Info("batch processing complete", "processed", res.Processed, "failed", len(res.Failed))
	return res, nil
}
