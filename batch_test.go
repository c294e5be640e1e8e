package iconpicker

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBulkProcess(t *testing.T) {
	dir := t.TempDir()
	valid := `<svg viewBox="0 0 24 24"><path d="M0 0 L24 24"/></svg>`
	files := map[string]string{
		"a.svg":      valid,
		"b.SVG":      valid, // extension match is case-insensitive
		"c.svg":      valid,
		"broken.svg": `<svg viewBox="0 0 24"><path d="M0 0"/></svg>`,
		"notes.txt":  "not an svg",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	res, err := BulkProcess(dir, "resized", Config{Width: 48, Height: 48}, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if res.Processed != 3 {
		t.Errorf("processed = %d, want 3", res.Processed)
	}
	if len(res.Failed) != 1 {
		t.Fatalf("failed = %v, want exactly broken.svg", res.Failed)
	}
	if _, ok := res.Failed["broken.svg"]; !ok {
		t.Errorf("failed = %v, want broken.svg", res.Failed)
	}

	outDir := filepath.Join(dir, "resized")
	for _, name := range []string{"a.svg", "b.SVG", "c.svg"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "broken.svg")); !os.IsNotExist(err) {
		t.Error("failed file must produce no output")
	}
	if _, err := os.Stat(filepath.Join(outDir, "notes.txt")); !os.IsNotExist(err) {
		t.Error("non-svg file must be ignored")
	}
}

func TestBulkProcessEmptyDirIsNoOp(t *testing.T) {
	dir := t.TempDir()
	res, err := BulkProcess(dir, "resized", Config{Width: 48, Height: 48}, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if res.Processed != 0 || len(res.Failed) != 0 {
		t.Errorf("empty dir must be a no-op, got %+v", res)
	}
}

func TestBulkProcessMissingDir(t *testing.T) {
	_, err := BulkProcess(filepath.Join(t.TempDir(), "nope"), "resized", Config{Width: 48, Height: 48}, quietLogger())
	if err == nil {
		t.Fatal("expected error for missing input directory")
	}
}

func TestBulkProcessSequentialWorker(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.svg", "b.svg"} {
		err := os.WriteFile(filepath.Join(dir, name),
			[]byte(`<svg viewBox="0 0 8 8"><path d="M0 0 L8 8"/></svg>`), 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}
	res, err := BulkProcess(dir, "out", Config{Width: 16, Height: 16, Workers: 1}, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if res.Processed != 2 {
		t.Errorf("processed = %d, want 2", res.Processed)
	}
}
