package svgraster

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var testSVG = []byte(`<svg viewBox="0 0 16 16" xmlns="http://www.w3.org/2000/svg" fill="currentColor" style="--icon-color:#D4D4D4; fill:var(--icon-color);">
  <path d="M0 0 L16 0 L16 16 L0 16 Z"/>
</svg>`)

func TestRenderSizes(t *testing.T) {
	tests := []struct {
		name         string
		opt          Options
		wantW, wantH int
	}{
		{"intrinsic", Options{}, 16, 16},
		{"explicit", Options{Width: 64, Height: 32}, 64, 32},
		{"width only keeps aspect", Options{Width: 64}, 64, 64},
		{"height only keeps aspect", Options{Height: 8}, 8, 8},
		{"scale", Options{Scale: 2}, 32, 32},
		{"explicit wins over scale", Options{Width: 10, Height: 10, Scale: 4}, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Render(testSVG, tt.opt)
			if err != nil {
				t.Fatal(err)
			}
			b := img.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderResolvesIconColor(t *testing.T) {
	img, err := Render(testSVG, Options{})
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, a := img.At(8, 8).RGBA()
	want := uint32(0xD4D4)
	if r != want || g != want || b != want || a != 0xFFFF {
		t.Errorf("center pixel = %04x %04x %04x %04x, want declared icon color", r, g, b, a)
	}

	plain := []byte(`<svg viewBox="0 0 4 4" xmlns="http://www.w3.org/2000/svg" fill="currentColor"><path d="M0 0 L4 0 L4 4 L0 4 Z"/></svg>`)
	img, err = Render(plain, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if r, _, _, a := img.At(2, 2).RGBA(); r != 0 || a != 0xFFFF {
		t.Errorf("undeclared currentColor should render black, got r=%04x a=%04x", r, a)
	}
}

func TestEncodePNG(t *testing.T) {
	b, err := EncodePNG(testSVG, Options{Scale: 2})
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("output is not valid png: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("png size %v", img.Bounds())
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "dir", "icon.png")
	if err := WriteFile(out, testSVG, Options{}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render([]byte("not svg at all"), Options{}); !errors.Is(err, ErrRasterization) {
		t.Errorf("malformed input: got %v, want ErrRasterization", err)
	}
	if _, err := Render([]byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`), Options{}); !errors.Is(err, ErrRasterization) {
		t.Errorf("sizeless document: got %v, want ErrRasterization", err)
	}
}
