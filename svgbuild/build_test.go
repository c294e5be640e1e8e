package svgbuild

import (
	"strings"
	"testing"
)

func TestBuildDefault(t *testing.T) {
	got := Build(48, 48, Options{}, []string{"M0 0 L48 48"})
	want := `<svg viewBox="0 0 48 48" xmlns="http://www.w3.org/2000/svg" fill="currentColor" style="--icon-color:#D4D4D4; fill:var(--icon-color);">
  <path d="M0 0 L48 48"/>
</svg>`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildOptions(t *testing.T) {
	got := Build(24, 36, Options{AddStyle: true, AddWidthHeight: true}, []string{"M0 0", "M1 1"})

	if !strings.Contains(got, `viewBox="0 0 24 36"`) {
		t.Errorf("missing viewBox: %s", got)
	}
	if !strings.Contains(got, `width="24" height="36"`) {
		t.Errorf("missing width/height attributes: %s", got)
	}
	if n := strings.Count(got, "<style>"); n != 1 {
		t.Errorf("got %d style elements, want 1", n)
	}
	if !strings.Contains(got, "<style>svg { --icon-color: #D4D4D4; }</style>") {
		t.Errorf("style rule wrong: %s", got)
	}
	// paths come after the style element, in input order
	if i, j := strings.Index(got, "<style>"), strings.Index(got, "<path"); i > j {
		t.Error("style element must precede path elements")
	}
	if i, j := strings.Index(got, `d="M0 0"`), strings.Index(got, `d="M1 1"`); i > j {
		t.Error("path order not preserved")
	}
}

func TestBuildNoWidthHeightByDefault(t *testing.T) {
	got := Build(48, 48, Options{}, nil)
	if strings.Contains(got, "width=") || strings.Contains(got, "height=") {
		t.Errorf("width/height must be absent by default: %s", got)
	}
	if strings.Contains(got, "<style>") {
		t.Errorf("style element must be absent by default: %s", got)
	}
}

func TestBuildFractionalDimensions(t *testing.T) {
	got := Build(12.5, 7.25, Options{}, nil)
	if !strings.Contains(got, `viewBox="0 0 12.5 7.25"`) {
		t.Errorf("fractional dimensions mangled: %s", got)
	}
}

func TestBuildMinify(t *testing.T) {
	got := Build(48, 48, Options{AddStyle: true, Minify: true}, []string{"M0 0 L48 48"})
	want := `<svg viewBox="0 0 48 48" xmlns="http://www.w3.org/2000/svg" fill="currentColor" style="--icon-color:#D4D4D4; fill:var(--icon-color);"><style>svg { --icon-color: #D4D4D4; }</style><path d="M0 0 L48 48"/></svg>`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	if strings.ContainsAny(got, "\n\t") {
		t.Error("minified output must not contain whitespace between elements")
	}
}

func TestBuildNoBlankLines(t *testing.T) {
	got := Build(48, 48, Options{AddStyle: true}, []string{"M0 0", "M1 1"})
	for i, line := range strings.Split(got, "\n") {
		if strings.TrimSpace(line) == "" {
			t.Errorf("blank line %d in pretty output:\n%s", i, got)
		}
	}
}

func TestBuildEscapesPathData(t *testing.T) {
	got := Build(1, 1, Options{}, []string{`M0 0 "<&>"`})
	if !strings.Contains(got, `d="M0 0 &quot;&lt;&amp;&gt;&quot;"`) {
		t.Errorf("path data not escaped: %s", got)
	}
}
