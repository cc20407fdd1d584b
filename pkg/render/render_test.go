package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	errs "github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/orgchart"
	"github.com/matzehuels/orgchart/pkg/roster"
)

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"pdf", false},
		{"png", false},
		{"jpg", false},
		{"svg", false},
		{"dot", false},
		{"gif", true},
		{"PDF", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %q, want INVALID_FORMAT", tt.format, errs.GetCode(err))
		}
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), `digraph G { a -> b; }`)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	_, err := RenderSVG(context.Background(), `not valid DOT {{{`)
	if err == nil {
		t.Fatal("RenderSVG() should return error for invalid DOT")
	}
	if !errs.Is(err, errs.ErrCodeRenderFailed) {
		t.Errorf("error code = %q, want RENDER_FAILED", errs.GetCode(err))
	}
}

func TestRenderSVG_DefaultRoster(t *testing.T) {
	chart, err := orgchart.Build(roster.Default(), orgchart.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	svg, err := RenderSVG(context.Background(), chart.DOT())
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	for _, id := range []string{"cmd-dro", "ops-zone1", "log-transport"} {
		if !bytes.Contains(svg, []byte("<title>"+id+"</title>")) {
			t.Errorf("SVG missing node %s", id)
		}
	}
}

func TestRenderDOTPassthrough(t *testing.T) {
	dot := "digraph G { a; }\n"
	out, err := Render(context.Background(), dot, FormatDOT)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if string(out) != dot {
		t.Errorf("Render(dot) = %q, want input unchanged", out)
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	_, err := Render(context.Background(), "digraph G {}", "bmp")
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("Render(bmp) error = %v, want INVALID_FORMAT", err)
	}
}

func TestRenderJPG(t *testing.T) {
	jpg, err := Render(context.Background(), `digraph G { a -> b; }`, FormatJPG)
	if err != nil {
		t.Fatalf("Render(jpg) error: %v", err)
	}
	if !bytes.HasPrefix(jpg, []byte{0xFF, 0xD8}) {
		t.Error("Render(jpg) output is not a JPEG")
	}
}

func TestRenderPDF(t *testing.T) {
	if !ConverterAvailable() {
		t.Skip("rsvg-convert not installed")
	}
	pdf, err := Render(context.Background(), `digraph G { a -> b; }`, FormatPDF)
	if err != nil {
		t.Fatalf("Render(pdf) error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("Render(pdf) output is not a PDF")
	}
}

func TestMissingConverter(t *testing.T) {
	orig := rsvgBinary
	rsvgBinary = "orgchart-test-missing-rsvg-convert"
	defer func() { rsvgBinary = orig }()

	if ConverterAvailable() {
		t.Fatal("ConverterAvailable() = true for missing binary")
	}
	_, err := ToPDF([]byte("<svg/>"))
	if !errs.Is(err, errs.ErrCodeRenderFailed) {
		t.Errorf("ToPDF() error = %v, want RENDER_FAILED", err)
	}
	if err != nil && !strings.Contains(err.Error(), "librsvg") {
		t.Errorf("error should mention librsvg: %v", err)
	}
}
