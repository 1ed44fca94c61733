package render

import (
	"strings"
	"testing"

	"github.com/AmirF00/GraphQL-Converter/pkg/viz"
)

func TestRenderHTML(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><text>Query</text></svg>`)

	page, err := RenderHTML(svg, Options{})
	if err != nil {
		t.Fatalf("RenderHTML() error: %v", err)
	}

	html := string(page)
	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Error("RenderHTML() output missing doctype")
	}
	if !strings.Contains(html, "<title>GraphQL Schema</title>") {
		t.Error("RenderHTML() output missing default title")
	}
	if !strings.Contains(html, string(svg)) {
		t.Error("RenderHTML() output missing embedded SVG")
	}
}

func TestRenderHTML_Legend(t *testing.T) {
	page, err := RenderHTML([]byte("<svg></svg>"), Options{})
	if err != nil {
		t.Fatalf("RenderHTML() error: %v", err)
	}

	html := string(page)
	entries := []struct{ label, color string }{
		{"Object / Interface / Union", "lightblue"},
		{"Input object", "lightgreen"},
		{"Enum", "gold"},
	}
	for _, e := range entries {
		if !strings.Contains(html, e.label) {
			t.Errorf("RenderHTML() legend missing label %q", e.label)
		}
		if !strings.Contains(html, e.color) {
			t.Errorf("RenderHTML() legend missing color %q", e.color)
		}
	}
}

func TestRenderHTML_CustomTitleAndPalette(t *testing.T) {
	opts := Options{
		Title:   "Orders API",
		Palette: map[viz.Category]string{viz.CategoryEnum: "orchid"},
	}

	page, err := RenderHTML([]byte("<svg></svg>"), opts)
	if err != nil {
		t.Fatalf("RenderHTML() error: %v", err)
	}

	html := string(page)
	if !strings.Contains(html, "<title>Orders API</title>") {
		t.Error("RenderHTML() output missing custom title")
	}
	if !strings.Contains(html, "orchid") {
		t.Error("RenderHTML() legend missing palette override")
	}
	if strings.Contains(html, "gold") {
		t.Error("RenderHTML() legend kept default color despite override")
	}
}
