// Package pipeline provides the core conversion pipeline.
//
// This package implements the complete decode → emit → graph → render
// pipeline that can be used by CLI and server components. By centralizing
// this logic, we ensure consistent behavior across all entry points and
// avoid code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Decode: Read introspection JSON into the immutable schema model
//  2. Emit: Render the model as deterministic SDL text
//  3. Graph: Derive the abstract type-relationship graph
//  4. Render: Generate visualization artifacts (SVG, HTML, JSON, PNG, PDF)
//
// The decode and emit stages always run. The graph and render stages run
// only when a visualization is requested. Each stage can also be run
// independently.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Source:  "introspection.json",
//	    Visual:  true,
//	    Formats: []string{"svg", "html"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sdl := result.SDL
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Decode only
//	model, err := runner.Decode(ctx, opts)
//
//	// Emit SDL from an existing model
//	sdl, err := runner.Emit(ctx, model, opts)
//
//	// Build and render the graph
//	g, err := runner.BuildGraph(ctx, model, opts)
//	artifacts, err := runner.Render(ctx, g, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/AmirF00/GraphQL-Converter/pkg/errors"
	"github.com/AmirF00/GraphQL-Converter/pkg/render"
	"github.com/AmirF00/GraphQL-Converter/pkg/viz"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultMaxFields caps the displayed rows per visualization node.
	// This matches viz.DefaultMaxFields to maintain consistency.
	DefaultMaxFields = viz.DefaultMaxFields

	// DefaultRankdir is the Graphviz layout direction.
	DefaultRankdir = render.DefaultRankdir

	// DefaultPNGScale is the raster scale factor for PNG output.
	DefaultPNGScale = render.DefaultPNGScale
)

// Format constants for visualization output formats.
const (
	FormatSVG  = "svg"
	FormatHTML = "html"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// DefaultFormats are the visualization formats rendered when none are
// requested explicitly.
var DefaultFormats = []string{FormatSVG, FormatHTML}

// ValidFormats is the set of supported visualization output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatHTML: true,
	FormatJSON: true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// ValidRankdirs is the set of supported layout directions.
var ValidRankdirs = map[string]bool{
	"TB": true,
	"LR": true,
	"BT": true,
	"RL": true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the conversion pipeline.
// This struct supports JSON serialization for config files and logs.
type Options struct {
	// Decode options. Exactly one of Source or Input feeds the decoder:
	// Source names a JSON file on disk, Input streams the document
	// directly (Source then only labels log and hook events).
	Source string    `json:"source,omitempty"`
	Input  io.Reader `json:"-"`

	// Emit options
	Verify bool `json:"verify,omitempty"` // re-parse emitted SDL as a self-check

	// Graph options
	Visual    bool `json:"visual,omitempty"` // build and render the visualization
	MaxFields int  `json:"max_fields,omitempty"`

	// Render options
	Formats  []string                `json:"formats,omitempty"`
	Rankdir  string                  `json:"rankdir,omitempty"`
	Title    string                  `json:"title,omitempty"`
	PNGScale float64                 `json:"png_scale,omitempty"`
	Palette  map[viz.Category]string `json:"palette,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// SDL is the emitted schema definition language text.
	SDL string

	// Graph is the abstract visualization graph. Nil unless Visual was
	// requested.
	Graph *viz.Graph

	// Artifacts contains rendered outputs keyed by format. Empty unless
	// Visual was requested.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TypeCount  int
	NodeCount  int
	EdgeCount  int
	SDLBytes   int
	DecodeTime time.Duration
	EmitTime   time.Duration
	GraphTime  time.Duration
	RenderTime time.Duration
}

// Total returns the combined duration of all executed stages.
func (s Stats) Total() time.Duration {
	return s.DecodeTime + s.EmitTime + s.GraphTime + s.RenderTime
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid. Comparison is
// case-insensitive; callers should normalize with [NormalizeFormats].
func ValidateFormat(format string) error {
	if !ValidFormats[strings.ToLower(format)] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, html, json, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRankdir checks that a layout direction is valid.
func ValidateRankdir(rankdir string) error {
	if !ValidRankdirs[strings.ToUpper(rankdir)] {
		return errors.New(errors.ErrCodeInvalidOptions,
			"invalid rankdir: %q (must be one of: TB, LR, BT, RL)", rankdir)
	}
	return nil
}

// NormalizeFormats lowercases and de-duplicates a format list, keeping
// first-seen order.
func NormalizeFormats(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForDecode(); err != nil {
		return err
	}
	o.SetGraphDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForDecode checks required fields for decoding.
func (o *Options) ValidateForDecode() error {
	if o.Source == "" && o.Input == nil {
		return errors.New(errors.ErrCodeInvalidOptions, "source or input is required")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetGraphDefaults sets default values for graph construction.
func (o *Options) SetGraphDefaults() {
	if o.MaxFields == 0 {
		o.MaxFields = DefaultMaxFields
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = append([]string(nil), DefaultFormats...)
	}
	o.Formats = NormalizeFormats(o.Formats)
	if o.Rankdir == "" {
		o.Rankdir = DefaultRankdir
	}
	o.Rankdir = strings.ToUpper(o.Rankdir)
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateRankdir(o.Rankdir)
}

// VizConfig returns the builder configuration derived from the options.
func (o *Options) VizConfig() viz.Config {
	return viz.Config{MaxFields: o.MaxFields}
}

// RenderOptions returns the renderer configuration derived from the options.
func (o *Options) RenderOptions() render.Options {
	return render.Options{
		Rankdir: o.Rankdir,
		Palette: o.Palette,
		Title:   o.Title,
	}
}

// NeedsSVG reports whether any requested format requires SVG rendering.
// JSON is the only format derived from the graph alone.
func (o *Options) NeedsSVG() bool {
	for _, f := range o.Formats {
		if f != FormatJSON {
			return true
		}
	}
	return false
}
