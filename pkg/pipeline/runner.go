package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/AmirF00/GraphQL-Converter/pkg/errors"
	"github.com/AmirF00/GraphQL-Converter/pkg/introspection"
	"github.com/AmirF00/GraphQL-Converter/pkg/observability"
	"github.com/AmirF00/GraphQL-Converter/pkg/schema"
	"github.com/AmirF00/GraphQL-Converter/pkg/sdl"
	"github.com/AmirF00/GraphQL-Converter/pkg/viz"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results or carry state between runs. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete decode → emit → graph → render pipeline.
// The graph and render stages run only when opts.Visual is set.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidOptions, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Decode
	decodeStart := time.Now()
	model, err := r.Decode(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.DecodeTime = time.Since(decodeStart)
	result.Stats.TypeCount = model.Len()

	r.Logger.Info("decoded schema",
		"types", model.Len(),
		"duration", result.Stats.DecodeTime)

	// Stage 2: Emit
	emitStart := time.Now()
	text, err := r.Emit(ctx, model, opts)
	if err != nil {
		return nil, err
	}
	result.SDL = text
	result.Stats.EmitTime = time.Since(emitStart)
	result.Stats.SDLBytes = len(text)

	r.Logger.Info("emitted SDL",
		"bytes", len(text),
		"duration", result.Stats.EmitTime)

	if !opts.Visual {
		return result, nil
	}

	// Stage 3: Graph
	graphStart := time.Now()
	g, err := r.BuildGraph(ctx, model, opts)
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.Stats.GraphTime = time.Since(graphStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	r.Logger.Info("built graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.GraphTime)

	// Stage 4: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Decode reads the introspection document and builds the schema model.
func (r *Runner) Decode(ctx context.Context, opts Options) (*schema.Schema, error) {
	if err := opts.ValidateForDecode(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	source := opts.Source
	if source == "" {
		source = "stream"
	}

	start := time.Now()
	observability.Conversion().OnDecodeStart(ctx, source)

	var (
		doc *introspection.Schema
		err error
	)
	if opts.Input != nil {
		doc, err = introspection.Decode(opts.Input)
	} else {
		doc, err = introspection.DecodeFile(opts.Source)
	}

	var model *schema.Schema
	if err == nil {
		model, err = schema.Build(doc)
	}

	typeCount := 0
	if model != nil {
		typeCount = model.Len()
	}
	observability.Conversion().OnDecodeComplete(ctx, source, typeCount, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return model, nil
}

// Emit renders the schema model as SDL text. When opts.Verify is set,
// the emitted text is re-parsed as a self-check before returning.
func (r *Runner) Emit(ctx context.Context, model *schema.Schema, opts Options) (string, error) {
	r.applyLogger(&opts)

	start := time.Now()
	observability.Conversion().OnEmitStart(ctx, model.Len())

	text, err := sdl.Emit(model)
	if err == nil && opts.Verify {
		err = sdl.Verify(text)
	}

	observability.Conversion().OnEmitComplete(ctx, len(text), time.Since(start), err)

	if err != nil {
		return "", err
	}
	return text, nil
}

// BuildGraph derives the abstract visualization graph from the model.
func (r *Runner) BuildGraph(ctx context.Context, model *schema.Schema, opts Options) (*viz.Graph, error) {
	opts.SetGraphDefaults()
	r.applyLogger(&opts)

	start := time.Now()
	observability.Conversion().OnGraphStart(ctx, model.Len())

	g, err := viz.Build(model, opts.VizConfig())

	nodes, edges := 0, 0
	if g != nil {
		nodes, edges = g.NodeCount(), g.EdgeCount()
	}
	observability.Conversion().OnGraphComplete(ctx, nodes, edges, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return g, nil
}

// Render generates the requested artifact formats from the graph.
func (r *Runner) Render(ctx context.Context, g *viz.Graph, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Conversion().OnRenderStart(ctx, opts.Formats)

	artifacts, err := renderArtifacts(ctx, g, opts)

	observability.Conversion().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
