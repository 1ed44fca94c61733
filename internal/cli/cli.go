// Package cli implements the gqlconv command-line interface.
//
// The package provides commands for converting GraphQL introspection JSON
// into SDL text and visual schema diagrams, re-rendering exported diagram
// graphs, browsing a schema interactively, and previewing generated
// artifacts over HTTP. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - convert: Emit SDL from introspection JSON, optionally with diagrams
//   - visualize: Generate diagram artifacts only
//   - render: Re-render artifacts from an exported diagram graph JSON
//   - query: Print the standard introspection query
//   - inspect: Browse the schema model interactively
//   - serve: Preview generated artifacts on localhost
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is attached to the command context and retrievable via loggerFromContext.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/AmirF00/GraphQL-Converter/pkg/buildinfo"
	"github.com/AmirF00/GraphQL-Converter/pkg/errors"
	"github.com/AmirF00/GraphQL-Converter/pkg/observability"
	"github.com/AmirF00/GraphQL-Converter/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the binary name used in help text and suggested commands.
const appName = "gqlconv"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "gqlconv converts GraphQL introspection JSON to SDL and schema diagrams",
		Long: `gqlconv turns the JSON produced by a GraphQL introspection query into
readable SDL text and node-and-edge schema diagrams (SVG, HTML, PNG, PDF),
plus a JSON export of the diagram graph for downstream tooling.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.queryCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Formats & Paths
// =============================================================================

// parseFormats parses a comma-separated format string into a normalized
// slice, defaulting to the pipeline's standard formats when empty.
func parseFormats(s string) []string {
	if s == "" {
		return append([]string(nil), pipeline.DefaultFormats...)
	}
	return pipeline.NormalizeFormats(strings.Split(s, ","))
}

// stemExtensions are extensions stripped when deriving an artifact base
// path, so sibling artifacts share the output stem.
var stemExtensions = map[string]bool{
	"svg":      true,
	"html":     true,
	"json":     true,
	"png":      true,
	"pdf":      true,
	"graphql":  true,
	"graphqls": true,
}

// basePath derives the artifact base path from the output and input paths.
// If output is empty, the input path minus its extension is used.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if stemExtensions[strings.ToLower(strings.TrimPrefix(ext, "."))] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactPath returns the output path for one rendered format.
func artifactPath(base, format string) string {
	return base + "." + format
}

// =============================================================================
// Output Helpers
// =============================================================================

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	base      string
	quiet     bool // report through hooks only, keep stdout clean
}

// writeArtifacts writes each requested format to base.<format> in request
// order, notifying the artifact hooks and printing every written file.
func writeArtifacts(ctx context.Context, p artifactWriteParams) error {
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := artifactPath(p.base, format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			observability.Artifacts().OnArtifactFailed(ctx, format, path, err)
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
		}
		observability.Artifacts().OnArtifactWritten(ctx, format, path, len(data))
		if !p.quiet {
			printFile(path)
		}
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method so os.Stdout can
// stand in for a created file.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path, or stdout when the
// path is empty. An existing file at path is overwritten.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	return f, nil
}
