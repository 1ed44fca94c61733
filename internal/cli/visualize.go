package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AmirF00/GraphQL-Converter/pkg/pipeline"
)

// visualizeFlags holds the command-line flags for the visualize command.
type visualizeFlags struct {
	file      string
	output    string
	formats   string
	maxFields int
	rankdir   string
	title     string
	pngScale  float64
	config    string
}

// visualizeCommand creates the visualize command for diagram-only output.
func (c *CLI) visualizeCommand() *cobra.Command {
	var flags visualizeFlags

	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Generate schema diagram artifacts without emitting SDL",
		Long: `Generate node-and-edge schema diagram artifacts from introspection JSON.

The command decodes the schema, derives the diagram graph, and writes the
requested formats. Output paths share a stem: -o schema.svg also produces
schema.html when both formats are requested. Without --output the stem is
derived from the input path.

Use 'convert --visual' to produce the SDL alongside the diagrams.

Examples:
  gqlconv visualize -f introspection.json
  gqlconv visualize -f introspection.json -o schema.svg --formats svg,html,json
  gqlconv visualize -f introspection.json --rankdir LR --max-fields 16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVisualize(cmd.Context(), &flags, cmd.Flags().Changed)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "introspection JSON input path")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&flags.formats, "formats", "", "artifact format(s): svg,html,json,png,pdf (comma-separated)")
	cmd.Flags().IntVar(&flags.maxFields, "max-fields", 0, "max field rows per diagram node (default 10)")
	cmd.Flags().StringVar(&flags.rankdir, "rankdir", "", "diagram direction: TB (default), LR, BT, RL")
	cmd.Flags().StringVar(&flags.title, "title", "", "HTML page title")
	cmd.Flags().Float64Var(&flags.pngScale, "png-scale", 0, "PNG raster scale factor (default 2.0)")
	cmd.Flags().StringVar(&flags.config, "config", "", "TOML settings file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// runVisualize decodes the schema, builds the diagram graph, and writes
// the rendered artifacts.
func (c *CLI) runVisualize(ctx context.Context, flags *visualizeFlags, changed func(string) bool) error {
	opts := pipeline.Options{
		Source:    flags.file,
		Visual:    true,
		MaxFields: flags.maxFields,
		Formats:   parseFormats(flags.formats),
		Rankdir:   flags.rankdir,
		Title:     flags.title,
		PNGScale:  flags.pngScale,
		Logger:    c.Logger,
	}
	if err := applyConfig(flags.config, &opts, changed); err != nil {
		return err
	}

	runner := c.newRunner()

	model, err := runner.Decode(ctx, opts)
	if err != nil {
		return err
	}

	graph, err := runner.BuildGraph(ctx, model, opts)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Rendering diagram...")
	spinner.Start()

	artifacts, err := runner.Render(ctx, graph, opts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	base := basePath(flags.output, flags.file)
	err = writeArtifacts(ctx, artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      base,
	})
	if err != nil {
		return err
	}

	printSuccess("Visualization complete")
	printStats(
		fmt.Sprintf("%d nodes", graph.NodeCount()),
		fmt.Sprintf("%d edges", graph.EdgeCount()),
	)

	if hasFormat(opts.Formats, pipeline.FormatJSON) {
		printNewline()
		printNextStep("Re-render", fmt.Sprintf("%s render %s", appName, artifactPath(base, pipeline.FormatJSON)))
	}

	return nil
}

// hasFormat reports whether format appears in formats.
func hasFormat(formats []string, format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}
