package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AmirF00/GraphQL-Converter/pkg/pipeline"
	"github.com/AmirF00/GraphQL-Converter/pkg/viz"
)

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	output   string
	formats  string
	rankdir  string
	title    string
	pngScale float64
	config   string
}

// renderCommand creates the render command for re-rendering artifacts
// from a previously exported diagram graph.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Re-render diagram artifacts from an exported graph JSON",
		Long: `Re-render diagram artifacts from a graph JSON exported by a previous
'convert --visual' or 'visualize' run with the json format.

Decoding the introspection document is skipped entirely, so restyling a
large schema (different direction, palette, or formats) is cheap.

Examples:
  gqlconv render schema.json
  gqlconv render schema.json --formats svg,html --rankdir LR
  gqlconv render schema.json -o docs/schema --formats png --png-scale 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &flags, cmd.Flags().Changed)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&flags.formats, "formats", "", "artifact format(s): svg,html,json,png,pdf (comma-separated)")
	cmd.Flags().StringVar(&flags.rankdir, "rankdir", "", "diagram direction: TB (default), LR, BT, RL")
	cmd.Flags().StringVar(&flags.title, "title", "", "HTML page title")
	cmd.Flags().Float64Var(&flags.pngScale, "png-scale", 0, "PNG raster scale factor (default 2.0)")
	cmd.Flags().StringVar(&flags.config, "config", "", "TOML settings file")

	return cmd
}

// runRender loads the exported graph and renders the requested formats.
func (c *CLI) runRender(ctx context.Context, input string, flags *renderFlags, changed func(string) bool) error {
	opts := pipeline.Options{
		Formats:  parseFormats(flags.formats),
		Rankdir:  flags.rankdir,
		Title:    flags.title,
		PNGScale: flags.pngScale,
		Logger:   c.Logger,
	}
	if err := applyConfig(flags.config, &opts, changed); err != nil {
		return err
	}

	graph, err := viz.ImportJSON(input)
	if err != nil {
		return err
	}
	c.Logger.Info("loaded graph", "nodes", graph.NodeCount(), "edges", graph.EdgeCount())

	prog := newProgress(c.Logger)

	artifacts, err := c.newRunner().Render(ctx, graph, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifacts", len(artifacts)))

	base := basePath(flags.output, input)
	err = writeArtifacts(ctx, artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      base,
	})
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	printStats(
		fmt.Sprintf("%d nodes", graph.NodeCount()),
		fmt.Sprintf("%d edges", graph.EdgeCount()),
	)

	return nil
}
