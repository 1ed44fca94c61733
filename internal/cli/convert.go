package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/AmirF00/GraphQL-Converter/pkg/errors"
	"github.com/AmirF00/GraphQL-Converter/pkg/pipeline"
)

// convertFlags holds the command-line flags for the convert command.
type convertFlags struct {
	file      string  // introspection JSON input path
	output    string  // SDL output path (stdout if empty)
	visual    bool    // also generate diagram artifacts
	formats   string  // comma-separated artifact formats
	maxFields int     // field rows shown per diagram node
	rankdir   string  // diagram direction
	title     string  // HTML page title
	pngScale  float64 // PNG raster scale factor
	config    string  // TOML settings file
	check     bool    // re-parse emitted SDL as a self-check
}

// convertCommand creates the convert command running the full pipeline.
func (c *CLI) convertCommand() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert introspection JSON to SDL, optionally with diagrams",
		Long: `Convert a GraphQL introspection JSON document into SDL text.

Without --output the SDL goes to stdout. With --visual, the command also
derives a node-and-edge diagram of the schema and writes the requested
artifact formats next to the SDL output (schema.graphql produces
schema.svg, schema.html, and so on).

Examples:
  gqlconv convert -f introspection.json
  gqlconv convert -f introspection.json -o schema.graphql --check
  gqlconv convert -f introspection.json -o schema.graphql --visual --formats svg,html,json
  gqlconv convert -f introspection.json --visual --rankdir LR --max-fields 16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), &flags, cmd.Flags().Changed)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "introspection JSON input path")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "SDL output path (stdout if empty)")
	cmd.Flags().BoolVar(&flags.visual, "visual", false, "generate diagram artifacts alongside the SDL")
	cmd.Flags().StringVar(&flags.formats, "formats", "", "artifact format(s): svg,html,json,png,pdf (comma-separated)")
	cmd.Flags().IntVar(&flags.maxFields, "max-fields", 0, "max field rows per diagram node (default 10)")
	cmd.Flags().StringVar(&flags.rankdir, "rankdir", "", "diagram direction: TB (default), LR, BT, RL")
	cmd.Flags().StringVar(&flags.title, "title", "", "HTML page title")
	cmd.Flags().Float64Var(&flags.pngScale, "png-scale", 0, "PNG raster scale factor (default 2.0)")
	cmd.Flags().StringVar(&flags.config, "config", "", "TOML settings file")
	cmd.Flags().BoolVar(&flags.check, "check", false, "re-parse the emitted SDL as a self-check")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// runConvert executes the full pipeline and writes SDL plus artifacts.
func (c *CLI) runConvert(ctx context.Context, flags *convertFlags, changed func(string) bool) error {
	opts := pipeline.Options{
		Source:    flags.file,
		Verify:    flags.check,
		Visual:    flags.visual,
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

	toStdout := flags.output == ""

	spinner := newSpinnerWithContext(ctx, "Converting schema...")
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.StopWithError("Conversion failed")
		return err
	}
	spinner.Stop()

	if err := writeSDL(result.SDL, flags.output); err != nil {
		return err
	}

	if opts.Visual {
		base := basePath(flags.output, flags.file)
		err := writeArtifacts(ctx, artifactWriteParams{
			artifacts: result.Artifacts,
			formats:   opts.Formats,
			base:      base,
			quiet:     toStdout,
		})
		if err != nil {
			return err
		}
	}

	if toStdout {
		// SDL went to the pipe; keep decorations off stdout.
		return nil
	}

	printSuccess("Conversion complete")
	printFile(flags.output)
	if flags.check {
		printDetail("Emitted SDL re-parsed cleanly")
	}
	printStats(convertStats(result)...)
	printNewline()
	printNextStep("Preview", fmt.Sprintf("%s serve -f %s", appName, flags.file))

	return nil
}

// writeSDL writes the SDL text to path, or stdout when path is empty.
func writeSDL(text, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.WriteString(out, text); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write SDL")
	}
	return nil
}

// convertStats summarizes a pipeline result for the stats line.
func convertStats(result *pipeline.Result) []string {
	stats := result.Stats
	parts := []string{
		fmt.Sprintf("%d types", stats.TypeCount),
		fmt.Sprintf("%d bytes SDL", stats.SDLBytes),
	}
	if result.Graph != nil {
		parts = append(parts,
			fmt.Sprintf("%d nodes", stats.NodeCount),
			fmt.Sprintf("%d edges", stats.EdgeCount))
	}
	return append(parts, stats.Total().Round(time.Millisecond).String())
}
