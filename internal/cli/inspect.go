package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AmirF00/GraphQL-Converter/pkg/introspection"
	"github.com/AmirF00/GraphQL-Converter/pkg/schema"
)

// inspectCommand creates the inspect command for interactive browsing.
func (c *CLI) inspectCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Browse a schema's types interactively",
		Long: `Browse the types of an introspected schema in an interactive list.

Navigate with the arrow keys, press / to filter by name, enter to show a
type's SDL block, esc to go back, and q to quit.

Examples:
  # Browse a schema dump
  gqlconv inspect -f schema.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "introspection JSON input path")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, file string) error {
	doc, err := introspection.DecodeFile(file)
	if err != nil {
		return err
	}

	model, err := schema.Build(doc)
	if err != nil {
		return err
	}
	c.Logger.Debug("schema loaded", "file", file, "types", model.Len())

	if model.Len() == 0 {
		printWarning("Schema defines no types")
		return nil
	}

	p := tea.NewProgram(newTypeBrowserModel(model), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}
