package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AmirF00/GraphQL-Converter/pkg/introspection"
)

// queryCommand creates the query command printing the introspection query.
func (c *CLI) queryCommand() *cobra.Command {
	var body bool

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print the standard introspection query",
		Long: `Print the standard introspection query understood by conforming GraphQL
servers. The response it produces is exactly what 'convert' accepts.

With --body the query is wrapped in the single-line JSON request body
expected by GraphQL HTTP endpoints, ready for a POST:

  gqlconv query --body | curl -s https://api.example.com/graphql \
    -H 'Content-Type: application/json' -d @- > introspection.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if body {
				data, err := introspection.RequestBody()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), introspection.Query)
			return nil
		},
	}

	cmd.Flags().BoolVar(&body, "body", false, "print the JSON request body form")

	return cmd
}
