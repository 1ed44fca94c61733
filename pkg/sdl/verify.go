package sdl

import (
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/AmirF00/GraphQL-Converter/pkg/errors"
)

// Verify re-parses SDL text with a standard GraphQL parser and returns a
// VERIFY_FAILED error if the text is not a valid schema document. An
// empty document is trivially valid.
func Verify(text string) error {
	if text == "" {
		return nil
	}
	if _, err := gqlparser.LoadSchema(&ast.Source{Name: "emitted.graphql", Input: text}); err != nil {
		return errors.Wrap(errors.ErrCodeVerifyFailed, err, "emitted SDL failed re-parse")
	}
	return nil
}
