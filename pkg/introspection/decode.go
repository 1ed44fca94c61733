package introspection

import (
	"encoding/json"
	"io"
	"os"

	"github.com/AmirF00/GraphQL-Converter/pkg/errors"
)

// envelope covers both accepted input shapes: a full GraphQL response with
// the schema under "data", or a bare object with "__schema" at the top.
type envelope struct {
	Data *struct {
		Schema *Schema `json:"__schema"`
	} `json:"data"`
	Schema *Schema `json:"__schema"`
}

// Decode reads an introspection JSON document from r and returns the
// schema object.
//
// Decode returns an INVALID_INPUT error if:
//   - The JSON is malformed
//   - Neither "data.__schema" nor "__schema" is present
//   - The schema object has no "types" list
//
// Decode does not close r. The returned Schema is independent of r.
func Decode(r io.Reader) (*Schema, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode introspection JSON")
	}

	schema := env.Schema
	if env.Data != nil && env.Data.Schema != nil {
		schema = env.Data.Schema
	}
	if schema == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "missing __schema object (expected data.__schema or top-level __schema)")
	}
	if schema.Types == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "__schema has no types list")
	}

	return schema, nil
}

// DecodeFile opens the file at path, decodes it using [Decode], and closes
// the file. The error wraps the underlying cause with the file path for
// context.
func DecodeFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Decode(f)
}
