package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/AmirF00/GraphQL-Converter/pkg/errors"
)

const heroDocument = `{
  "data": {
    "__schema": {
      "types": [
        {
          "kind": "OBJECT",
          "name": "Query",
          "fields": [
            {"name": "droid", "args": [], "type": {"kind": "OBJECT", "name": "Droid", "ofType": null}},
            {"name": "episodes", "args": [], "type": {"kind": "NON_NULL", "name": null, "ofType": {"kind": "LIST", "name": null, "ofType": {"kind": "ENUM", "name": "Episode", "ofType": null}}}}
          ]
        },
        {
          "kind": "OBJECT",
          "name": "Droid",
          "fields": [
            {"name": "name", "args": [], "type": {"kind": "NON_NULL", "name": null, "ofType": {"kind": "SCALAR", "name": "String", "ofType": null}}}
          ]
        },
        {
          "kind": "ENUM",
          "name": "Episode",
          "enumValues": [{"name": "NEWHOPE"}, {"name": "EMPIRE"}]
        }
      ]
    }
  }
}`

func quietRunner() *Runner {
	return NewRunner(log.NewWithOptions(io.Discard, log.Options{}))
}

func TestRunnerExecute(t *testing.T) {
	opts := Options{
		Input:   strings.NewReader(heroDocument),
		Visual:  true,
		Formats: []string{"svg", "json"},
	}

	result, err := quietRunner().Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.Contains(result.SDL, "type Query") {
		t.Errorf("SDL missing Query block:\n%s", result.SDL)
	}
	if !strings.Contains(result.SDL, "enum Episode") {
		t.Errorf("SDL missing Episode block:\n%s", result.SDL)
	}

	if result.Stats.TypeCount != 3 {
		t.Errorf("TypeCount = %d, want 3", result.Stats.TypeCount)
	}
	if result.Stats.NodeCount != 3 {
		t.Errorf("NodeCount = %d, want 3", result.Stats.NodeCount)
	}
	if result.Stats.EdgeCount != 2 {
		t.Errorf("EdgeCount = %d, want 2", result.Stats.EdgeCount)
	}
	if result.Stats.SDLBytes != len(result.SDL) {
		t.Errorf("SDLBytes = %d, want %d", result.Stats.SDLBytes, len(result.SDL))
	}

	svg, ok := result.Artifacts["svg"]
	if !ok || !strings.Contains(string(svg), "<svg") {
		t.Error("missing or malformed svg artifact")
	}
	graphJSON, ok := result.Artifacts["json"]
	if !ok || !strings.Contains(string(graphJSON), "Droid") {
		t.Error("missing or malformed json artifact")
	}
}

func TestRunnerExecuteSDLOnly(t *testing.T) {
	opts := Options{Input: strings.NewReader(heroDocument)}

	result, err := quietRunner().Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.SDL == "" {
		t.Error("SDL is empty")
	}
	if result.Graph != nil {
		t.Error("Graph built without Visual")
	}
	if len(result.Artifacts) != 0 {
		t.Errorf("artifacts rendered without Visual: %v", len(result.Artifacts))
	}
	if result.Stats.NodeCount != 0 || result.Stats.RenderTime != 0 {
		t.Error("graph stats populated without Visual")
	}
}

func TestRunnerExecuteVerify(t *testing.T) {
	opts := Options{Input: strings.NewReader(heroDocument), Verify: true}

	result, err := quietRunner().Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute with verify: %v", err)
	}
	if result.SDL == "" {
		t.Error("SDL is empty")
	}
}

func TestRunnerExecuteMissingInput(t *testing.T) {
	_, err := quietRunner().Execute(context.Background(), Options{})
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !errors.Is(err, errors.ErrCodeInvalidOptions) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidOptions)
	}
}

func TestRunnerDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "BadJSON", input: `{oops`},
		{name: "NoSchema", input: `{"data": {}}`},
		{
			name:  "UnknownKind",
			input: `{"__schema": {"types": [{"kind": "WIDGET", "name": "X"}]}}`,
		},
		{
			name:  "DuplicateType",
			input: `{"__schema": {"types": [{"kind": "SCALAR", "name": "X"}, {"kind": "SCALAR", "name": "X"}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Input: strings.NewReader(tt.input)}
			_, err := quietRunner().Decode(context.Background(), opts)
			if err == nil {
				t.Fatal("expected decode error")
			}
			if !errors.IsMalformedInput(err) {
				t.Errorf("error %v should be malformed input, code = %v", err, errors.GetCode(err))
			}
		})
	}
}

func TestRunnerDecodeFileNotFound(t *testing.T) {
	opts := Options{Source: "nonexistent.json"}
	_, err := quietRunner().Decode(context.Background(), opts)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestRunnerRenderJSONOnly(t *testing.T) {
	r := quietRunner()
	opts := Options{Input: strings.NewReader(heroDocument), Visual: true, Formats: []string{"json"}}

	model, err := r.Decode(context.Background(), opts)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	g, err := r.BuildGraph(context.Background(), model, opts)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	artifacts, err := r.Render(context.Background(), g, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, ok := artifacts["json"]; !ok {
		t.Error("missing json artifact")
	}
	if _, ok := artifacts["svg"]; ok {
		t.Error("svg artifact rendered without being requested")
	}
}

func TestRunnerExecuteDanglingReference(t *testing.T) {
	doc := `{"__schema": {"types": [
		{"kind": "OBJECT", "name": "Query", "fields": [
			{"name": "ghost", "args": [], "type": {"kind": "OBJECT", "name": "Phantom", "ofType": null}}
		]}
	]}}`

	_, err := quietRunner().Execute(context.Background(), Options{Input: strings.NewReader(doc)})
	if err == nil {
		t.Fatal("expected dangling reference error")
	}
	if !errors.Is(err, errors.ErrCodeDanglingReference) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeDanglingReference)
	}
}
