package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AmirF00/GraphQL-Converter/pkg/viz"
)

const accountGraphJSON = `{
  "nodes": [
    {
      "typeName": "Query",
      "category": "object",
      "displayedFields": [{"name": "account", "type": "Account"}]
    },
    {
      "typeName": "Account",
      "category": "object",
      "displayedFields": [{"name": "id", "type": "ID!"}]
    }
  ],
  "edges": [
    {"from": "Query", "to": "Account", "label": "account", "multiplicity": "1?"}
  ]
}`

func TestRenderCommandJSONOnly(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "exported.json")
	if err := os.WriteFile(input, []byte(accountGraphJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	outBase := filepath.Join(dir, "restyled")

	root := testCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", input, "-o", outBase, "--formats", "json"})

	if err := root.Execute(); err != nil {
		t.Fatalf("render command error: %v", err)
	}

	data, err := os.ReadFile(outBase + ".json")
	if err != nil {
		t.Fatalf("rendered artifact missing: %v", err)
	}
	if !strings.Contains(string(data), "Account") {
		t.Errorf("artifact %q should contain the Account node", data)
	}

	// The artifact must round-trip through the graph reader
	g, err := viz.ReadJSON(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("re-reading the rendered artifact: %v", err)
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("round-tripped graph has %d nodes / %d edges, want 2 / 1",
			g.NodeCount(), g.EdgeCount())
	}
}

func TestRenderCommandMissingInput(t *testing.T) {
	root := testCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", filepath.Join(t.TempDir(), "absent.json"), "--formats", "json"})

	if err := root.Execute(); err == nil {
		t.Fatal("render with a missing graph file should fail")
	}
}
