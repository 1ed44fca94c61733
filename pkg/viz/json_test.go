package viz

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	g := NewGraph()
	g.AddNode(Node{
		TypeName: "Query",
		Category: CategoryObject,
		DisplayedFields: []FieldView{
			{Name: "hero", Type: "Character"},
			{Name: "reviews", Type: "[Review!]!"},
		},
	})
	g.AddNode(Node{
		TypeName:         "Review",
		Category:         CategoryObject,
		DisplayedFields:  []FieldView{{Name: "stars", Type: "Int!"}},
		HiddenFieldCount: 7,
	})
	g.AddNode(Node{
		TypeName:        "Episode",
		Category:        CategoryEnum,
		DisplayedFields: []FieldView{{Name: "NEWHOPE"}, {Name: "EMPIRE"}},
	})
	g.AddEdge(Edge{From: "Query", To: "Review", Label: "reviews", Multiplicity: MultiplicityMany})

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if got.NodeCount() != 3 {
		t.Errorf("nodes = %d, want 3", got.NodeCount())
	}
	if got.EdgeCount() != 1 {
		t.Errorf("edges = %d, want 1", got.EdgeCount())
	}

	review, ok := got.Node("Review")
	if !ok {
		t.Fatal("node Review not found")
	}
	if review.HiddenFieldCount != 7 {
		t.Errorf("hidden = %d, want 7", review.HiddenFieldCount)
	}
	if review.TotalFields() != 8 {
		t.Errorf("total = %d, want 8", review.TotalFields())
	}

	episode, _ := got.Node("Episode")
	if episode.Category != CategoryEnum {
		t.Errorf("category = %s, want %s", episode.Category, CategoryEnum)
	}
	if episode.DisplayedFields[0].Type != "" {
		t.Errorf("enum row type = %q, want empty", episode.DisplayedFields[0].Type)
	}

	edge := got.Edges()[0]
	if edge.Label != "reviews" || edge.Multiplicity != MultiplicityMany {
		t.Errorf("edge = %+v, want reviews with multiplicity many", edge)
	}
}

func TestWriteJSONDeterministic(t *testing.T) {
	g := NewGraph()
	g.AddNode(Node{TypeName: "B", Category: CategoryObject})
	g.AddNode(Node{TypeName: "A", Category: CategoryObject})
	g.AddEdge(Edge{From: "B", To: "A", Label: "a", Multiplicity: MultiplicityOneOpt})

	var first bytes.Buffer
	if err := WriteJSON(g, &first); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	for i := 0; i < 5; i++ {
		var buf bytes.Buffer
		if err := WriteJSON(g, &buf); err != nil {
			t.Fatalf("WriteJSON #%d: %v", i, err)
		}
		if !bytes.Equal(first.Bytes(), buf.Bytes()) {
			t.Fatalf("run %d produced different bytes", i)
		}
	}

	// Insertion order survives encoding, even when it is not sorted.
	text := first.String()
	if strings.Index(text, `"B"`) > strings.Index(text, `"A"`) {
		t.Error("nodes not in insertion order")
	}
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name: "Valid",
			input: `{
				"nodes": [
					{"typeName": "Query", "category": "object", "displayedFields": []},
					{"typeName": "Droid", "category": "object", "displayedFields": [{"name": "id", "type": "ID!"}]}
				],
				"edges": [
					{"from": "Query", "to": "Droid", "label": "droid", "multiplicity": "1?"}
				]
			}`,
		},
		{
			name:  "Empty",
			input: `{"nodes": [], "edges": []}`,
		},
		{
			name:    "Malformed",
			input:   `{invalid json}`,
			wantErr: errAnyDecode,
		},
		{
			name: "DuplicateNode",
			input: `{
				"nodes": [
					{"typeName": "Query", "category": "object", "displayedFields": []},
					{"typeName": "Query", "category": "object", "displayedFields": []}
				],
				"edges": []
			}`,
			wantErr: ErrDuplicateNode,
		},
		{
			name: "EmptyNodeName",
			input: `{
				"nodes": [{"category": "object", "displayedFields": []}],
				"edges": []
			}`,
			wantErr: ErrInvalidNodeName,
		},
		{
			name: "EdgeToMissingNode",
			input: `{
				"nodes": [{"typeName": "Query", "category": "object", "displayedFields": []}],
				"edges": [{"from": "Query", "to": "Ghost", "label": "x", "multiplicity": "1"}]
			}`,
			wantErr: ErrUnknownTargetNode,
		},
		{
			name: "EdgeFromMissingNode",
			input: `{
				"nodes": [{"typeName": "Query", "category": "object", "displayedFields": []}],
				"edges": [{"from": "Ghost", "to": "Query", "label": "x", "multiplicity": "1"}]
			}`,
			wantErr: ErrUnknownSourceNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadJSON(strings.NewReader(tt.input))

			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantErr != errAnyDecode && !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadJSON: %v", err)
			}
			if g == nil {
				t.Fatal("graph is nil")
			}
		})
	}
}

// errAnyDecode marks table rows that only require some error, with no
// particular sentinel to match.
var errAnyDecode = errors.New("any decode error")

func TestExportImportJSON(t *testing.T) {
	g := NewGraph()
	g.AddNode(Node{TypeName: "Query", Category: CategoryObject, DisplayedFields: []FieldView{{Name: "hero", Type: "Character"}}})
	g.AddNode(Node{TypeName: "Character", Category: CategoryObject, HiddenFieldCount: 2})
	g.AddEdge(Edge{From: "Query", To: "Character", Label: "hero", Multiplicity: MultiplicityOneOpt})

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := ExportJSON(g, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if got.NodeCount() != 2 || got.EdgeCount() != 1 {
		t.Errorf("nodes = %d edges = %d, want 2 and 1", got.NodeCount(), got.EdgeCount())
	}
	n, _ := got.Node("Character")
	if n.HiddenFieldCount != 2 {
		t.Errorf("hidden = %d, want 2", n.HiddenFieldCount)
	}
}

func TestImportJSONNotFound(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExportJSONBadPath(t *testing.T) {
	g := NewGraph()
	if err := ExportJSON(g, filepath.Join(t.TempDir(), "no", "such", "dir", "g.json")); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestWriteJSONEmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(NewGraph(), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"nodes": []`) {
		t.Errorf("empty graph output = %s, want empty arrays", buf.String())
	}

	g, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("nodes = %d edges = %d, want 0 and 0", g.NodeCount(), g.EdgeCount())
	}
}

func TestReadJSONErrorNamesNode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	content := `{
		"nodes": [
			{"typeName": "Dup", "category": "object", "displayedFields": []},
			{"typeName": "Dup", "category": "object", "displayedFields": []}
		],
		"edges": []
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportJSON(path)
	if err == nil {
		t.Fatal("expected error for duplicate node")
	}
	if !strings.Contains(err.Error(), "Dup") {
		t.Errorf("error = %v, want node name in message", err)
	}
}
