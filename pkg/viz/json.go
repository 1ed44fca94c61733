package viz

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type graphJSON struct {
	Nodes []nodeJSON `json:"nodes"`
	Edges []edgeJSON `json:"edges"`
}

type nodeJSON struct {
	TypeName         string      `json:"typeName"`
	Category         Category    `json:"category"`
	DisplayedFields  []fieldJSON `json:"displayedFields"`
	HiddenFieldCount int         `json:"hiddenFieldCount,omitempty"`
}

type fieldJSON struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

type edgeJSON struct {
	From         string       `json:"from"`
	To           string       `json:"to"`
	Label        string       `json:"label"`
	Multiplicity Multiplicity `json:"multiplicity"`
}

// WriteJSON encodes the graph as JSON and writes it to w. Nodes appear
// in insertion order and edges in visit order, so output is
// byte-deterministic for a given graph. The format round-trips through
// [ReadJSON].
func WriteJSON(g *Graph, w io.Writer) error {
	out := graphJSON{
		Nodes: make([]nodeJSON, 0, g.NodeCount()),
		Edges: make([]edgeJSON, 0, g.EdgeCount()),
	}

	for _, n := range g.Nodes() {
		nd := nodeJSON{
			TypeName:         n.TypeName,
			Category:         n.Category,
			DisplayedFields:  make([]fieldJSON, len(n.DisplayedFields)),
			HiddenFieldCount: n.HiddenFieldCount,
		}
		for i, f := range n.DisplayedFields {
			nd.DisplayedFields[i] = fieldJSON{Name: f.Name, Type: f.Type}
		}
		out.Nodes = append(out.Nodes, nd)
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edgeJSON{From: e.From, To: e.To, Label: e.Label, Multiplicity: e.Multiplicity})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// ReadJSON decodes a JSON graph from r.
//
// ReadJSON returns an error if the JSON is malformed, a node is
// duplicated, or an edge references an unknown node. Errors are wrapped
// with the offending node or edge for context. ReadJSON does not close
// r; the returned graph is independent of it.
func ReadJSON(r io.Reader) (*Graph, error) {
	var data graphJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := NewGraph()
	for _, n := range data.Nodes {
		node := Node{
			TypeName:         n.TypeName,
			Category:         n.Category,
			DisplayedFields:  make([]FieldView, len(n.DisplayedFields)),
			HiddenFieldCount: n.HiddenFieldCount,
		}
		for i, f := range n.DisplayedFields {
			node.DisplayedFields[i] = FieldView{Name: f.Name, Type: f.Type}
		}
		if err := g.AddNode(node); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.TypeName, err)
		}
	}
	for _, e := range data.Edges {
		edge := Edge{From: e.From, To: e.To, Label: e.Label, Multiplicity: e.Multiplicity}
		if err := g.AddEdge(edge); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// ImportJSON reads a JSON graph file at path.
// The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
