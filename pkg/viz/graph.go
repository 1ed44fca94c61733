package viz

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeName is returned by [Graph.AddNode] when the type
	// name is empty. Every node must name a type.
	ErrInvalidNodeName = errors.New("node type name must not be empty")

	// ErrDuplicateNode is returned by [Graph.AddNode] when a node with
	// the same type name already exists. Type names are unique.
	ErrDuplicateNode = errors.New("duplicate node type name")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From
	// type has no node in the graph.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To
	// type has no node in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Category classifies a node for coloring.
type Category string

const (
	// CategoryObject covers OBJECT, INTERFACE, and UNION types.
	CategoryObject Category = "object"
	// CategoryInput covers INPUT_OBJECT types.
	CategoryInput Category = "input"
	// CategoryEnum covers ENUM types.
	CategoryEnum Category = "enum"
	// CategoryScalar exists for completeness; scalar types produce no
	// nodes, so it appears only in legends.
	CategoryScalar Category = "scalar"
)

// Multiplicity labels how many target values a relationship carries,
// derived from the field's type reference.
type Multiplicity string

const (
	// MultiplicityOne is a required single value (Foo!).
	MultiplicityOne Multiplicity = "1"
	// MultiplicityOneOpt is an optional single value (Foo).
	MultiplicityOneOpt Multiplicity = "1?"
	// MultiplicityMany is a required list ([Foo]! and denser).
	MultiplicityMany Multiplicity = "many"
	// MultiplicityManyOpt is an optional list ([Foo]).
	MultiplicityManyOpt Multiplicity = "many?"
)

// FieldView is one displayed row of a node: a field with its rendered
// type signature, or a bare label for enum values and union members.
type FieldView struct {
	Name string
	Type string // SDL signature, empty for label-only rows
}

// Node is one visualized type.
//
// The truncation invariant holds for every node a builder produces:
// len(DisplayedFields) + HiddenFieldCount equals the type's total row
// count, and len(DisplayedFields) never exceeds the configured limit.
type Node struct {
	TypeName         string
	Category         Category
	DisplayedFields  []FieldView
	HiddenFieldCount int
}

// TotalFields returns the type's full row count, hidden rows included.
func (n *Node) TotalFields() int {
	return len(n.DisplayedFields) + n.HiddenFieldCount
}

// Edge is one field relationship between two visualized types.
type Edge struct {
	From         string
	To           string
	Label        string // field name
	Multiplicity Multiplicity
}

// Graph is the abstract node/edge description handed to the renderer.
// Nodes keep insertion order for deterministic output. Built once,
// never mutated afterwards; not safe for concurrent mutation.
type Graph struct {
	nodes map[string]*Node
	order []string
	edges []Edge
}

// NewGraph creates an empty visualization graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode adds a node. Returns ErrInvalidNodeName for an empty type
// name or ErrDuplicateNode when the type already has a node.
func (g *Graph) AddNode(n Node) error {
	if n.TypeName == "" {
		return ErrInvalidNodeName
	}
	if _, exists := g.nodes[n.TypeName]; exists {
		return ErrDuplicateNode
	}
	node := &n
	g.nodes[node.TypeName] = node
	g.order = append(g.order, node.TypeName)
	return nil
}

// AddEdge adds a directed edge between two existing nodes. Returns
// ErrUnknownSourceNode or ErrUnknownTargetNode when an endpoint has no
// node. Parallel edges are allowed; two fields may reference the same
// target type.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	g.edges = append(g.edges, e)
	return nil
}

// Node returns the node for the given type name.
func (g *Graph) Node(typeName string) (*Node, bool) {
	n, ok := g.nodes[typeName]
	return n, ok
}

// Nodes returns all nodes in insertion order. The returned slice is
// fresh; the nodes it points to are shared and must not be modified.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, name := range g.order {
		nodes[i] = g.nodes[name]
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }
