// Package typegraph turns a parsed introspection document into a typed
// relationship graph: one node per reachable schema type, one edge per field
// reference, interface implementation or union membership.
package typegraph

import (
	"encoding/json"

	"github.com/Atwolf/graph-vis/pkg/introspection"
)

type EdgeKind string

const (
	EdgeKindField       EdgeKind = "FIELD"
	EdgeKindImplements  EdgeKind = "IMPLEMENTS"
	EdgeKindUnionMember EdgeKind = "UNION_MEMBER"
)

// TypeNode is the canonical, immutable record for one schema type. All
// classification flags are computed once by Normalize and never change.
type TypeNode struct {
	Name string                 `json:"name"`
	Kind introspection.TypeKind `json:"kind"`

	IsComposite    bool `json:"isComposite"`
	IsRelayPattern bool `json:"isRelayPattern"`
	IsBuiltIn      bool `json:"isBuiltIn"`

	// Fields is nil for types that declare no fields. Absence and emptiness
	// are collapsed on purpose: scalars and a fieldless object look the same
	// to consumers.
	Fields       []FieldRef `json:"fields,omitempty"`
	Interfaces   []string   `json:"interfaces,omitempty"`
	UnionMembers []string   `json:"unionMembers,omitempty"`
	Description  string     `json:"description,omitempty"`
}

// FieldRef is a field reduced to what the graph needs: its name and the base
// name of its type, with all LIST/NON_NULL wrappers stripped.
type FieldRef struct {
	Name        string `json:"name"`
	TypeName    string `json:"typeName"`
	Description string `json:"description,omitempty"`
}

// Edge is one directed relationship between two type names. Edges are never
// deduplicated; two fields of the same target type produce two edges. The
// target of an edge is not guaranteed to exist as a node in the graph when
// the introspection data is incomplete.
type Edge struct {
	Source    string   `json:"source"`
	Target    string   `json:"target"`
	Kind      EdgeKind `json:"kind"`
	FieldName string   `json:"fieldName,omitempty"`
}

// Graph is the result of one extraction: nodes keyed by type name in
// discovery order, edges in discovery order, and a designated root. It is
// immutable once Extract returns it.
type Graph struct {
	nodes    map[string]*TypeNode
	order    []string
	edges    []Edge
	rootName string
}

func newGraph(rootName string) *Graph {
	return &Graph{
		nodes:    make(map[string]*TypeNode),
		rootName: rootName,
	}
}

func (g *Graph) addNode(node TypeNode) {
	g.nodes[node.Name] = &node
	g.order = append(g.order, node.Name)
}

// Node returns the node with the given name, or nil.
func (g *Graph) Node(name string) *TypeNode {
	return g.nodes[name]
}

// Root returns the node for the schema's query type.
func (g *Graph) Root() *TypeNode {
	return g.nodes[g.rootName]
}

func (g *Graph) RootName() string {
	return g.rootName
}

// Nodes returns all nodes in discovery (breadth-first) order.
func (g *Graph) Nodes() []*TypeNode {
	nodes := make([]*TypeNode, 0, len(g.order))
	for _, name := range g.order {
		nodes = append(nodes, g.nodes[name])
	}
	return nodes
}

func (g *Graph) NodeCount() int {
	return len(g.order)
}

// Edges returns all edges in discovery order. The order is part of the
// contract: downstream identifiers are derived from edge positions.
func (g *Graph) Edges() []Edge {
	return g.edges
}

func (g *Graph) MarshalJSON() ([]byte, error) {
	type graphJSON struct {
		Root  string      `json:"root"`
		Nodes []*TypeNode `json:"nodes"`
		Edges []Edge      `json:"edges"`
	}
	edges := g.edges
	if edges == nil {
		edges = []Edge{}
	}
	return json.Marshal(graphJSON{
		Root:  g.rootName,
		Nodes: g.Nodes(),
		Edges: edges,
	})
}
