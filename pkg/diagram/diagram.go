// Package diagram projects a type graph into a renderable layout: positioned
// nodes on a layer grid and styled edges. Placement and styling are pure
// presentation; the graph itself stays untouched.
package diagram

import (
	"strconv"

	"github.com/Atwolf/graph-vis/pkg/introspection"
	"github.com/Atwolf/graph-vis/pkg/typegraph"
)

type Node struct {
	ID             string                 `json:"id"`
	Label          string                 `json:"label"`
	Kind           introspection.TypeKind `json:"kind"`
	X              float64                `json:"x"`
	Y              float64                `json:"y"`
	Width          float64                `json:"width"`
	Height         float64                `json:"height"`
	IsComposite    bool                   `json:"isComposite"`
	IsRelayPattern bool                   `json:"isRelayPattern"`
	IsBuiltIn      bool                   `json:"isBuiltIn"`
}

type EdgeStyle struct {
	Stroke string `json:"stroke"`
	// Dash is an SVG-style dash pattern; empty means a solid line.
	Dash string `json:"dash,omitempty"`
}

type Edge struct {
	ID     string             `json:"id"`
	Source string             `json:"source"`
	Target string             `json:"target"`
	Kind   typegraph.EdgeKind `json:"kind"`
	Label  string             `json:"label,omitempty"`
	Style  EdgeStyle          `json:"style"`
	// Dangling is true when the target type has no node in the graph
	// (incomplete introspection data). The edge keeps its position so that
	// identifiers stay stable; renderers decide whether to draw it.
	Dangling bool `json:"dangling,omitempty"`
}

type Diagram struct {
	Root  string `json:"root"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

type Config struct {
	NodeWidth         float64
	NodeHeight        float64
	HorizontalSpacing float64
	VerticalSpacing   float64
}

func DefaultConfig() Config {
	return Config{
		NodeWidth:         180,
		NodeHeight:        60,
		HorizontalSpacing: 220,
		VerticalSpacing:   140,
	}
}

var edgeStyles = map[typegraph.EdgeKind]EdgeStyle{
	typegraph.EdgeKindField:       {Stroke: "#64748b"},
	typegraph.EdgeKindImplements:  {Stroke: "#2563eb", Dash: "6 3"},
	typegraph.EdgeKindUnionMember: {Stroke: "#7c3aed", Dash: "2 2"},
}

// Project lays g out on a grid: one row per breadth-first layer counted from
// the root, one column per node within its layer, in discovery order. Edge
// identifiers are assigned positionally over the graph's edge order and are
// therefore reproducible for the same input.
func Project(g *typegraph.Graph, config Config) *Diagram {
	layers := assignLayers(g)

	diagram := &Diagram{
		Root:  g.RootName(),
		Nodes: make([]Node, 0, g.NodeCount()),
		Edges: make([]Edge, 0, len(g.Edges())),
	}

	columns := make(map[int]int)
	for _, node := range g.Nodes() {
		layer := layers[node.Name]
		column := columns[layer]
		columns[layer]++

		diagram.Nodes = append(diagram.Nodes, Node{
			ID:             node.Name,
			Label:          node.Name,
			Kind:           node.Kind,
			X:              float64(column) * config.HorizontalSpacing,
			Y:              float64(layer) * config.VerticalSpacing,
			Width:          config.NodeWidth,
			Height:         config.NodeHeight,
			IsComposite:    node.IsComposite,
			IsRelayPattern: node.IsRelayPattern,
			IsBuiltIn:      node.IsBuiltIn,
		})
	}

	for i, edge := range g.Edges() {
		diagram.Edges = append(diagram.Edges, Edge{
			ID:       "e" + strconv.Itoa(i),
			Source:   edge.Source,
			Target:   edge.Target,
			Kind:     edge.Kind,
			Label:    edge.FieldName,
			Style:    edgeStyles[edge.Kind],
			Dangling: g.Node(edge.Target) == nil,
		})
	}

	return diagram
}

// assignLayers computes each node's hop distance from the root, following
// edges whose target exists as a node. Every node in a graph produced by
// extraction is reachable from the root, so the walk covers them all.
func assignLayers(g *typegraph.Graph) map[string]int {
	outgoing := make(map[string][]string)
	for _, edge := range g.Edges() {
		if g.Node(edge.Target) == nil {
			continue
		}
		outgoing[edge.Source] = append(outgoing[edge.Source], edge.Target)
	}

	layers := map[string]int{
		g.RootName(): 0,
	}
	frontier := []string{g.RootName()}
	for len(frontier) > 0 {
		var next []string
		for _, name := range frontier {
			for _, target := range outgoing[name] {
				if _, seen := layers[target]; seen {
					continue
				}
				layers[target] = layers[name] + 1
				next = append(next, target)
			}
		}
		frontier = next
	}
	return layers
}
