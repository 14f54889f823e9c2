package layout

import (
	"fmt"

	"github.com/matzehuels/flowchart/pkg/errors"
)

// Node is one vertex of the layout input.
type Node struct {
	ID    string
	Label string

	// Rx and Ry are corner radii; non-zero values request rounded shapes.
	Rx, Ry float64
}

// Edge is one directed edge of the layout input. Name distinguishes parallel
// edges between the same pair of nodes.
type Edge struct {
	Name  string
	From  string
	To    string
	Label string
}

// GraphOptions are graph-level layout hints.
type GraphOptions struct {
	Direction Direction
	MarginX   float64
	MarginY   float64

	// Multigraph keeps parallel edges; without it a repeated pair replaces
	// the earlier edge's label.
	Multigraph bool
	// Compound allows edges to clusters. Engines that cannot honour it ignore it.
	Compound bool
}

// Graph is the input to a layout engine.
// Graph is not safe for concurrent use.
type Graph struct {
	opts  GraphOptions
	nodes []Node
	index map[string]int
	edges []Edge
}

// NewGraph creates an empty graph. An invalid direction falls back to
// [DefaultDirection].
func NewGraph(opts GraphOptions) *Graph {
	if !opts.Direction.Valid() {
		opts.Direction = DefaultDirection
	}
	return &Graph{opts: opts, index: make(map[string]int)}
}

// Options returns the graph-level hints.
func (g *Graph) Options() GraphOptions { return g.opts }

// SetNode adds n, or replaces the node with the same ID in place.
func (g *Graph) SetNode(n Node) {
	if i, ok := g.index[n.ID]; ok {
		g.nodes[i] = n
		return
	}
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Nodes returns nodes in insertion order.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns edges in insertion order.
func (g *Graph) Edges() []Edge { return g.edges }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// SetEdge adds a directed edge and returns its name. Endpoints are not
// checked here; see [Graph.Validate].
func (g *Graph) SetEdge(from, to, label string) string {
	if !g.opts.Multigraph {
		for i, e := range g.edges {
			if e.From == from && e.To == to {
				g.edges[i].Label = label
				return e.Name
			}
		}
	}
	name := fmt.Sprintf("e%d", len(g.edges))
	g.edges = append(g.edges, Edge{Name: name, From: from, To: to, Label: label})
	return name
}

// Validate reports the first edge whose endpoint is not a node of g.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if !g.HasNode(e.From) {
			return errors.New(errors.ErrCodeUnresolvedEdge, "edge %s -> %s: unknown source %q", e.From, e.To, e.From)
		}
		if !g.HasNode(e.To) {
			return errors.New(errors.ErrCodeUnresolvedEdge, "edge %s -> %s: unknown target %q", e.From, e.To, e.To)
		}
	}
	return nil
}
