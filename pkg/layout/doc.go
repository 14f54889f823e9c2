// Package layout defines the graph handed to an external layout engine.
//
// # Overview
//
// Flowcharts never compute positions themselves. A chart describes its nodes
// and edges as a [Graph], and an [Engine] turns that description into drawn
// primitives on a [surface.Element]. The Graphviz-backed engine lives in
// [github.com/matzehuels/flowchart/pkg/render/nodelink].
//
// # Graph Model
//
// A [Graph] is a directed multigraph: parallel edges between the same pair of
// nodes are kept and each gets a distinct name. Nodes and edges remember
// insertion order so engines see a deterministic input.
//
//	g := layout.NewGraph(layout.GraphOptions{Direction: layout.LeftRight})
//	g.SetNode(layout.Node{ID: "a", Label: "Start"})
//	g.SetNode(layout.Node{ID: "b", Label: "End"})
//	g.SetEdge("a", "b", "go")
//	if err := g.Validate(); err != nil {
//	    // an edge points at a node that was never added
//	}
//
// # Directions
//
// [Direction] takes the four rank directions Graphviz and dagre agree on:
// TB, BT, LR and RL.
package layout
