// Package nodelink lays out and draws chart graphs with Graphviz.
//
// # Overview
//
// A [layout.Graph] is converted to DOT source with [ToDOT], rendered in
// process to SVG with [RenderSVG], and the drawing is then grafted onto a
// surface element by [Engine]. Nodes appear as boxes (rounded when the node
// carries a corner radius) connected by labelled arrows.
//
// # Usage
//
//	dot := nodelink.ToDOT(g)
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// As a chart engine:
//
//	chart := flowchart.New(registry, nodelink.NewEngine(nil), flowchart.Options{})
//
// # Rendered Structure
//
// Graphviz emits one group per node (class "node") whose title holds the
// node id, and one group per edge (class "edge") holding the edge path.
// [Engine] keeps that structure, dropping only the graph title and the
// background polygon so an empty graph contributes no geometry.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion lives in the parent render package.
package nodelink
