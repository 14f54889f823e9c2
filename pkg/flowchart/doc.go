// Package flowchart declares flowchart diagrams and renders them onto an SVG
// surface through a layout engine.
//
// # Overview
//
// A [Chart] owns an ordered set of elements registered in an
// [element.Registry]. Rendering is a single synchronous pass:
//
//  1. A nested <svg id="f{host id}"> with one content group is created under
//     the host element, replacing any earlier surface with the same id.
//  2. A multigraph is assembled: one node per element (label word-wrapped if
//     a policy is configured) and one edge per declared edge. Edges to
//     unknown elements fail with [errors.ErrCodeUnresolvedEdge].
//  3. The layout engine draws the graph into the content group.
//  4. Every rendered node group is mapped back to its element through the
//     registry. Style overrides are applied and listeners are bound.
//  5. The surface is sized to the content bounding box plus [Margin] on
//     each side.
//
// Any mismatch between the graph handed to the engine and what it drew is
// reported as [errors.ErrCodeInconsistent].
//
// # Usage
//
//	reg := element.NewRegistry()
//	chart := flowchart.New(reg, nodelink.NewEngine(nil), flowchart.Options{})
//
//	a, _ := chart.AddElement("A", element.Options{Label: "Start"})
//	chart.AddElement("B", element.Options{Label: "End"})
//	a.AddEdge("B", element.EdgeOptions{Label: "go"})
//
//	doc := surface.NewDocument("div")
//	doc.Root().SetAttr("id", "host")
//	svg, err := chart.Render(ctx, doc.Root())
//
// [errors.ErrCodeUnresolvedEdge]: github.com/matzehuels/flowchart/pkg/errors
// [errors.ErrCodeInconsistent]: github.com/matzehuels/flowchart/pkg/errors
package flowchart
