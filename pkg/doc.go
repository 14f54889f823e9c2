// Package pkg provides the libraries behind the flowchart renderer.
//
// # Overview
//
// A chart is a set of elements, each with a label, optional style overrides,
// outgoing edges and event listeners. Rendering hands the elements to a
// layout engine (Graphviz), then decorates the drawing it produces: styles
// are applied to each node's primitives, listeners are bound to each node,
// and the surface is sized to the drawing plus a margin.
//
// The pkg directory is organized as follows:
//
//  1. [element] - Elements and the registry that maps ids to them
//  2. [flowchart] - The chart controller (build graph, render, bind, resize)
//  3. [layout] - The engine-neutral graph and the Engine interface
//  4. [render/nodelink] - The Graphviz engine; [render] converts SVG to PDF/PNG
//  5. [surface] - An SVG element tree with styles, events and bounding boxes
//  6. [style], [wrap] - Enumerated style overrides and label word-wrapping
//  7. [io] - JSON and TOML chart definitions
//  8. [errors], [observability], [buildinfo] - Ambient support
//
// # Architecture
//
//	Definition file (.json / .toml)
//	         ↓
//	    [io] package (decode, validate, build)
//	         ↓
//	    [element] registry + [flowchart] chart
//	         ↓
//	    [layout] graph → [render/nodelink] Graphviz → [surface]
//	         ↓
//	    styled, bound, sized SVG (optionally PDF/PNG via [render])
//
// # Quick Start
//
//	reg := element.NewRegistry()
//	chart := flowchart.New(reg, nodelink.NewEngine(nil), flowchart.Options{})
//	defer chart.Destroy()
//
//	a, _ := chart.AddElement("A", element.Options{Label: "Start"})
//	chart.AddElement("B", element.Options{Label: "End"})
//	a.AddEdge("B", element.EdgeOptions{Label: "go"})
//
//	host := surface.NewDocument("div").Root().SetAttr("id", "main")
//	svg, err := chart.Render(ctx, host)
//
// [element]: https://pkg.go.dev/github.com/matzehuels/flowchart/pkg/element
// [flowchart]: https://pkg.go.dev/github.com/matzehuels/flowchart/pkg/flowchart
// [layout]: https://pkg.go.dev/github.com/matzehuels/flowchart/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/flowchart/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/flowchart/pkg/render/nodelink
// [surface]: https://pkg.go.dev/github.com/matzehuels/flowchart/pkg/surface
// [style]: https://pkg.go.dev/github.com/matzehuels/flowchart/pkg/style
// [wrap]: https://pkg.go.dev/github.com/matzehuels/flowchart/pkg/wrap
// [io]: https://pkg.go.dev/github.com/matzehuels/flowchart/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/flowchart/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/flowchart/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/flowchart/pkg/buildinfo
package pkg
