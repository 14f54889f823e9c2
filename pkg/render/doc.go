// Package render turns drawn charts into output files.
//
// # Overview
//
// Charts are drawn onto an SVG surface by a layout engine; the [nodelink]
// subpackage provides the Graphviz engine. This package converts the
// resulting SVG into the other supported formats:
//
//   - [ToPDF] and [ToPNG] shell out to rsvg-convert (from librsvg)
//   - [Convert] dispatches on a format name ("svg", "pdf", "png")
//
//	svg, _ := surface.Document().Bytes()
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/matzehuels/flowchart/pkg/render/nodelink
package render
