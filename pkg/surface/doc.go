// Package surface provides the drawable surface flowcharts render onto.
//
// # Overview
//
// A surface is an in-memory SVG element tree. It plays the role a browser DOM
// plays for client-side diagram libraries: the layout engine materialises
// groups, paths and text under it, and the chart controller then walks the
// result to apply style overrides and attach event listeners.
//
// The tree is backed by [github.com/beevik/etree], so any SVG produced by an
// external engine can be parsed with [Parse] and grafted onto a host with
// [Element.AppendCopy].
//
// # Elements
//
// [Element] is a lightweight handle onto a node of a [Document]. Handles are
// cheap to create; two handles for the same node compare equal with
// [Element.Same].
//
//	doc := surface.NewDocument("div")
//	host := doc.Root().SetAttr("id", "chart")
//	svg := host.Append("svg").SetAttr("id", "fchart")
//	g := svg.Append("g")
//
// # Events
//
// Listeners are bound per event name with [Element.On] and removed with
// [Element.Off]. [Element.Dispatch] simulates an event: it runs listeners on
// the target, then bubbles to each ancestor until a listener calls
// [Event.StopPropagation].
//
// # Geometry
//
// [Element.BBox] follows SVG getBBox semantics: the element's own transform
// is ignored, descendant transforms are applied. Supported primitives are
// rect, circle, ellipse, line, polygon, polyline, path and text. Text extents
// are estimated from font size and character count.
package surface
