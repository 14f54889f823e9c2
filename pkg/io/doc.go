// Package io reads and writes chart definition files.
//
// # Overview
//
// A definition declares a whole chart: its direction, an optional word-wrap
// policy, and its elements with labels, style overrides, edges and actions.
// Definitions can be written as JSON or TOML:
//
//	{
//	  "name": "checkout",
//	  "direction": "LR",
//	  "elements": [
//	    {"id": "A", "label": "Start", "shape": {"fill": "#e0f2fe"},
//	     "edges": [{"to": "B", "label": "go"}],
//	     "actions": [{"event": "click", "message": "started"}]},
//	    {"id": "B", "label": "End"}
//	  ]
//	}
//
// The same chart in TOML:
//
//	name = "checkout"
//	direction = "LR"
//
//	[[elements]]
//	id = "A"
//	label = "Start"
//	shape = { fill = "#e0f2fe" }
//	edges = [{ to = "B", label = "go" }]
//	actions = [{ event = "click", message = "started" }]
//
//	[[elements]]
//	id = "B"
//	label = "End"
//
// # Element Fields
//
// Required:
//   - id: Unique string identifier (also the label when none is given)
//
// Optional:
//   - label: Display text
//   - shape: Outline style properties (fill, stroke, stroke-width, ...)
//   - text: Label style properties (fill, font-size, font-weight, ...)
//   - edges: Outgoing edges, each with "to" and an optional "label"
//   - actions: Event bindings, each with "event" and "message"
//
// Style keys may be written in CSS form (stroke-width) or camelCase
// (strokeWidth). Unknown keys are rejected.
//
// # Import
//
// Use [Import] to read a file chosen by extension (.json or .toml), or
// [ReadJSON] and [ReadTOML] to read from any io.Reader:
//
//	def, err := io.Import("checkout.toml")
//	chart, err := def.Build(registry, engine, onAction)
//
// Decoding checks syntax only. [Definition.Validate] checks ids, edges,
// styles and direction; [Definition.Build] validates before building.
//
// # Export
//
// Use [WriteJSON] to write a definition in the canonical JSON form, or
// [FromChart] to capture an existing chart as a definition.
package io
