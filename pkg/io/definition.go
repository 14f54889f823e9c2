package io

import (
	"github.com/matzehuels/flowchart/pkg/element"
	"github.com/matzehuels/flowchart/pkg/errors"
	"github.com/matzehuels/flowchart/pkg/flowchart"
	"github.com/matzehuels/flowchart/pkg/layout"
	"github.com/matzehuels/flowchart/pkg/style"
	"github.com/matzehuels/flowchart/pkg/surface"
	"github.com/matzehuels/flowchart/pkg/wrap"
)

// Definition is a declarative chart.
type Definition struct {
	Name      string        `json:"name,omitempty" toml:"name,omitempty"`
	Direction string        `json:"direction,omitempty" toml:"direction,omitempty"`
	Wrap      *wrap.Options `json:"wrap,omitempty" toml:"wrap,omitempty"`
	Elements  []ElementDef  `json:"elements" toml:"elements"`
}

// ElementDef declares one element.
type ElementDef struct {
	ID      string            `json:"id" toml:"id"`
	Label   string            `json:"label,omitempty" toml:"label,omitempty"`
	Shape   map[string]string `json:"shape,omitempty" toml:"shape,omitempty"`
	Text    map[string]string `json:"text,omitempty" toml:"text,omitempty"`
	Edges   []EdgeDef         `json:"edges,omitempty" toml:"edges,omitempty"`
	Actions []ActionDef       `json:"actions,omitempty" toml:"actions,omitempty"`
}

// EdgeDef declares an outgoing edge.
type EdgeDef struct {
	To    string `json:"to" toml:"to"`
	Label string `json:"label,omitempty" toml:"label,omitempty"`
}

// ActionDef binds an event on the element to a message.
type ActionDef struct {
	Event   string `json:"event" toml:"event"`
	Message string `json:"message,omitempty" toml:"message,omitempty"`
}

// Action is a fired [ActionDef].
type Action struct {
	Element string `json:"element"`
	Event   string `json:"event"`
	Message string `json:"message,omitempty"`
}

// ActionFunc receives fired actions.
type ActionFunc func(Action)

// Validate checks the definition without building it.
//
// It reports an invalid direction, invalid or duplicate element ids, edges
// to undeclared elements, unsupported style properties and actions without
// an event name.
func (d *Definition) Validate() error {
	if _, err := layout.ParseDirection(d.Direction); err != nil {
		return err
	}
	if d.Wrap != nil && d.Wrap.Width < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "wrap width must not be negative")
	}

	seen := make(map[string]bool, len(d.Elements))
	for _, e := range d.Elements {
		if err := errors.ValidateElementID(e.ID); err != nil {
			return err
		}
		if seen[e.ID] {
			return errors.New(errors.ErrCodeDuplicateID, "element %q is declared twice", e.ID)
		}
		seen[e.ID] = true

		if _, err := e.options(); err != nil {
			return err
		}
		for i, a := range e.Actions {
			if a.Event == "" {
				return errors.New(errors.ErrCodeInvalidInput, "element %q: action %d has no event", e.ID, i)
			}
		}
	}

	for _, e := range d.Elements {
		for _, edge := range e.Edges {
			if !seen[edge.To] {
				return errors.New(errors.ErrCodeUnresolvedEdge, "edge %s -> %s: unknown target %q", e.ID, edge.To, edge.To)
			}
		}
	}
	return nil
}

// Build validates the definition and creates a chart with its elements
// registered in reg. Each action becomes a listener that calls onAction;
// a nil onAction discards fired actions.
//
// If building fails part way, elements already registered are removed again.
func (d *Definition) Build(reg *element.Registry, engine layout.Engine, onAction ActionFunc) (*flowchart.Chart, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	dir, _ := layout.ParseDirection(d.Direction)

	chart := flowchart.New(reg, engine, flowchart.Options{Direction: dir, Wrap: d.Wrap})
	for _, e := range d.Elements {
		opts, _ := e.options()
		el, err := chart.AddElement(e.ID, opts)
		if err != nil {
			chart.Destroy()
			return nil, err
		}
		for _, edge := range e.Edges {
			el.AddEdge(edge.To, element.EdgeOptions{Label: edge.Label})
		}
		for _, a := range e.Actions {
			el.AddListener(a.Event, actionListener(a, onAction))
		}
	}
	return chart, nil
}

func actionListener(a ActionDef, onAction ActionFunc) element.ListenerFunc {
	return func(id string, ev *surface.Event) {
		if onAction != nil {
			onAction(Action{Element: id, Event: ev.Type, Message: a.Message})
		}
	}
}

func (e ElementDef) options() (element.Options, error) {
	shape, err := style.ParseShape(e.Shape)
	if err != nil {
		return element.Options{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "element %q", e.ID)
	}
	text, err := style.ParseText(e.Text)
	if err != nil {
		return element.Options{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "element %q", e.ID)
	}
	return element.Options{Label: e.Label, Shape: shape, Text: text}, nil
}

// FromChart captures a chart's elements as a definition. Listeners cannot be
// serialized and are omitted.
func FromChart(name string, c *flowchart.Chart) *Definition {
	opts := c.Options()
	d := &Definition{
		Name:      name,
		Direction: opts.Direction.String(),
		Wrap:      opts.Wrap,
		Elements:  []ElementDef{},
	}
	for _, el := range c.Elements() {
		o := el.Options()
		def := ElementDef{
			ID:    el.ID(),
			Label: o.Label,
			Shape: declMap(o.Shape.Declarations()),
			Text:  declMap(o.Text.Declarations()),
		}
		for _, edge := range el.Edges() {
			def.Edges = append(def.Edges, EdgeDef{To: edge.Target, Label: edge.Options.Label})
		}
		d.Elements = append(d.Elements, def)
	}
	return d
}

func declMap(decls []surface.Declaration) map[string]string {
	if len(decls) == 0 {
		return nil
	}
	m := make(map[string]string, len(decls))
	for _, d := range decls {
		m[d.Property] = d.Value
	}
	return m
}
