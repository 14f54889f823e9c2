package flowchart

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flowchart/pkg/element"
	"github.com/matzehuels/flowchart/pkg/errors"
	"github.com/matzehuels/flowchart/pkg/layout"
	"github.com/matzehuels/flowchart/pkg/observability"
	"github.com/matzehuels/flowchart/pkg/style"
	"github.com/matzehuels/flowchart/pkg/surface"
)

const (
	// Margin is the space left around the content on each side of the surface.
	Margin = 20.0

	// CornerRadius rounds every node's outline.
	CornerRadius = 5.0
)

// shapeTags are the primitives that can carry a node's outline.
var shapeTags = []string{"rect", "path", "polygon", "ellipse", "circle"}

// SurfaceID returns the id of the surface a chart renders under host.
func SurfaceID(host *surface.Element) string {
	return "f" + host.ID()
}

// Graph assembles the layout input from the owned elements.
func (c *Chart) Graph() (*layout.Graph, error) {
	c.mu.Lock()
	opts := c.opts
	els := append([]*element.Element(nil), c.elements...)
	c.mu.Unlock()

	return buildGraph(opts, els)
}

func buildGraph(opts Options, els []*element.Element) (*layout.Graph, error) {
	g := layout.NewGraph(layout.GraphOptions{
		Direction:  opts.Direction,
		MarginX:    Margin,
		MarginY:    Margin,
		Multigraph: true,
		Compound:   true,
	})

	for _, el := range els {
		label := el.ID()
		if l := el.Options().Label; l != "" {
			label = l
			if opts.Wrap != nil {
				label = opts.Wrap.Apply(l)
			}
		}
		g.SetNode(layout.Node{ID: el.ID(), Label: label, Rx: CornerRadius, Ry: CornerRadius})
	}

	for _, el := range els {
		for _, e := range el.Edges() {
			g.SetEdge(el.ID(), e.Target, e.Options.Label)
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Render draws the chart under host and returns the new surface.
//
// Each call rebuilds the graph from scratch. A surface left by an earlier
// render onto the same host is replaced. On error the new surface is removed
// again and host is left without one.
func (c *Chart) Render(ctx context.Context, host *surface.Element) (*surface.Element, error) {
	if host == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "render target is nil")
	}
	if c.engine == nil {
		return nil, errors.New(errors.ErrCodeInternal, "chart has no layout engine")
	}

	start := time.Now()
	id := SurfaceID(host)
	hooks := observability.Render()
	logger := c.logger()

	for _, old := range host.Children() {
		if old.Tag() == "svg" && old.ID() == id {
			old.Remove()
		}
	}
	svg := host.Append("svg").
		SetAttr("id", id).
		SetAttr("xmlns", surface.SVGNamespace)
	group := svg.Append("g")

	fail := func(err error) (*surface.Element, error) {
		svg.Remove()
		hooks.OnRenderComplete(ctx, id, 0, 0, time.Since(start), err)
		logger.Debug("render failed", "surface", id, "err", err)
		return nil, err
	}

	g, err := c.Graph()
	if err != nil {
		return fail(err)
	}
	hooks.OnRenderStart(ctx, id, g.NodeCount(), g.EdgeCount())

	layoutStart := time.Now()
	err = c.engine.Render(ctx, g, group)
	hooks.OnLayoutComplete(ctx, id, time.Since(layoutStart), err)
	if err != nil {
		return fail(err)
	}

	nodes, listeners, err := c.bind(group)
	if err != nil {
		return fail(err)
	}
	hooks.OnBindComplete(ctx, id, nodes, listeners)

	box, err := resize(svg)
	if err != nil {
		return fail(err)
	}

	c.mu.Lock()
	c.rendered = true
	c.mu.Unlock()

	w, h := box.Width+2*Margin, box.Height+2*Margin
	hooks.OnRenderComplete(ctx, id, w, h, time.Since(start), nil)
	logger.Debug("rendered chart", "surface", id, "nodes", nodes, "edges", g.EdgeCount(), "width", w, "height", h)
	return svg, nil
}

func (c *Chart) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}

// bind maps each rendered node group back to its element, applies style
// overrides and binds listeners.
func (c *Chart) bind(group *surface.Element) (nodes, listeners int, err error) {
	for _, n := range group.Find("g", "node") {
		id := NodeID(n)
		el, ok := c.registry.Get(id)
		if !ok {
			return 0, 0, errors.New(errors.ErrCodeInconsistent, "rendered node %q is not a registered element", id)
		}

		opts := el.Options()
		if decls := opts.Shape.Declarations(); len(decls) > 0 {
			shape := n.First(shapeTags...)
			if shape == nil {
				return 0, 0, errors.New(errors.ErrCodeInconsistent, "rendered node %q has no shape primitive", id)
			}
			style.Apply(shape, decls)
		}
		if decls := opts.Text.Declarations(); len(decls) > 0 {
			texts := n.Find("text", "")
			if len(texts) == 0 {
				return 0, 0, errors.New(errors.ErrCodeInconsistent, "rendered node %q has no text primitive", id)
			}
			for _, t := range texts {
				style.Apply(t, decls)
			}
		}

		for _, l := range el.Listeners() {
			fn := l.Fn
			n.On(l.Event, func(ev *surface.Event) { fn(id, ev) })
			listeners++
		}
		nodes++
	}
	return nodes, listeners, nil
}

// NodeID recovers the element id of a rendered node group from its title.
func NodeID(node *surface.Element) string {
	if t := node.Query("./title"); t != nil {
		return t.TextContent()
	}
	return ""
}

// resize sets the surface dimensions to its content box plus margins.
func resize(svg *surface.Element) (surface.Rect, error) {
	group := svg.Query("./g")
	if group == nil {
		return surface.Rect{}, errors.New(errors.ErrCodeInconsistent, "surface %q has no content group after render", svg.ID())
	}

	box := group.BBox()
	svg.SetAttr("width", formatLength(box.Width+2*Margin))
	svg.SetAttr("height", formatLength(box.Height+2*Margin))
	return box, nil
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
