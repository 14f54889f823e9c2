package nodelink

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flowchart/pkg/errors"
	"github.com/matzehuels/flowchart/pkg/layout"
	"github.com/matzehuels/flowchart/pkg/surface"
)

// Engine is a [layout.Engine] backed by Graphviz.
type Engine struct {
	Logger *log.Logger
}

// NewEngine creates a Graphviz engine. A nil logger uses [log.Default].
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{Logger: logger}
}

var _ layout.Engine = (*Engine)(nil)

// Render lays out g and appends the drawing to target. The Graphviz graph
// group's transform is copied onto target; its title and background polygon
// are dropped.
func (e *Engine) Render(ctx context.Context, g *layout.Graph, target *surface.Element) error {
	if err := g.Validate(); err != nil {
		return err
	}

	dot := ToDOT(g)
	e.logger().Debug("graphviz layout", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "rankdir", g.Options().Direction)

	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "graphviz render failed")
	}
	return graft(svg, target, nodeNames(g))
}

func (e *Engine) logger() *log.Logger {
	if e.Logger == nil {
		return log.Default()
	}
	return e.Logger
}

// graft copies the drawing in svg into target. Node and edge titles are
// rewritten from DOT names back to element ids.
func graft(svg []byte, target *surface.Element, names dotNames) error {
	doc, err := surface.Parse(svg)
	if err != nil {
		return fmt.Errorf("parse graphviz svg: %w", err)
	}

	graph := doc.Root().Query("./g")
	if graph == nil {
		return errors.New(errors.ErrCodeInternal, "graphviz output has no graph group")
	}

	if tf := graph.Attr("transform"); tf != "" {
		target.SetAttr("transform", tf)
	}
	target.AddClass("output")

	for _, c := range graph.Children() {
		switch c.Tag() {
		case "title", "polygon":
			continue
		}
		cp := target.AppendCopy(c)
		if err := retitle(cp, names); err != nil {
			return err
		}
	}
	return nil
}

func retitle(group *surface.Element, names dotNames) error {
	title := group.Query("./title")
	if title == nil {
		return nil
	}
	switch {
	case group.HasClass("node"):
		id, ok := names.id(title.Text())
		if !ok {
			return errors.New(errors.ErrCodeInconsistent, "graphviz drew unknown node %q", title.Text())
		}
		title.SetText(id)
	case group.HasClass("edge"):
		from, to, ok := strings.Cut(title.Text(), "->")
		if !ok {
			return nil
		}
		if id, ok := names.id(from); ok {
			from = id
		}
		if id, ok := names.id(to); ok {
			to = id
		}
		title.SetText(from + "->" + to)
	}
	return nil
}
