package layout

import (
	"context"

	"github.com/matzehuels/flowchart/pkg/surface"
)

// Engine lays out a graph and draws it under target.
//
// After Render returns, target must hold one group with class "node" per
// graph node, whose title child carries the node ID, and one group with
// class "edge" per graph edge. Render is synchronous.
type Engine interface {
	Render(ctx context.Context, g *Graph, target *surface.Element) error
}

// EngineFunc adapts a function to the [Engine] interface.
type EngineFunc func(ctx context.Context, g *Graph, target *surface.Element) error

// Render calls f.
func (f EngineFunc) Render(ctx context.Context, g *Graph, target *surface.Element) error {
	return f(ctx, g, target)
}
