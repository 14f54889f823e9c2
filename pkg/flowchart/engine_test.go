package flowchart

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/flowchart/pkg/layout"
	"github.com/matzehuels/flowchart/pkg/surface"
)

// Node geometry drawn by gridEngine.
const (
	cellWidth  = 80.0
	cellHeight = 40.0
	cellGap    = 20.0
)

// gridEngine draws nodes left to right in insertion order, one rounded rect
// plus text per node and one path per edge, in the same group structure
// Graphviz produces. It records the last graph it was given.
type gridEngine struct {
	calls int
	last  *layout.Graph
}

func (e *gridEngine) Render(_ context.Context, g *layout.Graph, target *surface.Element) error {
	e.calls++
	e.last = g

	pos := map[string]float64{}
	for i, n := range g.Nodes() {
		x := float64(i) * (cellWidth + cellGap)
		pos[n.ID] = x

		node := target.Append("g").SetAttr("class", "node").SetAttr("id", fmt.Sprintf("node%d", i+1))
		node.Append("title").SetText(n.ID)
		node.Append("rect").
			SetAttr("x", num(x)).SetAttr("y", "0").
			SetAttr("width", num(cellWidth)).SetAttr("height", num(cellHeight)).
			SetAttr("rx", num(n.Rx)).SetAttr("ry", num(n.Ry)).
			SetAttr("fill", "white").SetAttr("stroke", "black")
		for j, line := range strings.Split(n.Label, "\n") {
			node.Append("text").
				SetAttr("x", num(x+cellWidth/2)).SetAttr("y", num(25+float64(j))).
				SetAttr("text-anchor", "middle").SetAttr("font-size", "10").
				SetText(strings.TrimSpace(line))
		}
	}

	for i, e := range g.Edges() {
		edge := target.Append("g").SetAttr("class", "edge").SetAttr("id", fmt.Sprintf("edge%d", i+1))
		edge.Append("title").SetText(e.From + "->" + e.To)
		edge.Append("path").SetAttr("d", fmt.Sprintf("M%s,20L%s,20", num(pos[e.From]+cellWidth), num(pos[e.To])))
	}
	return nil
}

func num(v float64) string { return fmt.Sprintf("%g", v) }

// ghostEngine draws a node that was never declared.
type ghostEngine struct{}

func (ghostEngine) Render(_ context.Context, _ *layout.Graph, target *surface.Element) error {
	node := target.Append("g").SetAttr("class", "node")
	node.Append("title").SetText("ghost")
	node.Append("rect").SetAttr("width", "10").SetAttr("height", "10")
	return nil
}
