package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/flowchart/pkg/layout"
)

// pointsPerInch converts surface units to the inch-based pad attribute.
const pointsPerInch = 72.0

// ToDOT converts a layout graph to Graphviz DOT source.
// Nodes and edges are emitted in insertion order and parallel edges are kept.
// Node i is named n<i>; the element id only appears in its label.
func ToDOT(g *layout.Graph) string {
	opts := g.Options()
	names := nodeNames(g)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", opts.Direction)
	if opts.Compound {
		buf.WriteString("  compound=true;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.MarginX > 0 || opts.MarginY > 0 {
		fmt.Fprintf(&buf, "  pad=\"%s,%s\";\n", inches(opts.MarginX), inches(opts.MarginY))
	}
	buf.WriteString("  node [shape=box, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=12];\n")
	buf.WriteString("\n")

	for i, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %s [%s];\n", dotQuote(nodeName(i)), strings.Join(fmtAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %s -> %s", dotQuote(names.name(e.From)), dotQuote(names.name(e.To)))
		if e.Label != "" {
			fmt.Fprintf(&buf, " [label=%s]", dotQuote(e.Label))
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(i int) string {
	return "n" + strconv.Itoa(i)
}

// dotNames maps element ids to synthetic DOT node names and back.
type dotNames struct {
	byID   map[string]string
	byName map[string]string
}

func nodeNames(g *layout.Graph) dotNames {
	names := dotNames{
		byID:   make(map[string]string, g.NodeCount()),
		byName: make(map[string]string, g.NodeCount()),
	}
	for i, n := range g.Nodes() {
		name := nodeName(i)
		names.byID[n.ID] = name
		names.byName[name] = n.ID
	}
	return names
}

// name returns the DOT name for id. Unknown ids are passed through.
func (d dotNames) name(id string) string {
	if name, ok := d.byID[id]; ok {
		return name
	}
	return id
}

// id returns the element id for a DOT name.
func (d dotNames) id(name string) (string, bool) {
	id, ok := d.byName[name]
	return id, ok
}

func fmtAttrs(n layout.Node) []string {
	label := n.Label
	if label == "" {
		label = n.ID
	}
	attrs := []string{"label=" + dotQuote(label)}
	if n.Rx > 0 || n.Ry > 0 {
		attrs = append(attrs, `style="rounded"`)
	}
	return attrs
}

// dotQuote quotes s as a DOT string. Newlines become centred line breaks.
func dotQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func inches(v float64) string {
	return strconv.FormatFloat(v/pointsPerInch, 'f', 3, 64)
}

// RenderSVG renders DOT source to SVG using Graphviz.
// Returns the SVG bytes ready for grafting by [Engine] or conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
