package surface

import (
	"strings"
	"testing"
)

const graphvizSample = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN"
 "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<!-- Generated by graphviz -->
<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
<g id="graph0" class="graph" transform="scale(1 1) rotate(0) translate(4 112)">
<title>G</title>
<polygon fill="white" stroke="none" points="-4,4 -4,-112 58,-112 58,4 -4,4"/>
<g id="node1" class="node">
<title>a</title>
<polygon fill="none" stroke="black" points="54,-108 0,-108 0,-72 54,-72 54,-108"/>
<text text-anchor="middle" x="27" y="-86.3" font-family="Times,serif" font-size="14.00">a</text>
</g>
<g id="edge1" class="edge">
<title>a&#45;&gt;b</title>
<path fill="none" stroke="black" d="M27,-71.7C27,-64.41 27,-55.73 27,-47.54"/>
</g>
</g>
</svg>`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(graphvizSample))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	root := doc.Root()
	if root.Tag() != "svg" {
		t.Fatalf("Root().Tag() = %q, want svg", root.Tag())
	}

	graph := doc.GetElementByID("graph0")
	if graph == nil {
		t.Fatal("GetElementByID(graph0) = nil")
	}
	if !graph.HasClass("graph") {
		t.Error("graph0 should have class graph")
	}

	nodes := root.Find("g", "node")
	if len(nodes) != 1 {
		t.Fatalf("Find(g, node) = %d elements, want 1", len(nodes))
	}
	if got := nodes[0].Query("./title").Text(); got != "a" {
		t.Errorf("node title = %q, want a", got)
	}

	edge := root.Find("g", "edge")[0]
	if got := edge.Query("./title").Text(); got != "a->b" {
		t.Errorf("edge title = %q, want a->b (entities decoded)", got)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("<svg><g></svg>")); err == nil {
		t.Error("Parse() should fail on mismatched tags")
	}
}

func TestAppendAndAttributes(t *testing.T) {
	doc := NewDocument("div")
	host := doc.Root().SetAttr("id", "chart")

	svg := host.Append("svg").SetAttr("id", "fchart").SetAttr("xmlns", SVGNamespace)
	g := svg.Append("g")

	if got := doc.GetElementByID("fchart"); !got.Same(svg) {
		t.Error("GetElementByID should return the appended svg")
	}
	if !g.Parent().Same(svg) {
		t.Error("Parent() of g should be svg")
	}
	if doc.Root().Parent() != nil {
		t.Error("root Parent() should be nil")
	}
	if !svg.HasAttr("xmlns") || svg.Attr("xmlns") != SVGNamespace {
		t.Errorf("xmlns = %q, want %q", svg.Attr("xmlns"), SVGNamespace)
	}

	svg.RemoveAttr("id")
	if doc.GetElementByID("fchart") != nil {
		t.Error("GetElementByID after RemoveAttr should be nil")
	}
}

func TestAppendCopyAcrossDocuments(t *testing.T) {
	src, err := Parse([]byte(graphvizSample))
	if err != nil {
		t.Fatal(err)
	}

	dst := NewDocument("g")
	for _, c := range src.GetElementByID("graph0").Children() {
		dst.Root().AppendCopy(c)
	}

	if got := len(dst.Root().Find("g", "node")); got != 1 {
		t.Errorf("copied node groups = %d, want 1", got)
	}
	// Source must be untouched.
	if got := len(src.Root().Find("g", "node")); got != 1 {
		t.Errorf("source node groups = %d, want 1", got)
	}
}

func TestRemove(t *testing.T) {
	doc := NewDocument("svg")
	g := doc.Root().Append("g").SetAttr("id", "x")
	g.On("click", func(*Event) {})

	g.Remove()

	if doc.GetElementByID("x") != nil {
		t.Error("removed element still reachable")
	}
	if len(doc.listeners) != 0 {
		t.Errorf("listeners = %d, want 0 after Remove", len(doc.listeners))
	}
}

func TestFirst(t *testing.T) {
	doc, err := Parse([]byte(graphvizSample))
	if err != nil {
		t.Fatal(err)
	}
	node := doc.GetElementByID("node1")

	shape := node.First("rect", "path", "polygon", "ellipse")
	if shape == nil || shape.Tag() != "polygon" {
		t.Fatalf("First() = %v, want polygon", shape)
	}
	if node.First("circle") != nil {
		t.Error("First(circle) should be nil")
	}
}

func TestTextContent(t *testing.T) {
	doc, err := Parse([]byte(`<text>one<tspan>two</tspan>three</text>`))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Root().TextContent(); got != "onetwothree" {
		t.Errorf("TextContent() = %q, want onetwothree", got)
	}
}

func TestQueryInvalidPath(t *testing.T) {
	doc := NewDocument("svg")
	if doc.Root().Query("[[[") != nil {
		t.Error("Query with invalid path should return nil")
	}
	if doc.Root().QueryAll("[[[") != nil {
		t.Error("QueryAll with invalid path should return nil")
	}
}

func TestClasses(t *testing.T) {
	doc := NewDocument("g")
	g := doc.Root()
	g.AddClass("node").AddClass("selected").AddClass("node")

	if got := g.Attr("class"); got != "node selected" {
		t.Errorf("class = %q, want %q", got, "node selected")
	}
	if !g.HasClass("selected") || g.HasClass("sel") {
		t.Error("HasClass should match whole class tokens")
	}
}

func TestStyle(t *testing.T) {
	doc := NewDocument("rect")
	r := doc.Root().SetAttr("style", "fill: red; stroke:blue")

	if got := r.Style("stroke"); got != "blue" {
		t.Errorf("Style(stroke) = %q, want blue", got)
	}

	r.SetStyle("fill", "#fff").SetStyle("opacity", "0.5")
	if got := r.Attr("style"); got != "fill: #fff; stroke: blue; opacity: 0.5;" {
		t.Errorf("style = %q", got)
	}

	r.SetStyle("stroke", "")
	if r.Style("stroke") != "" {
		t.Error("SetStyle with empty value should remove the property")
	}

	r.SetStyle("fill", "").SetStyle("opacity", "")
	if r.HasAttr("style") {
		t.Error("style attribute should be removed once empty")
	}
}

func TestBytes(t *testing.T) {
	doc := NewDocument("svg")
	doc.Root().SetAttr("xmlns", SVGNamespace).Append("g").SetAttr("id", "content")

	out, err := doc.Root().Bytes()
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}
	if !strings.Contains(string(out), `<g id="content"/>`) {
		t.Errorf("Bytes() = %s", out)
	}
}
