package surface

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
)

const (
	defaultFontSize = 14.0
	// glyphWidth approximates average glyph advance as a fraction of font size.
	glyphWidth = 0.6
)

// Rect is an axis-aligned rectangle in user units.
type Rect struct {
	X, Y, Width, Height float64
}

// bounds accumulates points into a rectangle.
type bounds struct {
	minX, minY, maxX, maxY float64
	ok                     bool
}

func (b *bounds) add(x, y float64) {
	if !b.ok {
		b.minX, b.maxX, b.minY, b.maxY = x, x, y, y
		b.ok = true
		return
	}
	b.minX = math.Min(b.minX, x)
	b.maxX = math.Max(b.maxX, x)
	b.minY = math.Min(b.minY, y)
	b.maxY = math.Max(b.maxY, y)
}

func (b bounds) rect() Rect {
	if !b.ok {
		return Rect{}
	}
	return Rect{X: b.minX, Y: b.minY, Width: b.maxX - b.minX, Height: b.maxY - b.minY}
}

// BBox returns the bounding box of e's rendered geometry in e's own user
// space. An element with no drawable content has an empty box.
func (e *Element) BBox() Rect {
	var b bounds
	collect(e.el, identity, &b, true)
	return b.rect()
}

// skipped elements never contribute geometry.
var skipped = map[string]bool{
	"title": true, "desc": true, "defs": true, "style": true, "script": true,
	"clipPath": true, "marker": true, "mask": true, "pattern": true, "metadata": true,
}

func collect(el *etree.Element, m matrix, b *bounds, self bool) {
	if skipped[el.Tag] || el.SelectAttrValue("display", "") == "none" {
		return
	}
	if !self {
		if t := el.SelectAttrValue("transform", ""); t != "" {
			m = m.mul(parseTransform(t))
		}
	}

	add := func(x, y float64) {
		px, py := m.apply(x, y)
		b.add(px, py)
	}

	switch el.Tag {
	case "rect":
		x, y := num(el, "x"), num(el, "y")
		w, h := num(el, "width"), num(el, "height")
		add(x, y)
		add(x+w, y+h)
		add(x+w, y)
		add(x, y+h)
	case "circle":
		cx, cy, r := num(el, "cx"), num(el, "cy"), num(el, "r")
		addBox(add, cx-r, cy-r, cx+r, cy+r)
	case "ellipse":
		cx, cy, rx, ry := num(el, "cx"), num(el, "cy"), num(el, "rx"), num(el, "ry")
		addBox(add, cx-rx, cy-ry, cx+rx, cy+ry)
	case "line":
		add(num(el, "x1"), num(el, "y1"))
		add(num(el, "x2"), num(el, "y2"))
	case "polygon", "polyline":
		pts := parseNumbers(el.SelectAttrValue("points", ""))
		for i := 0; i+1 < len(pts); i += 2 {
			add(pts[i], pts[i+1])
		}
	case "path":
		walkPath(el.SelectAttrValue("d", ""), add)
	case "text":
		textBox(el, add)
		return
	}

	for _, c := range el.ChildElements() {
		collect(c, m, b, false)
	}
}

func addBox(add func(x, y float64), x0, y0, x1, y1 float64) {
	add(x0, y0)
	add(x1, y0)
	add(x0, y1)
	add(x1, y1)
}

// textBox estimates the extent of a text element from its anchor point,
// font size and character count.
func textBox(el *etree.Element, add func(x, y float64)) {
	var sb strings.Builder
	textContent(el, &sb)
	content := strings.TrimSpace(sb.String())
	if content == "" {
		return
	}

	size := defaultFontSize
	if v := styleOrAttr(el, "font-size"); v != "" {
		if f, ok := parseLength(v); ok && f > 0 {
			size = f
		}
	}
	width := glyphWidth * size * float64(utf8.RuneCountInString(content))

	x, y := num(el, "x"), num(el, "y")
	left := x
	switch styleOrAttr(el, "text-anchor") {
	case "middle":
		left = x - width/2
	case "end":
		left = x - width
	}
	addBox(add, left, y-0.8*size, left+width, y+0.2*size)
}

func styleOrAttr(el *etree.Element, prop string) string {
	for _, d := range parseStyle(el.SelectAttrValue("style", "")) {
		if d.Property == prop {
			return d.Value
		}
	}
	return el.SelectAttrValue(prop, "")
}

func num(el *etree.Element, key string) float64 {
	f, _ := parseLength(el.SelectAttrValue(key, ""))
	return f
}

// parseLength parses a number with an optional px or pt unit.
func parseLength(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimSuffix(s, "px"), "pt")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseNumbers extracts every number from a points or argument list.
func parseNumbers(s string) []float64 {
	toks := numberRe.FindAllString(s, -1)
	out := make([]float64, 0, len(toks))
	for _, t := range toks {
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			out = append(out, f)
		}
	}
	return out
}
