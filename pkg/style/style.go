// Package style holds the presentation overrides a chart element may declare.
//
// Overrides are a closed set of properties rather than arbitrary key/value
// pairs: [Shape] covers the node outline and [Text] covers its label. Only
// properties that are set produce declarations, so anything left empty keeps
// the layout engine's default.
package style

import (
	"sort"
	"strings"

	"github.com/matzehuels/flowchart/pkg/errors"
	"github.com/matzehuels/flowchart/pkg/surface"
)

// Shape overrides the styling of a node's outline primitive.
type Shape struct {
	Fill            string `json:"fill,omitempty" toml:"fill,omitempty"`
	FillOpacity     string `json:"fill-opacity,omitempty" toml:"fill-opacity,omitempty"`
	Stroke          string `json:"stroke,omitempty" toml:"stroke,omitempty"`
	StrokeWidth     string `json:"stroke-width,omitempty" toml:"stroke-width,omitempty"`
	StrokeDasharray string `json:"stroke-dasharray,omitempty" toml:"stroke-dasharray,omitempty"`
	StrokeOpacity   string `json:"stroke-opacity,omitempty" toml:"stroke-opacity,omitempty"`
	Opacity         string `json:"opacity,omitempty" toml:"opacity,omitempty"`
	Cursor          string `json:"cursor,omitempty" toml:"cursor,omitempty"`
}

// Text overrides the styling of a node's label.
type Text struct {
	Fill           string `json:"fill,omitempty" toml:"fill,omitempty"`
	FontFamily     string `json:"font-family,omitempty" toml:"font-family,omitempty"`
	FontSize       string `json:"font-size,omitempty" toml:"font-size,omitempty"`
	FontWeight     string `json:"font-weight,omitempty" toml:"font-weight,omitempty"`
	FontStyle      string `json:"font-style,omitempty" toml:"font-style,omitempty"`
	TextDecoration string `json:"text-decoration,omitempty" toml:"text-decoration,omitempty"`
	Opacity        string `json:"opacity,omitempty" toml:"opacity,omitempty"`
	Cursor         string `json:"cursor,omitempty" toml:"cursor,omitempty"`
}

// Declarations returns the set properties in a fixed order.
func (s Shape) Declarations() []surface.Declaration {
	return collect(
		"fill", s.Fill,
		"fill-opacity", s.FillOpacity,
		"stroke", s.Stroke,
		"stroke-width", s.StrokeWidth,
		"stroke-dasharray", s.StrokeDasharray,
		"stroke-opacity", s.StrokeOpacity,
		"opacity", s.Opacity,
		"cursor", s.Cursor,
	)
}

// IsZero reports whether no property is set.
func (s Shape) IsZero() bool { return s == Shape{} }

// Declarations returns the set properties in a fixed order.
func (t Text) Declarations() []surface.Declaration {
	return collect(
		"fill", t.Fill,
		"font-family", t.FontFamily,
		"font-size", t.FontSize,
		"font-weight", t.FontWeight,
		"font-style", t.FontStyle,
		"text-decoration", t.TextDecoration,
		"opacity", t.Opacity,
		"cursor", t.Cursor,
	)
}

// IsZero reports whether no property is set.
func (t Text) IsZero() bool { return t == Text{} }

func collect(pairs ...string) []surface.Declaration {
	var out []surface.Declaration
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			out = append(out, surface.Declaration{Property: pairs[i], Value: pairs[i+1]})
		}
	}
	return out
}

// Apply sets each declaration as an inline style on el.
func Apply(el *surface.Element, decls []surface.Declaration) {
	for _, d := range decls {
		el.SetStyle(d.Property, d.Value)
	}
}

// ParseShape builds a Shape from property names in CSS (stroke-width) or
// camelCase (strokeWidth) form. Unknown properties are rejected, as are
// values containing ";" which would split the inline style declaration.
func ParseShape(props map[string]string) (Shape, error) {
	var s Shape
	fields := map[string]*string{
		"fill":             &s.Fill,
		"fill-opacity":     &s.FillOpacity,
		"stroke":           &s.Stroke,
		"stroke-width":     &s.StrokeWidth,
		"stroke-dasharray": &s.StrokeDasharray,
		"stroke-opacity":   &s.StrokeOpacity,
		"opacity":          &s.Opacity,
		"cursor":           &s.Cursor,
	}
	if err := assign("shape", fields, props); err != nil {
		return Shape{}, err
	}
	return s, nil
}

// ParseText builds a Text from property names in CSS or camelCase form.
// Unknown properties and values containing ";" are rejected.
func ParseText(props map[string]string) (Text, error) {
	var t Text
	fields := map[string]*string{
		"fill":            &t.Fill,
		"font-family":     &t.FontFamily,
		"font-size":       &t.FontSize,
		"font-weight":     &t.FontWeight,
		"font-style":      &t.FontStyle,
		"text-decoration": &t.TextDecoration,
		"opacity":         &t.Opacity,
		"cursor":          &t.Cursor,
	}
	if err := assign("text", fields, props); err != nil {
		return Text{}, err
	}
	return t, nil
}

func assign(kind string, fields map[string]*string, props map[string]string) error {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		dst, ok := fields[kebab(k)]
		if !ok {
			return errors.New(errors.ErrCodeInvalidStyle, "unsupported %s style property %q", kind, k)
		}
		v := strings.TrimSpace(props[k])
		if strings.Contains(v, ";") {
			return errors.New(errors.ErrCodeInvalidStyle, "%s style property %q: value %q must not contain ';'", kind, k, v)
		}
		*dst = v
	}
	return nil
}

// kebab converts strokeWidth to stroke-width; kebab-case input is unchanged.
func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
