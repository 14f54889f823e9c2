package surface

import "strings"

// Declaration is one property: value pair of an inline style.
type Declaration struct {
	Property string
	Value    string
}

// Style returns the value of an inline style property, or "".
func (e *Element) Style(property string) string {
	for _, d := range parseStyle(e.Attr("style")) {
		if d.Property == property {
			return d.Value
		}
	}
	return ""
}

// SetStyle sets an inline style property, replacing any earlier value.
// An empty value removes the property.
func (e *Element) SetStyle(property, value string) *Element {
	decls := parseStyle(e.Attr("style"))
	out := decls[:0]
	replaced := false
	for _, d := range decls {
		if d.Property != property {
			out = append(out, d)
			continue
		}
		if value != "" && !replaced {
			out = append(out, Declaration{Property: property, Value: value})
			replaced = true
		}
	}
	if value != "" && !replaced {
		out = append(out, Declaration{Property: property, Value: value})
	}
	if len(out) == 0 {
		return e.RemoveAttr("style")
	}
	return e.SetAttr("style", formatStyle(out))
}

func parseStyle(s string) []Declaration {
	var decls []Declaration
	for _, part := range strings.Split(s, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		if prop == "" {
			continue
		}
		decls = append(decls, Declaration{Property: prop, Value: value})
	}
	return decls
}

func formatStyle(decls []Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.Property + ": " + d.Value
	}
	return strings.Join(parts, "; ") + ";"
}
