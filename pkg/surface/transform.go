package surface

import (
	"math"
	"regexp"
	"strings"
)

// matrix is a 2D affine transform [a c e; b d f].
type matrix struct{ a, b, c, d, e, f float64 }

var identity = matrix{a: 1, d: 1}

func (m matrix) mul(n matrix) matrix {
	return matrix{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

func (m matrix) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

var transformRe = regexp.MustCompile(`(matrix|translate|scale|rotate|skewX|skewY)\s*\(([^)]*)\)`)

// parseTransform parses an SVG transform list. Unknown functions are ignored.
func parseTransform(s string) matrix {
	m := identity
	for _, match := range transformRe.FindAllStringSubmatch(s, -1) {
		args := parseNumbers(strings.TrimSpace(match[2]))
		m = m.mul(transformFunc(match[1], args))
	}
	return m
}

func transformFunc(name string, args []float64) matrix {
	arg := func(i int, def float64) float64 {
		if i < len(args) {
			return args[i]
		}
		return def
	}

	switch name {
	case "matrix":
		if len(args) == 6 {
			return matrix{args[0], args[1], args[2], args[3], args[4], args[5]}
		}
	case "translate":
		return matrix{a: 1, d: 1, e: arg(0, 0), f: arg(1, 0)}
	case "scale":
		sx := arg(0, 1)
		return matrix{a: sx, d: arg(1, sx)}
	case "rotate":
		rad := arg(0, 0) * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		r := matrix{a: cos, b: sin, c: -sin, d: cos}
		if len(args) == 3 {
			cx, cy := args[1], args[2]
			return matrix{a: 1, d: 1, e: cx, f: cy}.mul(r).mul(matrix{a: 1, d: 1, e: -cx, f: -cy})
		}
		return r
	case "skewX":
		return matrix{a: 1, d: 1, c: math.Tan(arg(0, 0) * math.Pi / 180)}
	case "skewY":
		return matrix{a: 1, d: 1, b: math.Tan(arg(0, 0) * math.Pi / 180)}
	}
	return identity
}
