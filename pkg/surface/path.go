package surface

import (
	"regexp"
	"strconv"
)

var (
	numberRe  = regexp.MustCompile(`[-+]?(?:\d*\.\d+|\d+\.?)(?:[eE][-+]?\d+)?`)
	pathTokRe = regexp.MustCompile(`[MmLlHhVvCcSsQqTtAaZz]|[-+]?(?:\d*\.\d+|\d+\.?)(?:[eE][-+]?\d+)?`)
	pathArity = map[byte]int{'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0}
)

const curveSteps = 16

// walkPath feeds the points of an SVG path's outline to add. Bézier curves
// are sampled; arcs contribute their end points only.
func walkPath(d string, add func(x, y float64)) {
	toks := pathTokRe.FindAllString(d, -1)

	var (
		cmd       byte
		cx, cy    float64 // current point
		sx, sy    float64 // subpath start
		lcx, lcy  float64 // last control point, for S and T
		lastCurve byte
		args      []float64
	)

	flush := func() {
		upper := cmd &^ 0x20
		rel := cmd != upper
		n := pathArity[upper]

		if n == 0 {
			cx, cy = sx, sy
			lastCurve = 0
			return
		}

		for len(args) >= n {
			a := args[:n]
			args = args[n:]
			ox, oy := 0.0, 0.0
			if rel {
				ox, oy = cx, cy
			}

			switch upper {
			case 'M':
				cx, cy = a[0]+ox, a[1]+oy
				sx, sy = cx, cy
				add(cx, cy)
				// Further coordinate pairs are implicit line-tos.
				if rel {
					cmd = 'l'
				} else {
					cmd = 'L'
				}
				upper = 'L'
				lastCurve = 0
			case 'L', 'T':
				nx, ny := a[0]+ox, a[1]+oy
				if upper == 'T' {
					qx, qy := reflect(cx, cy, lcx, lcy, lastCurve == 'Q' || lastCurve == 'T')
					sampleQuad(cx, cy, qx, qy, nx, ny, add)
					lcx, lcy = qx, qy
					lastCurve = 'T'
				} else {
					add(nx, ny)
					lastCurve = 0
				}
				cx, cy = nx, ny
			case 'H':
				cx = a[0] + ox
				add(cx, cy)
				lastCurve = 0
			case 'V':
				cy = a[0] + oy
				add(cx, cy)
				lastCurve = 0
			case 'C':
				x1, y1 := a[0]+ox, a[1]+oy
				x2, y2 := a[2]+ox, a[3]+oy
				nx, ny := a[4]+ox, a[5]+oy
				sampleCubic(cx, cy, x1, y1, x2, y2, nx, ny, add)
				lcx, lcy = x2, y2
				cx, cy = nx, ny
				lastCurve = 'C'
			case 'S':
				x1, y1 := reflect(cx, cy, lcx, lcy, lastCurve == 'C' || lastCurve == 'S')
				x2, y2 := a[0]+ox, a[1]+oy
				nx, ny := a[2]+ox, a[3]+oy
				sampleCubic(cx, cy, x1, y1, x2, y2, nx, ny, add)
				lcx, lcy = x2, y2
				cx, cy = nx, ny
				lastCurve = 'S'
			case 'Q':
				qx, qy := a[0]+ox, a[1]+oy
				nx, ny := a[2]+ox, a[3]+oy
				sampleQuad(cx, cy, qx, qy, nx, ny, add)
				lcx, lcy = qx, qy
				cx, cy = nx, ny
				lastCurve = 'Q'
			case 'A':
				cx, cy = a[5]+ox, a[6]+oy
				add(cx, cy)
				lastCurve = 0
			}
		}
	}

	for _, t := range toks {
		if len(t) == 1 && isCommand(t[0]) {
			if cmd != 0 {
				flush()
			}
			cmd = t[0]
			args = args[:0]
			if cmd&^0x20 == 'Z' {
				flush()
				cmd = 0
			}
			continue
		}
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			args = append(args, f)
		}
	}
	if cmd != 0 {
		flush()
	}
}

func isCommand(c byte) bool {
	_, ok := pathArity[c&^0x20]
	return ok && (c|0x20) >= 'a' && (c|0x20) <= 'z'
}

// reflect mirrors the last control point around the current point, or
// returns the current point when the previous segment was not a curve.
func reflect(cx, cy, lcx, lcy float64, ok bool) (float64, float64) {
	if !ok {
		return cx, cy
	}
	return 2*cx - lcx, 2*cy - lcy
}

func sampleCubic(x0, y0, x1, y1, x2, y2, x3, y3 float64, add func(x, y float64)) {
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / float64(curveSteps)
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		add(a*x0+b*x1+c*x2+d*x3, a*y0+b*y1+c*y2+d*y3)
	}
}

func sampleQuad(x0, y0, x1, y1, x2, y2 float64, add func(x, y float64)) {
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / float64(curveSteps)
		mt := 1 - t
		a, b, c := mt*mt, 2*mt*t, t*t
		add(a*x0+b*x1+c*x2, a*y0+b*y1+c*y2)
	}
}
