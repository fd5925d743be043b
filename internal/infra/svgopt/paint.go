package svgopt

import (
	"math"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	strconvx "github.com/tdewolff/parse/v2/strconv"
)

// inherited carries the paint state an element receives from its ancestors.
type inherited struct {
	// stroke is set when the element paints a stroke or when its stroke
	// could not be resolved (class selectors, stylesheets).
	stroke bool
	// strokeWidth is the effective width, or -1 when unknown.
	strokeWidth float64
	// paintServer is set when fill or stroke references url(...).
	paintServer bool
	// capped is set for round or square line caps, which draw zero-length
	// segments as dots.
	capped bool
}

func rootInherited(root *node) inherited {
	in := inherited{strokeWidth: 1}
	if hasStyleElement(root) {
		in.stroke = true
		in.strokeWidth = -1
	}
	return in
}

// resolvePaint applies the element's own stroke and fill declarations on top
// of what it inherits. Inline style wins over presentation attributes.
func resolvePaint(n *node, in inherited) inherited {
	decls := styleDecls(n)
	lookup := func(k string) (string, bool) {
		if v, ok := decls[k]; ok {
			return v, true
		}
		v, ok := n.attr(k)
		return strings.TrimSpace(v), ok
	}

	out := in
	if v, ok := lookup("stroke"); ok && v != "inherit" {
		out.stroke = v != "none"
	}
	if v, ok := lookup("stroke-width"); ok && v != "inherit" {
		out.strokeWidth = parseLength(v)
	}
	if v, ok := lookup("stroke-linecap"); ok && v != "inherit" {
		out.capped = v == "round" || v == "square"
	}
	if _, ok := n.attr("class"); ok {
		out.stroke = true
		out.strokeWidth = -1
	}
	for _, k := range []string{"fill", "stroke"} {
		if v, ok := lookup(k); ok && strings.Contains(v, "url(") {
			out.paintServer = true
		}
	}
	return out
}

// styleDecls parses the inline style attribute into lowercased property
// names and trimmed values. !important is dropped.
func styleDecls(n *node) map[string]string {
	s, ok := n.attr("style")
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}

	decls := map[string]string{}
	p := css.NewParser(parse.NewInputString(s), true)
	for {
		gt, _, data := p.Next()
		if gt == css.ErrorGrammar {
			break
		}
		if gt != css.DeclarationGrammar {
			continue
		}
		var v strings.Builder
		for _, t := range p.Values() {
			v.Write(t.Data)
		}
		val := strings.TrimSpace(v.String())
		if i := strings.Index(strings.ToLower(val), "!important"); i >= 0 {
			val = strings.TrimSpace(val[:i])
		}
		decls[strings.ToLower(string(data))] = val
	}
	return decls
}

// parseLength reads a unitless or px length. Anything else is unknown (-1).
func parseLength(v string) float64 {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	f, m := strconvx.ParseFloat([]byte(v))
	if m == 0 || m != len(v) || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return -1
	}
	return f
}

func hasStyleElement(root *node) bool {
	found := false
	walk(root, func(n *node) {
		if n.name == "style" {
			found = true
		}
	})
	return found
}

type box struct {
	minX, minY, maxX, maxY float64
}

func (b box) union(o box) box {
	return box{
		minX: math.Min(b.minX, o.minX),
		minY: math.Min(b.minY, o.minY),
		maxX: math.Max(b.maxX, o.maxX),
		maxY: math.Max(b.maxY, o.maxY),
	}
}

func (b box) grow(d float64) box {
	return box{b.minX - d, b.minY - d, b.maxX + d, b.maxY + d}
}

// intersects counts touching edges as an intersection.
func (b box) intersects(o box) bool {
	return b.minX <= o.maxX && o.minX <= b.maxX &&
		b.minY <= o.maxY && o.minY <= b.maxY
}

// pathBounds returns a box containing every point and control point of the
// path. Control points bound Bezier curves. Arcs are not bounded.
func pathBounds(segs []segment) (box, bool) {
	var (
		b      box
		empty  = true
		cx, cy float64 // current point
		sx, sy float64 // subpath start
		qx, qy float64 // last control point
		prev   byte
	)
	add := func(x, y float64) {
		if empty {
			b = box{x, y, x, y}
			empty = false
			return
		}
		b = b.union(box{x, y, x, y})
	}

	for _, s := range segs {
		up := upper(s.cmd)
		var ox, oy float64
		if s.cmd != up {
			ox, oy = cx, cy
		}
		a := s.args

		switch up {
		case 'M':
			cx, cy = ox+a[0], oy+a[1]
			sx, sy = cx, cy
			add(cx, cy)
		case 'L':
			cx, cy = ox+a[0], oy+a[1]
			add(cx, cy)
		case 'H':
			cx = ox + a[0]
			add(cx, cy)
		case 'V':
			cy = oy + a[0]
			add(cx, cy)
		case 'C':
			add(ox+a[0], oy+a[1])
			qx, qy = ox+a[2], oy+a[3]
			add(qx, qy)
			cx, cy = ox+a[4], oy+a[5]
			add(cx, cy)
		case 'S':
			x1, y1 := cx, cy
			if prev == 'C' || prev == 'S' {
				x1, y1 = 2*cx-qx, 2*cy-qy
			}
			add(x1, y1)
			qx, qy = ox+a[0], oy+a[1]
			add(qx, qy)
			cx, cy = ox+a[2], oy+a[3]
			add(cx, cy)
		case 'Q':
			qx, qy = ox+a[0], oy+a[1]
			add(qx, qy)
			cx, cy = ox+a[2], oy+a[3]
			add(cx, cy)
		case 'T':
			x1, y1 := cx, cy
			if prev == 'Q' || prev == 'T' {
				x1, y1 = 2*cx-qx, 2*cy-qy
			}
			add(x1, y1)
			qx, qy = x1, y1
			cx, cy = ox+a[0], oy+a[1]
			add(cx, cy)
		case 'Z':
			cx, cy = sx, sy
		case 'A':
			return box{}, false
		}
		prev = up
	}
	return b, !empty
}
