package svgopt

import (
	"strings"

	strconvx "github.com/tdewolff/parse/v2/strconv"
)

// matrix is the affine transform [a c e; b d f; 0 0 1].
type matrix struct {
	a, b, c, d, e, f float64
}

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

func (m matrix) axisAligned() bool { return m.b == 0 && m.c == 0 }

func (m matrix) translateOnly() bool { return m.axisAligned() && m.a == 1 && m.d == 1 }

// parseTransform understands translate, scale and matrix lists. Anything else
// (rotate, skew, malformed input) reports ok=false and is left alone.
func parseTransform(s string) (matrix, bool) {
	b := []byte(strings.TrimSpace(s))
	i := 0
	skip := func() {
		for i < len(b) && isSep(b[i]) {
			i++
		}
	}

	total := identity
	seen := false
	for {
		skip()
		if i >= len(b) {
			break
		}

		start := i
		for i < len(b) && ('a' <= b[i] && b[i] <= 'z' || 'A' <= b[i] && b[i] <= 'Z') {
			i++
		}
		name := string(b[start:i])
		skip()
		if i >= len(b) || b[i] != '(' {
			return identity, false
		}
		i++

		var args []float64
		for {
			skip()
			if i >= len(b) {
				return identity, false
			}
			if b[i] == ')' {
				i++
				break
			}
			f, n := strconvx.ParseFloat(b[i:])
			if n == 0 {
				return identity, false
			}
			args = append(args, f)
			i += n
		}

		var m matrix
		switch {
		case name == "translate" && (len(args) == 1 || len(args) == 2):
			m = matrix{a: 1, d: 1, e: args[0]}
			if len(args) == 2 {
				m.f = args[1]
			}
		case name == "scale" && (len(args) == 1 || len(args) == 2):
			m = matrix{a: args[0], d: args[0]}
			if len(args) == 2 {
				m.d = args[1]
			}
		case name == "matrix" && len(args) == 6:
			m = matrix{a: args[0], b: args[1], c: args[2], d: args[3], e: args[4], f: args[5]}
		default:
			return identity, false
		}
		total = total.mul(m)
		seen = true
	}
	return total, seen
}

// transformPath bakes an axis-aligned matrix into path coordinates.
// Arcs are only supported under a uniform positive scale.
func transformPath(segs []segment, m matrix) ([]segment, bool) {
	if !m.axisAligned() {
		return nil, false
	}
	for _, s := range segs {
		if upper(s.cmd) == 'A' && !(m.a == m.d && m.a > 0) {
			return nil, false
		}
	}

	out := make([]segment, len(segs))
	for i, s := range segs {
		up := upper(s.cmd)
		rel := s.cmd != up
		args := make([]float64, len(s.args))
		copy(args, s.args)

		tx, ty := m.e, m.f
		if rel {
			tx, ty = 0, 0
		}

		switch up {
		case 'Z':
		case 'H':
			args[0] = m.a*args[0] + tx
		case 'V':
			args[0] = m.d*args[0] + ty
		case 'A':
			args[0] *= m.a
			args[1] *= m.a
			args[5] = m.a*args[5] + tx
			args[6] = m.d*args[6] + ty
		default:
			for k := 0; k+1 < len(args); k += 2 {
				args[k] = m.a*args[k] + tx
				args[k+1] = m.d*args[k+1] + ty
			}
		}
		out[i] = segment{cmd: s.cmd, args: args}
	}
	return out, true
}
