package svgopt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	strconvx "github.com/tdewolff/parse/v2/strconv"
)

type segment struct {
	cmd  byte
	args []float64
}

var argCount = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func isCommand(c byte) bool {
	_, ok := argCount[upper(c)]
	return ok
}

func isSep(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// parsePath splits path data into one segment per command instance.
// Implicit repetitions become explicit, and a leading relative moveto is
// turned absolute as renderers treat it.
func parsePath(d string) ([]segment, error) {
	b := []byte(d)
	i := 0
	skip := func() {
		for i < len(b) && isSep(b[i]) {
			i++
		}
	}

	var segs []segment
	var cmd byte
	for {
		skip()
		if i >= len(b) {
			break
		}

		if c := b[i]; isCommand(c) {
			cmd = c
			i++
			if upper(c) == 'Z' {
				segs = append(segs, segment{cmd: c})
				continue
			}
		} else if cmd == 0 || upper(cmd) == 'Z' {
			return nil, fmt.Errorf("unexpected %q at offset %d", c, i)
		}

		n := argCount[upper(cmd)]
		args := make([]float64, 0, n)
		for k := 0; k < n; k++ {
			skip()
			if upper(cmd) == 'A' && (k == 3 || k == 4) {
				if i < len(b) && (b[i] == '0' || b[i] == '1') {
					args = append(args, float64(b[i]-'0'))
					i++
					continue
				}
				return nil, fmt.Errorf("invalid arc flag at offset %d", i)
			}
			f, m := strconvx.ParseFloat(b[i:])
			if m == 0 {
				return nil, fmt.Errorf("expected number at offset %d", i)
			}
			args = append(args, f)
			i += m
		}
		segs = append(segs, segment{cmd: cmd, args: args})

		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}

	if len(segs) > 0 && segs[0].cmd == 'm' {
		segs[0].cmd = 'M'
	}
	return segs, nil
}

func formatNumber(f float64) string {
	r := math.Round(f*1e10) / 1e10
	if r == 0 {
		r = 0 // drops the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func formatPath(segs []segment) string {
	var b strings.Builder
	for i, s := range segs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(s.cmd)
		for j, a := range s.args {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatNumber(a))
		}
	}
	return b.String()
}

type pathOptions struct {
	removeUseless  bool
	lineShorthands bool
	// keepZeroLength preserves zero-length segments that draw dots with
	// round or square caps.
	keepZeroLength bool
}

// simplifyPath drops zero-length segments and rewrites axis-aligned lines as
// H/V, tracking the current point through the whole path.
func simplifyPath(segs []segment, opts pathOptions) []segment {
	var cx, cy, sx, sy float64
	out := make([]segment, 0, len(segs))

	for _, s := range segs {
		up := upper(s.cmd)
		rel := s.cmd != up
		ox, oy := 0.0, 0.0
		if rel {
			ox, oy = cx, cy
		}

		useless := false
		nx, ny := cx, cy
		switch up {
		case 'M':
			nx, ny = s.args[0]+ox, s.args[1]+oy
			sx, sy = nx, ny
		case 'Z':
			nx, ny = sx, sy
		case 'H':
			nx = s.args[0] + ox
			useless = nx == cx
		case 'V':
			ny = s.args[0] + oy
			useless = ny == cy
		case 'L', 'T':
			nx, ny = s.args[0]+ox, s.args[1]+oy
			useless = nx == cx && ny == cy
		case 'C', 'S', 'Q':
			useless = true
			for k := 0; k+1 < len(s.args); k += 2 {
				px, py := s.args[k]+ox, s.args[k+1]+oy
				if px != cx || py != cy {
					useless = false
				}
				nx, ny = px, py
			}
		case 'A':
			nx, ny = s.args[5]+ox, s.args[6]+oy
			useless = nx == cx && ny == cy
		}

		if opts.removeUseless && useless && !opts.keepZeroLength {
			continue
		}

		if opts.lineShorthands && up == 'L' {
			switch {
			case ny == cy && nx != cx:
				s = segment{cmd: pick(rel, 'h', 'H'), args: []float64{s.args[0]}}
			case nx == cx && ny != cy:
				s = segment{cmd: pick(rel, 'v', 'V'), args: []float64{s.args[1]}}
			}
		}

		out = append(out, s)
		cx, cy = nx, ny
	}
	return out
}

func pick(rel bool, relCmd, absCmd byte) byte {
	if rel {
		return relCmd
	}
	return absCmd
}
