package svgopt

import (
	"regexp"
	"sort"
	"strings"

	"github.com/aalvaropc/svgsym/internal/domain"
)

// Presentation attributes that have no effect on a <g> because they are not
// inherited by its children.
var nonInheritableGroupAttrs = map[string]bool{
	"alignment-baseline": true,
	"baseline-shift":     true,
	"color-profile":      true,
	"dominant-baseline":  true,
	"flood-color":        true,
	"flood-opacity":      true,
	"lighting-color":     true,
	"stop-color":         true,
	"stop-opacity":       true,
	"text-decoration":    true,
	"unicode-bidi":       true,
}

var reIDRef = regexp.MustCompile(`#([^\s"'()#;,]+)`)

func applyPasses(root *node, cfg domain.OptimizationConfig) {
	if cfg.CleanupAttrs {
		walk(root, cleanupAttrs)
	}
	if cfg.RemoveHiddenElems {
		removeHidden(root)
	}
	if cfg.RemoveNonInheritableGroupAttrs {
		walk(root, func(n *node) {
			if n.isElement("g") {
				n.removeAttrs(func(k string) bool { return nonInheritableGroupAttrs[k] })
			}
		})
	}
	if cfg.CollapseGroups {
		collapseGroups(root)
	}
	if cfg.CleanupIDs.Remove {
		removeUnreferencedIDs(root)
	}
	if cfg.RemoveUselessStrokeAndFill && !hasStylesheet(root) {
		removeUselessStrokeAndFill(root, rootInherited(root))
	}
	convertPathData(root, cfg.ConvertPathData, rootInherited(root))
	if cfg.MergePaths {
		mergePaths(root, rootInherited(root))
	}
}

func walk(n *node, fn func(*node)) {
	if n.kind != elementNode {
		return
	}
	fn(n)
	for _, c := range n.children {
		walk(c, fn)
	}
}

// hasStylesheet reports whether paint may come from CSS rules that the
// attribute-level passes cannot see.
func hasStylesheet(root *node) bool {
	found := false
	walk(root, func(n *node) {
		if n.name == "style" {
			found = true
			return
		}
		if _, ok := n.attr("class"); ok {
			found = true
		}
	})
	return found
}

func cleanupAttrs(n *node) {
	for i := range n.attrs {
		n.attrs[i].Val = strings.Join(strings.Fields(n.attrs[i].Val), " ")
	}
}

func isHidden(n *node) bool {
	if v, ok := n.attr("display"); ok && strings.TrimSpace(v) == "none" {
		return true
	}
	if v, ok := n.attr("visibility"); ok && strings.TrimSpace(v) == "hidden" {
		return true
	}
	if v, ok := n.attr("opacity"); ok && strings.TrimSpace(v) == "0" {
		return true
	}
	return false
}

func removeHidden(n *node) {
	kept := n.children[:0]
	for _, c := range n.children {
		if c.kind == elementNode && isHidden(c) {
			continue
		}
		removeHidden(c)
		kept = append(kept, c)
	}
	n.children = kept
}

func collapseGroups(n *node) {
	var out []*node
	for _, c := range n.children {
		collapseGroups(c)
		if c.isElement("g") && len(c.attrs) == 0 {
			out = append(out, c.children...)
			continue
		}
		out = append(out, c)
	}
	n.children = out
}

func removeUnreferencedIDs(root *node) {
	refs := map[string]bool{}
	var collect func(n *node)
	collect = func(n *node) {
		switch n.kind {
		case elementNode:
			for _, a := range n.attrs {
				for _, m := range reIDRef.FindAllStringSubmatch(a.Val, -1) {
					refs[m[1]] = true
				}
			}
			for _, c := range n.children {
				collect(c)
			}
		default:
			// <style> content may reference ids as well.
			for _, m := range reIDRef.FindAllStringSubmatch(n.text, -1) {
				refs[m[1]] = true
			}
		}
	}
	collect(root)

	walk(root, func(n *node) {
		if id, ok := n.attr("id"); ok && !refs[id] {
			n.removeAttrs(func(k string) bool { return k == "id" })
		}
	})
}

func removeUselessStrokeAndFill(n *node, in inherited) {
	if n.kind != elementNode {
		return
	}

	if _, styled := n.attr("style"); !styled && n.name != "svg" {
		stroke, hasStroke := n.attr("stroke")
		width, _ := n.attr("stroke-width")
		opacity, _ := n.attr("stroke-opacity")
		noStroke := (hasStroke && strings.TrimSpace(stroke) == "none") ||
			strings.TrimSpace(width) == "0" ||
			strings.TrimSpace(opacity) == "0"

		if noStroke || (!hasStroke && !in.stroke) {
			n.removeAttrs(func(k string) bool { return strings.HasPrefix(k, "stroke-") })
			if noStroke {
				if in.stroke {
					n.setAttr("stroke", "none")
				} else {
					n.removeAttrs(func(k string) bool { return k == "stroke" })
				}
			}
		}

		if fill, ok := n.attr("fill"); ok && strings.TrimSpace(fill) == "none" {
			n.removeAttrs(func(k string) bool { return strings.HasPrefix(k, "fill-") })
		}
	}

	next := resolvePaint(n, in)
	for _, c := range n.children {
		removeUselessStrokeAndFill(c, next)
	}
}

func convertPathData(n *node, cfg domain.ConvertPathDataConfig, in inherited) {
	if n.kind != elementNode {
		return
	}
	paint := resolvePaint(n, in)

	if n.name == "path" {
		if d, ok := n.attr("d"); ok {
			if segs, err := parsePath(d); err == nil && len(segs) > 0 {
				if cfg.ApplyTransforms {
					segs = bakeTransform(n, segs, paint)
				}
				segs = simplifyPath(segs, pathOptions{
					removeUseless:  cfg.RemoveUseless,
					lineShorthands: cfg.LineShorthands,
					keepZeroLength: paint.stroke && paint.capped,
				})
				n.setAttr("d", formatPath(segs))
			}
		}
	}

	for _, c := range n.children {
		convertPathData(c, cfg, paint)
	}
}

// bakeTransform moves the element's transform into its coordinates when that
// can be done without changing stroke geometry.
func bakeTransform(n *node, segs []segment, paint inherited) []segment {
	t, ok := n.attr("transform")
	if !ok {
		return segs
	}
	m, ok := parseTransform(t)
	if !ok {
		return segs
	}
	if paint.stroke && !m.translateOnly() {
		return segs
	}
	if paint.paintServer {
		return segs
	}
	for _, k := range []string{"clip-path", "mask", "filter", "fill", "stroke", "style"} {
		// Gradients and clips are resolved in the element's user space.
		if v, has := n.attr(k); has && strings.Contains(v, "url(") {
			return segs
		}
	}
	out, ok := transformPath(segs, m)
	if !ok {
		return segs
	}
	n.removeAttrs(func(k string) bool { return k == "transform" })
	return out
}

func mergeable(n *node) bool {
	if !n.isElement("path") || len(n.children) > 0 {
		return false
	}
	for _, a := range n.attrs {
		switch {
		case a.Key == "id", a.Key == "style", a.Key == "class", a.Key == "opacity", a.Key == "fill-opacity", a.Key == "stroke-opacity":
			return false
		case strings.HasPrefix(a.Key, "marker"):
			return false
		case strings.Contains(a.Val, "url("):
			return false
		}
	}
	return true
}

func sameAttrsExceptD(a, b *node) bool {
	key := func(n *node) []string {
		out := make([]string, 0, len(n.attrs))
		for _, at := range n.attrs {
			if at.Key != "d" {
				out = append(out, at.Key+"="+at.Val)
			}
		}
		sort.Strings(out)
		return out
	}
	ka, kb := key(a), key(b)
	if len(ka) != len(kb) {
		return false
	}
	for i := range ka {
		if ka[i] != kb[i] {
			return false
		}
	}
	return true
}

// paintedBounds is the path box grown by the stroke's reach. Miter joins
// extend up to miterlimit*width/2, and the default miterlimit is 4.
func paintedBounds(n *node, paint inherited) (box, bool) {
	d, _ := n.attr("d")
	segs, err := parsePath(d)
	if err != nil || len(segs) == 0 {
		return box{}, false
	}
	b, ok := pathBounds(segs)
	if !ok {
		return box{}, false
	}
	if !paint.stroke {
		return b, true
	}
	if paint.strokeWidth < 0 {
		return box{}, false
	}
	limit := 4.0
	if v, ok := n.attr("stroke-miterlimit"); ok {
		if f := parseLength(v); f > limit {
			limit = f
		}
	}
	return b.grow(paint.strokeWidth * limit / 2), true
}

// mergePaths joins adjacent sibling paths with identical attributes when
// their painted areas are disjoint. Overlapping subpaths would change the
// fill-rule outcome, and url() paint would be mapped to the merged box.
// Only an absolute moveto can start the appended data, so no coordinate is
// rebased.
func mergePaths(n *node, in inherited) {
	if n.kind != elementNode {
		return
	}
	paint := resolvePaint(n, in)
	if !paint.paintServer {
		mergeChildren(n, paint)
	}
	for _, c := range n.children {
		mergePaths(c, paint)
	}
}

func mergeChildren(n *node, paint inherited) {
	var out []*node
	var last *node // last element kept in out, if it is a mergeable path
	var lastBox box
	for _, c := range n.children {
		if c.kind == textNode && strings.TrimSpace(c.text) == "" {
			if last != nil {
				continue
			}
			out = append(out, c)
			continue
		}

		var cb box
		ok := mergeable(c)
		if ok {
			cb, ok = paintedBounds(c, resolvePaint(c, paint))
		}

		if ok && last != nil && sameAttrsExceptD(last, c) && !lastBox.intersects(cb) {
			d, _ := c.attr("d")
			d = strings.TrimSpace(d)
			if strings.HasPrefix(d, "M") {
				prev, _ := last.attr("d")
				last.setAttr("d", prev+" "+d)
				lastBox = lastBox.union(cb)
				continue
			}
		}
		out = append(out, c)
		last = nil
		if ok {
			last, lastBox = c, cb
		}
	}
	n.children = out
}
