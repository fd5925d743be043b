package domain

import (
	"regexp"
	"strings"
)

var (
	reSVGOpenTag = regexp.MustCompile(`<svg[^>]+>`)
	reFillAttr   = regexp.MustCompile(`fill="([^"]*)"`)
	reStrokeAttr = regexp.MustCompile(`stroke="[^"]*"`)
)

const (
	svgOpenToken     = "<svg"
	svgCloseToken    = "</svg>"
	symbolCloseToken = "</symbol>"
	currentColor     = "currentColor"
)

// LooksLikeSVG is a cheap pre-check: it reports whether raw contains an <svg
// opening tag with a non-empty attribute list. A bare "<svg>" does not match.
func LooksLikeSVG(raw string) bool {
	return reSVGOpenTag.MatchString(raw)
}

// WrapAsSymbol retags the document root: the leading "<svg" becomes
// `<symbol id="ID"` and the trailing "</svg>" becomes "</symbol>".
// The input must be trimmed, as the optimizer returns it; nested <svg>
// elements are never touched.
func WrapAsSymbol(optimized, id string) string {
	out := optimized
	if strings.HasPrefix(out, svgOpenToken) {
		out = `<symbol id="` + id + `"` + out[len(svgOpenToken):]
	}
	if strings.HasSuffix(out, svgCloseToken) {
		out = out[:len(out)-len(svgCloseToken)] + symbolCloseToken
	}
	return out
}

// StringRetagger rewrites the root tag with plain string substitution.
type StringRetagger struct{}

func (StringRetagger) Retag(optimized, id string) string {
	return WrapAsSymbol(optimized, id)
}

// NormalizeColors rewrites fill and stroke attributes to currentColor.
// fill="none" is kept; stroke is rewritten whatever its value.
func NormalizeColors(svg string) string {
	out := reFillAttr.ReplaceAllStringFunc(svg, func(m string) string {
		sub := reFillAttr.FindStringSubmatch(m)
		if len(sub) == 2 && sub[1] == "none" {
			return m
		}
		return `fill="` + currentColor + `"`
	})
	return reStrokeAttr.ReplaceAllString(out, `stroke="`+currentColor+`"`)
}

// WrapInContainer puts the fragment in an attribute-less <svg> envelope.
func WrapInContainer(fragment string) string {
	return "<svg>" + fragment + svgCloseToken
}
