package svgopt

import (
	"strings"
	"testing"
)

func TestParseDocument_RoundTrip(t *testing.T) {
	in := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE svg>
<!-- exported -->
<svg xmlns="http://www.w3.org/2000/svg" viewBox='0 0 24 24'><g id="a"><path d="M0 0h1"/></g></svg>
`
	root, err := parseDocument(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := render(root)
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox='0 0 24 24'><g id="a"><path d="M0 0h1"/></g></svg>`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestParseDocument_EmptyRootKeepsClosingTag(t *testing.T) {
	root, err := parseDocument(`<svg width="1"/>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := render(root); got != `<svg width="1"></svg>` {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"unclosed root", `<svg width="1"><path d="M0 0"/>`},
		{"mismatched", `<svg width="1"><g></path></svg>`},
		{"stray close", `<svg width="1"></svg></g>`},
		{"two roots", `<svg width="1"></svg><svg width="2"></svg>`},
		{"trailing text", `<svg width="1"></svg> trailing`},
		{"no root", `just text`},
		{"not svg root", `<html lang="en"><svg width="1"></svg></html>`},
		{"cut attribute list", `<svg width="1"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := parseDocument(c.input); err == nil {
				t.Fatalf("expected error for %q", c.input)
			}
		})
	}
}

func TestNodeAttrHelpers(t *testing.T) {
	n := &node{kind: elementNode, name: "path"}
	n.setAttr("d", "M0 0")
	n.setAttr("fill", "red")
	n.setAttr("d", "M1 1")

	if v, _ := n.attr("d"); v != "M1 1" {
		t.Fatalf("expected overwrite, got %q", v)
	}
	n.removeAttrs(func(k string) bool { return k == "fill" })
	if _, ok := n.attr("fill"); ok {
		t.Fatal("expected fill removed")
	}
	if !strings.Contains(render(n), `d="M1 1"`) {
		t.Fatalf("unexpected render %q", render(n))
	}
}
