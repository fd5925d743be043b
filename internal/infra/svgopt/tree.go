package svgopt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

type nodeKind int

const (
	elementNode nodeKind = iota
	textNode
	rawNode // comments and CDATA, written back untouched
)

type attr struct {
	Key   string
	Val   string
	Quote byte
}

type node struct {
	kind     nodeKind
	name     string
	attrs    []attr
	children []*node
	text     string
}

func (n *node) attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (n *node) setAttr(key, val string) {
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs[i].Val = val
			return
		}
	}
	n.attrs = append(n.attrs, attr{Key: key, Val: val, Quote: '"'})
}

func (n *node) removeAttrs(drop func(key string) bool) {
	kept := n.attrs[:0]
	for _, a := range n.attrs {
		if !drop(a.Key) {
			kept = append(kept, a)
		}
	}
	n.attrs = kept
}

func (n *node) isElement(name string) bool {
	return n.kind == elementNode && n.name == name
}

var (
	errNoRoot       = errors.New("no root element")
	errManyRoots    = errors.New("more than one root element")
	errTrailingText = errors.New("text outside the root element")
	errUnclosed     = errors.New("unexpected end of document")
)

// parseDocument builds a light element tree and rejects anything that is not
// a single, balanced <svg> root. The XML prolog, DOCTYPE and comments around
// the root are dropped.
func parseDocument(raw string) (*node, error) {
	l := xml.NewLexer(parse.NewInputString(raw))

	var (
		root    *node
		stack   []*node
		pending *node // start tag whose attributes are still being read
	)

	appendChild := func(c *node) error {
		if len(stack) == 0 {
			if c.kind == textNode && strings.TrimSpace(c.text) == "" {
				return nil
			}
			if c.kind != elementNode {
				if c.kind == rawNode {
					return nil
				}
				return errTrailingText
			}
			if root != nil {
				return errManyRoots
			}
			root = c
			return nil
		}
		top := stack[len(stack)-1]
		top.children = append(top.children, c)
		return nil
	}

	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != io.EOF {
				return nil, err
			}
			if pending != nil || len(stack) > 0 {
				return nil, errUnclosed
			}
			if root == nil {
				return nil, errNoRoot
			}
			if root.name != "svg" {
				return nil, fmt.Errorf("root element is <%s>, want <svg>", root.name)
			}
			return root, nil

		case xml.StartTagToken:
			if pending != nil {
				return nil, fmt.Errorf("unterminated start tag <%s>", pending.name)
			}
			pending = &node{kind: elementNode, name: string(l.Text())}

		case xml.AttributeToken:
			if pending == nil {
				continue
			}
			val := l.AttrVal()
			q := byte('"')
			if len(val) >= 2 && (val[0] == '"' || val[0] == '\'') {
				q = val[0]
				val = val[1 : len(val)-1]
			}
			pending.attrs = append(pending.attrs, attr{Key: string(l.Text()), Val: string(val), Quote: q})

		case xml.StartTagCloseToken:
			if pending == nil {
				continue
			}
			if err := appendChild(pending); err != nil {
				return nil, err
			}
			stack = append(stack, pending)
			pending = nil

		case xml.StartTagCloseVoidToken:
			if pending == nil {
				continue
			}
			if err := appendChild(pending); err != nil {
				return nil, err
			}
			pending = nil

		case xml.EndTagToken:
			name := string(l.Text())
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected closing tag </%s>", name)
			}
			top := stack[len(stack)-1]
			if top.name != name {
				return nil, fmt.Errorf("closing tag </%s> does not match <%s>", name, top.name)
			}
			stack = stack[:len(stack)-1]

		case xml.TextToken:
			if err := appendChild(&node{kind: textNode, text: string(data)}); err != nil {
				return nil, err
			}

		case xml.CommentToken, xml.CDATAToken:
			if err := appendChild(&node{kind: rawNode, text: string(data)}); err != nil {
				return nil, err
			}

		default:
			// Processing instructions and DOCTYPE carry nothing the symbol needs.
		}
	}
}

// render writes the tree back as markup. The root is always written with an
// explicit closing tag so it can be retagged.
func render(root *node) string {
	var b strings.Builder
	writeNode(&b, root, true)
	return b.String()
}

func writeNode(b *strings.Builder, n *node, explicitClose bool) {
	switch n.kind {
	case textNode, rawNode:
		b.WriteString(n.text)
		return
	}

	b.WriteByte('<')
	b.WriteString(n.name)
	for _, a := range n.attrs {
		q := a.Quote
		if q == 0 {
			q = '"'
		}
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteByte(q)
		b.WriteString(a.Val)
		b.WriteByte(q)
	}
	if len(n.children) == 0 && !explicitClose {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	for _, c := range n.children {
		writeNode(b, c, false)
	}
	b.WriteString("</")
	b.WriteString(n.name)
	b.WriteByte('>')
}
