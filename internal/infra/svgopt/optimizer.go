// Package svgopt implements the geometry optimizer: a light element tree for
// the configured passes, followed by the tdewolff minifier for numeric and
// attribute compaction.
package svgopt

import (
	"bytes"
	"context"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/svg"

	"github.com/aalvaropc/svgsym/internal/domain"
	"github.com/aalvaropc/svgsym/internal/ports"
)

type Optimizer struct {
	// minify.M is safe for concurrent use once minifiers are registered.
	m *minify.M
}

type Option func(*Optimizer)

// WithMinifier replaces the minifier instance (useful to register extra
// mimetypes for embedded content).
func WithMinifier(m *minify.M) Option {
	return func(o *Optimizer) {
		if m != nil {
			o.m = m
		}
	}
}

func New(opts ...Option) *Optimizer {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)

	o := &Optimizer{m: m}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var _ ports.Optimizer = (*Optimizer)(nil)

func (o *Optimizer) Optimize(ctx context.Context, raw string, cfg domain.OptimizationConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	root, err := parseDocument(raw)
	if err != nil {
		return "", malformed("svgopt.parse", err)
	}

	applyPasses(root, cfg)
	if cfg.RemoveViewBox {
		root.removeAttrs(func(k string) bool { return k == "viewBox" })
	}

	// Settings vary per call, so the SVG minifier is not registered on o.m;
	// the registry only serves embedded content such as <style>.
	minifier := &svg.Minifier{
		KeepComments: cfg.KeepComments,
		Precision:    cfg.ConvertPathData.Precision,
	}

	var buf bytes.Buffer
	if err := minifier.Minify(o.m, &buf, strings.NewReader(render(root)), nil); err != nil {
		return "", malformed("svgopt.minify", err)
	}
	return closeRoot(strings.TrimSpace(buf.String())), nil
}

// closeRoot expands a self-closed root ("<svg .../>") so the document always
// ends with "</svg>".
func closeRoot(out string) string {
	if strings.HasSuffix(out, "</svg>") || !strings.HasSuffix(out, "/>") {
		return out
	}
	return strings.TrimSuffix(out, "/>") + "></svg>"
}

func malformed(op string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindMalformedMarkup,
		Err:  err,
	}
}
