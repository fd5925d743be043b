package svgopt

import (
	"testing"

	"github.com/aalvaropc/svgsym/internal/domain"
)

// noPasses disables every toggle so a test can switch on exactly one.
func noPasses() domain.OptimizationConfig {
	return domain.OptimizationConfig{}
}

func runPasses(t *testing.T, in string, cfg domain.OptimizationConfig) string {
	t.Helper()
	root, err := parseDocument(in)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	applyPasses(root, cfg)
	return render(root)
}

func TestPasses(t *testing.T) {
	cases := []struct {
		name  string
		input string
		cfg   func(c *domain.OptimizationConfig)
		want  string
	}{
		{
			"cleanup attrs",
			`<svg viewBox="  0 0
				24   24 "><path class="a  b" d="M0 0"/></svg>`,
			func(c *domain.OptimizationConfig) { c.CleanupAttrs = true },
			`<svg viewBox="0 0 24 24"><path class="a b" d="M0 0"/></svg>`,
		},
		{
			"remove hidden",
			`<svg width="1"><path display="none" d="M0 0"/><g visibility="hidden"><path/></g><rect/></svg>`,
			func(c *domain.OptimizationConfig) { c.RemoveHiddenElems = true },
			`<svg width="1"><rect/></svg>`,
		},
		{
			"hidden kept when disabled",
			`<svg width="1"><path display="none" d="M0 0"/></svg>`,
			func(c *domain.OptimizationConfig) {},
			`<svg width="1"><path display="none" d="M0 0"/></svg>`,
		},
		{
			"collapse groups",
			`<svg width="1"><g><g><rect/></g><circle/></g><g fill="red"><rect/></g></svg>`,
			func(c *domain.OptimizationConfig) { c.CollapseGroups = true },
			`<svg width="1"><rect/><circle/><g fill="red"><rect/></g></svg>`,
		},
		{
			"non inheritable group attrs",
			`<svg width="1"><g stop-color="red" fill="blue"><rect stop-color="red"/></g></svg>`,
			func(c *domain.OptimizationConfig) { c.RemoveNonInheritableGroupAttrs = true },
			`<svg width="1"><g fill="blue"><rect stop-color="red"/></g></svg>`,
		},
		{
			"unreferenced ids",
			`<svg width="1"><linearGradient id="g"/><rect id="r" fill="url(#g)"/><use href="#u"/><path id="u"/></svg>`,
			func(c *domain.OptimizationConfig) { c.CleanupIDs.Remove = true },
			`<svg width="1"><linearGradient id="g"/><rect fill="url(#g)"/><use href="#u"/><path id="u"/></svg>`,
		},
		{
			"ids kept when disabled",
			`<svg width="1"><rect id="r"/></svg>`,
			func(c *domain.OptimizationConfig) {},
			`<svg width="1"><rect id="r"/></svg>`,
		},
		{
			"useless stroke and fill",
			`<svg width="1"><path stroke="none" stroke-width="2" fill="none" fill-rule="evenodd"/><path stroke-width="3"/><path stroke="red" stroke-width="0"/></svg>`,
			func(c *domain.OptimizationConfig) { c.RemoveUselessStrokeAndFill = true },
			`<svg width="1"><path fill="none"/><path/><path/></svg>`,
		},
		{
			"useless stroke under stroked parent",
			`<svg width="1"><g stroke="red"><path stroke-width="0"/><path stroke-width="2"/></g></svg>`,
			func(c *domain.OptimizationConfig) { c.RemoveUselessStrokeAndFill = true },
			`<svg width="1"><g stroke="red"><path stroke="none"/><path stroke-width="2"/></g></svg>`,
		},
		{
			"useless stroke skipped with stylesheet",
			`<svg width="1"><style>.a{stroke:red}</style><path class="a" stroke-width="3"/></svg>`,
			func(c *domain.OptimizationConfig) { c.RemoveUselessStrokeAndFill = true },
			`<svg width="1"><style>.a{stroke:red}</style><path class="a" stroke-width="3"/></svg>`,
		},
		{
			"stroke inherited from parent style",
			`<svg width="1"><g style="stroke:red"><path stroke-width="3" d="M0 0L5 5"/></g></svg>`,
			func(c *domain.OptimizationConfig) { c.RemoveUselessStrokeAndFill = true },
			`<svg width="1"><g style="stroke:red"><path stroke-width="3" d="M0 0 L5 5"/></g></svg>`,
		},
		{
			"stroke none in parent style",
			`<svg width="1"><g style="stroke: none"><path stroke-width="3" d="M0 0L5 5"/></g></svg>`,
			func(c *domain.OptimizationConfig) { c.RemoveUselessStrokeAndFill = true },
			`<svg width="1"><g style="stroke: none"><path d="M0 0 L5 5"/></g></svg>`,
		},
		{
			"path data shorthands",
			`<svg width="1"><path d="M0 0L10 0L10 10Z"/></svg>`,
			func(c *domain.OptimizationConfig) { c.ConvertPathData.LineShorthands = true },
			`<svg width="1"><path d="M0 0 H10 V10 Z"/></svg>`,
		},
		{
			"dot kept under capped parent stroke",
			`<svg width="1"><g stroke="#000" stroke-linecap="round"><path d="M5 5h0"/></g></svg>`,
			func(c *domain.OptimizationConfig) { c.ConvertPathData.RemoveUseless = true },
			`<svg width="1"><g stroke="#000" stroke-linecap="round"><path d="M5 5 h0"/></g></svg>`,
		},
		{
			"apply translate",
			`<svg width="1"><path transform="translate(5 5)" d="M0 0L1 1"/></svg>`,
			func(c *domain.OptimizationConfig) { c.ConvertPathData.ApplyTransforms = true },
			`<svg width="1"><path d="M5 5 L6 6"/></svg>`,
		},
		{
			"scale kept on stroked path",
			`<svg width="1"><path stroke="red" transform="scale(2)" d="M0 0L1 1"/></svg>`,
			func(c *domain.OptimizationConfig) { c.ConvertPathData.ApplyTransforms = true },
			`<svg width="1"><path stroke="red" transform="scale(2)" d="M0 0 L1 1"/></svg>`,
		},
		{
			"scale baked on unstroked path",
			`<svg width="1"><path fill="#000" transform="scale(2)" d="M0 0L1 1"/></svg>`,
			func(c *domain.OptimizationConfig) { c.ConvertPathData.ApplyTransforms = true },
			`<svg width="1"><path fill="#000" d="M0 0 L2 2"/></svg>`,
		},
		{
			"scale kept on path stroked through style",
			`<svg width="1"><path style="stroke:#000;stroke-width:2;fill:none" transform="scale(2)" d="M0 0L5 5"/></svg>`,
			func(c *domain.OptimizationConfig) { c.ConvertPathData.ApplyTransforms = true },
			`<svg width="1"><path style="stroke:#000;stroke-width:2;fill:none" transform="scale(2)" d="M0 0 L5 5"/></svg>`,
		},
		{
			"scale kept under parent stroke style",
			`<svg width="1"><g style="stroke:red"><path transform="scale(2)" d="M0 0L1 1"/></g></svg>`,
			func(c *domain.OptimizationConfig) { c.ConvertPathData.ApplyTransforms = true },
			`<svg width="1"><g style="stroke:red"><path transform="scale(2)" d="M0 0 L1 1"/></g></svg>`,
		},
		{
			"scale kept on classed path",
			`<svg width="1"><path class="outline" transform="scale(2)" d="M0 0L1 1"/></svg>`,
			func(c *domain.OptimizationConfig) { c.ConvertPathData.ApplyTransforms = true },
			`<svg width="1"><path class="outline" transform="scale(2)" d="M0 0 L1 1"/></svg>`,
		},
		{
			"scale kept with stylesheet",
			`<svg width="1"><style>path{stroke:red}</style><path transform="scale(2)" d="M0 0L1 1"/></svg>`,
			func(c *domain.OptimizationConfig) { c.ConvertPathData.ApplyTransforms = true },
			`<svg width="1"><style>path{stroke:red}</style><path transform="scale(2)" d="M0 0 L1 1"/></svg>`,
		},
		{
			"translate baked on path stroked through style",
			`<svg width="1"><path style="stroke:red" transform="translate(1 1)" d="M0 0L1 1"/></svg>`,
			func(c *domain.OptimizationConfig) { c.ConvertPathData.ApplyTransforms = true },
			`<svg width="1"><path style="stroke:red" d="M1 1 L2 2"/></svg>`,
		},
		{
			"translate kept under gradient fill",
			`<svg width="1"><g fill="url(#g)"><path transform="translate(1 1)" d="M0 0L1 1"/></g></svg>`,
			func(c *domain.OptimizationConfig) { c.ConvertPathData.ApplyTransforms = true },
			`<svg width="1"><g fill="url(#g)"><path transform="translate(1 1)" d="M0 0 L1 1"/></g></svg>`,
		},
		{
			"merge paths",
			`<svg width="1"><path fill="red" d="M0 0h1"/>
				<path fill="red" d="M2 2h1"/><path fill="blue" d="M3 3h1"/><path fill="blue" d="m1 1h1"/></svg>`,
			func(c *domain.OptimizationConfig) { c.MergePaths = true },
			`<svg width="1"><path fill="red" d="M0 0 h1 M2 2 h1"/><path fill="blue" d="M3 3 h1 M1 1 h1"/></svg>`,
		},
		{
			"merge skips ids",
			`<svg width="1"><path id="a" d="M0 0h1"/><path id="a2" d="M2 2h1"/></svg>`,
			func(c *domain.OptimizationConfig) { c.MergePaths = true },
			`<svg width="1"><path id="a" d="M0 0 h1"/><path id="a2" d="M2 2 h1"/></svg>`,
		},
		{
			"merge disjoint squares",
			`<svg width="1"><path fill="#000" d="M0 0H2V2H0Z"/><path fill="#000" d="M8 8H10V10H8Z"/></svg>`,
			func(c *domain.OptimizationConfig) { c.MergePaths = true },
			`<svg width="1"><path fill="#000" d="M0 0 H2 V2 H0 Z M8 8 H10 V10 H8 Z"/></svg>`,
		},
		{
			"merge skips overlapping shapes",
			`<svg width="1"><path fill="#000" d="M0 0H6V6H0Z"/><path fill="#000" d="M4 4V10H10V4Z"/></svg>`,
			func(c *domain.OptimizationConfig) { c.MergePaths = true },
			`<svg width="1"><path fill="#000" d="M0 0 H6 V6 H0 Z"/><path fill="#000" d="M4 4 V10 H10 V4 Z"/></svg>`,
		},
		{
			"merge checks the merged box",
			`<svg width="1"><path d="M0 0H2V2H0Z"/><path d="M8 8H10V10H8Z"/><path d="M1 1H9V9H1Z"/></svg>`,
			func(c *domain.OptimizationConfig) { c.MergePaths = true },
			`<svg width="1"><path d="M0 0 H2 V2 H0 Z M8 8 H10 V10 H8 Z"/><path d="M1 1 H9 V9 H1 Z"/></svg>`,
		},
		{
			"merge skips gradient fill",
			`<svg width="1"><path fill="url(#g)" d="M0 0H2V2H0Z"/><path fill="url(#g)" d="M8 8H10V10H8Z"/></svg>`,
			func(c *domain.OptimizationConfig) { c.MergePaths = true },
			`<svg width="1"><path fill="url(#g)" d="M0 0 H2 V2 H0 Z"/><path fill="url(#g)" d="M8 8 H10 V10 H8 Z"/></svg>`,
		},
		{
			"merge skips gradient inherited from group",
			`<svg width="1"><g fill="url(#g)"><path d="M0 0H2V2H0Z"/><path d="M8 8H10V10H8Z"/></g></svg>`,
			func(c *domain.OptimizationConfig) { c.MergePaths = true },
			`<svg width="1"><g fill="url(#g)"><path d="M0 0 H2 V2 H0 Z"/><path d="M8 8 H10 V10 H8 Z"/></g></svg>`,
		},
		{
			"merge skips strokes that reach each other",
			`<svg width="1"><path stroke="#000" stroke-width="2" d="M0 0H2V2H0Z"/><path stroke="#000" stroke-width="2" d="M5 0H7V2H5Z"/></svg>`,
			func(c *domain.OptimizationConfig) { c.MergePaths = true },
			`<svg width="1"><path stroke="#000" stroke-width="2" d="M0 0 H2 V2 H0 Z"/><path stroke="#000" stroke-width="2" d="M5 0 H7 V2 H5 Z"/></svg>`,
		},
		{
			"merge skips paths stroked by a class",
			`<svg width="1"><g class="icon"><path d="M0 0H2V2H0Z"/><path d="M8 8H10V10H8Z"/></g></svg>`,
			func(c *domain.OptimizationConfig) { c.MergePaths = true },
			`<svg width="1"><g class="icon"><path d="M0 0 H2 V2 H0 Z"/><path d="M8 8 H10 V10 H8 Z"/></g></svg>`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := noPasses()
			c.cfg(&cfg)
			if got := runPasses(t, c.input, cfg); got != c.want {
				t.Errorf("got  %s\nwant %s", got, c.want)
			}
		})
	}
}
