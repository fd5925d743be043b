package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/svgsym/internal/domain"
)

type fakeIcons struct {
	refs []domain.IconRef
	raw  map[string]string
}

func (f fakeIcons) ListIcons(_ string) ([]domain.IconRef, error) { return f.refs, nil }

func (f fakeIcons) ReadIcon(path string) (string, error) {
	raw, ok := f.raw[path]
	if !ok {
		return "", &domain.OpError{Op: "fake.read", Kind: domain.KindNotFound, Path: path, Err: domain.ErrNotFound}
	}
	return raw, nil
}

type recordingTreater struct {
	last domain.TreatmentRequest
	err  error
}

func (r *recordingTreater) Execute(_ context.Context, req domain.TreatmentRequest) (domain.TreatmentResult, error) {
	r.last = req
	if r.err != nil {
		return domain.TreatmentResult{}, r.err
	}
	return domain.TreatmentResult{Output: `<symbol id="` + req.Identifier + `"><path/></symbol>`, Identifier: req.Identifier}, nil
}

func testDeps(tr *recordingTreater) Deps {
	return Deps{
		Icons: fakeIcons{
			refs: []domain.IconRef{{Name: "ArrowLeft", Path: "icons/ArrowLeft.svg"}},
			raw:  map[string]string{"icons/ArrowLeft.svg": `<svg width="1"></svg>`},
		},
		Treat:    tr,
		IconsDir: "icons",
	}
}

func step(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("expected model, got %T", next)
	}
	return mm, cmd
}

func loadedModel(t *testing.T, deps Deps) model {
	t.Helper()
	m := newModel(deps)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = step(t, m, m.Init()())
	return m
}

func TestModel_EnterTreatsSelectedIcon(t *testing.T) {
	tr := &recordingTreater{}
	m := loadedModel(t, testDeps(tr))

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.busy {
		t.Fatalf("expected treat command")
	}

	m, _ = step(t, m, cmd())
	if m.scr != screenFragment {
		t.Fatalf("expected fragment screen, got %v (toast=%q)", m.scr, m.toast)
	}
	if tr.last.Identifier != "arrow-left" || tr.last.RawSVG != `<svg width="1"></svg>` {
		t.Fatalf("unexpected request: %+v", tr.last)
	}
	if !strings.Contains(m.View(), `id="arrow-left"`) {
		t.Fatalf("expected id in view:\n%s", m.View())
	}
}

func TestModel_TogglesRetreatWithOptions(t *testing.T) {
	tr := &recordingTreater{}
	m := loadedModel(t, testDeps(tr))

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, cmd())

	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if cmd == nil {
		t.Fatalf("expected re-treat command")
	}
	m, _ = step(t, m, cmd())
	if !tr.last.ReplaceColors || tr.last.IncludeContainer {
		t.Fatalf("expected colors on, container off: %+v", tr.last)
	}

	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	_, _ = step(t, m, cmd())
	if !tr.last.ReplaceColors || !tr.last.IncludeContainer {
		t.Fatalf("expected both options on: %+v", tr.last)
	}
}

func TestModel_EscReturnsToList(t *testing.T) {
	m := loadedModel(t, testDeps(&recordingTreater{}))
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, cmd())

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scr != screenIcons {
		t.Fatalf("expected icons screen after esc")
	}
}

func TestModel_TreatErrorShowsToast(t *testing.T) {
	tr := &recordingTreater{err: &domain.OpError{Op: "treat", Kind: domain.KindInvalidMarkup, Err: domain.ErrInvalidMarkup}}
	m := loadedModel(t, testDeps(tr))

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, cmd())

	if m.scr != screenIcons || m.toast != "Invalid SVG provided" {
		t.Fatalf("expected toast on list screen, got scr=%v toast=%q", m.scr, m.toast)
	}
}

func TestSafeModel_PassesThroughUpdates(t *testing.T) {
	s := wrapSafe(loadedModel(t, testDeps(&recordingTreater{})), nil)

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
	if cmd == nil || !sm.m.busy {
		t.Fatalf("expected inner model updated")
	}
	if !strings.Contains(sm.View(), "svgsym") {
		t.Fatalf("expected inner view rendered")
	}
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound}, "Workspace not found"},
		{&domain.OpError{Op: "fsicons.list", Kind: domain.KindNotFound, Path: "icons"}, "Icons directory not found: icons"},
		{&domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: "/ws/svgsym.yaml", Err: errors.New("yaml: line 3: did not find expected key")}, "Invalid YAML at svgsym.yaml line 3"},
		{&domain.OpError{Op: "treat", Kind: domain.KindMissingInput}, "No SVG provided"},
		{errors.New("boom"), "Unexpected error (see logs)"},
	}
	for _, c := range cases {
		if got := userMessage(c.err); got != c.want {
			t.Errorf("userMessage(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}
