package tui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/svgsym/internal/domain"
)

type screen int

const (
	screenIcons screen = iota
	screenFragment
)

type iconItem struct {
	ref domain.IconRef
}

func (i iconItem) Title() string       { return i.ref.Name }
func (i iconItem) Description() string { return i.ref.Path }
func (i iconItem) FilterValue() string { return i.ref.Name }

type treatOptions struct {
	replaceColors bool
	container     bool
}

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr   screen
	icons list.Model
	frag  viewport.Model

	iconsDir string
	current  domain.IconRef
	result   domain.TreatmentResult
	opts     treatOptions

	workspaceFound bool
	workspaceRoot  string

	busy   bool
	toast  string
	width  int
	height int
}

func Run(deps Deps) error {
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Icons"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	m := model{
		theme:    t,
		deps:     deps,
		log:      log,
		scr:      screenIcons,
		icons:    l,
		frag:     viewport.New(0, 0),
		iconsDir: deps.IconsDir,
	}

	wd, err := os.Getwd()
	if err == nil && deps.WorkspaceLocator != nil {
		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr == nil {
			m.workspaceFound = true
			m.workspaceRoot = root
		}
	}
	if m.iconsDir == "" {
		m.iconsDir = wd
	}

	return m
}

func (m model) Init() tea.Cmd {
	return cmdLoadIcons(m.deps, m.iconsDir)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.icons.SetSize(msg.Width-8, msg.Height-12)
		m.frag.Width = msg.Width - 8
		m.frag.Height = msg.Height - 12
		return m, nil

	case iconsLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.icons.SetItems(nil)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, iconItem{ref: r})
		}
		m.iconsDir = msg.dir
		m.toast = ""
		return m, m.icons.SetItems(items)

	case iconTreatedMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.scr = screenIcons
			return m, nil
		}
		m.toast = ""
		m.current = msg.icon
		m.result = msg.res
		m.frag.SetContent(renderFragment(msg.res))
		m.frag.GotoTop()
		m.scr = screenFragment
		return m, nil

	case initWorkspaceDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.workspaceFound = true
		m.workspaceRoot = msg.root
		m.iconsDir = filepath.Join(msg.root, domain.DefaultConfig().Paths.IconsDir)
		m.toast = "Workspace initialized at " + msg.root
		return m, cmdLoadIcons(m.deps, m.iconsDir)

	case tea.KeyMsg:
		if m.scr == screenIcons && m.icons.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.scr == screenFragment {
				m.scr = screenIcons
				return m, nil
			}

		case "enter":
			if m.scr == screenIcons && !m.busy {
				it, ok := m.icons.SelectedItem().(iconItem)
				if !ok {
					return m, nil
				}
				m.busy = true
				return m, cmdTreatIcon(m.deps, it.ref, m.opts, m.log)
			}

		case "c":
			m.opts.replaceColors = !m.opts.replaceColors
			return m, m.retreat()

		case "w":
			m.opts.container = !m.opts.container
			return m, m.retreat()

		case "r":
			if m.scr == screenIcons {
				m.busy = true
				return m, cmdLoadIcons(m.deps, m.iconsDir)
			}

		case "i":
			if m.scr == screenIcons && !m.workspaceFound && !m.busy {
				wd, err := os.Getwd()
				if err != nil {
					m.toast = userMessage(err)
					return m, nil
				}
				m.busy = true
				return m, cmdInitWorkspaceHere(m.deps, wd)
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenIcons:
		m.icons, cmd = m.icons.Update(msg)
	case screenFragment:
		m.frag, cmd = m.frag.Update(msg)
	}
	return m, cmd
}

// retreat re-runs the current icon with the toggled options.
func (m *model) retreat() tea.Cmd {
	if m.scr != screenFragment || m.busy {
		return nil
	}
	m.busy = true
	return cmdTreatIcon(m.deps, m.current, m.opts, m.log)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("svgsym") + "\n" +
		m.theme.Subtitle.Render("SVG to <symbol> fragments") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		banner = m.theme.Help.Render("No workspace found (press i to init one here)")
	}

	options := m.theme.Badge.Render("colors "+onOff(m.opts.replaceColors)) + " " +
		m.theme.Badge.Render("container "+onOff(m.opts.container))

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(clampString(m.toast, 120))
	}

	switch m.scr {
	case screenIcons:
		help := m.theme.Help.Render("↑/↓ navigate • enter treat • / search • c colors • w container • r reload • q quit")
		return wrap.Render(header + "\n" + banner + "\n" + options + toast + "\n\n" +
			m.theme.Card.Render(m.icons.View()) + "\n" + help)

	case screenFragment:
		title := m.theme.Title.Render(m.current.Name) + "  " +
			m.theme.Subtitle.Render(`id="`+m.result.Identifier+`"`)
		help := m.theme.Help.Render("↑/↓ scroll • c colors • w container • esc back • q quit")
		return wrap.Render(header + "\n" + title + "\n" + options + toast + "\n\n" +
			m.theme.Card.Render(m.frag.View()) + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
