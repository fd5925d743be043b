package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/svgsym/internal/domain"
	"github.com/aalvaropc/svgsym/internal/usecase"
)

const treatTimeout = 30 * time.Second

func cmdLoadIcons(deps Deps, dir string) tea.Cmd {
	return func() tea.Msg {
		if deps.Icons == nil {
			return iconsLoadedMsg{dir: dir, err: errors.New("IconCatalog is nil")}
		}
		refs, err := deps.Icons.ListIcons(dir)
		return iconsLoadedMsg{dir: dir, refs: refs, err: err}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

// cmdTreatIcon reads and treats one icon. The id comes from the file name so
// toggling options re-renders the same symbol.
func cmdTreatIcon(deps Deps, icon domain.IconRef, opts treatOptions, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		if deps.Icons == nil || deps.Treat == nil {
			return iconTreatedMsg{icon: icon, err: errors.New("treatment is not configured")}
		}

		raw, err := deps.Icons.ReadIcon(icon.Path)
		if err != nil {
			return iconTreatedMsg{icon: icon, err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), treatTimeout)
		defer cancel()

		res, err := deps.Treat.Execute(ctx, domain.TreatmentRequest{
			RawSVG:           raw,
			Identifier:       usecase.SymbolIDFromName(icon.Name),
			IncludeContainer: opts.container,
			ReplaceColors:    opts.replaceColors,
		})
		if err != nil {
			log.Warn("tui.treat.failed", "path", icon.Path, "err", err)
		}
		return iconTreatedMsg{icon: icon, res: res, err: err}
	}
}
