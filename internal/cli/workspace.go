package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/svgsym/internal/domain"
	"github.com/aalvaropc/svgsym/internal/infra/logger"
	"github.com/aalvaropc/svgsym/internal/infra/randid"
	"github.com/aalvaropc/svgsym/internal/infra/svgopt"
	"github.com/aalvaropc/svgsym/internal/infra/workspacefinder"
	"github.com/aalvaropc/svgsym/internal/usecase"
)

// workspaceCtx is the resolved workspace. root is empty when commands run
// outside any workspace; cfg then holds defaults.
type workspaceCtx struct {
	root string
	cfg  domain.Config
}

func defaultConfig() domain.Config {
	return domain.DefaultConfig()
}

// loadWorkspace resolves the workspace from the flag or the working directory.
// An explicit flag must point at a directory; autodetection failing is not an error.
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	if strings.TrimSpace(workspaceFlag) != "" {
		root, err := resolveWorkspaceRoot(workspaceFlag)
		if err != nil {
			return nil, err
		}
		if info, statErr := os.Stat(root); statErr != nil || !info.IsDir() {
			return nil, &domain.OpError{
				Op:   "cli.workspace",
				Kind: domain.KindNotFound,
				Path: root,
				Err:  domain.ErrNotFound,
			}
		}
		return openWorkspace(root)
	}

	root, err := resolveWorkspaceRoot("")
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return &workspaceCtx{cfg: defaultConfig()}, nil
		}
		return nil, err
	}
	return openWorkspace(root)
}

func openWorkspace(root string) (*workspaceCtx, error) {
	cfg, err := workspacefinder.LoadConfigOrDefault(root)
	if err != nil {
		return nil, err
	}
	return &workspaceCtx{root: root, cfg: cfg}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", err
	}
	return root, nil
}

// newTreat wires the treatment pipeline with the workspace preset.
func (ws *workspaceCtx) newTreat(log *slog.Logger) *usecase.TreatSVG {
	return usecase.NewTreatSVG(
		svgopt.New(),
		randid.New(),
		usecase.WithPreset(ws.cfg.Optimize),
		usecase.WithIDPrefix(ws.cfg.Symbol.IDPrefix),
		usecase.WithLogger(log),
	)
}

func (ws *workspaceCtx) iconsDir() string {
	return ws.resolve(ws.cfg.Paths.IconsDir)
}

func (ws *workspaceCtx) symbolsDir() string {
	return ws.resolve(ws.cfg.Paths.SymbolsDir)
}

// resolve joins relative paths onto the workspace root, or the working
// directory outside a workspace.
func (ws *workspaceCtx) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	base := ws.root
	if base == "" {
		base = "."
	}
	return filepath.Join(base, p)
}

// resolveIconPath accepts a path, or a bare icon name looked up in the icons dir.
func resolveIconPath(ws *workspaceCtx, arg string) string {
	in := strings.TrimSpace(arg)
	if looksLikePath(in) || fileExists(in) {
		return in
	}

	name := in
	if !hasSVGExt(name) {
		name += ".svg"
	}
	if p := filepath.Join(ws.iconsDir(), name); fileExists(p) {
		return p
	}
	return in
}

// setupLogging mirrors the root command: logs go under the workspace when one
// is known. Outside a workspace the logger stays on io.Discard unless mirror is set.
func setupLogging(cmd *cobra.Command, ws *workspaceCtx, mirror io.Writer) func() {
	debug, _ := cmd.Flags().GetBool("debug")

	root := ws.root
	if root == "" {
		if mirror == nil {
			return func() {}
		}
		root = "."
	}

	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug, Mirror: mirror})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

// userError prefixes err with its user-facing message.
func userError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", domain.UserMessage(err), err)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasSVGExt(s string) bool {
	return strings.EqualFold(filepath.Ext(s), ".svg")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
