package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/svgsym/internal/infra/fsicons"
	"github.com/aalvaropc/svgsym/internal/infra/fsworkspace"
	"github.com/aalvaropc/svgsym/internal/infra/logger"
	"github.com/aalvaropc/svgsym/internal/infra/workspacefinder"
	"github.com/aalvaropc/svgsym/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "svgsym",
		Short:        "svgsym turns SVG files into reusable <symbol> fragments",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := workspacefinder.NewFinder()

			logRoot := wd
			ws := &workspaceCtx{cfg: defaultConfig()}
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
				if loaded, lerr := openWorkspace(root); lerr == nil {
					ws = loaded
				}
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			iconsDir := ""
			if ws.root != "" {
				iconsDir = ws.iconsDir()
			}

			deps := tui.Deps{
				WorkspaceLocator:     finder,
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Icons:                fsicons.NewCatalog(),
				Treat:                ws.newTreat(logger.L()),
				IconsDir:             iconsDir,
				Logger:               logger.L(),
				Debug:                debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .svgsym/logs/svgsym.log")

	cmd.AddCommand(
		treatCmd(),
		batchCmd(),
		serveCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
