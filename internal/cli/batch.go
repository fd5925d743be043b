package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/svgsym/internal/domain"
	"github.com/aalvaropc/svgsym/internal/infra/fragmentstore"
	"github.com/aalvaropc/svgsym/internal/infra/fsicons"
	"github.com/aalvaropc/svgsym/internal/infra/logger"
	"github.com/aalvaropc/svgsym/internal/usecase"
)

func batchCmd() *cobra.Command {
	var workspace string
	var src string
	var out string
	var container bool
	var replaceColors bool
	var sprite bool

	c := &cobra.Command{
		Use:   "batch",
		Short: "Treat every *.svg in a directory and write one fragment per file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			defer setupLogging(cmd, ws, nil)()

			srcDir := ws.iconsDir()
			if src != "" {
				srcDir = filepath.Clean(src)
			}
			outDir := ws.symbolsDir()
			if out != "" {
				outDir = filepath.Clean(out)
			}

			store := fragmentstore.NewFileStore(outDir, fragmentstore.WithIndex(true))
			uc := usecase.NewTreatDirectory(
				fsicons.NewCatalog(),
				ws.newTreat(logger.L()),
				store,
				usecase.WithBatchLogger(logger.L()),
			)

			report, err := uc.Execute(cmd.Context(), srcDir, domain.BatchOptions{
				OutputDir:        outDir,
				IncludeContainer: container,
				ReplaceColors:    replaceColors,
				Sprite:           sprite,
			})
			printBatch(cmd.OutOrStdout(), report)
			if err != nil {
				return userError(err)
			}

			if _, failed := report.Counts(); failed > 0 {
				return fmt.Errorf("batch failed (%d file(s))", failed)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&src, "src", "", "Source directory (defaults to paths.icons_dir)")
	c.Flags().StringVar(&out, "out", "", "Output directory (defaults to paths.symbols_dir)")
	c.Flags().BoolVar(&container, "container", false, "Wrap each fragment in an outer <svg> tag")
	c.Flags().BoolVar(&replaceColors, "replace-colors", false, "Rewrite fill/stroke to currentColor")
	c.Flags().BoolVar(&sprite, "sprite", false, "Also write sprite.svg with every symbol")
	c.MarkFlagsMutuallyExclusive("sprite", "container")
	return c
}

func printBatch(w io.Writer, report domain.BatchReport) {
	fmt.Fprintf(w, "Source: %s\n", report.SourceDir)
	fmt.Fprintf(w, "Output: %s\n", report.OutputDir)
	if !report.StartedAt.IsZero() && !report.EndedAt.IsZero() {
		fmt.Fprintf(w, "Duration: %s\n", report.EndedAt.Sub(report.StartedAt))
	}
	fmt.Fprintln(w)

	for _, it := range report.Items {
		if it.Failed() {
			fmt.Fprintf(w, "- [FAIL] %s: %s\n", it.Source, it.Error)
			continue
		}
		fmt.Fprintf(w, "- [OK] %s -> %s\n", it.Identifier, it.OutputPath)
	}

	ok, failed := report.Counts()
	fmt.Fprintf(w, "\nTreated: %d ok / %d failed\n", ok, failed)
	if report.SpritePath != "" {
		fmt.Fprintf(w, "Sprite: %s\n", report.SpritePath)
	}
}
