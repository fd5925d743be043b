package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/svgsym/internal/domain"
	"github.com/aalvaropc/svgsym/internal/infra/fsicons"
	"github.com/aalvaropc/svgsym/internal/infra/logger"
)

func treatCmd() *cobra.Command {
	var workspace string
	var id string
	var container bool
	var replaceColors bool
	var format string

	c := &cobra.Command{
		Use:   "treat [file|-]",
		Short: "Treat one SVG (file, icon name or stdin) and print the symbol fragment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			defer setupLogging(cmd, ws, nil)()

			raw, err := readInput(ws, cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			uc := ws.newTreat(logger.L())
			res, err := uc.Execute(cmd.Context(), domain.TreatmentRequest{
				RawSVG:           raw,
				Identifier:       id,
				IncludeContainer: container,
				ReplaceColors:    replaceColors,
			})
			if err != nil {
				return userError(err)
			}

			return printTreat(cmd.OutOrStdout(), res, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&id, "id", "i", "", "Symbol id (optional; generated when omitted)")
	c.Flags().BoolVar(&container, "container", false, "Wrap the fragment in an outer <svg> tag")
	c.Flags().BoolVar(&replaceColors, "replace-colors", false, "Rewrite fill/stroke to currentColor")
	c.Flags().StringVar(&format, "format", "text", "Output format: text|json")
	return c
}

// readInput reads the argument as a file or icon name; "-" or no argument reads r.
func readInput(ws *workspaceCtx, r io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(r)
		if err != nil {
			return "", &domain.OpError{Op: "cli.stdin", Kind: domain.KindExecution, Err: err}
		}
		return string(b), nil
	}
	return fsicons.NewCatalog().ReadIcon(resolveIconPath(ws, args[0]))
}

func checkFormat(format string) error {
	switch format {
	case "text", "", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected text|json)", format)
	}
}

func printTreat(w io.Writer, res domain.TreatmentResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(map[string]any{
			"status":    "success",
			"result":    res.Output,
			"id":        res.Identifier,
			"generated": res.Generated,
		})
	case "text", "":
		_, err := fmt.Fprintln(w, res.Output)
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected text|json)", format)
	}
}

