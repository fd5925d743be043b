package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/svgsym/internal/infra/httpapi"
	"github.com/aalvaropc/svgsym/internal/infra/logger"
)

func serveCmd() *cobra.Command {
	var workspace string
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the treatment form endpoint over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			defer setupLogging(cmd, ws, os.Stderr)()

			listen := ws.cfg.Server.Addr
			if addr != "" {
				listen = addr
			}

			log := logger.L().With("component", "http")
			srv := httpapi.NewServer(
				ws.newTreat(log),
				httpapi.WithLogger(log),
				httpapi.WithMaxBodyBytes(ws.cfg.Server.MaxBodyBytes),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.ErrOrStderr(), "svgsym listening on %s\n", listen)
			return srv.ListenAndServe(ctx, listen)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to server.addr, \":8080\")")
	return c
}
