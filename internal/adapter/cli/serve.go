package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "github.com/gnsaved/kanban-board-showcase/internal/adapter/http"
)

func (a *app) serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port == "" {
				port = a.opts.Config.AppPort
			}
			if port == "" {
				port = "8080"
			}
			return a.withEngine(cmd, func(_ context.Context, e *Engine) error {
				r, err := httpadapter.NewRouter(a.opts.Logger, a.opts.Config.TrustedProxies, e.Store, e.Service)
				if err != nil {
					return err
				}
				addr := ":" + port
				a.opts.Logger.Info("starting server", zap.String("addr", addr))
				return r.Run(addr)
			})
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Port to listen on (default APP_PORT)")
	return cmd
}
