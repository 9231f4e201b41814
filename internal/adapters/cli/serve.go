package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"greeter/internal/adapters/rest"
	"greeter/internal/buildinfo"
)

func newServeCmd(deps Deps) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve greetings over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.ConfigErr != nil {
				return deps.ConfigErr
			}
			cfg := *deps.Config
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			if err := cfg.RequireHTTP(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := rest.NewServer(deps.Greetings, deps.Logger, rest.Options{
				ServerName: cfg.HTTP.ServerName,
				Version:    buildinfo.Version,
			})
			return srv.ListenAndServe(ctx, cfg.HTTP.Addr, cfg.HTTP.ShutdownTimeout)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to http.addr)")
	return cmd
}
