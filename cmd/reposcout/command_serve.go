package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/reposcout/reposcout/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the resolution API over HTTP",
		Long: `Serve exposes POST /api/repos/resolve and GET /healthz on the
configured listen address. The server shuts down gracefully on SIGINT
or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(container.Resolver(), container.AuthConfig(), container.Logger())
			return srv.ListenAndServe(ctx, cfg.Server.Addr)
		},
	}
}
