package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vsel/internal/config"
	"github.com/vango-dev/vsel/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		configDir string
		addr      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve join plans over HTTP and WebSocket",
		Long: `Start the join service.

Endpoints:
  POST /v1/join      run a plan against an inline document
  GET  /v1/join/ws   WebSocket, one request per message
  GET  /metrics      Prometheus metrics
  GET  /healthz      liveness probe

Examples:
  vsel serve
  vsel serve --addr=127.0.0.1:9090
  vsel serve --config=./deploy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, configDir, addr)
		},
	}

	cmd.Flags().StringVarP(&configDir, "config", "c", "", "Directory containing vsel.json")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from vsel.json)")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, configDir, addr string) error {
	cfg, err := config.LoadOrDefault(configDir)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	logger := cfg.Logger(cmd.ErrOrStderr())
	srv := server.New(cfg, server.WithLogger(logger))

	info(cmd.OutOrStdout(), "listening on %s", cfg.Server.Addr)
	return srv.Run(ctx)
}
