// If you are AI: This file implements the serve command that runs the HTTP editor.

package main

import (
	"github.com/spf13/cobra"

	"gsteditor/internal/core/bus"
	"gsteditor/internal/editor"
	"gsteditor/internal/server"
)

// newServeCmd builds "serve".
func newServeCmd(opts *options) *cobra.Command {
	var load string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the editor over HTTP and WebSocket",
		Long: `Serve one editing session. The API lives under /api, events stream on
/ws/events and /healthz reports whether the editor loop runs. SIGINT or
SIGTERM shuts the server down.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := server.SignalContext(cmd.Context())
			defer stop()

			hub := bus.NewHub()
			e, closeEditor, err := opts.newEditor(ctx, hub, true)
			if err != nil {
				return err
			}
			defer closeEditor()

			if load != "" {
				if _, err := e.Load(ctx, load); err != nil {
					return err
				}
			}

			srv := server.New(opts.cfg, editor.NewLoop(e), hub, opts.log)
			opts.log.Info().Str("session", e.Session()).Str("addr", srv.Addr()).Msg("starting editor server")
			if err := srv.Run(ctx); err != nil {
				return err
			}
			opts.log.Info().Msg("server shut down cleanly")
			return nil
		},
	}
	cmd.Flags().StringVar(&load, "load", "", "Load this document at startup")
	return cmd
}
