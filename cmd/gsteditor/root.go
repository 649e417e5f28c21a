// If you are AI: This file defines the root command, its persistent flags and the
// shared setup every subcommand uses: configuration, logging, catalog and journal.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"gsteditor/internal/config"
	"gsteditor/internal/core/bus"
	"gsteditor/internal/core/factory"
	"gsteditor/internal/editor"
	"gsteditor/internal/journal"
	"gsteditor/internal/logging"
)

// options hold the persistent flags and what setup derives from them.
type options struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log zerolog.Logger
}

// newRootCmd builds the full command tree.
func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "gsteditor",
		Short: "Headless GStreamer pipeline graph editor",
		Long: `gsteditor edits pipeline graphs with a small command language:

  ADD ELEMENT videotestsrc src
  ADD ELEMENT autovideosink out
  CONNECT src:src TO out:sink

Graphs are saved as XML documents and can be turned into gst-launch lines or Go programs.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to configuration file (defaults when empty)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level")

	root.AddCommand(
		newConsoleCmd(opts),
		newExecCmd(opts),
		newShowCmd(opts),
		newCodegenCmd(opts),
		newFactoriesCmd(opts),
		newServeCmd(opts),
		newHistoryCmd(opts),
		newReplayCmd(opts),
	)
	return root
}

// setup loads and validates configuration and builds the logger.
func (o *options) setup(stderr io.Writer) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	log, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}
	o.cfg, o.log = cfg, log
	return nil
}

// catalog returns the builtin catalog extended with configured definition files.
func (o *options) catalog() (*factory.Catalog, error) {
	c := factory.Builtin()
	if o.cfg.Editor.CatalogDir == "" {
		return c, nil
	}
	files, err := factory.LoadDir(c, o.cfg.Editor.CatalogDir, o.cfg.Editor.CatalogPattern)
	if err != nil {
		return nil, err
	}
	o.log.Debug().Strs("files", files).Int("factories", c.Count()).Msg("catalog loaded")
	return c, nil
}

// openJournal opens the configured journal; nil when none is configured.
func (o *options) openJournal(ctx context.Context) (*journal.Journal, error) {
	if o.cfg.Journal.Path == "" {
		return nil, nil
	}
	return journal.Open(ctx, o.cfg.Journal.Path)
}

// requireJournal opens the journal or explains how to configure one.
func (o *options) requireJournal(ctx context.Context) (*journal.Journal, error) {
	if o.cfg.Journal.Path == "" {
		return nil, fmt.Errorf("no journal configured, set journal.path or %sJOURNAL_PATH", config.EnvPrefix)
	}
	return journal.Open(ctx, o.cfg.Journal.Path)
}

// newEditor builds an editor with the catalog and, when journaled, the journal.
// The returned close function releases the journal.
func (o *options) newEditor(ctx context.Context, hub *bus.Hub, journaled bool) (*editor.Editor, func(), error) {
	c, err := o.catalog()
	if err != nil {
		return nil, nil, err
	}
	var j *journal.Journal
	if journaled {
		if j, err = o.openJournal(ctx); err != nil {
			return nil, nil, err
		}
	}
	e := editor.New(editor.Options{Catalog: c, Journal: j, Hub: hub, Logger: o.log})
	return e, func() { _ = j.Close() }, nil
}
