// If you are AI: This file implements the journal commands: history and replay.

package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// newHistoryCmd builds "history".
func newHistoryCmd(opts *options) *cobra.Command {
	var session string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List journaled sessions, or the commands of one session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			j, err := opts.requireJournal(ctx)
			if err != nil {
				return err
			}
			defer j.Close()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if session == "" {
				sessions, err := j.Sessions(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "SESSION\tCOMMANDS\tFAILED\tLAST")
				for _, s := range sessions {
					fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", s.ID, s.Commands, s.Failed, s.Last.Format(time.RFC3339))
				}
				return tw.Flush()
			}

			entries, err := j.Entries(ctx, session)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return fmt.Errorf("session %s has no journal entries", session)
			}
			for _, e := range entries {
				status := "ok"
				if !e.OK() {
					status = e.Error
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", e.Seq, e.Line, status)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "Show the commands of this session")
	return cmd
}

// newReplayCmd builds "replay <session>".
func newReplayCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "replay <session>",
		Short: "Rebuild a session's graph from its journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			j, err := opts.requireJournal(ctx)
			if err != nil {
				return err
			}
			defer j.Close()
			entries, err := j.Entries(ctx, args[0])
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return fmt.Errorf("session %s has no journal entries", args[0])
			}

			e, closeEditor, err := opts.newEditor(ctx, nil, false)
			if err != nil {
				return err
			}
			defer closeEditor()
			e.UseDocuments(j)

			applied, err := e.Replay(ctx, entries)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "replayed %d of %d entries\n", applied, len(entries))
			if out == "" {
				return e.WriteTree(cmd.OutOrStdout())
			}
			_, err = e.Save(ctx, out)
			return err
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Save the rebuilt graph to this document")
	return cmd
}
