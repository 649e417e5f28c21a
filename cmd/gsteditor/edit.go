// If you are AI: This file implements the console and exec commands that edit a graph.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gsteditor/internal/editor"
)

// newConsoleCmd builds "console [file]".
func newConsoleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "console [file]",
		Short: "Edit a graph interactively",
		Long: `Start an interactive session. Type commands, end a partial line with '?'
for completions, or use .help for console verbs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, closeEditor, err := opts.newEditor(ctx, nil, true)
			if err != nil {
				return err
			}
			defer closeEditor()

			if len(args) == 1 {
				stats, err := e.Load(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "loaded %s: %d elements, %d links\n", args[0], stats.Elements, stats.Links)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "gsteditor %s, session %s. Type .help for help.\n", Version, e.Session())
			return editor.NewConsole(e, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
		},
	}
}

// newExecCmd builds "exec <script>".
func newExecCmd(opts *options) *cobra.Command {
	var in, out string
	var keepGoing bool
	cmd := &cobra.Command{
		Use:   "exec <script>",
		Short: "Run a command script against a graph",
		Long: `Run every line of a script as a command. Blank lines and lines starting with '#'
are skipped. The first failing line stops the script unless --keep-going is set.
Without --out the resulting graph is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, closeEditor, err := opts.newEditor(ctx, nil, true)
			if err != nil {
				return err
			}
			defer closeEditor()

			if in != "" {
				if _, err := e.Load(ctx, in); err != nil {
					return err
				}
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			failures := 0
			scanner := bufio.NewScanner(f)
			for n := 1; scanner.Scan(); n++ {
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				if _, err := e.Execute(ctx, line); err != nil {
					if !keepGoing {
						return fmt.Errorf("%s:%d: %w", args[0], n, err)
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d: %v\n", args[0], n, err)
					failures++
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}

			if out == "" {
				if err := e.WriteTree(cmd.OutOrStdout()); err != nil {
					return err
				}
			} else if _, err := e.Save(ctx, out); err != nil {
				return err
			}
			if failures > 0 {
				return fmt.Errorf("%d command(s) failed", failures)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "Load this document before running the script")
	cmd.Flags().StringVar(&out, "out", "", "Save the resulting graph to this document")
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Continue after failing lines")
	return cmd
}
