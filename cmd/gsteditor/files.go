// If you are AI: This file implements the read-only document commands: show, codegen and factories.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gsteditor/internal/core/codegen"
	"gsteditor/internal/core/factory"
	"gsteditor/internal/editor"
)

// newShowCmd builds "show <file>".
func newShowCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the graph stored in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadDocument(cmd, opts, args[0])
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(e.Tree())
			}
			return e.WriteTree(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the tree as JSON")
	return cmd
}

// newCodegenCmd builds "codegen <file>".
func newCodegenCmd(opts *options) *cobra.Command {
	var format, pkg, output string
	cmd := &cobra.Command{
		Use:   "codegen <file>",
		Short: "Generate a gst-launch line or a Go program from a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadDocument(cmd, opts, args[0])
			if err != nil {
				return err
			}

			var src []byte
			switch format {
			case "launch":
				src = []byte(codegen.Launch(e.Graph()) + "\n")
			case "go":
				if src, err = codegen.Go(e.Graph(), codegen.Options{Package: pkg}); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q, want launch or go", format)
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			return os.WriteFile(output, src, 0o644)
		},
	}
	cmd.Flags().StringVar(&format, "format", "launch", "Output format: launch or go")
	cmd.Flags().StringVar(&pkg, "package", "main", "Package clause for Go output")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

// newFactoriesCmd builds "factories".
func newFactoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "factories",
		Short: "List the element factories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.catalog()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPADS\tPROPERTIES\tDESCRIPTION")
			for _, f := range c.Factories() {
				if f.Name == factory.RootFactory {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", f.Name, templates(f), len(f.Properties), f.Description)
			}
			return tw.Flush()
		},
	}
}

// templates renders a factory's pad templates as "src_%u(request)".
func templates(f *factory.Factory) string {
	parts := make([]string, 0, len(f.Templates))
	for _, t := range f.Templates {
		parts = append(parts, fmt.Sprintf("%s(%s)", t.Name, t.Presence))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}

// loadDocument builds an unjournaled editor holding the document at path.
func loadDocument(cmd *cobra.Command, opts *options, path string) (*editor.Editor, error) {
	e, closeEditor, err := opts.newEditor(cmd.Context(), nil, false)
	if err != nil {
		return nil, err
	}
	closeEditor()

	stats, err := e.Load(cmd.Context(), path)
	if err != nil {
		return nil, err
	}
	if stats.Skipped > 0 || stats.Ignored > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d item(s) skipped, %d unknown propert(ies) ignored\n", path, stats.Skipped, stats.Ignored)
	}
	return e, nil
}
