// If you are AI: This file implements the interactive line console over one editor.
// Lines starting with '.' are console verbs; lines ending in '?' ask for completions.

package editor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"gsteditor/internal/core/codegen"
)

// Prompt is printed before each console line.
const Prompt = "> "

// consoleHelp lists the console verbs.
const consoleHelp = `Commands:
  ADD ELEMENT <factory> [name] [TO <container>]
  ADD PAD TO <element> USING <template> [name]
  REMOVE ELEMENT|PAD <path>
  CONNECT|RECONNECT <src pad> TO <sink pad>
  DISCONNECT <pad>
  SET <element> <property> <value>
Console:
  <partial line>?   list completions
  .save <file>      write the graph
  .load <file>      replace the graph
  .show             print the graph
  .launch           print a gst-launch description
  .history          list executed commands
  .help             this text
  .quit             leave the console
`

// Console reads command lines and writes results.
type Console struct {
	editor *Editor
	in     *bufio.Scanner
	out    io.Writer
}

// NewConsole creates a console reading from in and writing to out.
func NewConsole(e *Editor, in io.Reader, out io.Writer) *Console {
	return &Console{editor: e, in: bufio.NewScanner(in), out: out}
}

// Run processes lines until end of input, .quit or ctx cancellation.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, Prompt)
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}
		if quit := c.handle(ctx, c.in.Text()); quit {
			return nil
		}
	}
}

// handle processes one line and reports whether the console should stop.
func (c *Console) handle(ctx context.Context, line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "" || strings.HasPrefix(trimmed, "#"):
		return false
	case strings.HasSuffix(trimmed, "?"):
		c.suggest(strings.TrimSuffix(strings.Trim(line, " \t"), "?"))
		return false
	case strings.HasPrefix(trimmed, "."):
		return c.verb(ctx, trimmed)
	}

	if _, err := c.editor.Execute(ctx, trimmed); err != nil {
		fmt.Fprintln(c.out, err)
	}
	return false
}

// suggest prints the completions for a partial line.
func (c *Console) suggest(partial string) {
	candidates := c.editor.Suggest(partial)
	if len(candidates) == 0 {
		fmt.Fprintln(c.out, "(no suggestions)")
		return
	}
	fmt.Fprintln(c.out, strings.Join(candidates, "  "))
}

// verb runs one console verb.
func (c *Console) verb(ctx context.Context, line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case ".quit", ".exit":
		return true
	case ".help":
		fmt.Fprint(c.out, consoleHelp)
	case ".show":
		if err := c.editor.WriteTree(c.out); err != nil {
			fmt.Fprintln(c.out, err)
		}
	case ".launch":
		fmt.Fprintln(c.out, codegen.Launch(c.editor.Graph()))
	case ".history":
		for i, h := range c.editor.History() {
			fmt.Fprintf(c.out, "%4d  %s\n", i+1, h)
		}
	case ".save":
		if arg == "" {
			fmt.Fprintln(c.out, "usage: .save <file>")
			break
		}
		if digest, err := c.editor.Save(ctx, arg); err != nil {
			fmt.Fprintln(c.out, err)
		} else {
			fmt.Fprintf(c.out, "saved %s (%s)\n", arg, digest[:12])
		}
	case ".load":
		if arg == "" {
			fmt.Fprintln(c.out, "usage: .load <file>")
			break
		}
		stats, err := c.editor.Load(ctx, arg)
		if err != nil {
			fmt.Fprintln(c.out, err)
			break
		}
		fmt.Fprintf(c.out, "loaded %s: %d elements, %d links, %d skipped\n", arg, stats.Elements, stats.Links, stats.Skipped)
	default:
		fmt.Fprintf(c.out, "unknown console command %s, try .help\n", name)
	}
	return false
}
