// If you are AI: This file contains unit tests for command parsing, execution and suggestions.

package command

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"gsteditor/internal/core/factory"
	"gsteditor/internal/core/graph"
)

func newGraph(t *testing.T) *graph.Graph {
	t.Helper()
	return graph.New(factory.Builtin())
}

func run(t *testing.T, g *graph.Graph, line string) graph.Ref {
	t.Helper()
	c, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", line, err)
	}
	ref, err := c.Execute(g, nil)
	if err != nil {
		t.Fatalf("Execute(%q) failed: %v", line, err)
	}
	return ref
}

func TestParseAddElementArities(t *testing.T) {
	tests := []struct {
		line    string
		factory string
		name    string
		parent  string
	}{
		{"ADD ELEMENT queue", "queue", "", ""},
		{"ADD ELEMENT queue q1", "queue", "q1", ""},
		{"add element queue to bin0", "queue", "", "bin0"},
		{"ADD ELEMENT queue q1 TO bin0:inner", "queue", "q1", "bin0:inner"},
	}

	for _, tt := range tests {
		c, err := Parse(tt.line)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.line, err)
			continue
		}
		add, ok := c.(*AddElement)
		if !ok {
			t.Errorf("Parse(%q): expected *AddElement, got %T", tt.line, c)
			continue
		}
		if add.Factory != tt.factory || add.Name != tt.name || add.Parent != tt.parent {
			t.Errorf("Parse(%q): expected %s/%s/%s, got %s/%s/%s", tt.line,
				tt.factory, tt.name, tt.parent, add.Factory, add.Name, add.Parent)
		}
	}
}

func TestAddElementTargetContainer(t *testing.T) {
	g := newGraph(t)
	bin := run(t, g, "ADD ELEMENT bin outer")

	root := run(t, g, "ADD ELEMENT queue")
	if n, _ := g.Node(root.Node); n.Parent() != g.Root() {
		t.Errorf("Expected root parent, got %d", n.Parent())
	}
	nested := run(t, g, "ADD ELEMENT queue q TO outer")
	if n, _ := g.Node(nested.Node); n.Parent() != bin.Node {
		t.Errorf("Expected parent %d, got %d", bin.Node, n.Parent())
	}
	if g.Path(nested.Node) != "outer:q" {
		t.Errorf("Expected outer:q, got %s", g.Path(nested.Node))
	}
}

func TestParseArgumentCount(t *testing.T) {
	tests := []struct {
		line     string
		expected string
	}{
		{"ADD", "Expected 1, but 0 found."},
		{"ADD ELEMENT", "Expected 2, 3, 4 or 5, but 1 found."},
		{"ADD ELEMENT a b TO c d", "Expected 2, 3, 4 or 5, but 6 found."},
		{"ADD PAD TO x", "Expected 5 or 6, but 3 found."},
		{"REMOVE ELEMENT", "Expected 2, but 1 found."},
		{"CONNECT a:src", "Expected 3, but 1 found."},
		{"DISCONNECT", "Expected 1, but 0 found."},
		{"SET a b", "Expected 3, but 2 found."},
	}

	for _, tt := range tests {
		_, err := Parse(tt.line)
		var syn *SyntaxError
		if !errors.As(err, &syn) {
			t.Errorf("Parse(%q): expected SyntaxError, got %v", tt.line, err)
			continue
		}
		if !strings.Contains(syn.Msg, tt.expected) {
			t.Errorf("Parse(%q): expected %q in %q", tt.line, tt.expected, syn.Msg)
		}
	}
}

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		line     string
		expected string
	}{
		{"", "empty command"},
		{"MOVE a b", "unknown command `MOVE`."},
		{"ADD WIDGET x", "unknown object type `WIDGET`."},
		{"ADD ELEMENT queue q INTO bin", "expected `to`, but INTO found."},
		{"ADD PAD INTO tee USING src_%u", "expected `to`, but INTO found."},
		{"ADD PAD TO tee WITH src_%u", "expected `using`, but WITH found."},
		{"CONNECT a:src WITH b:sink", "expected `to`, but WITH found."},
		{`SET x location "open`, "unterminated quote"},
	}

	for _, tt := range tests {
		_, err := Parse(tt.line)
		var syn *SyntaxError
		if !errors.As(err, &syn) {
			t.Errorf("Parse(%q): expected SyntaxError, got %v", tt.line, err)
			continue
		}
		if syn.Msg != tt.expected {
			t.Errorf("Parse(%q): expected %q, got %q", tt.line, tt.expected, syn.Msg)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	commands := []Command{
		&AddElement{Factory: "queue"},
		&AddElement{Factory: "queue", Name: "q", Parent: "outer:inner"},
		&AddPad{Element: "t", Template: "src_%u"},
		&AddPad{Element: "t", Template: "src_%u", Name: "src_7"},
		&Remove{Object: ObjectPad, Path: "t:src_7"},
		&Connect{Src: "a:src", Sink: "b:sink"},
		&Reconnect{Src: "a:src", Sink: "c:sink"},
		&Disconnect{Pad: "a:src"},
		&SetProperty{Element: "sink", Property: "location", Value: `/tmp/my "file".ts`},
		&SetProperty{Element: "src", Property: "location", Value: ""},
	}

	for _, c := range commands {
		parsed, err := Parse(c.String())
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", c.String(), err)
			continue
		}
		if fmt.Sprintf("%#v", parsed) != fmt.Sprintf("%#v", c) {
			t.Errorf("Expected %#v, got %#v", c, parsed)
		}
	}
}

func TestConnectSymmetry(t *testing.T) {
	g := newGraph(t)
	run(t, g, "ADD ELEMENT videotestsrc src")
	run(t, g, "ADD ELEMENT autovideosink sink")
	run(t, g, "CONNECT src:src TO sink:sink")

	a, _ := g.FindPad("src:src")
	b, _ := g.FindPad("sink:sink")
	pa, _ := g.Pad(a)
	pb, _ := g.Pad(b)
	if pa.Peer() != b || pb.Peer() != a {
		t.Errorf("Expected symmetric peers, got %d and %d", pa.Peer(), pb.Peer())
	}

	run(t, g, "DISCONNECT sink:sink")
	if pa.IsLinked() || pb.IsLinked() {
		t.Error("Expected both pads unlinked")
	}
}

func TestWrongKind(t *testing.T) {
	g := newGraph(t)
	run(t, g, "ADD ELEMENT tee t")
	run(t, g, "ADD ELEMENT fakesink k")

	lines := []string{
		"ADD PAD TO t:sink USING src_%u",
		"CONNECT t TO k:sink",
		"ADD ELEMENT queue TO t:sink",
		"REMOVE PAD t",
		"SET k:sink sync true",
	}
	for _, line := range lines {
		c, err := Parse(line)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", line, err)
		}
		_, err = c.Execute(g, nil)
		var exe *ExecutionError
		if !errors.As(err, &exe) {
			t.Errorf("Execute(%q): expected ExecutionError, got %v", line, err)
			continue
		}
		if !errors.Is(err, graph.ErrWrongKind) {
			t.Errorf("Execute(%q): expected ErrWrongKind, got %v", line, err)
		}
	}
}

func TestExecutionErrors(t *testing.T) {
	g := newGraph(t)
	run(t, g, "ADD ELEMENT queue q")

	tests := []struct {
		line string
		err  error
	}{
		{"ADD ELEMENT nosuch", graph.ErrNotFound},
		{"ADD ELEMENT queue TO q", graph.ErrNotContainer},
		{"ADD ELEMENT queue q", graph.ErrNameTaken},
		{"REMOVE ELEMENT missing", graph.ErrNotFound},
		{"REMOVE PAD q:src", graph.ErrStaticPad},
		{"DISCONNECT q:src", graph.ErrNotLinked},
		{"SET q leaky sideways", graph.ErrInvalidValue},
	}
	for _, tt := range tests {
		c, err := Parse(tt.line)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.line, err)
		}
		if _, err := c.Execute(g, nil); !errors.Is(err, tt.err) {
			t.Errorf("Execute(%q): expected %v, got %v", tt.line, tt.err, err)
		}
	}
}

func TestAddPadAndReconnect(t *testing.T) {
	g := newGraph(t)
	run(t, g, "ADD ELEMENT tee t")
	run(t, g, "ADD ELEMENT fakesink a")
	run(t, g, "ADD ELEMENT fakesink b")

	ref := run(t, g, "ADD PAD TO t USING src_%u")
	if ref.Kind != graph.RefPad || g.PadPath(ref.Pad) != "t:src_0" {
		t.Fatalf("Expected pad t:src_0, got %+v", ref)
	}
	run(t, g, "CONNECT t:src_0 TO a:sink")
	run(t, g, "RECONNECT t:src_0 TO b:sink")

	a, _ := g.FindPad("a:sink")
	if p, _ := g.Pad(a); p.IsLinked() {
		t.Error("Expected a:sink unlinked after reconnect")
	}
	if p, _ := g.Pad(ref.Pad); g.PadPath(p.Peer()) != "b:sink" {
		t.Errorf("Expected peer b:sink, got %s", g.PadPath(p.Peer()))
	}

	run(t, g, "REMOVE PAD t:src_0")
	if _, err := g.FindPad("t:src_0"); !errors.Is(err, graph.ErrNotFound) {
		t.Errorf("Expected pad removed, got %v", err)
	}
}

func TestSuggest(t *testing.T) {
	g := newGraph(t)
	run(t, g, "ADD ELEMENT bin b")
	run(t, g, "ADD ELEMENT videotestsrc v")
	run(t, g, "ADD ELEMENT autovideosink vs")
	run(t, g, "ADD ELEMENT autoaudiosink as")
	run(t, g, "ADD ELEMENT tee t")

	tests := []struct {
		line     string
		expected string
	}{
		{"", "[ADD REMOVE CONNECT DISCONNECT RECONNECT SET]"},
		{"re", "[REMOVE RECONNECT]"},
		{"ADD ", "[ELEMENT PAD]"},
		{"ADD ELEMENT video", "[videoconvert videotestsrc]"},
		{"ADD ELEMENT queue ", "[TO]"},
		{"ADD ELEMENT queue q TO ", "[b]"},
		{"ADD PAD TO ", "[b v vs as t]"},
		{"ADD PAD TO t USING ", "[src_%u]"},
		{"CONNECT v:src TO ", "[vs:sink t:sink]"},
		{"SET v pattern b", "[black blue ball]"},
		{"SET v is-live ", "[true false]"},
		{"DISCONNECT ", "[]"},
		{"SET missing ", "[]"},
		{"BOGUS ", "[]"},
	}
	for _, tt := range tests {
		got := fmt.Sprint(Suggest(tt.line, g))
		if got != tt.expected {
			t.Errorf("Suggest(%q): expected %s, got %s", tt.line, tt.expected, got)
		}
	}
}
