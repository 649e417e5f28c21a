package editor

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func runConsole(t *testing.T, e *Editor, script string) string {
	t.Helper()
	var out bytes.Buffer
	if err := NewConsole(e, strings.NewReader(script), &out).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func TestConsoleSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.xml")
	e := New(Options{})
	out := runConsole(t, e, strings.Join([]string{
		"ADD ELEMENT fakesrc s",
		"# comment",
		"ADD ELEMENT fakesink k",
		"CONNECT s:src TO k:sink",
		"ADD ELEMENT fakesink k",
		"ADD ELEMENT",
		".show",
		".save " + path,
		".history",
		".bogus",
	}, "\n"))

	for _, want := range []string{
		"cannot run command:",
		"syntax error: invalid arguments count. Expected 2, 3, 4 or 5, but 1 found.",
		"  s (fakesrc)",
		"[src src] -> k:sink",
		"saved " + path,
		"   3  CONNECT s:src TO k:sink",
		"unknown console command .bogus",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
}

func TestConsoleSuggest(t *testing.T) {
	e := New(Options{})
	mustExec(t, e, "ADD ELEMENT fakesrc s")
	out := runConsole(t, e, "CONNECT s:?\nRE?\nSET zz?\n")

	if !strings.Contains(out, "s:src\n") {
		t.Errorf("Expected pad suggestion, got %q", out)
	}
	if !strings.Contains(out, "REMOVE  RECONNECT") {
		t.Errorf("Expected keyword suggestions, got %q", out)
	}
	if !strings.Contains(out, "(no suggestions)") {
		t.Errorf("Expected empty suggestion marker, got %q", out)
	}
}

func TestConsoleSuggestTrailingSpace(t *testing.T) {
	out := runConsole(t, New(Options{}), "ADD ? \t\n")
	if !strings.Contains(out, "ELEMENT  PAD\n") {
		t.Errorf("Expected object type suggestions, got %q", out)
	}
}

func TestConsoleQuitAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.xml")
	e := New(Options{})
	mustExec(t, e, "ADD ELEMENT queue q")
	if _, err := e.Save(context.Background(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	other := New(Options{})
	out := runConsole(t, other, ".load "+path+"\n.quit\nADD ELEMENT queue z\n")
	if !strings.Contains(out, "loaded "+path+": 1 elements") {
		t.Errorf("Expected load summary, got %q", out)
	}
	if _, err := other.Graph().FindElement("z"); err == nil {
		t.Error("Expected lines after .quit to be ignored")
	}
}
