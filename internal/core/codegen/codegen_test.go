// If you are AI: This file contains unit tests for launch and Go code generation.

package codegen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"gsteditor/internal/core/command"
	"gsteditor/internal/core/factory"
	"gsteditor/internal/core/graph"
)

func build(t *testing.T, lines ...string) *graph.Graph {
	t.Helper()
	g := graph.New(factory.Builtin())
	for _, line := range lines {
		c, err := command.Parse(line)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", line, err)
		}
		if _, err := c.Execute(g, nil); err != nil {
			t.Fatalf("Execute(%q) failed: %v", line, err)
		}
	}
	return g
}

func sample(t *testing.T) *graph.Graph {
	return build(t,
		"ADD ELEMENT videotestsrc src",
		"SET src pattern ball",
		"SET src num-buffers 100",
		"ADD ELEMENT bin enc",
		"ADD ELEMENT x264enc h264 TO enc",
		"ADD ELEMENT tee split",
		"ADD PAD TO split USING src_%u",
		"ADD ELEMENT filesink out",
		`SET out location "/tmp/out file.h264"`,
		"CONNECT src:src TO split:sink",
		"CONNECT split:src_0 TO enc:h264:sink",
		"CONNECT enc:h264:src TO out:sink",
	)
}

func TestLaunch(t *testing.T) {
	got := Launch(sample(t))
	expected := `videotestsrc name=src pattern=ball num-buffers=100  ` +
		`bin name=enc ( x264enc name=h264 )  ` +
		`tee name=split  ` +
		`filesink name=out location="/tmp/out file.h264"  ` +
		`src.src ! split.sink  h264.src ! out.sink  split.src_0 ! h264.sink`
	if got != expected {
		t.Errorf("Expected\n%s\ngot\n%s", expected, got)
	}
}

func TestLaunchEmpty(t *testing.T) {
	if got := Launch(build(t)); got != "" {
		t.Errorf("Expected empty description, got %q", got)
	}
}

func TestGoProgram(t *testing.T) {
	src, err := Go(sample(t), Options{})
	if err != nil {
		t.Fatalf("Go failed: %v", err)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "main.go", src, 0); err != nil {
		t.Fatalf("Generated code does not parse: %v\n%s", err, src)
	}

	code := string(src)
	for _, want := range []string{
		"package main",
		`gst.NewPipeline("pipeline")`,
		`src, err := gst.NewElementWithName("videotestsrc", "src")`,
		`src.SetArg("pattern", "ball")`,
		`src.SetProperty("num-buffers", int(100))`,
		`encBin := gst.ToGstBin(enc)`,
		`encBin.Add(encH264)`,
		`out.SetProperty("location", "/tmp/out file.h264")`,
		`split.GetRequestPad("src_0").Link(encH264.GetStaticPad("sink"))`,
		"func main() {",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("Expected generated code to contain %s\n%s", want, code)
		}
	}
}

func TestGoLibrary(t *testing.T) {
	g := build(t,
		"ADD ELEMENT decodebin dec",
		"ADD PAD TO dec USING src_%u",
		"ADD ELEMENT fakesink sink",
		"CONNECT dec:src_0 TO sink:sink",
	)
	src, err := Go(g, Options{Package: "pipelines", Pipeline: "player"})
	if err != nil {
		t.Fatalf("Go failed: %v", err)
	}
	code := string(src)
	if strings.Contains(code, "func main()") {
		t.Error("Expected no main function for a library package")
	}
	if !strings.Contains(code, `dec.Connect("pad-added"`) {
		t.Errorf("Expected pad-added handler for a sometimes pad\n%s", code)
	}
	if !strings.Contains(code, `gst.NewPipeline("player")`) {
		t.Errorf("Expected pipeline name player\n%s", code)
	}

	if _, err := Go(g, Options{Package: "not a package"}); err == nil {
		t.Error("Expected error for invalid package name")
	}
}

func TestIdentifier(t *testing.T) {
	used := map[string]bool{}
	tests := []struct {
		path     string
		expected string
	}{
		{"enc:h264", "encH264"},
		{"Queue", "queue"},
		{"my-src", "mySrc"},
		{"0sink", "el0sink"},
		{"type", "typeEl"},
		{"pipeline", "pipelineEl"},
		{"enc:h264", "encH2642"},
	}
	for _, tt := range tests {
		if got := identifier(tt.path, used); got != tt.expected {
			t.Errorf("identifier(%q): expected %s, got %s", tt.path, tt.expected, got)
		}
	}
}
