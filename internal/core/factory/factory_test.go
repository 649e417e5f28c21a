// If you are AI: This file contains unit tests for the element catalog.

package factory

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()

	root, ok := c.Get(RootFactory)
	if !ok {
		t.Fatal("Builtin catalog should contain the root factory")
	}
	if !root.Container {
		t.Error("Root factory should be a container")
	}

	tee, ok := c.Get("tee")
	if !ok {
		t.Fatal("Builtin catalog should contain tee")
	}
	tpl, ok := tee.Template("src_%u")
	if !ok {
		t.Fatal("tee should have a src_%u template")
	}
	if tpl.Presence != PresenceRequest || !tpl.IsPattern() {
		t.Errorf("Expected request pattern template, got %v pattern=%v", tpl.Presence, tpl.IsPattern())
	}
	if got := tpl.PadName(3); got != "src_3" {
		t.Errorf("Expected src_3, got %s", got)
	}

	names := c.Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names should be sorted, got %v", names)
		}
	}
}

func TestPropertyParse(t *testing.T) {
	freq := PropertySpec{Name: "freq", Type: TypeDouble, Default: "440", Min: 0, Max: 20000}

	v, err := freq.Parse("1000.5")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.Float() != 1000.5 || v.String() != "1000.5" {
		t.Errorf("Expected 1000.5, got %v (%s)", v.Float(), v.String())
	}

	if _, err := freq.Parse("30000"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Expected ErrInvalidValue for out of range, got %v", err)
	}
	if _, err := freq.Parse("abc"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Expected ErrInvalidValue for text, got %v", err)
	}

	count := PropertySpec{Name: "max", Type: TypeUint}
	if _, err := count.Parse("-1"); err == nil {
		t.Error("Negative value should not parse as uint")
	}
	v, err = count.Parse("42")
	if err != nil || v.Uint() != 42 {
		t.Errorf("Expected 42, got %v (%v)", v.Uint(), err)
	}

	wave := enumProp("wave", "sine", "square")
	if _, err := wave.Parse("triangle"); err == nil {
		t.Error("Unknown enum value should fail")
	}
	v, err = wave.Parse("square")
	if err != nil || v.String() != "square" {
		t.Errorf("Expected square, got %s (%v)", v.String(), err)
	}

	live := boolProp("is-live", "false")
	v, err = live.Parse("true")
	if err != nil || !v.Bool() {
		t.Errorf("Expected true, got %v (%v)", v.Bool(), err)
	}
}

func TestDefaultValue(t *testing.T) {
	spec := PropertySpec{Name: "bitrate", Type: TypeUint, Min: 1, Max: 100}
	v, err := spec.DefaultValue()
	if err != nil {
		t.Fatalf("DefaultValue failed: %v", err)
	}
	if v.Uint() != 1 {
		t.Errorf("Expected default to clamp to min 1, got %d", v.Uint())
	}

	bad := PropertySpec{Name: "x", Type: TypeInt, Default: "500", Min: 0, Max: 10}
	if err := bad.Validate(); err == nil {
		t.Error("Validate should reject a default outside the range")
	}
}

func TestCapsCompatible(t *testing.T) {
	anyCaps := PadTemplate{Caps: "ANY"}
	video := PadTemplate{Caps: "video/x-raw"}
	h264 := PadTemplate{Caps: "video/x-h264"}
	mux := PadTemplate{Caps: "video/x-h264; audio/mpeg"}

	if !CapsCompatible(anyCaps, video) {
		t.Error("ANY should be compatible with video/x-raw")
	}
	if CapsCompatible(video, h264) {
		t.Error("video/x-raw should not be compatible with video/x-h264")
	}
	if !CapsCompatible(h264, mux) {
		t.Error("video/x-h264 should be compatible with the muxer caps")
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"extra/tone.yaml": &fstest.MapFile{Data: []byte(`factories:
  - name: tonesrc
    description: Test tone
    templates:
      - name: src
        direction: src
        caps: audio/x-raw
    properties:
      - name: freq
        type: double
        default: "1000"
        min: 1
        max: 20000
`)},
		"notes.txt": &fstest.MapFile{Data: []byte("ignored")},
	}

	c := NewCatalog()
	files, err := LoadFS(c, fsys, DefaultPattern)
	if err != nil {
		t.Fatalf("LoadFS failed: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Expected 1 file loaded, got %d", len(files))
	}

	f, ok := c.Get("tonesrc")
	if !ok {
		t.Fatal("tonesrc should be registered")
	}
	tpl, _ := f.Template("src")
	if tpl.Direction != DirectionSrc || tpl.Presence != PresenceAlways {
		t.Errorf("Unexpected template %+v", tpl)
	}
	spec, ok := f.Property("freq")
	if !ok || spec.Type != TypeDouble {
		t.Errorf("Expected double freq property, got %+v", spec)
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode([]byte("factories:\n  - name: x\n    colour: red\n"))
	if err == nil {
		t.Error("Decode should reject unknown fields")
	}

	_, err = Decode([]byte("factories:\n  - name: x\n    templates:\n      - name: src\n        direction: up\n"))
	if err == nil {
		t.Error("Decode should reject an unknown direction")
	}
}
