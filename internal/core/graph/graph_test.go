// If you are AI: This file contains unit tests for the pipeline graph.

package graph

import (
	"errors"
	"fmt"
	"testing"

	"gsteditor/internal/core/factory"
)

// recorder collects listener events as "<event> <pad path>" lines.
type recorder struct {
	events []string
}

func (r *recorder) PadAdded(p PadInfo)    { r.events = append(r.events, "added "+p.Path) }
func (r *recorder) PadRemoved(p PadInfo)  { r.events = append(r.events, "removed "+p.Path) }
func (r *recorder) PadLinked(p PadInfo)   { r.events = append(r.events, fmt.Sprintf("linked %s %s", p.Path, p.Peer)) }
func (r *recorder) PadUnlinked(p PadInfo) { r.events = append(r.events, fmt.Sprintf("unlinked %s %s", p.Path, p.Peer)) }

func newGraph(t *testing.T) *Graph {
	t.Helper()
	return New(factory.Builtin())
}

func mustElement(t *testing.T, g *Graph, parent NodeID, f, name string, l Listener) NodeID {
	t.Helper()
	id, err := g.AddElement(parent, f, name, l)
	if err != nil {
		t.Fatalf("AddElement(%s, %s) failed: %v", f, name, err)
	}
	return id
}

func mustPad(t *testing.T, g *Graph, path string) PadID {
	t.Helper()
	id, err := g.FindPad(path)
	if err != nil {
		t.Fatalf("FindPad(%s) failed: %v", path, err)
	}
	return id
}

func TestAddElementAnnouncesAlwaysPads(t *testing.T) {
	g := newGraph(t)
	rec := &recorder{}
	mustElement(t, g, g.Root(), "identity", "id", rec)

	expected := []string{"added id:sink", "added id:src"}
	if fmt.Sprint(rec.events) != fmt.Sprint(expected) {
		t.Errorf("Expected events %v, got %v", expected, rec.events)
	}
}

func TestAddElementNames(t *testing.T) {
	g := newGraph(t)
	first := mustElement(t, g, g.Root(), "queue", "", nil)
	second := mustElement(t, g, g.Root(), "queue", "", nil)

	if g.Path(first) != "queue0" || g.Path(second) != "queue1" {
		t.Errorf("Expected queue0 and queue1, got %s and %s", g.Path(first), g.Path(second))
	}

	if _, err := g.AddElement(g.Root(), "queue", "queue0", nil); !errors.Is(err, ErrNameTaken) {
		t.Errorf("Expected ErrNameTaken, got %v", err)
	}
	if _, err := g.AddElement(g.Root(), "queue", "a:b", nil); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName, got %v", err)
	}
	if _, err := g.AddElement(g.Root(), "nosuch", "", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := g.AddElement(first, "queue", "", nil); !errors.Is(err, ErrNotContainer) {
		t.Errorf("Expected ErrNotContainer, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	g := newGraph(t)
	bin := mustElement(t, g, g.Root(), "bin", "b", nil)
	q := mustElement(t, g, bin, "queue", "q", nil)

	ref, err := g.Lookup("b:q")
	if err != nil || ref.Kind != RefElement || ref.Node != q {
		t.Errorf("Expected element %d, got %+v (%v)", q, ref, err)
	}

	ref, err = g.Lookup("b:q:src")
	if err != nil || ref.Kind != RefPad {
		t.Fatalf("Expected pad reference, got %+v (%v)", ref, err)
	}
	if g.PadPath(ref.Pad) != "b:q:src" {
		t.Errorf("Expected b:q:src, got %s", g.PadPath(ref.Pad))
	}

	if ref, _ := g.Lookup(""); ref.Node != g.Root() {
		t.Errorf("Expected root for empty path, got %+v", ref)
	}
	if _, err := g.Lookup("b:q:src:x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := g.FindPad("b:q"); !errors.Is(err, ErrWrongKind) {
		t.Errorf("Expected ErrWrongKind, got %v", err)
	}
	if _, err := g.FindElement("b:q:sink"); !errors.Is(err, ErrWrongKind) {
		t.Errorf("Expected ErrWrongKind, got %v", err)
	}
	if _, err := g.FindContainer("b:q"); !errors.Is(err, ErrNotContainer) {
		t.Errorf("Expected ErrNotContainer, got %v", err)
	}
}

func TestLinkSymmetry(t *testing.T) {
	g := newGraph(t)
	mustElement(t, g, g.Root(), "fakesrc", "src", nil)
	mustElement(t, g, g.Root(), "fakesink", "sink", nil)
	a := mustPad(t, g, "src:src")
	b := mustPad(t, g, "sink:sink")

	if err := g.Link(a, b); err != nil {
		t.Fatalf("Link failed: %v", err)
	}

	pa, _ := g.Pad(a)
	pb, _ := g.Pad(b)
	if pa.Peer() != b || pb.Peer() != a {
		t.Errorf("Expected symmetric link, got %d->%d and %d->%d", a, pa.Peer(), b, pb.Peer())
	}

	if err := g.Link(a, b); !errors.Is(err, ErrAlreadyLinked) {
		t.Errorf("Expected ErrAlreadyLinked, got %v", err)
	}

	if err := g.Unlink(b); err != nil {
		t.Fatalf("Unlink failed: %v", err)
	}
	if pa.IsLinked() || pb.IsLinked() {
		t.Error("Expected both pads unlinked")
	}
	if err := g.Unlink(a); !errors.Is(err, ErrNotLinked) {
		t.Errorf("Expected ErrNotLinked, got %v", err)
	}
}

func TestLinkValidation(t *testing.T) {
	g := newGraph(t)
	mustElement(t, g, g.Root(), "videotestsrc", "v", nil)
	mustElement(t, g, g.Root(), "autoaudiosink", "a", nil)
	mustElement(t, g, g.Root(), "identity", "i", nil)

	if err := g.Link(mustPad(t, g, "v:src"), mustPad(t, g, "a:sink")); !errors.Is(err, ErrIncompatible) {
		t.Errorf("Expected ErrIncompatible, got %v", err)
	}
	if err := g.Link(mustPad(t, g, "i:sink"), mustPad(t, g, "v:src")); !errors.Is(err, ErrDirection) {
		t.Errorf("Expected ErrDirection, got %v", err)
	}
	if err := g.Link(mustPad(t, g, "i:src"), mustPad(t, g, "i:sink")); !errors.Is(err, ErrDirection) {
		t.Errorf("Expected ErrDirection for same element, got %v", err)
	}
}

func TestUnlinkNotifiesEachSide(t *testing.T) {
	g := newGraph(t)
	left, right := &recorder{}, &recorder{}
	mustElement(t, g, g.Root(), "fakesrc", "s", left)
	mustElement(t, g, g.Root(), "fakesink", "k", right)
	a, b := mustPad(t, g, "s:src"), mustPad(t, g, "k:sink")
	if err := g.Link(a, b); err != nil {
		t.Fatalf("Link failed: %v", err)
	}
	left.events, right.events = nil, nil

	if err := g.Unlink(a); err != nil {
		t.Fatalf("Unlink failed: %v", err)
	}

	if fmt.Sprint(left.events) != "[unlinked s:src k:sink]" {
		t.Errorf("Expected source side event, got %v", left.events)
	}
	if fmt.Sprint(right.events) != "[unlinked k:sink s:src]" {
		t.Errorf("Expected sink side event, got %v", right.events)
	}
}

func TestRelink(t *testing.T) {
	g := newGraph(t)
	mustElement(t, g, g.Root(), "fakesrc", "s", nil)
	mustElement(t, g, g.Root(), "fakesink", "k1", nil)
	mustElement(t, g, g.Root(), "fakesink", "k2", nil)
	mustElement(t, g, g.Root(), "videotestsrc", "v", nil)
	mustElement(t, g, g.Root(), "autoaudiosink", "a", nil)
	src, k1, k2 := mustPad(t, g, "s:src"), mustPad(t, g, "k1:sink"), mustPad(t, g, "k2:sink")

	if err := g.Link(src, k1); err != nil {
		t.Fatalf("Link failed: %v", err)
	}
	if err := g.Relink(src, k2); err != nil {
		t.Fatalf("Relink failed: %v", err)
	}
	if p, _ := g.Pad(src); p.Peer() != k2 {
		t.Errorf("Expected peer %d, got %d", k2, p.Peer())
	}
	if p, _ := g.Pad(k1); p.IsLinked() {
		t.Error("Expected k1:sink unlinked")
	}

	// A failed relink leaves existing links alone.
	v := mustPad(t, g, "v:src")
	if err := g.Link(v, k1); err != nil {
		t.Fatalf("Link failed: %v", err)
	}
	if err := g.Relink(v, mustPad(t, g, "a:sink")); !errors.Is(err, ErrIncompatible) {
		t.Errorf("Expected ErrIncompatible, got %v", err)
	}
	if p, _ := g.Pad(v); p.Peer() != k1 {
		t.Error("Expected v:src to stay linked to k1:sink")
	}
}
