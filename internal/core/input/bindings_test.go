package input

import (
	"strings"
	"testing"
)

func TestEdgeTriggering(t *testing.T) {
	b := DefaultBindings()

	fired := b.Resolve(State{"r": true})
	if len(fired) != 1 || fired[0] != ActionToggleRotation {
		t.Fatalf("first press: got %v", fired)
	}

	// Held across the next frame: no repeat.
	if fired := b.Resolve(State{"r": true}); len(fired) != 0 {
		t.Fatalf("held key re-fired: %v", fired)
	}

	// Released, then pressed again: fires again.
	if fired := b.Resolve(State{}); len(fired) != 0 {
		t.Fatalf("release fired: %v", fired)
	}
	if fired := b.Resolve(State{"r": true}); len(fired) != 1 {
		t.Fatalf("re-press did not fire: %v", fired)
	}
}

func TestResolveOrderIsStable(t *testing.T) {
	b := DefaultBindings()

	fired := b.Resolve(State{"r": true, "p": true, "f": true})
	want := []Action{ActionFlip, ActionTogglePosition, ActionToggleRotation}
	if len(fired) != len(want) {
		t.Fatalf("got %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("got %v, want %v", fired, want)
		}
	}
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	b := DefaultBindings()
	if fired := b.Resolve(State{"x": true}); len(fired) != 0 {
		t.Fatalf("unbound key fired: %v", fired)
	}
}

func TestLoadBindings(t *testing.T) {
	const doc = `
bindings:
  t: toggle-rotation
  y: mirror-cycle
`
	b, err := LoadBindings(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}

	fired := b.Resolve(State{"t": true, "y": true})
	want := []Action{ActionToggleRotation, ActionMirrorCycle}
	if len(fired) != len(want) || fired[0] != want[0] || fired[1] != want[1] {
		t.Fatalf("got %v, want %v", fired, want)
	}
}

func TestLoadBindingsRejectsUnknownAction(t *testing.T) {
	const doc = `
bindings:
  t: warp-home
`
	if _, err := LoadBindings(strings.NewReader(doc)); err == nil {
		t.Fatal("expected an error for an unknown action name")
	}
}

func TestActionNamesRoundTrip(t *testing.T) {
	for a, name := range actionNames {
		parsed, err := ParseAction(name)
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", name, err)
		}
		if parsed != a {
			t.Errorf("ParseAction(%q) = %v, want %v", name, parsed, a)
		}
	}
}
