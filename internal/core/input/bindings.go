// Package input resolves discrete actions from per-frame key state.
// Actions are edge-triggered: a key fires once on its press transition
// and not again until it has been released.
package input

import (
	"io"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// State is the set of keys held down during the current frame, by key
// name. Keys absent from the map count as released.
type State map[string]bool

// Bindings maps key names onto actions and remembers the previous
// frame's key state for edge detection.
type Bindings struct {
	keys map[string]Action
	// sorted key names, so Resolve emits actions in a stable order
	order []string
	prev  map[string]bool
}

// DefaultBindings returns the stock key map.
func DefaultBindings() *Bindings {
	return newBindings(map[string]Action{
		"r": ActionToggleRotation,
		"p": ActionTogglePosition,
		"f": ActionFlip,
		"o": ActionResetOrigin,
		"m": ActionMirrorCycle,
		"e": ActionEqualizerToggle,
	})
}

func newBindings(keys map[string]Action) *Bindings {
	order := make([]string, 0, len(keys))
	for k := range keys {
		order = append(order, k)
	}
	sort.Strings(order)
	return &Bindings{keys: keys, order: order, prev: make(map[string]bool)}
}

// bindingsFile is the YAML shape: a flat key -> action-name map.
type bindingsFile struct {
	Bindings map[string]string `yaml:"bindings"`
}

// LoadBindings reads a key map from YAML.
func LoadBindings(r io.Reader) (*Bindings, error) {
	var f bindingsFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decode bindings")
	}
	keys := make(map[string]Action, len(f.Bindings))
	for key, name := range f.Bindings {
		action, err := ParseAction(name)
		if err != nil {
			return nil, errors.Wrapf(err, "binding for key %q", key)
		}
		keys[key] = action
	}
	return newBindings(keys), nil
}

// Resolve returns the actions whose keys transitioned from released to
// held this frame, in stable (sorted-key) order, and records the state
// for the next frame.
func (b *Bindings) Resolve(held State) []Action {
	var fired []Action
	for _, key := range b.order {
		if held[key] && !b.prev[key] {
			fired = append(fired, b.keys[key])
		}
	}
	next := make(map[string]bool, len(b.order))
	for _, key := range b.order {
		next[key] = held[key]
	}
	b.prev = next
	return fired
}
