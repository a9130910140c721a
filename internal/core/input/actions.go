package input

import "fmt"

// Action is a discrete command resolved from an edge-triggered key
// press.
type Action uint8

const (
	ActionToggleRotation Action = iota
	ActionTogglePosition
	ActionFlip
	ActionResetOrigin
	ActionMirrorCycle
	ActionEqualizerToggle
)

var actionNames = map[Action]string{
	ActionToggleRotation:  "toggle-rotation",
	ActionTogglePosition:  "toggle-position",
	ActionFlip:            "flip",
	ActionResetOrigin:     "reset-origin",
	ActionMirrorCycle:     "mirror-cycle",
	ActionEqualizerToggle: "equalizer-toggle",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction resolves the config spelling of an action.
func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}
