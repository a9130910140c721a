// Package tracking implements the pose-offset tracker: the piece that
// lets the host freeze rotational or positional head tracking and
// resume it later without a visible jump.
package tracking

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rigsync/rigsync/internal/core/pose"
)

// Axis selects one of the two independently toggleable tracking axes.
type Axis uint8

const (
	AxisRotation Axis = iota
	AxisPosition
)

func (a Axis) String() string {
	switch a {
	case AxisRotation:
		return "rotation"
	case AxisPosition:
		return "position"
	default:
		return "unknown"
	}
}

// Sample is one frame of headset tracking data as reported by the host.
//
// Rotation math runs on the world-space orientation while position math
// runs on the rig-local position. Frozen-position offsets are anchored
// at the rig's own origin, so the two axes deliberately use different
// frames of reference.
type Sample struct {
	WorldRotation mgl32.Quat
	WorldPosition mgl32.Vec3
	LocalPosition mgl32.Vec3
}

// Tracker computes the rig root pose from a stream of per-frame
// samples. While an axis is disabled the root counter-moves every frame
// so the apparent pose stays pinned at the value frozen at disable
// time; on re-enable a one-shot resume delta folds the accumulated
// drift into the root exactly once.
//
// Single-threaded: the owning session calls Toggle and Advance from the
// frame loop only.
type Tracker struct {
	rotationEnabled bool
	positionEnabled bool

	frozenRotation mgl32.Quat
	frozenPosition mgl32.Vec3

	pendingRotation    mgl32.Quat
	pendingPosition    mgl32.Vec3
	hasPendingRotation bool
	hasPendingPosition bool

	root   pose.Pose
	seeded bool
}

// New returns a tracker with both axes live and an identity root pose.
// The first sample observed by Toggle or Advance seeds the frozen
// values.
func New() *Tracker {
	return &Tracker{
		rotationEnabled: true,
		positionEnabled: true,
		frozenRotation:  mgl32.QuatIdent(),
		pendingRotation: mgl32.QuatIdent(),
		root:            pose.Identity(),
	}
}

// Enabled reports whether the axis is currently tracking.
func (t *Tracker) Enabled(axis Axis) bool {
	if axis == AxisRotation {
		return t.rotationEnabled
	}
	return t.positionEnabled
}

// Root returns the last computed root pose.
func (t *Tracker) Root() pose.Pose {
	return t.root
}

// SetRoot overrides the root pose. Used when a one-shot rig transform
// (flip, reset-to-origin) adjusts the rig outside the tracker, so the
// next Advance carries the adjusted pose forward instead of the stale
// one.
func (t *Tracker) SetRoot(p pose.Pose) {
	t.root = p
}

// Toggle flips tracking for one axis against the current frame's
// sample. Disabling captures the sample component as the frozen value;
// enabling stores a one-shot resume delta that the next Advance folds
// into the root and then clears.
func (t *Tracker) Toggle(axis Axis, s Sample) {
	t.seed(s)

	switch axis {
	case AxisRotation:
		if t.rotationEnabled {
			t.frozenRotation = s.WorldRotation
		} else {
			t.pendingRotation = pose.RotationDelta(t.frozenRotation, s.WorldRotation)
			t.hasPendingRotation = true
		}
		t.rotationEnabled = !t.rotationEnabled
	case AxisPosition:
		if t.positionEnabled {
			t.frozenPosition = s.LocalPosition
		} else {
			t.pendingPosition = t.frozenPosition.Sub(s.LocalPosition)
			t.hasPendingPosition = true
		}
		t.positionEnabled = !t.positionEnabled
	}
}

// Advance consumes one frame's sample and returns the root pose the
// host should apply to the rig. Toggles for the same frame must be
// processed before Advance.
func (t *Tracker) Advance(s Sample) pose.Pose {
	t.seed(s)

	switch {
	case !t.rotationEnabled:
		// Counter-rotate against the live head rotation every frame so
		// the apparent rotation stays pinned at the frozen value.
		t.root.Orientation = pose.RotationDelta(t.frozenRotation, s.WorldRotation)
	case t.hasPendingRotation:
		t.root.Orientation = t.pendingRotation.Mul(t.root.Orientation).Normalize()
		t.pendingRotation = mgl32.QuatIdent()
		t.hasPendingRotation = false
	}

	switch {
	case !t.positionEnabled:
		t.root.Position = t.frozenPosition.Sub(s.LocalPosition)
	case t.hasPendingPosition:
		t.root.Position = t.root.Position.Add(t.pendingPosition)
		t.pendingPosition = mgl32.Vec3{}
		t.hasPendingPosition = false
	}

	return t.root
}

func (t *Tracker) seed(s Sample) {
	if t.seeded {
		return
	}
	t.frozenRotation = s.WorldRotation
	t.frozenPosition = s.LocalPosition
	t.seeded = true
}
