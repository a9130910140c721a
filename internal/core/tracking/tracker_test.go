package tracking

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/rigsync/rigsync/internal/core/pose"
)

// sample builds a frame where the world position deliberately differs
// from the local position, so tests catch any mixup between the two
// reference frames.
func sample(yawDeg float32, local mgl32.Vec3) Sample {
	return Sample{
		WorldRotation: pose.YawQuat(yawDeg),
		WorldPosition: local.Add(mgl32.Vec3{5, 5, 5}),
		LocalPosition: local,
	}
}

func TestToggleOffOnWithoutMotionKeepsRoot(t *testing.T) {
	tr := New()
	s := sample(30, mgl32.Vec3{0.2, 1.6, 0})
	tr.Advance(s)
	before := tr.Root()

	tr.Toggle(AxisRotation, s)
	tr.Toggle(AxisRotation, s)
	tr.Toggle(AxisPosition, s)
	tr.Toggle(AxisPosition, s)
	after := tr.Advance(s)

	assert.True(t, before.ApproxEqual(after, 1e-5),
		"root moved from %v to %v across a no-motion off/on toggle", before, after)
}

func TestToggleOffOnKeepsRootAfterEarlierFreezes(t *testing.T) {
	tr := New()
	tr.Advance(sample(0, mgl32.Vec3{}))

	// Build up a non-trivial root through a freeze/resume cycle.
	s1 := sample(10, mgl32.Vec3{0.5, 0, 0})
	tr.Toggle(AxisRotation, s1)
	tr.Toggle(AxisPosition, s1)
	s2 := sample(80, mgl32.Vec3{1.5, 0, -2})
	tr.Advance(s2)
	tr.Toggle(AxisRotation, s2)
	tr.Toggle(AxisPosition, s2)
	tr.Advance(s2)
	before := tr.Root()

	tr.Toggle(AxisRotation, s2)
	tr.Toggle(AxisRotation, s2)
	after := tr.Advance(s2)

	assert.True(t, before.ApproxEqual(after, 1e-4),
		"root moved from %v to %v", before, after)
}

func TestDisabledAxisPinsApparentPose(t *testing.T) {
	tr := New()
	frozen := sample(25, mgl32.Vec3{1, 0, 0})
	tr.Advance(frozen)
	tr.Toggle(AxisRotation, frozen)
	tr.Toggle(AxisPosition, frozen)

	for _, yaw := range []float32{40, 90, 123, 300} {
		s := sample(yaw, mgl32.Vec3{yaw / 100, 0.5, -1})
		root := tr.Advance(s)

		apparentRot := root.Orientation.Mul(s.WorldRotation)
		assert.InDelta(t, 25, pose.Yaw(apparentRot), 1e-2,
			"apparent yaw drifted at head yaw %v", yaw)

		apparentPos := root.Position.Add(s.LocalPosition)
		assert.True(t, apparentPos.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5),
			"apparent position drifted to %v at head yaw %v", apparentPos, yaw)
	}
}

func TestResumeDeltaAppliedExactlyOnce(t *testing.T) {
	tr := New()
	s0 := sample(0, mgl32.Vec3{})
	tr.Advance(s0)
	tr.Toggle(AxisRotation, s0)
	tr.Toggle(AxisPosition, s0)

	s1 := sample(50, mgl32.Vec3{1, 0, 0})
	tr.Advance(s1)
	tr.Toggle(AxisRotation, s1)
	tr.Toggle(AxisPosition, s1)

	first := tr.Advance(s1)
	second := tr.Advance(s1)
	assert.True(t, first.ApproxEqual(second, 1e-5),
		"resume delta reapplied: %v then %v", first, second)

	// Live tracking after resume leaves the root alone.
	third := tr.Advance(sample(120, mgl32.Vec3{3, 1, 2}))
	assert.True(t, second.ApproxEqual(third, 1e-5),
		"root changed while both axes enabled: %v then %v", second, third)
}

func TestPositionFreezeCounteractsMovement(t *testing.T) {
	tr := New()
	s0 := sample(0, mgl32.Vec3{})
	tr.Advance(s0)
	tr.Toggle(AxisPosition, s0)

	root := tr.Advance(sample(0, mgl32.Vec3{1, 0, 0}))

	assert.True(t, root.Position.ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, 1e-6),
		"root position = %v, want (-1, 0, 0)", root.Position)
}

func TestPositionFreezeUsesLocalFrame(t *testing.T) {
	tr := New()
	s0 := sample(0, mgl32.Vec3{})
	tr.Advance(s0)
	tr.Toggle(AxisPosition, s0)

	// Only the world position moves; the local position holds still.
	moved := s0
	moved.WorldPosition = mgl32.Vec3{9, 9, 9}
	root := tr.Advance(moved)

	assert.True(t, root.Position.ApproxEqualThreshold(mgl32.Vec3{}, 1e-6),
		"world-position motion leaked into the frozen-position math: %v", root.Position)
}

func TestToggleReportsEnabledState(t *testing.T) {
	tr := New()
	s := sample(0, mgl32.Vec3{})

	assert.True(t, tr.Enabled(AxisRotation))
	assert.True(t, tr.Enabled(AxisPosition))

	tr.Toggle(AxisRotation, s)
	assert.False(t, tr.Enabled(AxisRotation))
	assert.True(t, tr.Enabled(AxisPosition))

	tr.Toggle(AxisRotation, s)
	assert.True(t, tr.Enabled(AxisRotation))
}

func TestFirstObservationSeedsFrozenValues(t *testing.T) {
	tr := New()

	// Toggle before any Advance: the toggle's own sample seeds the
	// frozen values, so the first disabled frame pins to it.
	s0 := sample(45, mgl32.Vec3{2, 0, 0})
	tr.Toggle(AxisPosition, s0)

	root := tr.Advance(sample(45, mgl32.Vec3{2.5, 0, 0}))
	assert.True(t, root.Position.ApproxEqualThreshold(mgl32.Vec3{-0.5, 0, 0}, 1e-6),
		"root position = %v", root.Position)
}
