package pose

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestYawRoundTrip(t *testing.T) {
	for _, deg := range []float32{0, 45, 90, 179, 180, 210, 300, 359} {
		got := Yaw(YawQuat(deg))
		if !scalar.EqualWithinAbs(float64(got), float64(deg), 1e-3) {
			t.Errorf("Yaw(YawQuat(%v)) = %v", deg, got)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	cases := map[float32]float32{
		-90:  270,
		0:    0,
		360:  0,
		540:  180,
		-540: 180,
	}
	for in, want := range cases {
		if got := NormalizeDegrees(in); !scalar.EqualWithinAbs(float64(got), float64(want), 1e-4) {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestRotationDeltaCarriesCurrentOntoTarget(t *testing.T) {
	current := YawQuat(40)
	target := YawQuat(300)

	delta := RotationDelta(target, current)
	got := delta.Mul(current)

	if !scalar.EqualWithinAbs(float64(Yaw(got)), 300, 1e-3) {
		t.Errorf("delta*current yields yaw %v, want 300", Yaw(got))
	}
}

func TestApproxEqualTreatsNegatedQuaternionAsSameRotation(t *testing.T) {
	p := Pose{Position: mgl32.Vec3{1, 2, 3}, Orientation: YawQuat(75)}
	q := p
	q.Orientation = mgl32.Quat{W: -p.Orientation.W, V: p.Orientation.V.Mul(-1)}

	if !p.ApproxEqual(q, 1e-5) {
		t.Error("q and -q should compare equal as rotations")
	}

	q.Position = mgl32.Vec3{1, 2, 3.1}
	if p.ApproxEqual(q, 1e-5) {
		t.Error("poses with different positions should not compare equal")
	}
}
