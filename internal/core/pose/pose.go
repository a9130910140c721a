package pose

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Up is the world vertical axis. Yaw is rotation about this axis.
var Up = mgl32.Vec3{0, 1, 0}

// Forward is the neutral facing direction before any rotation is applied.
var Forward = mgl32.Vec3{0, 0, 1}

// Pose is a rigid transform in world space: a position and a unit
// orientation quaternion. Values are immutable per-frame snapshots;
// all operations return new poses.
type Pose struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

// Identity returns the zero position with no rotation.
func Identity() Pose {
	return Pose{Orientation: mgl32.QuatIdent()}
}

func (p Pose) String() string {
	return fmt.Sprintf("Pose{pos=(%.3f, %.3f, %.3f) yaw=%.1f}",
		p.Position.X(), p.Position.Y(), p.Position.Z(), Yaw(p.Orientation))
}

// ApproxEqual reports whether two poses describe the same transform
// within eps. Orientations are compared as rotations, so q and -q
// are considered equal.
func (p Pose) ApproxEqual(o Pose, eps float32) bool {
	if !p.Position.ApproxEqualThreshold(o.Position, eps) {
		return false
	}
	dot := p.Orientation.Dot(o.Orientation)
	return float32(math.Abs(float64(dot))) >= 1-eps
}

// RotationDelta returns the rotation that carries current onto target,
// i.e. target = RotationDelta(target, current) * current.
func RotationDelta(target, current mgl32.Quat) mgl32.Quat {
	return target.Mul(current.Inverse()).Normalize()
}

// Yaw extracts the rotation about Up in degrees, normalized to [0, 360).
func Yaw(q mgl32.Quat) float32 {
	siny := 2 * (q.W*q.Y() + q.Z()*q.X())
	cosy := 1 - 2*(q.Y()*q.Y()+q.Z()*q.Z())
	deg := mgl32.RadToDeg(float32(math.Atan2(float64(siny), float64(cosy))))
	return NormalizeDegrees(deg)
}

// YawQuat builds a pure yaw rotation from degrees.
func YawQuat(deg float32) mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(deg), Up)
}

// NormalizeDegrees maps an angle onto [0, 360).
func NormalizeDegrees(deg float32) float32 {
	m := float32(math.Mod(float64(deg), 360))
	if m < 0 {
		m += 360
	}
	return m
}
