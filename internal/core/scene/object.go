// Package scene defines the object handles the host injects at
// construction time. Components never resolve scene objects by name;
// they receive handles directly and degrade to no-ops when a required
// handle is absent.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rigsync/rigsync/internal/core/observability/log"
	"github.com/rigsync/rigsync/internal/core/pose"
)

// Object is a writable handle onto a host scene object. Implementations
// are expected to be owned by a single session and are not safe for
// concurrent use.
type Object interface {
	Name() string
	Pose() pose.Pose
	SetPose(pose.Pose)
	Scale() mgl32.Vec3
	SetScale(mgl32.Vec3)
}

// SimObject is an in-memory Object used by the bridge server and tests.
type SimObject struct {
	name  string
	pose  pose.Pose
	scale mgl32.Vec3
}

var _ Object = (*SimObject)(nil)

func NewSimObject(name string) *SimObject {
	return &SimObject{
		name:  name,
		pose:  pose.Identity(),
		scale: mgl32.Vec3{1, 1, 1},
	}
}

func (o *SimObject) Name() string          { return o.name }
func (o *SimObject) Pose() pose.Pose       { return o.pose }
func (o *SimObject) SetPose(p pose.Pose)   { o.pose = p }
func (o *SimObject) Scale() mgl32.Vec3     { return o.scale }
func (o *SimObject) SetScale(s mgl32.Vec3) { o.scale = s }

// Require implements the missing-reference policy: a nil handle is
// reported once and the caller is expected to stay inert afterwards.
// Returns false when the handle is absent.
func Require(obj Object, role string, lg log.Log) bool {
	if obj != nil {
		return true
	}
	lg.Warn("scene object missing, feature disabled", log.String("role", role))
	return false
}
