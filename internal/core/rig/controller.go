// Package rig owns the movable root transform of the tracked space.
package rig

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rigsync/rigsync/internal/core/observability/log"
	"github.com/rigsync/rigsync/internal/core/pose"
	"github.com/rigsync/rigsync/internal/core/scene"
	"github.com/rigsync/rigsync/internal/core/tracking"
)

// Controller applies computed root poses to the rig handle and hosts
// the one-shot rig transforms (flip, reset-to-origin).
type Controller struct {
	obj   scene.Object
	lg    log.Log
	root  pose.Pose
	inert bool
}

func New(obj scene.Object, lg log.Log) *Controller {
	c := &Controller{obj: obj, lg: lg, root: pose.Identity()}
	if !scene.Require(obj, "rig", lg) {
		c.inert = true
	}
	return c
}

// Root returns the root pose last applied.
func (c *Controller) Root() pose.Pose {
	return c.root
}

// Apply writes the root pose onto the rig handle.
func (c *Controller) Apply(root pose.Pose) {
	c.root = root
	if c.inert {
		return
	}
	c.obj.SetPose(root)
}

// Flip appends a half-turn about the rig's local vertical axis.
// Applying it twice restores the original facing.
func (c *Controller) Flip() {
	half := mgl32.QuatRotate(float32(math.Pi), pose.Up)
	c.root.Orientation = c.root.Orientation.Mul(half).Normalize()
	c.Apply(c.root)
}

// ResetToOrigin moves the rig so the headset lands at the world origin:
// the root position becomes the negation of the headset's rig-local
// position.
func (c *Controller) ResetToOrigin(s tracking.Sample) {
	c.root.Position = s.LocalPosition.Mul(-1)
	c.Apply(c.root)
}
