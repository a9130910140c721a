// Package mirror drives a companion object that either matches the
// headset pose or faces back toward it.
package mirror

import (
	"github.com/rigsync/rigsync/internal/core/observability/log"
	"github.com/rigsync/rigsync/internal/core/pose"
	"github.com/rigsync/rigsync/internal/core/scene"
	"github.com/rigsync/rigsync/internal/core/tracking"
)

// Mode is the three-way mirror state, cycled by one input action.
type Mode uint8

const (
	ModeDisabled Mode = iota
	ModeMatching
	ModeMirroring
)

func (m Mode) String() string {
	switch m {
	case ModeMatching:
		return "matching"
	case ModeMirroring:
		return "mirroring"
	default:
		return "disabled"
	}
}

// Config holds the fixed forward-axis offset applied to the target
// position, in meters along the target's facing direction.
type Config struct {
	ForwardOffset float32 `yaml:"forward_offset"`
}

// Controller updates the target object from the current headset sample.
// It keeps no pose state of its own; the output is a pure function of
// the sample and the mode.
type Controller struct {
	target scene.Object
	cfg    Config
	mode   Mode
	inert  bool
}

func New(target scene.Object, cfg Config, lg log.Log) *Controller {
	c := &Controller{target: target, cfg: cfg}
	if !scene.Require(target, "mirror-target", lg) {
		c.inert = true
	}
	return c
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// Cycle steps Disabled -> Matching -> Mirroring -> Disabled.
func (c *Controller) Cycle() Mode {
	switch c.mode {
	case ModeDisabled:
		c.mode = ModeMatching
	case ModeMatching:
		c.mode = ModeMirroring
	default:
		c.mode = ModeDisabled
	}
	return c.mode
}

// Update recomputes and applies the target pose for this frame.
func (c *Controller) Update(s tracking.Sample) {
	if c.inert {
		return
	}
	p, ok := TargetPose(s, c.mode, c.cfg.ForwardOffset)
	if !ok {
		return
	}
	c.target.SetPose(p)
}

// TargetPose computes the pose the target should take for the given
// mode. Matching copies the headset pose; Mirroring adds a half-turn of
// yaw first so the target faces back toward the headset. Both push the
// position along the resulting facing direction by forwardOffset. The
// second return value is false when the mode leaves the target alone.
func TargetPose(s tracking.Sample, mode Mode, forwardOffset float32) (pose.Pose, bool) {
	var orientation = s.WorldRotation
	switch mode {
	case ModeMatching:
	case ModeMirroring:
		orientation = pose.YawQuat(180).Mul(s.WorldRotation).Normalize()
	default:
		return pose.Pose{}, false
	}
	offset := orientation.Rotate(pose.Forward).Mul(forwardOffset)
	return pose.Pose{
		Position:    s.WorldPosition.Add(offset),
		Orientation: orientation,
	}, true
}
