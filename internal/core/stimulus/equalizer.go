// Package stimulus rescales a target object so its retinal (apparent)
// size matches a reference object seen from the headset, using the
// similar-triangles relation radius/distance = const.
package stimulus

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rigsync/rigsync/internal/core/observability/log"
	"github.com/rigsync/rigsync/internal/core/scene"
)

// Config describes the two spheres involved: the known radius of the
// reference object and the unscaled radius of the target.
type Config struct {
	ReferenceRadius float32 `yaml:"reference_radius"`
	OriginalRadius  float32 `yaml:"original_radius"`
}

// Equalizer applies the equal-retinal-size scale to the target while
// active and restores the target's original scale when deactivated.
type Equalizer struct {
	target    scene.Object
	reference scene.Object
	cfg       Config
	original  mgl32.Vec3
	active    bool
	inert     bool
}

func New(target, reference scene.Object, cfg Config, lg log.Log) *Equalizer {
	e := &Equalizer{target: target, reference: reference, cfg: cfg}
	if !scene.Require(target, "stimulus-target", lg) || !scene.Require(reference, "stimulus-reference", lg) {
		e.inert = true
		return e
	}
	e.original = target.Scale()
	return e
}

func (e *Equalizer) Active() bool {
	return e.active
}

// Toggle flips the equalizer; deactivation restores the stored
// original scale.
func (e *Equalizer) Toggle() {
	if e.active {
		e.Deactivate()
		return
	}
	e.active = true
}

func (e *Equalizer) Deactivate() {
	e.active = false
	if e.inert {
		return
	}
	e.target.SetScale(e.original)
}

// Update recomputes the target scale from the headset's world position.
// Degenerate distances skip the write and leave the previous scale in
// place.
func (e *Equalizer) Update(headWorldPos mgl32.Vec3) {
	if !e.active || e.inert {
		return
	}
	refDist := e.reference.Pose().Position.Sub(headWorldPos).Len()
	targetDist := e.target.Pose().Position.Sub(headWorldPos).Len()
	factor, ok := ScaleFactor(e.cfg.ReferenceRadius, refDist, targetDist, e.cfg.OriginalRadius)
	if !ok {
		return
	}
	e.target.SetScale(e.original.Mul(factor))
}

// ScaleFactor returns the uniform scale, relative to the target's
// original size, that makes a sphere of originalRadius at targetDist
// subtend the same visual angle as the reference sphere. Reports false
// for zero or negative distances and radii.
func ScaleFactor(refRadius, refDist, targetDist, originalRadius float32) (float32, bool) {
	if refDist <= 0 || targetDist <= 0 || originalRadius <= 0 {
		return 0, false
	}
	targetRadius := refRadius * targetDist / refDist
	return targetRadius / originalRadius, true
}
