// Package session ties the rig components together into the per-frame
// driver the host loop (or the bridge) calls once per rendered frame.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/rigsync/rigsync/internal/core/input"
	"github.com/rigsync/rigsync/internal/core/mirror"
	"github.com/rigsync/rigsync/internal/core/observability/log"
	"github.com/rigsync/rigsync/internal/core/pose"
	"github.com/rigsync/rigsync/internal/core/rig"
	"github.com/rigsync/rigsync/internal/core/scene"
	"github.com/rigsync/rigsync/internal/core/stimulus"
	"github.com/rigsync/rigsync/internal/core/tracking"
)

// Config carries the per-session component settings.
type Config struct {
	Mirror   mirror.Config   `yaml:"mirror"`
	Stimulus stimulus.Config `yaml:"stimulus"`
}

// DefaultConfig matches the stock scene: mirror target half a meter
// ahead, unit reference sphere.
func DefaultConfig() Config {
	return Config{
		Mirror:   mirror.Config{ForwardOffset: 0.5},
		Stimulus: stimulus.Config{ReferenceRadius: 1, OriginalRadius: 1},
	}
}

// Handles are the injected scene references a session operates on. Any
// of them may be nil; the owning feature then logs once and stays
// inert (the rig handle included, in which case root poses are still
// computed and returned but not applied anywhere).
type Handles struct {
	Rig            scene.Object
	MirrorTarget   scene.Object
	StimulusTarget scene.Object
	StimulusRef    scene.Object
}

// Frame is one frame of host input: held keys plus the tracking sample.
type Frame struct {
	Held   input.State
	Sample tracking.Sample
}

// Output is what the host applies after a step.
type Output struct {
	Root       pose.Pose
	MirrorMode mirror.Mode
	Actions    []input.Action
}

// Session owns one tracker and its satellite components. Steps are
// strictly sequential; a session must only be driven from one
// goroutine.
type Session struct {
	id       uuid.UUID
	tracker  *tracking.Tracker
	rig      *rig.Controller
	mirror   *mirror.Controller
	eq       *stimulus.Equalizer
	bindings *input.Bindings
	metrics  Metrics
	lg       log.Log
}

func New(cfg Config, handles Handles, lg log.Log) *Session {
	id := uuid.New()
	lg = lg.With(log.String("session", id.String()))
	return &Session{
		id:       id,
		tracker:  tracking.New(),
		rig:      rig.New(handles.Rig, lg),
		mirror:   mirror.New(handles.MirrorTarget, cfg.Mirror, lg),
		eq:       stimulus.New(handles.StimulusTarget, handles.StimulusRef, cfg.Stimulus, lg),
		bindings: input.DefaultBindings(),
		lg:       lg,
	}
}

// SetBindings replaces the key map, typically with one loaded from
// config.
func (s *Session) SetBindings(b *input.Bindings) {
	s.bindings = b
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Tracker() *tracking.Tracker {
	return s.tracker
}

// Step runs one frame: input edges are resolved and applied first, so
// a toggle and its first corrected pose land in the same frame, then
// the tracker advances and the side objects update.
func (s *Session) Step(f Frame) Output {
	start := time.Now()

	actions := s.bindings.Resolve(f.Held)
	for _, action := range actions {
		s.apply(action, f.Sample)
	}

	root := s.tracker.Advance(f.Sample)
	s.rig.Apply(root)
	s.mirror.Update(f.Sample)
	s.eq.Update(f.Sample.WorldPosition)

	s.metrics.recordFrame(time.Since(start))
	return Output{
		Root:       root,
		MirrorMode: s.mirror.Mode(),
		Actions:    actions,
	}
}

func (s *Session) apply(action input.Action, sample tracking.Sample) {
	switch action {
	case input.ActionToggleRotation:
		s.tracker.Toggle(tracking.AxisRotation, sample)
		s.metrics.recordToggle()
		s.lg.Debug("tracking toggled",
			log.String("axis", tracking.AxisRotation.String()),
			log.Bool("enabled", s.tracker.Enabled(tracking.AxisRotation)))
	case input.ActionTogglePosition:
		s.tracker.Toggle(tracking.AxisPosition, sample)
		s.metrics.recordToggle()
		s.lg.Debug("tracking toggled",
			log.String("axis", tracking.AxisPosition.String()),
			log.Bool("enabled", s.tracker.Enabled(tracking.AxisPosition)))
	case input.ActionFlip:
		s.rig.Flip()
		s.tracker.SetRoot(s.rig.Root())
	case input.ActionResetOrigin:
		s.rig.ResetToOrigin(sample)
		s.tracker.SetRoot(s.rig.Root())
	case input.ActionMirrorCycle:
		mode := s.mirror.Cycle()
		s.lg.Debug("mirror mode cycled", log.String("mode", mode.String()))
	case input.ActionEqualizerToggle:
		s.eq.Toggle()
		s.lg.Debug("equalizer toggled", log.Bool("active", s.eq.Active()))
	}
}

// Metrics returns a snapshot of this session's frame counters.
func (s *Session) Metrics() MetricsSnapshot {
	return s.metrics.Snapshot()
}
