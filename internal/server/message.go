package server

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rigsync/rigsync/internal/core/input"
	"github.com/rigsync/rigsync/internal/core/tracking"
	"github.com/rigsync/rigsync/internal/session"
)

// frameMessage is one inbound frame from the host: the keys held this
// frame plus the tracking sample. Quaternions are wire-ordered w,x,y,z.
type frameMessage struct {
	Keys          []string   `json:"keys,omitempty"`
	Rotation      [4]float32 `json:"rotation"`
	Position      [3]float32 `json:"position"`
	LocalPosition [3]float32 `json:"local_position"`
}

func (m frameMessage) frame() session.Frame {
	held := make(input.State, len(m.Keys))
	for _, k := range m.Keys {
		held[k] = true
	}
	return session.Frame{
		Held: held,
		Sample: tracking.Sample{
			WorldRotation: mgl32.Quat{
				W: m.Rotation[0],
				V: mgl32.Vec3{m.Rotation[1], m.Rotation[2], m.Rotation[3]},
			},
			WorldPosition: mgl32.Vec3{m.Position[0], m.Position[1], m.Position[2]},
			LocalPosition: mgl32.Vec3{m.LocalPosition[0], m.LocalPosition[1], m.LocalPosition[2]},
		},
	}
}

// poseMessage is the outbound root pose plus side-channel state.
type poseMessage struct {
	Rotation   [4]float32 `json:"rotation"`
	Position   [3]float32 `json:"position"`
	MirrorMode string     `json:"mirror_mode"`
	Actions    []string   `json:"actions,omitempty"`
}

func encodeOutput(out session.Output) poseMessage {
	msg := poseMessage{
		Rotation: [4]float32{
			out.Root.Orientation.W,
			out.Root.Orientation.X(),
			out.Root.Orientation.Y(),
			out.Root.Orientation.Z(),
		},
		Position: [3]float32{
			out.Root.Position.X(),
			out.Root.Position.Y(),
			out.Root.Position.Z(),
		},
		MirrorMode: out.MirrorMode.String(),
	}
	for _, a := range out.Actions {
		msg.Actions = append(msg.Actions, a.String())
	}
	return msg
}
