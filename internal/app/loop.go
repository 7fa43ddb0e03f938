package app

import (
	"errors"
	"time"

	"github.com/Faultbox/ragingsea/internal/engine/water"
)

// DefaultTimeScale speeds up the whole animation independently of the
// per-layer wave speeds.
const DefaultTimeScale = 1.5

// ErrNotRunning is returned by Step before Start.
var ErrNotRunning = errors.New("render loop not started")

// State is the render loop state.
type State int

const (
	// StateIdle is the state before Start.
	StateIdle State = iota
	// StateRunning is entered once and kept until the process exits.
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Clock reports wall-clock time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Controls advances camera damping by one step.
type Controls interface {
	Update() bool
}

// Drawer issues one draw of the scene.
type Drawer interface {
	Draw()
}

// DrawFunc adapts a function to Drawer.
type DrawFunc func()

// Draw calls f.
func (f DrawFunc) Draw() { f() }

// Loop is the per-frame step: time uniform, controls, draw. Steps never
// overlap; the caller invokes Step once per display refresh.
type Loop struct {
	TimeScale float32

	state    State
	clock    Clock
	start    time.Time
	frames   uint64
	uniforms *water.Uniforms
	controls Controls
	drawer   Drawer
}

// NewLoop creates an idle loop. A nil clock uses the system clock.
func NewLoop(u *water.Uniforms, controls Controls, drawer Drawer, clock Clock) *Loop {
	if clock == nil {
		clock = systemClock{}
	}
	return &Loop{
		TimeScale: DefaultTimeScale,
		state:     StateIdle,
		clock:     clock,
		uniforms:  u,
		controls:  controls,
		drawer:    drawer,
	}
}

// State returns the current state.
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of completed steps.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Start marks the start time and enters StateRunning. Later calls do
// nothing.
func (l *Loop) Start() {
	if l.state == StateRunning {
		return
	}
	l.start = l.clock.Now()
	l.state = StateRunning
}

// Elapsed returns wall-clock time since Start.
func (l *Loop) Elapsed() time.Duration {
	if l.state != StateRunning {
		return 0
	}
	return l.clock.Now().Sub(l.start)
}

// Step runs one frame.
func (l *Loop) Step() error {
	if l.state != StateRunning {
		return ErrNotRunning
	}

	elapsed := float32(l.Elapsed().Seconds())
	l.uniforms.Time = elapsed * l.TimeScale

	if l.controls != nil {
		l.controls.Update()
	}
	l.drawer.Draw()

	l.frames++
	return nil
}
