package app

import (
	"errors"
	"testing"
	"time"

	"github.com/Faultbox/ragingsea/internal/engine/water"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type callLog struct {
	calls []string
	u     *water.Uniforms
	times []float32
}

func (l *callLog) Update() bool {
	l.calls = append(l.calls, "controls")
	return false
}

func (l *callLog) Draw() {
	l.calls = append(l.calls, "draw")
	l.times = append(l.times, l.u.Time)
}

func newTestLoop() (*Loop, *fakeClock, *callLog) {
	u := water.NewUniforms(water.DefaultParams(), water.DefaultLighting())
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	log := &callLog{u: u}
	return NewLoop(u, log, log, clock), clock, log
}

func TestStepBeforeStart(t *testing.T) {
	l, _, log := newTestLoop()

	if l.State() != StateIdle {
		t.Fatalf("state = %s, want idle", l.State())
	}
	if err := l.Step(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Step before Start err = %v, want ErrNotRunning", err)
	}
	if len(log.calls) != 0 {
		t.Errorf("idle Step should not touch controls or draw, got %v", log.calls)
	}
}

func TestStepWritesScaledTime(t *testing.T) {
	l, clock, log := newTestLoop()
	l.Start()
	if l.State() != StateRunning {
		t.Fatalf("state = %s, want running", l.State())
	}

	steps := []time.Duration{0, 500 * time.Millisecond, 2 * time.Second}
	want := []float32{0, 0.75, 3.75}
	for _, d := range steps {
		clock.advance(d)
		if err := l.Step(); err != nil {
			t.Fatal(err)
		}
	}

	for i := range want {
		if d := log.times[i] - want[i]; d > 1e-5 || d < -1e-5 {
			t.Errorf("step %d time = %v, want %v", i, log.times[i], want[i])
		}
	}
	if l.Frames() != 3 {
		t.Errorf("frames = %d, want 3", l.Frames())
	}
}

func TestStepOrder(t *testing.T) {
	l, _, log := newTestLoop()
	l.Start()
	l.Step()
	l.Step()

	want := []string{"controls", "draw", "controls", "draw"}
	if len(log.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", log.calls, want)
	}
	for i := range want {
		if log.calls[i] != want[i] {
			t.Errorf("calls = %v, want %v", log.calls, want)
			break
		}
	}
}

func TestStartIsIdempotent(t *testing.T) {
	l, clock, _ := newTestLoop()
	l.Start()
	clock.advance(time.Second)
	l.Start()

	if got := l.Elapsed(); got != time.Second {
		t.Errorf("elapsed after second Start = %v, want 1s", got)
	}
}

func TestCustomTimeScale(t *testing.T) {
	l, clock, log := newTestLoop()
	l.TimeScale = 1
	l.Start()
	clock.advance(2 * time.Second)
	l.Step()

	if log.u.Time != 2 {
		t.Errorf("time = %v, want 2", log.u.Time)
	}
}

func TestDrawFunc(t *testing.T) {
	called := false
	var d Drawer = DrawFunc(func() { called = true })
	d.Draw()
	if !called {
		t.Error("DrawFunc did not call through")
	}
}
