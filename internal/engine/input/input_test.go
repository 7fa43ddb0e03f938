package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{
			name:  "quit",
			event: &sdl.QuitEvent{Type: sdl.QUIT},
			want:  Event{Type: EventQuit},
			ok:    true,
		},
		{
			name:  "resize",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 1000},
			want:  Event{Type: EventWindowResize, Width: 800, Height: 1000},
			ok:    true,
		},
		{
			name:  "focus change ignored",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED},
			ok:    false,
		},
		{
			name: "key down with shift",
			event: &sdl.KeyboardEvent{
				Type:   sdl.KEYDOWN,
				Repeat: 1,
				Keysym: sdl.Keysym{Sym: sdl.K_UP, Mod: uint16(sdl.KMOD_LSHIFT)},
			},
			want: Event{Type: EventKeyDown, Key: sdl.K_UP, Mod: uint16(sdl.KMOD_LSHIFT), Repeat: true},
			ok:   true,
		},
		{
			name:  "key up",
			event: &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_F12}},
			want:  Event{Type: EventKeyUp, Key: sdl.K_F12},
			ok:    true,
		},
		{
			name:  "mouse move carries relative motion",
			event: &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 20, XRel: -3, YRel: 4},
			want:  Event{Type: EventMouseMove, MouseX: 10, MouseY: 20, DeltaX: -3, DeltaY: 4},
			ok:    true,
		},
		{
			name:  "right button down",
			event: &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT, X: 5, Y: 6},
			want:  Event{Type: EventMouseDown, Button: ButtonRight, MouseX: 5, MouseY: 6},
			ok:    true,
		},
		{
			name:  "wheel",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2, Direction: sdl.MOUSEWHEEL_NORMAL},
			want:  Event{Type: EventMouseWheel, Wheel: 2},
			ok:    true,
		},
		{
			name:  "flipped wheel",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2, Direction: sdl.MOUSEWHEEL_FLIPPED},
			want:  Event{Type: EventMouseWheel, Wheel: -2},
			ok:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("translate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestModifiers(t *testing.T) {
	e := Event{Mod: uint16(sdl.KMOD_RSHIFT)}
	if !e.Shift() || e.Ctrl() {
		t.Errorf("right shift: Shift=%v Ctrl=%v", e.Shift(), e.Ctrl())
	}
	e = Event{Mod: uint16(sdl.KMOD_LCTRL)}
	if e.Shift() || !e.Ctrl() {
		t.Errorf("left ctrl: Shift=%v Ctrl=%v", e.Shift(), e.Ctrl())
	}
	e = Event{Mod: uint16(sdl.KMOD_LGUI)}
	if !e.Ctrl() {
		t.Error("command key should count as ctrl")
	}
}
