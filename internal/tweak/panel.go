// Package tweak binds named knobs to live parameter fields. It is the
// contract a widget panel would drive: get and set by key, with range
// clamping, step snapping and change notification. The viewer drives it
// from the keyboard.
package tweak

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/ragingsea/internal/engine/water"
)

var (
	// ErrUnknownKey is returned for a key that was never added.
	ErrUnknownKey = errors.New("tweak: unknown key")
	// ErrKindMismatch is returned when a knob is read or written as the
	// wrong kind.
	ErrKindMismatch = errors.New("tweak: kind mismatch")
	// ErrDuplicateKey is returned when a key is added twice.
	ErrDuplicateKey = errors.New("tweak: duplicate key")
)

// Kind is the value type a knob holds.
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindColor:
		return "color"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Knob is one bound parameter.
type Knob struct {
	Key  string
	Kind Kind
	Min  float32
	Max  float32
	Step float32

	f *float32
	i *int
	c *water.Color

	listeners []func(*Knob)
}

// Value returns the knob value formatted for display.
func (k *Knob) Value() string {
	switch k.Kind {
	case KindInt:
		return fmt.Sprintf("%d", *k.i)
	case KindColor:
		return k.c.Hex()
	default:
		return fmt.Sprintf("%.3f", *k.f)
	}
}

func (k *Knob) String() string {
	return k.Key + " = " + k.Value()
}

// normalize clamps v to [Min, Max] and snaps it to the step grid anchored
// at Min.
func (k *Knob) normalize(v float32) float32 {
	if k.Step > 0 {
		n := math.Round(float64(v-k.Min) / float64(k.Step))
		v = k.Min + float32(n)*k.Step
	}
	return max(k.Min, min(k.Max, v))
}

func (k *Knob) notify() {
	for _, fn := range k.listeners {
		fn(k)
	}
}

// Panel is an ordered set of knobs with a selection cursor.
type Panel struct {
	knobs    []*Knob
	byKey    map[string]*Knob
	selected int
}

// NewPanel creates an empty panel.
func NewPanel() *Panel {
	return &Panel{byKey: make(map[string]*Knob)}
}

func (p *Panel) add(k *Knob) (*Knob, error) {
	if _, ok := p.byKey[k.Key]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, k.Key)
	}
	p.knobs = append(p.knobs, k)
	p.byKey[k.Key] = k
	return k, nil
}

// AddFloat binds ptr under key. The current value is left untouched until
// the first write.
func (p *Panel) AddFloat(key string, ptr *float32, lo, hi, step float32) (*Knob, error) {
	return p.add(&Knob{Key: key, Kind: KindFloat, Min: lo, Max: hi, Step: step, f: ptr})
}

// AddInt binds an integer field with a step of one.
func (p *Panel) AddInt(key string, ptr *int, lo, hi int) (*Knob, error) {
	return p.add(&Knob{Key: key, Kind: KindInt, Min: float32(lo), Max: float32(hi), Step: 1, i: ptr})
}

// AddColor binds a color field.
func (p *Panel) AddColor(key string, ptr *water.Color) (*Knob, error) {
	return p.add(&Knob{Key: key, Kind: KindColor, c: ptr})
}

// Knob returns the knob for key.
func (p *Panel) Knob(key string) (*Knob, error) {
	k, ok := p.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return k, nil
}

func (p *Panel) knobOf(key string, kind Kind) (*Knob, error) {
	k, err := p.Knob(key)
	if err != nil {
		return nil, err
	}
	if k.Kind != kind {
		return nil, fmt.Errorf("%w: %s is %s, not %s", ErrKindMismatch, key, k.Kind, kind)
	}
	return k, nil
}

// Keys returns knob keys in insertion order.
func (p *Panel) Keys() []string {
	keys := make([]string, len(p.knobs))
	for i, k := range p.knobs {
		keys[i] = k.Key
	}
	return keys
}

// Len returns the number of knobs.
func (p *Panel) Len() int {
	return len(p.knobs)
}

// Float returns a float knob value.
func (p *Panel) Float(key string) (float32, error) {
	k, err := p.knobOf(key, KindFloat)
	if err != nil {
		return 0, err
	}
	return *k.f, nil
}

// SetFloat stores v clamped and snapped, and notifies listeners if the
// stored value changed. It returns the stored value.
func (p *Panel) SetFloat(key string, v float32) (float32, error) {
	k, err := p.knobOf(key, KindFloat)
	if err != nil {
		return 0, err
	}
	v = k.normalize(v)
	if v != *k.f {
		*k.f = v
		k.notify()
	}
	return v, nil
}

// Int returns an int knob value.
func (p *Panel) Int(key string) (int, error) {
	k, err := p.knobOf(key, KindInt)
	if err != nil {
		return 0, err
	}
	return *k.i, nil
}

// SetInt stores v clamped to the knob range and returns the stored value.
func (p *Panel) SetInt(key string, v int) (int, error) {
	k, err := p.knobOf(key, KindInt)
	if err != nil {
		return 0, err
	}
	v = max(int(k.Min), min(int(k.Max), v))
	if v != *k.i {
		*k.i = v
		k.notify()
	}
	return v, nil
}

// Color returns a color knob value.
func (p *Panel) Color(key string) (water.Color, error) {
	k, err := p.knobOf(key, KindColor)
	if err != nil {
		return water.Color{}, err
	}
	return *k.c, nil
}

// SetColor stores c and notifies listeners if it changed.
func (p *Panel) SetColor(key string, c water.Color) error {
	k, err := p.knobOf(key, KindColor)
	if err != nil {
		return err
	}
	if c != *k.c {
		*k.c = c
		k.notify()
	}
	return nil
}

// OnChange registers fn to run after every change to key.
func (p *Panel) OnChange(key string, fn func(*Knob)) error {
	k, err := p.Knob(key)
	if err != nil {
		return err
	}
	k.listeners = append(k.listeners, fn)
	return nil
}

// OnAnyChange registers fn on every knob added so far.
func (p *Panel) OnAnyChange(fn func(*Knob)) {
	for _, k := range p.knobs {
		k.listeners = append(k.listeners, fn)
	}
}

// Selected returns the knob under the cursor, or nil for an empty panel.
func (p *Panel) Selected() *Knob {
	if len(p.knobs) == 0 {
		return nil
	}
	return p.knobs[p.selected]
}

// Next moves the cursor forward, wrapping around.
func (p *Panel) Next() *Knob {
	if len(p.knobs) == 0 {
		return nil
	}
	p.selected = (p.selected + 1) % len(p.knobs)
	return p.knobs[p.selected]
}

// Prev moves the cursor back, wrapping around.
func (p *Panel) Prev() *Knob {
	if len(p.knobs) == 0 {
		return nil
	}
	p.selected = (p.selected + len(p.knobs) - 1) % len(p.knobs)
	return p.knobs[p.selected]
}

// Nudge moves the selected knob by steps increments. Color knobs have no
// numeric step and return ErrKindMismatch.
func (p *Panel) Nudge(steps int) error {
	k := p.Selected()
	if k == nil {
		return nil
	}
	switch k.Kind {
	case KindFloat:
		_, err := p.SetFloat(k.Key, *k.f+float32(steps)*k.Step)
		return err
	case KindInt:
		_, err := p.SetInt(k.Key, *k.i+steps)
		return err
	default:
		return fmt.Errorf("%w: cannot nudge %s knob %s", ErrKindMismatch, k.Kind, k.Key)
	}
}
