// Package bake renders the water surface on the CPU, seen from straight
// above, using the same wave and color math as the shaders.
package bake

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/Faultbox/ragingsea/internal/engine/water"
)

// Mode selects what a pixel encodes.
type Mode string

const (
	// ModeColor writes the shaded surface color.
	ModeColor Mode = "color"
	// ModeHeight writes elevation as grey levels.
	ModeHeight Mode = "height"
)

// ParseMode validates a mode name. Empty means color.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeColor:
		return ModeColor, nil
	case ModeHeight:
		return ModeHeight, nil
	default:
		return "", fmt.Errorf("unknown bake mode %q", s)
	}
}

// Options describe one bake.
type Options struct {
	Width, Height int
	// Size is the world extent covered by the image along each axis,
	// centered on the origin.
	Size     float32
	Time     float32
	Mode     Mode
	Params   water.Params
	Lighting water.Lighting
}

// Sample is the surface at one point.
type Sample struct {
	X, Z      float32
	Elevation float32
	Normal    [3]float32
	Color     water.Color
}

// At samples the surface at (x, z).
func At(p *water.Params, l water.Lighting, x, z, t float32) Sample {
	e := p.Elevation(x, z, t)
	n := p.Normal(x, z, t)
	return Sample{
		X:         x,
		Z:         z,
		Elevation: e,
		Normal:    [3]float32{n.X(), n.Y(), n.Z()},
		Color:     l.Shade(p.ColorAt(e), n),
	}
}

// worldCoord maps pixel index i of n to the center of its cell in
// [-size/2, size/2].
func worldCoord(i, n int, size float32) float32 {
	return (float32(i)+0.5)/float32(n)*size - size/2
}

// Render bakes the surface. Image X maps to world X and image Y to world Z.
func Render(o Options) (*image.RGBA, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", o.Width, o.Height)
	}
	if o.Size <= 0 {
		return nil, fmt.Errorf("invalid world size %v", o.Size)
	}
	if o.Mode == "" {
		o.Mode = ModeColor
	}

	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	heights := make([]float32, 0, o.Width*o.Height)
	lo, hi := float32(math.Inf(1)), float32(math.Inf(-1))

	for py := 0; py < o.Height; py++ {
		z := worldCoord(py, o.Height, o.Size)
		for px := 0; px < o.Width; px++ {
			x := worldCoord(px, o.Width, o.Size)

			if o.Mode == ModeHeight {
				e := o.Params.Elevation(x, z, o.Time)
				heights = append(heights, e)
				lo, hi = min(lo, e), max(hi, e)
				continue
			}

			s := At(&o.Params, o.Lighting, x, z, o.Time)
			r, g, b, _ := s.Color.RGBA8()
			img.SetRGBA(px, py, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	if o.Mode == ModeHeight {
		writeHeights(img, heights, lo, hi)
	}
	return img, nil
}

// writeHeights normalizes elevations to the full grey range. A flat
// surface is mid grey.
func writeHeights(img *image.RGBA, heights []float32, lo, hi float32) {
	w := img.Bounds().Dx()
	span := hi - lo
	for i, e := range heights {
		v := uint8(128)
		if span > 0 {
			v = uint8((e-lo)/span*255 + 0.5)
		}
		img.SetRGBA(i%w, i/w, color.RGBA{R: v, G: v, B: v, A: 255})
	}
}
