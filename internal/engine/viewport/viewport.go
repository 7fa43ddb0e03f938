// Package viewport tracks the drawable area and applies resizes to the
// camera and render target.
package viewport

import (
	"math"

	"github.com/Faultbox/ragingsea/internal/engine/camera"
)

// MaxPixelRatio caps the render resolution multiplier to bound fragment cost.
const MaxPixelRatio = 2

// Viewport is the logical size of the rendering surface and the display's
// device pixel ratio.
type Viewport struct {
	Width            int
	Height           int
	DevicePixelRatio float32
}

// Aspect returns width/height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// PixelRatio returns the device pixel ratio capped at MaxPixelRatio.
func (v Viewport) PixelRatio() float32 {
	return ClampPixelRatio(v.DevicePixelRatio)
}

// DrawingBufferSize returns the render target size in pixels.
func (v Viewport) DrawingBufferSize() (int, int) {
	pr := float64(v.PixelRatio())
	return int(math.Floor(float64(v.Width) * pr)), int(math.Floor(float64(v.Height) * pr))
}

// ClampPixelRatio returns min(dpr, MaxPixelRatio). Non-positive ratios are
// treated as 1.
func ClampPixelRatio(dpr float32) float32 {
	if dpr <= 0 {
		return 1
	}
	if dpr > MaxPixelRatio {
		return MaxPixelRatio
	}
	return dpr
}

// Target is a render target that follows the viewport.
type Target interface {
	SetSizeAndRatio(width, height int, ratio float32)
}

// Handler applies viewport changes to a camera and a render target.
type Handler struct {
	camera  *camera.Perspective
	target  Target
	current Viewport
}

// NewHandler creates a resize handler.
func NewHandler(cam *camera.Perspective, target Target) *Handler {
	return &Handler{camera: cam, target: target}
}

// Resize applies v. Each call reads v directly; there is no queueing, so
// only the latest size matters.
func (h *Handler) Resize(v Viewport) {
	h.current = v

	h.camera.SetAspect(v.Aspect())

	h.target.SetSizeAndRatio(v.Width, v.Height, v.PixelRatio())
}

// Current returns the last applied viewport.
func (h *Handler) Current() Viewport {
	return h.current
}
