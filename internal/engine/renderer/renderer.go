// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"image"
	"math"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/ragingsea/internal/engine/camera"
	"github.com/Faultbox/ragingsea/internal/engine/framebuffer"
	"github.com/Faultbox/ragingsea/internal/engine/scene"
	"github.com/Faultbox/ragingsea/internal/engine/scene/shaders"
	"github.com/Faultbox/ragingsea/internal/engine/shader"
	"github.com/Faultbox/ragingsea/internal/logger"
)

// ToneMapping selects the curve applied when presenting the frame.
type ToneMapping string

const (
	ToneMappingNone ToneMapping = "none"
	ToneMappingACES ToneMapping = "aces"
)

// ParseToneMapping validates a tone mapping name. Empty means none.
func ParseToneMapping(s string) (ToneMapping, error) {
	switch ToneMapping(s) {
	case "", ToneMappingNone:
		return ToneMappingNone, nil
	case ToneMappingACES:
		return ToneMappingACES, nil
	default:
		return "", fmt.Errorf("unknown tone mapping %q (want %q or %q)", s, ToneMappingNone, ToneMappingACES)
	}
}

// Surface reports the size of the default framebuffer in pixels.
type Surface interface {
	DrawableSize() (int, int)
}

// Config holds renderer configuration.
type Config struct {
	Width       int
	Height      int
	PixelRatio  float32
	ToneMapping ToneMapping
	Exposure    float32
	ClearColor  [4]float32
}

// Renderer draws the scene into an offscreen target sized
// logical size * pixel ratio, then presents it to the window surface.
type Renderer struct {
	config  Config
	surface Surface

	target *framebuffer.Framebuffer
	blit   *shader.Program
	blitVA uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, surface Surface) (*Renderer, error) {
	r := &Renderer{
		config:  cfg,
		surface: surface,
	}
	if r.config.PixelRatio <= 0 {
		r.config.PixelRatio = 1
	}
	if r.config.Exposure <= 0 {
		r.config.Exposure = 1
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	var err error
	w, h := r.bufferSize()
	r.target, err = framebuffer.New(int32(w), int32(h))
	if err != nil {
		return nil, fmt.Errorf("failed to create render target: %w", err)
	}

	r.blit, err = shader.NewProgram(shaders.BlitVertexShader, shaders.BlitFragmentShader)
	if err != nil {
		r.target.Destroy()
		return nil, fmt.Errorf("failed to create blit shader: %w", err)
	}

	// Core profile needs a bound VAO even for attribute-less draws.
	gl.GenVertexArrays(1, &r.blitVA)

	logger.Debug("renderer created",
		zap.Int("buffer_width", w),
		zap.Int("buffer_height", h),
		zap.String("tone_mapping", string(r.config.ToneMapping)),
	)
	return r, nil
}

// bufferSize returns the offscreen target size for the current config.
func (r *Renderer) bufferSize() (int, int) {
	pr := float64(r.config.PixelRatio)
	w := int(math.Floor(float64(r.config.Width) * pr))
	h := int(math.Floor(float64(r.config.Height) * pr))
	return max(w, 1), max(h, 1)
}

// SetSizeAndRatio sets the logical output size and the render resolution
// multiplier, reallocating the offscreen target once.
func (r *Renderer) SetSizeAndRatio(width, height int, ratio float32) {
	r.applySize(width, height, ratio)
	r.resizeTarget()
}

func (r *Renderer) applySize(width, height int, ratio float32) {
	if ratio <= 0 {
		ratio = 1
	}
	r.config.Width = width
	r.config.Height = height
	r.config.PixelRatio = ratio
}

// PixelRatio returns the current render resolution multiplier.
func (r *Renderer) PixelRatio() float32 {
	return r.config.PixelRatio
}

func (r *Renderer) resizeTarget() {
	w, h := r.bufferSize()
	r.target.Resize(int32(w), int32(h))
	logger.Debug("renderer resized",
		zap.Int("width", r.config.Width),
		zap.Int("height", r.config.Height),
		zap.Float32("pixel_ratio", r.config.PixelRatio),
		zap.Int("buffer_width", w),
		zap.Int("buffer_height", h),
	)
}

// Render draws the scene from the camera and presents it.
func (r *Renderer) Render(s *scene.Scene, cam *camera.Perspective) {
	c := r.config.ClearColor

	r.target.Bind()
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	s.Draw(cam.ViewMatrix(), cam.ProjectionMatrix())
	r.target.Unbind()

	r.present()
}

// present copies the offscreen target to the window, tone mapping on the way.
func (r *Renderer) present() {
	dw, dh := r.surface.DrawableSize()
	gl.Viewport(0, 0, int32(dw), int32(dh))
	gl.Disable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.blit.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.target.ColorTexture())
	r.blit.SetInt("uScene", 0)
	r.blit.SetBool("uToneMapping", r.config.ToneMapping == ToneMappingACES)
	r.blit.SetFloat("uExposure", r.config.Exposure)

	gl.BindVertexArray(r.blitVA)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// Snapshot returns the last rendered frame at render resolution, before
// tone mapping.
func (r *Renderer) Snapshot() *image.RGBA {
	return r.target.ReadImage()
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.blitVA != 0 {
		gl.DeleteVertexArrays(1, &r.blitVA)
		r.blitVA = 0
	}
	if r.blit != nil {
		r.blit.Delete()
	}
	if r.target != nil {
		r.target.Destroy()
	}
}
