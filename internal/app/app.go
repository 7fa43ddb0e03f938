// Package app wires the window, renderer, camera and water scene into the
// viewer's main loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/ragingsea/internal/config"
	"github.com/Faultbox/ragingsea/internal/engine/camera"
	"github.com/Faultbox/ragingsea/internal/engine/capture"
	"github.com/Faultbox/ragingsea/internal/engine/input"
	"github.com/Faultbox/ragingsea/internal/engine/lighting"
	"github.com/Faultbox/ragingsea/internal/engine/picking"
	"github.com/Faultbox/ragingsea/internal/engine/renderer"
	"github.com/Faultbox/ragingsea/internal/engine/scene"
	"github.com/Faultbox/ragingsea/internal/engine/viewport"
	"github.com/Faultbox/ragingsea/internal/engine/water"
	"github.com/Faultbox/ragingsea/internal/engine/window"
	"github.com/Faultbox/ragingsea/internal/logger"
	"github.com/Faultbox/ragingsea/internal/tweak"
)

const title = "Raging Sea"

// probeIterations bounds the ray/surface refinement for the P key probe.
const probeIterations = 8

// App is the viewer instance.
type App struct {
	cfg     *config.Config
	running bool
	log     *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	camera   *camera.Perspective
	controls *camera.OrbitControls
	resize   *viewport.Handler
	scene    *scene.Scene

	uniforms *water.Uniforms
	panel    *tweak.Panel
	sun      sunAngles
	pointer  *pointer
	loop     *Loop
	shots    *capture.Screenshots
}

// New creates the window, GL resources and scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}
	a.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("segments", cfg.Water.Segments),
	)

	toneMapping, err := renderer.ParseToneMapping(cfg.Graphics.ToneMapping)
	if err != nil {
		return nil, err
	}
	format, err := capture.ParseFormat(cfg.Capture.Format)
	if err != nil {
		return nil, err
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	vp := a.currentViewport()

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		Width:       vp.Width,
		Height:      vp.Height,
		PixelRatio:  vp.PixelRatio(),
		ToneMapping: toneMapping,
		Exposure:    cfg.Graphics.Exposure,
		ClearColor:  cfg.Graphics.ClearColor,
	}, a.window)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.camera = camera.NewPerspective(cfg.Camera.FOV, vp.Aspect(), cfg.Camera.Near, cfg.Camera.Far)
	a.camera.Position = cfg.Camera.Position
	a.controls = camera.NewOrbitControls(a.camera)
	a.controls.EnableDamping = cfg.Camera.Damping
	a.controls.DampingFactor = cfg.Camera.DampingFactor

	a.resize = viewport.NewHandler(a.camera, a.renderer)
	a.resize.Resize(vp)

	a.uniforms = water.NewUniforms(cfg.Water.Params, cfg.Water.Lighting)

	plane, err := water.BuildPlane(cfg.Water.Size, cfg.Water.Size, cfg.Water.Segments, cfg.Water.Segments)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build water plane: %w", err)
	}
	mesh, err := scene.NewWaterMesh(plane, a.uniforms)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create water mesh: %w", err)
	}
	a.scene = scene.New()
	a.scene.Add(mesh)

	a.panel = tweak.NewPanel()
	if err := tweak.BindWater(a.panel, a.uniforms); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to bind parameters: %w", err)
	}
	if err := a.bindSun(); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to bind parameters: %w", err)
	}
	a.panel.OnAnyChange(func(k *tweak.Knob) {
		a.log.Info("parameter changed", zap.String("key", k.Key), zap.String("value", k.Value()))
	})

	a.input = input.New()
	a.pointer = newPointer(a.controls)
	a.shots = capture.NewScreenshots(cfg.Capture.Dir, cfg.Capture.Prefix, format)

	a.loop = NewLoop(a.uniforms, a.controls, DrawFunc(a.draw), nil)
	if cfg.Water.TimeScale > 0 {
		a.loop.TimeScale = cfg.Water.TimeScale
	}

	a.log.Info("viewer initialized successfully",
		zap.Int("vertices", plane.VertexCount()),
		zap.Int("indices", len(plane.Indices)),
	)
	return a, nil
}

// currentViewport reads the window size and device pixel ratio. A
// configured pixel ratio overrides the display's.
func (a *App) currentViewport() viewport.Viewport {
	w, h := a.window.Size()
	dpr := a.window.PixelRatio()
	if a.cfg.Graphics.PixelRatio > 0 {
		dpr = a.cfg.Graphics.PixelRatio
	}
	return viewport.Viewport{Width: w, Height: h, DevicePixelRatio: dpr}
}

func (a *App) draw() {
	a.renderer.Render(a.scene, a.camera)
}

// Run starts the main loop and returns when the window closes.
func (a *App) Run() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting render loop")
	a.loop.Start()

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}
		if !a.running {
			break
		}

		// 2. Time uniform, controls, draw
		if err := a.loop.Step(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 3. Present (swap buffers)
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Float32("time", a.uniforms.Time),
			)
			if a.cfg.Graphics.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s - %d fps", title, frameCount))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	a.log.Info("render loop stopped", zap.Uint64("frames", a.loop.Frames()))
	return nil
}

func (a *App) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		vp := a.currentViewport()
		a.resize.Resize(vp)
		a.log.Debug("viewport resized",
			zap.Int("width", vp.Width),
			zap.Int("height", vp.Height),
			zap.Float32("aspect", vp.Aspect()),
			zap.Float32("pixel_ratio", vp.PixelRatio()),
		)
	case input.EventKeyDown:
		a.handleKey(event)
	default:
		a.pointer.handle(event, a.resize.Current().Height)
	}
}

func (a *App) handleKey(event input.Event) {
	switch event.Key {
	case sdl.K_ESCAPE:
		a.running = false

	case sdl.K_TAB:
		var k *tweak.Knob
		if event.Shift() {
			k = a.panel.Prev()
		} else {
			k = a.panel.Next()
		}
		if k != nil {
			a.log.Info("selected parameter", zap.String("knob", k.String()))
		}

	case sdl.K_UP, sdl.K_DOWN:
		steps := 1
		if event.Shift() {
			steps = 10
		}
		if event.Key == sdl.K_DOWN {
			steps = -steps
		}
		if err := a.panel.Nudge(steps); err != nil {
			a.log.Debug("cannot adjust parameter", zap.Error(err))
		}

	case sdl.K_p:
		if !event.Repeat {
			a.probe()
		}

	case sdl.K_l:
		if event.Repeat {
			return
		}
		a.uniforms.Lighting.Enabled = !a.uniforms.Lighting.Enabled
		a.log.Info("lighting toggled", zap.Bool("enabled", a.uniforms.Lighting.Enabled))

	case sdl.K_s:
		if event.Ctrl() && !event.Repeat {
			a.saveConfig()
		}

	case sdl.K_F3:
		if event.Repeat {
			return
		}
		if logger.Level() == "debug" {
			logger.SetLevel("info")
		} else {
			logger.SetLevel("debug")
		}
		a.log.Info("log level changed", zap.String("level", logger.Level()))

	case sdl.K_F12:
		if !event.Repeat {
			a.screenshot()
		}
	}
}

// sunAngles holds the light direction as knob-friendly angles in degrees.
type sunAngles struct {
	azimuth   float32
	elevation float32
}

// bindSun exposes the light direction as two angle knobs.
func (a *App) bindSun() error {
	a.sun.azimuth, a.sun.elevation = lighting.SunAngles(a.uniforms.Lighting.Direction)

	if _, err := a.panel.AddFloat("sunAzimuth", &a.sun.azimuth, 0, 360, 1); err != nil {
		return err
	}
	if _, err := a.panel.AddFloat("sunElevation", &a.sun.elevation, 0, 90, 1); err != nil {
		return err
	}
	update := func(*tweak.Knob) {
		a.uniforms.Lighting.Direction = lighting.SunDirection(a.sun.azimuth, a.sun.elevation)
	}
	if err := a.panel.OnChange("sunAzimuth", update); err != nil {
		return err
	}
	return a.panel.OnChange("sunElevation", update)
}

// probe logs the surface under the cursor.
func (a *App) probe() {
	vp := a.resize.Current()
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	mx, my := a.pointer.position()
	invViewProj := a.camera.ProjectionMatrix().Mul4(a.camera.ViewMatrix()).Inv()
	ray := picking.ScreenToRay(float32(mx), float32(my), float32(vp.Width), float32(vp.Height), invViewProj)

	hit, ok := ray.IntersectSurface(a.uniforms.Elevation, probeIterations)
	half := a.cfg.Water.Size / 2
	if !ok || hit.X() < -half || hit.X() > half || hit.Z() < -half || hit.Z() > half {
		a.log.Info("probe missed the water", zap.Int("x", mx), zap.Int("y", my))
		return
	}

	p := &a.uniforms.Params
	t := a.uniforms.Time
	n := p.Normal(hit.X(), hit.Z(), t)
	a.log.Info("probe",
		zap.Float32("x", hit.X()),
		zap.Float32("z", hit.Z()),
		zap.Float32("elevation", hit.Y()),
		zap.Float32("big", p.BigWaves(hit.X(), hit.Z(), t)),
		zap.Float32("small", p.SmallWaves(hit.X(), hit.Z(), t)),
		zap.String("normal", fmt.Sprintf("(%.3f, %.3f, %.3f)", n.X(), n.Y(), n.Z())),
		zap.Stringer("color", a.uniforms.Lighting.Shade(p.ColorAt(hit.Y()), n)),
	)
}

// screenshot saves the last frame at render resolution. Failures are
// logged and never stop the loop.
func (a *App) screenshot() {
	path, err := a.shots.Save(a.renderer.Snapshot())
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// saveConfig persists the tuned parameters back to the file they were
// loaded from.
func (a *App) saveConfig() {
	path, err := a.cfg.SaveTuned(a.uniforms.Params, a.uniforms.Lighting)
	if err != nil {
		a.log.Error("failed to save config", zap.Error(err), zap.String("path", path))
		return
	}
	a.log.Info("config saved", zap.String("path", path))
}

// Close releases GL resources and the window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
