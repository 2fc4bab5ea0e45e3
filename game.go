package main

import (
	"fmt"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"glidecam/camera"
	"glidecam/canvas"
	"glidecam/input"
	"glidecam/ui"
)

type Game struct {
	cfg          *Config
	camera       *camera.Camera
	scene        *Scene
	renderer     *canvas.Renderer
	screenWidth  int
	screenHeight int

	// Sub-systems
	input   *input.InputSystem
	ui      *ui.UISystem
	scripts *ScriptRunner
	watcher *ScriptWatcher
	font    font.Face

	focused             *Marker
	screenshotRequested bool
}

func NewGame(cfg *Config) *Game {
	g := &Game{
		cfg:          cfg,
		camera:       newCamera(cfg.Camera),
		scene:        NewScene(cfg.Scene),
		renderer:     canvas.NewRenderer(),
		screenWidth:  cfg.Display.ScreenWidth,
		screenHeight: cfg.Display.ScreenHeight,
		scripts:      NewScriptRunner(cfg.Scripts),
	}

	g.input = input.NewInputSystem(g, input.Bindings{
		PanSpeed:   cfg.Input.PanSpeed,
		TiltSpeed:  cfg.Input.TiltSpeed,
		ZoomStep:   cfg.Input.ZoomStep,
		StateFile:  cfg.StateFile,
		ViewHeight: func() float64 { return g.camera.Scale },
	})
	g.ui = ui.NewUISystem(g.fontFace, g.screenSize, ui.Actions{
		ZoomIn:    func() { g.Zoom(1 / (1 + cfg.Input.ZoomStep)) },
		ZoomOut:   func() { g.Zoom(1 + cfg.Input.ZoomStep) },
		TiltLeft:  func() { g.Tilt(-math.Pi / 8) },
		TiltRight: func() { g.Tilt(math.Pi / 8) },
		Reset:     g.ResetCamera,
	}, DrawTextLines)

	if cfg.Watch && len(cfg.Scripts) > 0 {
		w, err := NewScriptWatcher(cfg.Scripts)
		if err != nil {
			log.Println("script watcher disabled:", err)
		} else {
			g.watcher = w
		}
	}

	return g
}

func newCamera(cc CameraConfig) *camera.Camera {
	return camera.New(
		camera.WithPosition(cc.X, cc.Y),
		camera.WithScale(cc.Scale),
		camera.WithAngle(cc.Angle),
		camera.WithSmoothing(cc.Smoothing),
	)
}

// Update drives input, then advances the camera exactly once per tick.
func (g *Game) Update() error {
	g.ui.Update()
	g.input.Update()
	if g.watcher != nil && g.watcher.Changed() {
		g.RunScripts()
	}
	g.camera.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	w, h := float64(g.screenWidth), float64(g.screenHeight)
	r := g.renderer
	r.Begin(screen)

	// --- World ---
	r.Bind(g.camera.Focus(w, h))
	canvas.DrawGrid(r, canvas.GridStyle{
		Spacing:     GridSpacing,
		MajorEvery:  GridMajorEvery,
		Minor:       ColorGridMinor,
		Major:       ColorGridMajor,
		OriginCross: ColorOriginCross,
		CrossSize:   OriginCrossLen,
	})

	mx, my := ebiten.CursorPosition()
	wx, wy := r.ToWorld(float64(mx), float64(my))
	hovered := g.scene.MarkerAt(wx, wy)
	g.scene.Draw(r, hovered, g.focused)
	g.drawTargetCross(r)

	// --- HUD ---
	r.Bind(g.camera.HUDMode(w, h))
	hoverStatus := "None"
	if hovered != nil {
		hoverStatus = hovered.Title
	}
	tg := g.camera.Target()
	r.Print(fmt.Sprintf(
		"Camera: (%.2f, %.2f) Scale: %.2f Angle: %.1f deg\n"+
			"Target: (%.2f, %.2f) Scale: %.2f Angle: %.1f deg\n"+
			"Mouse World: (%.2f, %.2f)\n"+
			"Hovering: %s\n"+
			"WASD pan, Q/E tilt, wheel zoom, right click target, Tab next marker",
		g.camera.X, g.camera.Y, g.camera.Scale, g.camera.Angle*180/math.Pi,
		tg.X, tg.Y, tg.Scale, tg.Angle*180/math.Pi,
		wx, wy,
		hoverStatus,
	), 10, h-10)

	g.ui.Draw(r)

	// --- Save Screenshot ---
	if g.screenshotRequested {
		g.screenshotRequested = false
		g.saveScreenshot(screen)
	}
}

// drawTargetCross marks where the camera is heading while it is moving.
func (g *Game) drawTargetCross(r *canvas.Renderer) {
	if g.camera.Settled(1e-3) {
		return
	}
	tg := g.camera.Target()
	s := 8 / r.PixelScale()
	r.StrokeLine(tg.X-s, tg.Y, tg.X+s, tg.Y, 1, ColorTargetCross)
	r.StrokeLine(tg.X, tg.Y-s, tg.X, tg.Y+s, 1, ColorTargetCross)
	r.FillCircle(g.camera.X, g.camera.Y, 2/r.PixelScale(), ColorTargetCross)
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	name := fmt.Sprintf("screenshot-%s.png", NewID())
	f, err := os.Create(name)
	if err != nil {
		log.Println("screenshot error:", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, screen); err != nil {
		log.Println("screenshot error:", err)
		return
	}
	log.Println("Screenshot saved as", name)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) fontFace() font.Face {
	if g.font == nil {
		g.font = LoadUIFont(g.cfg.Font)
	}
	return g.font
}

func (g *Game) screenSize() (int, int) {
	return g.screenWidth, g.screenHeight
}

// worldTransform is the transform the next frame would draw the world with.
func (g *Game) worldTransform() camera.Transform {
	return g.camera.Focus(float64(g.screenWidth), float64(g.screenHeight))
}

// --- input.Host ---

func (g *Game) ScreenToWorld(sx, sy float64) (float64, float64) {
	if g.screenHeight == 0 {
		return g.camera.X, g.camera.Y
	}
	wx, wy, err := g.worldTransform().Unproject(sx, sy)
	if err != nil {
		g.Log(err.Error())
		return g.camera.X, g.camera.Y
	}
	return wx, wy
}

func (g *Game) IsMouseOver(mx, my int) bool {
	return g.ui.IsMouseOver(mx, my)
}

func (g *Game) Pan(length, angle float64) { g.camera.Pan(length, angle) }
func (g *Game) Zoom(factor float64)       { g.camera.Zoom(factor) }
func (g *Game) Tilt(angle float64)        { g.camera.Tilt(angle) }

func (g *Game) SetTarget(x, y float64) {
	g.focused = nil
	g.camera.SetTarget(x, y)
}

// DragPan moves the target opposite to a screen-space mouse drag so the world
// follows the cursor.
func (g *Game) DragPan(dx, dy float64) {
	ax, ay := g.ScreenToWorld(0, 0)
	bx, by := g.ScreenToWorld(dx, dy)
	tg := g.camera.Target()
	g.SetTarget(tg.X-(bx-ax), tg.Y-(by-ay))
}

// ResetCamera heads back to the configured starting pose.
func (g *Game) ResetCamera() {
	cc := g.cfg.Camera
	g.focused = nil
	g.camera.SetTargetPose(camera.Target{X: cc.X, Y: cc.Y, Scale: cc.Scale, Angle: cc.Angle})
}

// FocusNext targets the center of the marker after the focused one.
func (g *Game) FocusNext() {
	markers := g.scene.Markers()
	if len(markers) == 0 {
		return
	}
	next := 0
	for i, m := range markers {
		if m == g.focused {
			next = (i + 1) % len(markers)
			break
		}
	}
	g.FocusMarker(markers[next].ID)
}

// FocusMarker targets a marker's center. It reports false for unknown IDs.
func (g *Game) FocusMarker(id string) bool {
	m := g.scene.MarkerByID(id)
	if m == nil {
		return false
	}
	cx, cy := m.Center()
	g.camera.SetTarget(cx, cy)
	g.focused = m
	return true
}

func (g *Game) RequestScreenshot() {
	g.screenshotRequested = true
}

func (g *Game) SaveState(filename string) error {
	if err := SaveState(g, filename); err != nil {
		return err
	}
	log.Println("State saved to", filename)
	return nil
}

func (g *Game) LoadState(filename string) error {
	if err := LoadState(g, filename); err != nil {
		return err
	}
	log.Println("State loaded from", filename)
	return nil
}

func (g *Game) RunScripts() {
	if err := g.scripts.RunAll(g.camera); err != nil {
		g.Log(err.Error())
		return
	}
	g.ui.Debug.Clear()
}

func (g *Game) Log(msg string) {
	log.Println(msg)
	g.ui.Debug.SetError(msg)
}
