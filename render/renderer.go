// Package render presents a platformer state machine with Ebitengine.
//
// The renderer keeps a retained node tree in sync with the core by draining
// platformer.SceneCommandEvent once per frame. It polls the keyboard into
// intents and turns clicks on buttons into button events.
package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/platformer"
)

// Options tunes the presentation.
type Options struct {
	// FontsDir is the directory font families are loaded from.
	FontsDir string
	// FadeFromZ is the Z at and above which UI nodes fade in when spawned.
	FadeFromZ float64
	// FadeDuration is the fade-in time in seconds. Zero disables fades.
	FadeDuration float32
	// ShowFPS draws the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// ScreenshotDir receives the PNGs queued by Screenshot.
	ScreenshotDir string
	// QuitAfterScript stops the game once an attached script has run out.
	QuitAfterScript bool
}

// DefaultOptions returns options for the built-in screens.
func DefaultOptions(cfg platformer.Config) Options {
	return Options{
		FontsDir:     cfg.FontsDir,
		FadeFromZ:    10,
		FadeDuration: 0.25,
		ShowFPS:      cfg.Debug,
	}
}

// Renderer implements ebiten.Game on top of a platformer.Machine.
type Renderer struct {
	// ClearColor fills the screen before the scene is drawn.
	ClearColor platformer.Color

	machine *platformer.Machine
	world   donburi.World
	cfg     platformer.Config
	opts    Options

	scene *Scene
	fonts *FontCache
	fades []*fade
	dt    float32

	script   *Script
	shots    []string
	clicks   [][2]int
	touchIDs []ebiten.TouchID
}

// New creates a renderer for m and subscribes it to m's scene commands.
// Call it before starting the machine so that no command is missed.
func New(m *platformer.Machine, opts Options) *Renderer {
	ctx := m.Context()
	tps := ctx.Config.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	r := &Renderer{
		ClearColor: platformer.ColorBlack,
		machine:    m,
		world:      ctx.World,
		cfg:        ctx.Config,
		opts:       opts,
		scene:      NewScene(),
		fonts:      NewFontCache(opts.FontsDir),
		dt:         1 / float32(tps),
	}
	r.scene.OnSpawn = r.onSpawn
	platformer.SceneCommandEvent.Subscribe(r.world, r.onCommand)
	return r
}

// Scene returns the mirrored node tree.
func (r *Renderer) Scene() *Scene {
	return r.scene
}

// SetScript replaces keyboard and mouse input with s until it is done.
func (r *Renderer) SetScript(s *Script) {
	r.script = s
}

func (r *Renderer) onCommand(_ donburi.World, cmd platformer.SceneCommand) {
	r.scene.Apply(cmd)
}

func (r *Renderer) onSpawn(n *Node) {
	if r.opts.FadeDuration <= 0 || n.Space != platformer.SpaceUI || n.Z < r.opts.FadeFromZ {
		return
	}
	r.fades = append(r.fades, fadeIn(n, r.opts.FadeDuration, ease.OutQuad))
}

// Update implements ebiten.Game. It returns ebiten.Termination once the
// machine has stopped.
func (r *Renderer) Update() error {
	if !r.machine.Running() {
		return ebiten.Termination
	}
	var in platformer.Intent
	switch {
	case r.script != nil && !r.script.Done():
		var shots []string
		in, r.clicks, shots = r.script.next(r.clicks[:0])
		r.shots = append(r.shots, shots...)
	case r.script != nil && r.opts.QuitAfterScript:
		r.machine.Stop()
		return ebiten.Termination
	default:
		r.clicks = r.pollClicks(r.clicks[:0])
		in = pollIntent()
	}
	r.click(r.clicks)
	r.step(in)
	if !r.machine.Running() {
		return ebiten.Termination
	}
	return nil
}

// click reports the topmost button under each screen point to the machine.
func (r *Renderer) click(points [][2]int) {
	vw, vh := float64(r.cfg.Width), float64(r.cfg.Height)
	for _, p := range points {
		if !r.machine.Running() {
			return
		}
		x, y := toUIFrame(p[0], p[1], vw, vh)
		if action, ok := platformer.ButtonAt(r.world, x, y); ok {
			r.machine.HandleEvent(platformer.Event{Kind: platformer.EventButton, Action: action})
		}
	}
}

// step advances the machine by one tick and brings the node tree up to date.
func (r *Renderer) step(in platformer.Intent) {
	if r.machine.Running() {
		r.machine.Update(in)
	}
	platformer.SceneCommandEvent.ProcessEvents(r.world)
	r.fades = updateFades(r.fades, r.dt)
}

// Draw implements ebiten.Game.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(r.ClearColor, 1))
	r.scene.Walk(float64(r.cfg.Width), float64(r.cfg.Height), func(n *Node, b platformer.Bounds, alpha float64) {
		r.drawNode(screen, n, b, alpha)
	})
	if r.opts.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	r.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical screen is always the
// configured window size.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.cfg.Width, r.cfg.Height
}

// Run opens a window for m, starts it in initial and blocks until the
// machine quits or the window is closed. A non-nil script drives the input.
func Run(m *platformer.Machine, initial platformer.State, opts Options, script *Script) error {
	cfg := m.Context().Config
	r := New(m, opts)
	r.SetScript(script)
	m.Start(initial)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
