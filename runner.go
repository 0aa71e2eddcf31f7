package scenery

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/scenery3d/scenery/config"
	"github.com/scenery3d/scenery/keyboard"
	"github.com/scenery3d/scenery/texture"
)

// TickRate is the fixed update rate; every scene steps by 1/TickRate per update.
const TickRate = 60

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Runner is the ebiten.Game that hosts one scene at a time.
type Runner struct {
	Context  *Context
	Registry *Registry
	System   *SystemHandler
	Input    keyboard.Source

	active int
	scene  Scene
	reload <-chan *config.Config
}

// NewRunner builds the runner and initialises the scene called start, or the config's
// start scene when start is empty.
func NewRunner(reg *Registry, ctx *Context, start string) (*Runner, error) {
	if start == "" {
		start = ctx.Config.StartScene
	}
	index := reg.Index(start)
	if index < 0 {
		_, err := reg.Lookup(start)
		return nil, err
	}
	r := &Runner{
		Context:  ctx,
		Registry: reg,
		System:   NewSystemHandler(ctx.Logger),
		Input:    EbitenKeys{},
		active:   -1,
	}
	r.System.DrawDebugText = ctx.Config.DebugText
	if err := r.Switch(index); err != nil {
		return nil, err
	}
	return r, nil
}

// Watch makes the runner apply configs arriving on ch.
func (r *Runner) Watch(ch <-chan *config.Config) {
	r.reload = ch
}

// Active returns the running scene's entry.
func (r *Runner) Active() Entry {
	return r.Registry.entries[r.active]
}

// Scene returns the running scene.
func (r *Runner) Scene() Scene {
	return r.scene
}

// Switch replaces the running scene with the scene at index. Held keys are dropped so
// the outgoing scene's controls don't leak into the new one.
func (r *Runner) Switch(index int) error {
	if index < 0 || index >= r.Registry.Len() {
		return fmt.Errorf("switch scene: index %d out of range", index)
	}
	entry := r.Registry.entries[index]
	scene := entry.New()
	r.Context.Keys.Reset()
	r.Context.Reseed()
	if err := scene.Init(r.Context); err != nil {
		return fmt.Errorf("init scene %q: %w", entry.Name, err)
	}
	r.active = index
	r.scene = scene
	r.System.Announce(entry.Title)
	r.Context.Logger.Info("scene started", "scene", entry.Name)
	return nil
}

// Restart re-initialises the running scene.
func (r *Runner) Restart() error {
	return r.Switch(r.active)
}

// Next switches to the following scene, wrapping around.
func (r *Runner) Next() error {
	return r.Switch((r.active + 1) % r.Registry.Len())
}

// ApplyConfig swaps in a reloaded config and restarts the running scene with it.
func (r *Runner) ApplyConfig(cfg *config.Config) error {
	r.Context.Config = cfg
	r.Context.Width, r.Context.Height = cfg.Window.Width, cfg.Window.Height
	if cfg.AssetsDir != r.Context.Textures.Dir {
		r.Context.Textures = texture.NewLibrary(cfg.AssetsDir, r.Context.Logger)
	}
	r.System.DrawDebugText = cfg.DebugText
	return r.Restart()
}

// Update implements ebiten.Game.
func (r *Runner) Update() error {
	select {
	case cfg, ok := <-r.reload:
		if ok {
			if err := r.ApplyConfig(cfg); err != nil {
				return err
			}
		} else {
			r.reload = nil
		}
	default:
	}

	dt := 1.0 / TickRate

	action, err := r.System.Update(dt)
	if err != nil {
		return err
	}
	switch {
	case action == Restart:
		return r.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		return r.Next()
	}
	for i, key := range digitKeys {
		if i < r.Registry.Len() && i != r.active && inpututil.IsKeyJustPressed(key) {
			return r.Switch(i)
		}
	}

	r.Context.Keys.Poll(r.Input)
	return r.scene.Update(dt)
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.scene.Draw(screen)
	r.System.Draw(screen, r.scene)
}

// Layout implements ebiten.Game. The scenes render at the configured resolution and
// ebiten scales that to the window.
func (r *Runner) Layout(w, h int) (int, int) {
	return r.Context.Width, r.Context.Height
}

// Run opens the window and blocks until the user quits. Quitting with Escape is not an
// error.
func Run(r *Runner) error {
	win := r.Context.Config.Window
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TickRate)

	err := ebiten.RunGame(r)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
