// Package scenery runs a set of demo scenes on tetra3d and Ebitengine. Each scene builds an
// engine-neutral blueprint, instantiates it through the render package and then drives
// it from its own simulation every frame.
package scenery

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/scenery3d/scenery/blueprint"
	"github.com/scenery3d/scenery/config"
	"github.com/scenery3d/scenery/keyboard"
	"github.com/scenery3d/scenery/render"
	"github.com/scenery3d/scenery/texture"
)

// ErrQuit is returned from Update when the user asks to leave.
var ErrQuit = errors.New("quit")

// Scene is one demo.
type Scene interface {
	// Init builds the scene from scratch. It is called on start, on R and when the config
	// is reloaded.
	Init(ctx *Context) error
	// Update advances the scene by dt seconds.
	Update(dt float64) error
	// Draw renders the scene.
	Draw(screen *ebiten.Image)
	// View is the scene's engine instance, used for the debug overlay and screenshots.
	View() *render.Instance
}

// Context is everything a scene gets from the runner.
type Context struct {
	Config   *config.Config
	Logger   *slog.Logger
	Textures *texture.Library
	Keys     *keyboard.State
	Rand     *rand.Rand
	Width    int
	Height   int
}

// NewContext builds a Context from cfg.
func NewContext(cfg *config.Config, logger *slog.Logger) *Context {
	return &Context{
		Config:   cfg,
		Logger:   logger,
		Textures: texture.NewLibrary(cfg.AssetsDir, logger),
		Keys:     keyboard.New(),
		Rand:     rand.New(rand.NewSource(cfg.RandSeed())),
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
	}
}

// Reseed resets the random source so a re-initialised scene lays itself out the same way.
func (ctx *Context) Reseed() {
	ctx.Rand = rand.New(rand.NewSource(ctx.Config.RandSeed()))
}

// Entry registers a scene.
type Entry struct {
	Name  string
	Title string
	// Blueprint builds the scene's static description, for export and listing.
	Blueprint func(cfg *config.Config, rng *rand.Rand) (*blueprint.Scene, error)
	New       func() Scene
}

// Registry is an ordered set of scenes.
type Registry struct {
	entries []Entry
}

// NewRegistry returns a Registry holding entries, which must have unique names.
func NewRegistry(entries ...Entry) (*Registry, error) {
	reg := &Registry{}
	for _, e := range entries {
		if err := reg.Register(e); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Register appends e.
func (reg *Registry) Register(e Entry) error {
	if e.Name == "" || e.New == nil {
		return fmt.Errorf("register scene %q: name and constructor are required", e.Name)
	}
	if reg.Index(e.Name) >= 0 {
		return fmt.Errorf("register scene %q: already registered", e.Name)
	}
	reg.entries = append(reg.entries, e)
	return nil
}

// Len returns the number of scenes.
func (reg *Registry) Len() int {
	return len(reg.entries)
}

// Entries returns the scenes in registration order.
func (reg *Registry) Entries() []Entry {
	return append([]Entry(nil), reg.entries...)
}

// Names returns the scene names in registration order.
func (reg *Registry) Names() []string {
	names := make([]string, len(reg.entries))
	for i, e := range reg.entries {
		names[i] = e.Name
	}
	return names
}

// Index returns the position of the named scene, or -1.
func (reg *Registry) Index(name string) int {
	for i, e := range reg.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// Lookup returns the named scene.
func (reg *Registry) Lookup(name string) (Entry, error) {
	i := reg.Index(name)
	if i < 0 {
		return Entry{}, fmt.Errorf("%w %q (have %v)", config.ErrUnknownScene, name, reg.Names())
	}
	return reg.entries[i], nil
}
