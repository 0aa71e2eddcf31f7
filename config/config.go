// Package config loads scenery.yaml and watches it for changes.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked for when none is given.
const DefaultPath = "scenery.yaml"

// ErrUnknownScene is returned when start_scene names no registered scene.
var ErrUnknownScene = errors.New("unknown scene")

// Window configures the game window.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Solar configures the solar system scene.
type Solar struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	Stars           int     `yaml:"stars"`
}

// Binary configures the binary star scene.
type Binary struct {
	TimeScale float64 `yaml:"time_scale"`
	Stars     int     `yaml:"stars"`
}

// Village configures the village scene.
type Village struct {
	Trees        int     `yaml:"trees"`
	MaxParticles int     `yaml:"max_particles"`
	EmitRate     float64 `yaml:"emit_rate"`
}

// Playground configures the physics playground.
type Playground struct {
	Pines   int `yaml:"pines"`
	Flowers int `yaml:"flowers"`
}

// Config is the whole of scenery.yaml.
type Config struct {
	LogLevel   string     `yaml:"log_level"`
	StartScene string     `yaml:"start_scene"`
	AssetsDir  string     `yaml:"assets_dir"`
	Seed       int64      `yaml:"seed"`
	DebugText  bool       `yaml:"debug_text"`
	Window     Window     `yaml:"window"`
	Solar      Solar      `yaml:"solar"`
	Binary     Binary     `yaml:"binary"`
	Village    Village    `yaml:"village"`
	Playground Playground `yaml:"playground"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:   "info",
		StartScene: "village",
		AssetsDir:  "assets",
		Seed:       1,
		DebugText:  true,
		Window:     Window{Width: 796, Height: 448, Title: "scenery"},
		Solar:      Solar{SpeedMultiplier: 0.5, Stars: 600},
		Binary:     Binary{TimeScale: 1, Stars: 600},
		Village:    Village{Trees: 2000, MaxParticles: 2000, EmitRate: 1000},
		Playground: Playground{Pines: 30, Flowers: 15},
	}
}

// Parse decodes YAML over the defaults, so omitted fields keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the config at path. A missing file yields the defaults unless explicit is
// set, in which case the caller asked for that file and its absence is an error.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no scene can work with. Scene names are checked by the runner
// against its registry.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", cfg.Window.Width, cfg.Window.Height))
	}
	if _, err := cfg.Level(); err != nil {
		errs = append(errs, err)
	}
	counts := map[string]int{
		"solar.stars":           cfg.Solar.Stars,
		"binary.stars":          cfg.Binary.Stars,
		"village.trees":         cfg.Village.Trees,
		"village.max_particles": cfg.Village.MaxParticles,
		"playground.pines":      cfg.Playground.Pines,
		"playground.flowers":    cfg.Playground.Flowers,
	}
	for _, name := range []string{"solar.stars", "binary.stars", "village.trees", "village.max_particles", "playground.pines", "playground.flowers"} {
		if counts[name] < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, counts[name]))
		}
	}
	if cfg.Village.EmitRate < 0 {
		errs = append(errs, fmt.Errorf("village.emit_rate must not be negative, got %g", cfg.Village.EmitRate))
	}
	if cfg.Solar.SpeedMultiplier < 0 || cfg.Binary.TimeScale < 0 {
		errs = append(errs, errors.New("time scales must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Level parses LogLevel.
func (cfg *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", cfg.LogLevel, err)
	}
	return level, nil
}

// RandSeed returns the configured seed, or a time based one when Seed is 0.
func (cfg *Config) RandSeed() int64 {
	if cfg.Seed == 0 {
		return time.Now().UnixNano()
	}
	return cfg.Seed
}

// Watch reloads the config at path whenever it is written and sends each config that
// loads and validates. Broken edits are logged and skipped. The directory is watched
// rather than the file so editors that save by renaming are picked up. The channel is
// closed when ctx is done.
func Watch(ctx context.Context, path string, logger *slog.Logger) (<-chan *Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch config %q: %w", path, err)
	}

	out := make(chan *Config, 1)
	go func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				cfg, err := Load(abs, true)
				if err != nil {
					logger.Warn("config reload failed", "path", path, "err", err)
					continue
				}
				logger.Info("config reloaded", "path", path)
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher", "path", path, "err", err)
			}
		}
	}()
	return out, nil
}
