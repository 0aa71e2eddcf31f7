package scenery

import (
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/solarlune/tetra3d/colors"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

// ProfileDuration is how long P records a CPU profile for.
const ProfileDuration = 2 * time.Second

const helpText = "F1: Toggle this text\nTab / 1-9: Switch scene\nDrag: Orbit, Wheel: Zoom\nR: Restart scene\nF4: Toggle fullscreen\nF12: Screenshot\nP: Profile\nESC: Quit"

// SystemHandler handles the keys every scene shares.
type SystemHandler struct {
	DrawDebugText bool
	Logger        *slog.Logger

	// ProfilePath and ScreenshotDir say where P and F12 write their files.
	ProfilePath   string
	ScreenshotDir string

	profiling bool
	done      chan struct{}

	title     string
	titleFade *gween.Tween
	titleA    float32
}

// NewSystemHandler returns a SystemHandler with the debug text on.
func NewSystemHandler(logger *slog.Logger) *SystemHandler {
	return &SystemHandler{
		DrawDebugText: true,
		Logger:        logger,
		ProfilePath:   "cpu.pprof",
		ScreenshotDir: ".",
		done:          make(chan struct{}, 1),
	}
}

// Action is what the runner should do after the system keys were handled.
type Action int

const (
	None Action = iota
	Restart
)

// Update handles Esc, F1, F4, R and P.
func (system *SystemHandler) Update(dt float64) (Action, error) {
	select {
	case <-system.done:
		system.profiling = false
	default:
	}

	if system.titleFade != nil {
		a, finished := system.titleFade.Update(float32(dt))
		system.titleA = a
		if finished {
			system.titleFade = nil
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return None, ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		system.DrawDebugText = !system.DrawDebugText
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if err := system.StartProfiling(); err != nil {
			system.Logger.Error("profiling", "err", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return Restart, nil
	}
	return None, nil
}

// Announce shows a scene title that fades out over two seconds.
func (system *SystemHandler) Announce(title string) {
	system.title = title
	system.titleA = 1
	system.titleFade = gween.New(1, 0, 2, ease.InQuad)
}

// StartProfiling records a CPU profile for ProfileDuration. Asking again while a profile
// is running does nothing.
func (system *SystemHandler) StartProfiling() error {
	if system.profiling {
		return nil
	}
	out, err := os.Create(system.ProfilePath)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	if err := pprof.StartCPUProfile(out); err != nil {
		out.Close()
		return fmt.Errorf("start profile: %w", err)
	}
	system.profiling = true
	system.Logger.Info("CPU profiling started", "path", system.ProfilePath, "duration", ProfileDuration)
	go func() {
		time.Sleep(ProfileDuration)
		pprof.StopCPUProfile()
		out.Close()
		system.Logger.Info("CPU profiling finished", "path", system.ProfilePath)
		system.done <- struct{}{}
	}()
	return nil
}

// Draw takes a screenshot on F12 and draws the overlays.
func (system *SystemHandler) Draw(screen *ebiten.Image, scene Scene) {
	view := scene.View()

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) && view != nil {
		if path, err := system.Screenshot(view.Camera.ColorTexture()); err != nil {
			system.Logger.Error("screenshot", "err", err)
		} else {
			system.Logger.Info("screenshot saved", "path", path)
		}
	}

	if system.DrawDebugText && view != nil {
		view.Camera.DrawDebugRenderInfo(screen, 1, colors.White())
		view.Camera.DebugDrawText(screen, helpText, 0, 130, 1, colors.LightGray())
	}

	if system.titleA > 0 && system.title != "" {
		a := uint8(255 * system.titleA)
		w := screen.Bounds().Dx()
		x := (w - len(system.title)*basicfont.Face7x13.Advance) / 2
		text.Draw(screen, system.title, basicfont.Face7x13, x, 24, color.NRGBA{255, 255, 255, a})
	}
}

// Screenshot writes img to a timestamped PNG and returns its path.
func (system *SystemHandler) Screenshot(img *ebiten.Image) (string, error) {
	path := filepath.Join(system.ScreenshotDir, "screenshot-"+time.Now().Format("2006-01-02-150405")+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode screenshot: %w", err)
	}
	return path, nil
}
