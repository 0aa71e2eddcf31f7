// Package texture supplies the images scenes are textured with. Images are read from an
// assets directory when one is configured and present, and generated otherwise.
package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/image/draw"
)

// DefaultMaxSize is the largest width or height a loaded image is kept at.
const DefaultMaxSize = 256

// ErrNotFound is returned for names that are neither on disk nor generated.
var ErrNotFound = errors.New("texture not found")

var extensions = []string{".png", ".jpg", ".jpeg"}

// Library loads and caches textures by name.
type Library struct {
	// Dir is searched for <name>.png, <name>.jpg and <name>.jpeg. Empty disables disk lookups.
	Dir     string
	MaxSize int
	Logger  *slog.Logger

	cache map[string]image.Image
}

// NewLibrary returns a Library reading from dir.
func NewLibrary(dir string, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{
		Dir:     dir,
		MaxSize: DefaultMaxSize,
		Logger:  logger,
		cache:   map[string]image.Image{},
	}
}

// Names returns every texture name the Library can generate.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns the named texture.
func (lib *Library) Load(name string) (image.Image, error) {
	if img, ok := lib.cache[name]; ok {
		return img, nil
	}

	img, err := lib.loadFile(name)
	if err != nil {
		return nil, fmt.Errorf("load texture %q: %w", name, err)
	}

	if img == nil {
		gen, ok := generators[name]
		if !ok {
			return nil, fmt.Errorf("load texture %q: %w", name, ErrNotFound)
		}
		lib.Logger.Debug("generating texture", "texture", name)
		img = gen()
	}

	if lib.cache == nil {
		lib.cache = map[string]image.Image{}
	}
	lib.cache[name] = img
	return img, nil
}

// loadFile returns nil, nil when there is no file for name.
func (lib *Library) loadFile(name string) (image.Image, error) {
	if lib.Dir == "" {
		return nil, nil
	}
	for _, ext := range extensions {
		path := filepath.Join(lib.Dir, name+ext)
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		lib.Logger.Debug("loaded texture", "texture", name, "path", path)
		return Fit(img, lib.maxSize()), nil
	}
	return nil, nil
}

func (lib *Library) maxSize() int {
	if lib.MaxSize <= 0 {
		return DefaultMaxSize
	}
	return lib.MaxSize
}

// Fit scales img down so neither side exceeds maxSize, keeping its aspect ratio. Images
// that already fit are returned as they are.
func Fit(img image.Image, maxSize int) image.Image {
	size := img.Bounds().Size()
	if size.X <= maxSize && size.Y <= maxSize {
		return img
	}
	w, h := maxSize, maxSize
	if size.X > size.Y {
		h = max(1, size.Y*maxSize/size.X)
	} else {
		w = max(1, size.X*maxSize/size.Y)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// HeightSampler turns a heightmap image into a function from texture coordinates (origin
// top left) to a height in [0, 1], using the image's luminance.
func HeightSampler(img image.Image) func(u, v float64) float64 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	heights := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			heights[y*w+x] = (0.3*float64(r) + 0.59*float64(g) + 0.11*float64(b)) / 0xffff
		}
	}
	at := func(x, y int) float64 {
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
		return heights[y*w+x]
	}
	return func(u, v float64) float64 {
		fx := u * float64(w-1)
		fy := v * float64(h-1)
		x0, y0 := int(fx), int(fy)
		tx, ty := fx-float64(x0), fy-float64(y0)
		top := at(x0, y0)*(1-tx) + at(x0+1, y0)*tx
		bottom := at(x0, y0+1)*(1-tx) + at(x0+1, y0+1)*tx
		return top*(1-ty) + bottom*ty
	}
}
