package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProceduralTextures(t *testing.T) {
	lib := NewLibrary("", nil)
	for _, name := range Names() {
		img, err := lib.Load(name)
		require.NoError(t, err, name)
		assert.Equal(t, image.Pt(proceduralSize, proceduralSize), img.Bounds().Size(), name)
	}
}

func TestUnknownTexture(t *testing.T) {
	lib := NewLibrary(t.TempDir(), nil)
	_, err := lib.Load("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadCaches(t *testing.T) {
	lib := NewLibrary("", nil)
	a, err := lib.Load("wood")
	require.NoError(t, err)
	b, err := lib.Load("wood")
	require.NoError(t, err)
	assert.Same(t, a.(*image.NRGBA), b.(*image.NRGBA))
}

func TestDiskOverridesAndScales(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 512, 256))
	for y := 0; y < 256; y++ {
		for x := 0; x < 512; x++ {
			src.SetNRGBA(x, y, color.NRGBA{0xff, 0, 0, 0xff})
		}
	}
	f, err := os.Create(filepath.Join(dir, "grass.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	lib := NewLibrary(dir, nil)
	img, err := lib.Load("grass")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(256, 128), img.Bounds().Size())

	r, g, _, _ := img.At(10, 10).RGBA()
	assert.InDelta(t, 0xffff, r, 0x200)
	assert.InDelta(t, 0, g, 0x200)
}

func TestCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wood.png"), []byte("not a png"), 0o644))

	_, err := NewLibrary(dir, nil).Load("wood")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFitKeepsSmallImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	assert.Same(t, img, Fit(img, 256).(*image.RGBA))
}

func TestHeightSampler(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 1))
	img.SetGray(0, 0, color.Gray{0})
	img.SetGray(1, 0, color.Gray{128})
	img.SetGray(2, 0, color.Gray{255})

	sample := HeightSampler(img)
	assert.InDelta(t, 0, sample(0, 0), 1e-9)
	assert.InDelta(t, 1, sample(1, 0), 1e-9)
	assert.InDelta(t, 128.0/255, sample(0.5, 0), 1e-3)
	assert.InDelta(t, 64.0/255, sample(0.25, 0), 1e-3)
}

func TestHeightmapIsFlatInTheMiddle(t *testing.T) {
	img, err := NewLibrary("", nil).Load("heightmap")
	require.NoError(t, err)
	sample := HeightSampler(img)
	assert.InDelta(t, 0, sample(0.5, 0.5), 1e-9)
	assert.Greater(t, sample(0.02, 0.02), 0.3)
}
