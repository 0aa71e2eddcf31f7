package texture

import (
	"image"
	"image/color"
	"math"
)

const proceduralSize = 128

var generators = map[string]func() image.Image{
	"grass":        func() image.Image { return noisy(color.NRGBA{0x4a, 0x7d, 0x2c, 0xff}, 0.25, 1) },
	"valleygrass":  func() image.Image { return noisy(color.NRGBA{0x6c, 0x9a, 0x3c, 0xff}, 0.2, 2) },
	"stone":        func() image.Image { return noisy(color.NRGBA{0x80, 0x80, 0x80, 0xff}, 0.3, 3) },
	"villagegreen": villageGreen,
	"wood":         wood,
	"roof":         roof,
	"cubehouse":    cubeHouse,
	"semihouse":    semiHouse,
	"tree":         tree,
	"flare":        flare,
	"planet":       planet,
	"heightmap":    heightmap,
}

// hash returns a stable pseudo-random value in [0, 1) for a lattice point.
func hash(x, y, seed int) float64 {
	h := uint32(x)*374761393 + uint32(y)*668265263 + uint32(seed)*2147483647
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float64(h) / float64(math.MaxUint32+1)
}

// valueNoise is smoothly interpolated lattice noise with the given cell size in pixels.
func valueNoise(x, y, cell float64, seed int) float64 {
	fx, fy := x/cell, y/cell
	x0, y0 := int(math.Floor(fx)), int(math.Floor(fy))
	tx, ty := fx-float64(x0), fy-float64(y0)
	tx = tx * tx * (3 - 2*tx)
	ty = ty * ty * (3 - 2*ty)
	top := hash(x0, y0, seed)*(1-tx) + hash(x0+1, y0, seed)*tx
	bottom := hash(x0, y0+1, seed)*(1-tx) + hash(x0+1, y0+1, seed)*tx
	return top*(1-ty) + bottom*ty
}

func shade(c color.NRGBA, f float64) color.NRGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, float64(v)*f)))
	}
	return color.NRGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

func fill(size int, at func(x, y int) color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, at(x, y))
		}
	}
	return img
}

func noisy(base color.NRGBA, amount float64, seed int) image.Image {
	return fill(proceduralSize, func(x, y int) color.NRGBA {
		n := 0.6*valueNoise(float64(x), float64(y), 16, seed) + 0.4*hash(x, y, seed+100)
		return shade(base, 1-amount/2+amount*n)
	})
}

func villageGreen() image.Image {
	base := color.NRGBA{0x5c, 0x94, 0x34, 0xff}
	half := float64(proceduralSize) / 2
	return fill(proceduralSize, func(x, y int) color.NRGBA {
		c := shade(base, 0.9+0.2*valueNoise(float64(x), float64(y), 8, 4))
		// Ragged edge fading out into the terrain beneath.
		edge := math.Max(math.Abs(float64(x)-half), math.Abs(float64(y)-half)) / half
		edge += 0.15 * valueNoise(float64(x), float64(y), 6, 5)
		if edge > 0.9 {
			c.A = 0
		}
		return c
	})
}

func wood() image.Image {
	return fill(proceduralSize, func(x, y int) color.NRGBA {
		grain := math.Sin(float64(y)*0.6+6*valueNoise(float64(x), float64(y), 32, 6)) * 0.5
		return shade(color.NRGBA{0x8b, 0x5a, 0x2b, 0xff}, 0.85+0.25*grain)
	})
}

func roof() image.Image {
	return fill(proceduralSize, func(x, y int) color.NRGBA {
		row := y / 16
		offset := (row % 2) * 8
		f := 1.0
		if y%16 < 2 || (x+offset)%16 < 1 {
			f = 0.6
		}
		f *= 0.9 + 0.2*hash((x+offset)/16, row, 7)
		return shade(color.NRGBA{0x8e, 0x3b, 0x2a, 0xff}, f)
	})
}

type rect struct{ x0, y0, x1, y1 float64 }

func (r rect) contains(u, v float64) bool {
	return u >= r.x0 && u < r.x1 && v >= r.y0 && v < r.y1
}

// house draws wall panels across the texture. Each panel spans [from, to) of the width
// and gets the doors and windows listed for it in panel-relative coordinates, origin top
// left.
func house(wall color.NRGBA, panels []struct {
	from, to float64
	doors    []rect
	windows  []rect
}) image.Image {
	size := proceduralSize
	return fill(size, func(x, y int) color.NRGBA {
		u, v := float64(x)/float64(size), float64(y)/float64(size)
		c := shade(wall, 0.92+0.12*valueNoise(float64(x), float64(y), 4, 8))
		for _, panel := range panels {
			if u < panel.from || u >= panel.to {
				continue
			}
			pu := (u - panel.from) / (panel.to - panel.from)
			if pu < 0.02 || pu > 0.98 {
				c = shade(c, 0.8)
			}
			for _, d := range panel.doors {
				if d.contains(pu, v) {
					c = color.NRGBA{0x5a, 0x33, 0x1c, 0xff}
				}
			}
			for _, w := range panel.windows {
				if w.contains(pu, v) {
					c = color.NRGBA{0x9c, 0xc8, 0xe8, 0xff}
					// Glazing bars.
					if math.Abs(pu-(w.x0+w.x1)/2) < 0.01 || math.Abs(v-(w.y0+w.y1)/2) < 0.01 {
						c = color.NRGBA{0xf0, 0xf0, 0xf0, 0xff}
					}
				}
			}
		}
		return c
	})
}

// cubeHouse lays out front, right side, rear and left side in quarters.
func cubeHouse() image.Image {
	return house(color.NRGBA{0xe8, 0xdc, 0xc0, 0xff}, []struct {
		from, to float64
		doors    []rect
		windows  []rect
	}{
		{0, 0.25, []rect{{0.38, 0.55, 0.62, 1}}, []rect{{0.1, 0.2, 0.3, 0.45}, {0.7, 0.2, 0.9, 0.45}}},
		{0.25, 0.5, nil, []rect{{0.3, 0.25, 0.7, 0.55}}},
		{0.5, 0.75, nil, []rect{{0.15, 0.25, 0.4, 0.55}, {0.6, 0.25, 0.85, 0.55}}},
		{0.75, 1, nil, []rect{{0.3, 0.25, 0.7, 0.55}}},
	})
}

// semiHouse lays out the front over 0-0.4, a side over 0.4-0.6 and the rear over 0.6-1.
func semiHouse() image.Image {
	return house(color.NRGBA{0xd8, 0xc8, 0xb0, 0xff}, []struct {
		from, to float64
		doors    []rect
		windows  []rect
	}{
		{0, 0.4, []rect{{0.1, 0.55, 0.22, 1}, {0.78, 0.55, 0.9, 1}}, []rect{{0.3, 0.2, 0.45, 0.45}, {0.55, 0.2, 0.7, 0.45}}},
		{0.4, 0.6, nil, []rect{{0.3, 0.25, 0.7, 0.5}}},
		{0.6, 1, nil, []rect{{0.1, 0.25, 0.3, 0.5}, {0.4, 0.25, 0.6, 0.5}, {0.7, 0.25, 0.9, 0.5}}},
	})
}

// tree is a sprite: a conical crown on a trunk over a transparent background.
func tree() image.Image {
	size := proceduralSize
	return fill(size, func(x, y int) color.NRGBA {
		u, v := float64(x)/float64(size), float64(y)/float64(size)
		if v > 0.8 && math.Abs(u-0.5) < 0.05 {
			return color.NRGBA{0x5b, 0x3a, 0x1e, 0xff}
		}
		if v >= 0.05 && v <= 0.85 && math.Abs(u-0.5) < (v-0.05)*0.5 {
			f := 0.75 + 0.4*valueNoise(float64(x), float64(y), 6, 9)
			return shade(color.NRGBA{0x2f, 0x6b, 0x2a, 0xff}, f)
		}
		return color.NRGBA{}
	})
}

func flare() image.Image {
	size := proceduralSize
	half := float64(size) / 2
	return fill(size, func(x, y int) color.NRGBA {
		d := math.Hypot(float64(x)-half+0.5, float64(y)-half+0.5) / half
		a := math.Max(0, 1-d)
		a *= a
		return color.NRGBA{0xff, 0xff, 0xff, uint8(a * 255)}
	})
}

func planet() image.Image {
	return fill(proceduralSize, func(x, y int) color.NRGBA {
		band := math.Sin(float64(y)*0.25+4*valueNoise(float64(x), float64(y), 24, 10))*0.5 + 0.5
		return shade(color.NRGBA{0xc0, 0xc0, 0xc0, 0xff}, 0.7+0.4*band)
	})
}

// heightmap is flat in the middle, where the village sits, and rises into rough hills
// towards the edges.
func heightmap() image.Image {
	size := proceduralSize
	half := float64(size) / 2
	return fill(size, func(x, y int) color.NRGBA {
		d := math.Hypot(float64(x)-half, float64(y)-half) / half
		rise := math.Max(0, math.Min(1, (d-0.35)/0.55))
		rise = rise * rise * (3 - 2*rise)
		h := rise * (0.6 + 0.4*valueNoise(float64(x), float64(y), 12, 11))
		g := uint8(h * 255)
		return color.NRGBA{g, g, g, 0xff}
	})
}
