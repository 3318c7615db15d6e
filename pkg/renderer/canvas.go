package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a grid of unclamped colors, stored row-major
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("renderer: invalid canvas size %dx%d", width, height))
	}
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

func (c *Canvas) index(x, y int) int {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		panic(fmt.Sprintf("renderer: pixel (%d, %d) outside %dx%d canvas", x, y, c.Width, c.Height))
	}
	return y*c.Width + x
}

// PixelAt returns the color at (x, y). Out-of-range coordinates panic.
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[c.index(x, y)]
}

// WritePixel stores a color at (x, y). Out-of-range coordinates panic.
// Writes to distinct pixels may happen concurrently.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	c.pixels[c.index(x, y)] = col
}

// ToRGBA converts the canvas to an 8-bit image, clamping every channel to [0, 1]
func (c *Canvas) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.SetRGBA(x, y, toRGBA(c.PixelAt(x, y)))
		}
	}
	return img
}

func toRGBA(col core.Color) color.RGBA {
	col = col.Clamp(0, 1)
	return color.RGBA{
		R: uint8(math.Round(255 * col.R)),
		G: uint8(math.Round(255 * col.G)),
		B: uint8(math.Round(255 * col.B)),
		A: 255,
	}
}
