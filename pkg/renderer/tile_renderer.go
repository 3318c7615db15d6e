package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Band is a horizontal strip of whole rows rendered as one task
type Band struct {
	ID     int             // Position of the band, top to bottom
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewBandGrid splits an image into bands of at most rowsPerBand rows
func NewBandGrid(width, height, rowsPerBand int) []Band {
	if rowsPerBand <= 0 {
		rowsPerBand = 1
	}

	var bands []Band
	for y0 := 0; y0 < height; y0 += rowsPerBand {
		y1 := min(y0+rowsPerBand, height) // Don't exceed image bounds
		bands = append(bands, Band{
			ID:     len(bands),
			Bounds: image.Rect(0, y0, width, y1),
		})
	}
	return bands
}

// BandRenderer shades the pixels of a band into a canvas
type BandRenderer struct {
	world    *scene.World
	camera   *Camera
	maxDepth int
}

// NewBandRenderer creates a band renderer for a world seen through camera
func NewBandRenderer(world *scene.World, camera *Camera, maxDepth int) *BandRenderer {
	return &BandRenderer{
		world:    world,
		camera:   camera,
		maxDepth: maxDepth,
	}
}

// RenderBounds colors every pixel inside bounds, row by row.
// Bands handed to concurrent callers must not overlap.
func (br *BandRenderer) RenderBounds(bounds image.Rectangle, canvas *Canvas) RenderStats {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := br.camera.RayForPixel(x, y)
			canvas.WritePixel(x, y, br.world.ColorAt(ray, br.maxDepth))
		}
	}

	return RenderStats{
		Pixels: bounds.Dx() * bounds.Dy(),
		Rows:   bounds.Dy(),
		Tasks:  1,
	}
}
