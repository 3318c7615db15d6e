package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// CameraConfig describes a camera by its image size, field of view and placement
type CameraConfig struct {
	Width       int        // Image width in pixels
	Height      int        // Image height in pixels
	FieldOfView float64    // Horizontal or vertical angle, whichever side is longer, in radians
	From        core.Tuple // Eye position
	To          core.Tuple // Point the camera looks at
	Up          core.Tuple // Approximate up direction
}

// Camera maps pixels of an image plane one unit in front of the eye to world-space rays
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform  core.Matrix
	inverse    core.Matrix
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the identity transform, looking down -z from the origin
func NewCamera(hsize, vsize int, fieldOfView float64) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("camera size must be positive, got %dx%d", hsize, vsize)
	}
	if fieldOfView <= 0 || fieldOfView >= math.Pi {
		return nil, fmt.Errorf("camera field of view must be in (0, pi), got %g", fieldOfView)
	}

	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c, nil
}

// NewCameraFromConfig creates a camera and orients it with a view transform
func NewCameraFromConfig(config CameraConfig) (*Camera, error) {
	c, err := NewCamera(config.Width, config.Height, config.FieldOfView)
	if err != nil {
		return nil, err
	}

	view, err := core.ViewTransform(config.From, config.To, config.Up)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	if err := c.SetTransform(view); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCameraFromView creates a camera of the given size for a preset scene's view
func NewCameraFromView(width, height int, view scene.View) (*Camera, error) {
	return NewCameraFromConfig(CameraConfig{
		Width:       width,
		Height:      height,
		FieldOfView: view.FieldOfView,
		From:        view.From,
		To:          view.To,
		Up:          view.Up,
	})
}

// Transform returns the world-to-camera transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetTransform sets the world-to-camera transform, failing if it cannot be inverted
func (c *Camera) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// PixelSize returns the width of one pixel on the image plane, in world units
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.Point(0, 0, 0))
	direction := pixel.Subtract(origin).MustNormalize()

	return core.NewRay(origin, direction)
}
