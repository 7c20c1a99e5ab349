package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is the drawing primitive the renderer needs: a square pixel
// area that can be cleared and filled with axis-aligned rectangles. The
// GUI build backs it with an ebiten image; tests and the PNG exporter use
// ImageSurface.
type Surface interface {
	// Size returns the logical side length in pixels. The renderer
	// always draws in this unscaled coordinate space; implementations
	// apply any device-pixel-ratio transform themselves.
	Size() int
	// Resize re-sizes the surface to size*size logical pixels before a
	// draw pass. Implementations may discard existing content.
	Resize(size int)
	// Clear resets the surface to fully transparent.
	Clear()
	// FillRect fills the rectangle at (x, y) with the given extent.
	// Regions outside the surface are clipped.
	FillRect(x, y, w, h int, c color.Color)
}

// ImageSurface is a Surface over an in-memory RGBA image.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface allocates a size*size surface. Size zero is valid and
// yields a surface every draw clips away.
func NewImageSurface(size int) *ImageSurface {
	if size < 0 {
		size = 0
	}
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, size, size))}
}

// Size returns the side length in pixels.
func (s *ImageSurface) Size() int { return s.img.Rect.Dx() }

// Resize reallocates the backing image when the size changes.
func (s *ImageSurface) Resize(size int) {
	if size < 0 {
		size = 0
	}
	if size == s.Size() {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, size, size))
}

// Clear resets every pixel to transparent black.
func (s *ImageSurface) Clear() {
	draw.Draw(s.img, s.img.Rect, image.Transparent, image.Point{}, draw.Src)
}

// FillRect fills a rectangle, clipped to the surface bounds.
func (s *ImageSurface) FillRect(x, y, w, h int, c color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Image exposes the backing image, e.g. for PNG encoding or pixel probes.
func (s *ImageSurface) Image() *image.RGBA { return s.img }
