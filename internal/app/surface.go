//go:build ebiten

package app

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface backs render.Surface with an offscreen ebiten image. The
// backing resolution is the logical size multiplied by the device pixel
// ratio; fills arrive in logical coordinates and are scaled here, so the
// renderer never sees the ratio.
type Surface struct {
	img   *ebiten.Image
	size  int
	scale int
}

// NewSurface creates an empty surface with the given device pixel ratio
// (minimum 1).
func NewSurface(scale int) *Surface {
	if scale < 1 {
		scale = 1
	}
	return &Surface{scale: scale}
}

// Size returns the logical side length.
func (s *Surface) Size() int { return s.size }

// Resize reallocates the backing image at size*scale physical pixels.
// Size zero releases the image; ebiten images cannot be empty.
func (s *Surface) Resize(size int) {
	if size < 0 {
		size = 0
	}
	if size == s.size && (s.img != nil || size == 0) {
		return
	}
	if s.img != nil {
		s.img.Dispose()
		s.img = nil
	}
	s.size = size
	if size > 0 {
		s.img = ebiten.NewImage(size*s.scale, size*s.scale)
	}
}

// Clear resets the backing image to transparent.
func (s *Surface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

// FillRect fills a logical-coordinate rectangle, scaled to the backing
// resolution and clipped to the surface.
func (s *Surface) FillRect(x, y, w, h int, c color.Color) {
	if s.img == nil || w <= 0 || h <= 0 {
		return
	}
	k := s.scale
	r := image.Rect(x*k, y*k, (x+w)*k, (y+h)*k).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	s.img.SubImage(r).(*ebiten.Image).Fill(c)
}

// Image exposes the backing image for blitting; nil while the surface has
// zero size.
func (s *Surface) Image() *ebiten.Image { return s.img }
