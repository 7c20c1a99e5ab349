package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedmaze/internal/core"
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

func params(size, cols int) Params {
	return Params{
		PixelSize:      size,
		Cols:           cols,
		LineWidthRatio: 0.25,
		WallColor:      white,
		BGColor:        black,
	}
}

func TestThickness(t *testing.T) {
	assert.Equal(t, 25, Thickness(100, 0.25))
	assert.Equal(t, 1, Thickness(2, 0.1))
	assert.Equal(t, 1, Thickness(100, 0))
	assert.Equal(t, 13, Thickness(50, 0.25))
}

func TestDrawGeometryScenario(t *testing.T) {
	// cols=5, pixelSize=500, ratio=0.25: cell=100, thickness=25.
	g := core.NewGrid(5, 5)
	dst := NewImageSurface(500)
	Draw(dst, g, params(500, 5))

	img := dst.Image()

	t.Run("top wall band", func(t *testing.T) {
		assert.Equal(t, white, img.RGBAAt(50, 0))
		assert.Equal(t, white, img.RGBAAt(50, 24))
		assert.Equal(t, black, img.RGBAAt(50, 25))
	})

	t.Run("left wall band", func(t *testing.T) {
		assert.Equal(t, white, img.RGBAAt(0, 50))
		assert.Equal(t, white, img.RGBAAt(24, 50))
		assert.Equal(t, black, img.RGBAAt(25, 50))
	})

	t.Run("interior wall drawn in a single pass", func(t *testing.T) {
		// Wall between columns 0 and 1 sits at x in [100, 125).
		assert.Equal(t, white, img.RGBAAt(100, 50))
		assert.Equal(t, white, img.RGBAAt(124, 50))
		assert.Equal(t, black, img.RGBAAt(125, 50))
	})

	t.Run("outer right and bottom boundary", func(t *testing.T) {
		assert.Equal(t, white, img.RGBAAt(499, 250))
		assert.Equal(t, white, img.RGBAAt(475, 250))
		assert.Equal(t, black, img.RGBAAt(474, 250))
		assert.Equal(t, white, img.RGBAAt(250, 499))
		assert.Equal(t, white, img.RGBAAt(250, 475))
		assert.Equal(t, black, img.RGBAAt(250, 474))
	})
}

func TestDrawOpenWallShowsBackground(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.OpenWall(0, 0, core.SideTop)
	dst := NewImageSurface(500)
	Draw(dst, g, params(500, 5))

	img := dst.Image()
	// Opened entry band shows background, except where the left wall
	// column crosses it.
	assert.Equal(t, black, img.RGBAAt(50, 10))
	assert.Equal(t, white, img.RGBAAt(10, 10))
	// Neighbor cell's top wall is untouched.
	assert.Equal(t, white, img.RGBAAt(150, 10))
}

func TestDrawIdempotent(t *testing.T) {
	g := core.Carve(5, 5, 983811, core.DefaultEntry(), core.DefaultExit())

	a := NewImageSurface(500)
	b := NewImageSurface(500)
	Draw(a, g, params(500, 5))
	Draw(b, g, params(500, 5))
	require.Equal(t, a.Image().Pix, b.Image().Pix)

	// Drawing again over a dirty surface gives the same pixels.
	Draw(a, g, params(500, 5))
	require.Equal(t, b.Image().Pix, a.Image().Pix)
}

func TestDrawZeroSize(t *testing.T) {
	g := core.NewGrid(3, 3)
	dst := NewImageSurface(0)
	assert.NotPanics(t, func() { Draw(dst, g, params(0, 3)) })
}

func TestDrawNilGridClearsOnly(t *testing.T) {
	dst := NewImageSurface(10)
	Draw(dst, nil, params(10, 5))
	assert.Equal(t, black, dst.Image().RGBAAt(5, 5))
}

func TestDrawStaleColsUsesConfiguredGeometry(t *testing.T) {
	// A 5x5 grid drawn with Cols=10 halves the cell size; the grid's
	// own walls still render, in the top-left quadrant.
	g := core.NewGrid(5, 5)
	dst := NewImageSurface(500)
	p := params(500, 10)
	Draw(dst, g, p)

	img := dst.Image()
	// cell=50, t=13; wall band of cell (1,0) starts at x=50.
	assert.Equal(t, white, img.RGBAAt(60, 0))
	// Beyond the 5-column grid extent only background remains.
	assert.Equal(t, black, img.RGBAAt(400, 400))
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ffffff")
	require.NoError(t, err)
	assert.Equal(t, white, c)

	c, err = ParseHexColor("#000000")
	require.NoError(t, err)
	assert.Equal(t, black, c)

	_, err = ParseHexColor("not-a-color")
	assert.Error(t, err)
}
