// Package widget holds the maze controller: it owns the configuration and
// the current grid, and orchestrates carving, drawing and teardown against
// an injected surface and container.
package widget

import (
	"errors"
	"image/color"
	"math"

	"seedmaze/internal/core"
	"seedmaze/internal/render"
)

// Measure reports the container's current width and height in logical
// pixels. Injected so the widget runs headlessly under test with a fixed
// size.
type Measure func() (width, height float64)

// Subscribe registers a resize callback and returns its cancel function.
// A nil Subscribe means no resize notifications.
type Subscribe func(onResize func()) (cancel func())

// ErrNoSurface is returned by New when the drawing surface is missing,
// the equivalent of an unresolvable mount target.
var ErrNoSurface = errors.New("widget: no drawing surface")

// ErrNoMeasure is returned by New when no container measurement is given.
var ErrNoMeasure = errors.New("widget: no container measure")

// Widget is the maze controller. All methods are single-threaded; the
// widget is the sole mutator of its options and grid.
type Widget struct {
	opts    Options
	grid    *core.Grid
	surface render.Surface
	measure Measure

	cancelResize func()
	destroyed    bool
}

// State is a point-in-time snapshot. Options and Grid are independent
// copies; Surface identifies the live drawing resource and is shared.
type State struct {
	Options Options
	Grid    *core.Grid
	Surface render.Surface
}

// New builds a widget over the given surface and container, merges opts
// over the defaults, carves the initial maze and draws it. Resize
// notifications from subscribe trigger redraws until Destroy.
func New(surface render.Surface, measure Measure, subscribe Subscribe, opts ...Option) (*Widget, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if measure == nil {
		return nil, ErrNoMeasure
	}
	w := &Widget{opts: DefaultOptions(), surface: surface, measure: measure}
	if subscribe != nil {
		w.cancelResize = subscribe(w.Redraw)
	}
	w.Regenerate(opts...)
	return w, nil
}

// Regenerate merges opts into the configuration, carves a fresh grid from
// the resulting cols/rows/seed/entry/exit and redraws. The previous grid
// is replaced wholesale.
func (w *Widget) Regenerate(opts ...Option) {
	w.apply(opts)
	if w.opts.Cols < 1 || w.opts.Rows < 1 {
		w.grid = nil
	} else {
		w.grid = core.Carve(w.opts.Cols, w.opts.Rows, w.opts.Seed, w.opts.Entry, w.opts.Exit)
	}
	w.Redraw()
}

// SetOptions merges opts into the configuration and redraws. It never
// recarves, even when cols, rows or seed changed; the existing grid is
// rendered against the new geometry as-is.
func (w *Widget) SetOptions(opts ...Option) {
	w.apply(opts)
	w.Redraw()
}

// Redraw re-measures the container, resizes the surface and renders the
// current grid. The grid itself is never touched. After Destroy this is
// a no-op.
func (w *Widget) Redraw() {
	if w.destroyed {
		return
	}
	size := w.pixelSize()
	w.surface.Resize(size)
	render.Draw(w.surface, w.grid, render.Params{
		PixelSize:      size,
		Cols:           w.opts.Cols,
		LineWidthRatio: w.opts.LineWidthRatio,
		WallColor:      w.wallColor(),
		BGColor:        w.bgColor(),
	})
}

// Destroy cancels the resize subscription and disables further redraws.
// Safe to call more than once; the subscription is released exactly once.
func (w *Widget) Destroy() {
	if w.cancelResize != nil {
		w.cancelResize()
		w.cancelResize = nil
	}
	w.destroyed = true
}

// Options returns a copy of the current configuration.
func (w *Widget) Options() Options { return w.opts }

// State returns a snapshot: deep copies of the options and grid plus the
// live surface handle. Mutating the snapshot cannot affect the widget.
func (w *Widget) State() State {
	s := State{Options: w.opts, Surface: w.surface}
	if w.grid != nil {
		s.Grid = w.grid.Clone()
	}
	return s
}

func (w *Widget) apply(opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(&w.opts)
		}
	}
}

// pixelSize measures the container and derives the square drawing size:
// floor(width), or floor(min(width, height)) under SquareByMin, shrunk by
// the padding on both sides and floored at zero.
func (w *Widget) pixelSize() int {
	width, height := w.measure()
	measured := width
	if w.opts.SquareBy == SquareByMin && height < width {
		measured = height
	}
	size := int(math.Floor(measured)) - 2*w.opts.Padding
	if size < 0 {
		size = 0
	}
	return size
}

func (w *Widget) wallColor() color.Color {
	if c, err := render.ParseHexColor(w.opts.WallColor); err == nil {
		return c
	}
	return render.MustHexColor(DefaultOptions().WallColor)
}

func (w *Widget) bgColor() color.Color {
	if c, err := render.ParseHexColor(w.opts.BGColor); err == nil {
		return c
	}
	return render.MustHexColor(DefaultOptions().BGColor)
}
