//go:build ebiten

package app

import (
	"time"

	"seedmaze/internal/widget"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// App adapts the maze widget to the ebiten.Game interface. The window is
// the widget's container: Layout feeds the measured size, size changes
// fire the widget's resize subscription, and Draw blits the widget's
// surface at the padding offset.
type App struct {
	widget  *widget.Widget
	surface *Surface
	scale   int

	onResize func()
	width    float64
	height   float64
}

// New constructs the app and its widget, merging opts over the defaults.
func New(opts ...widget.Option) (*App, error) {
	a := &App{scale: deviceScale()}
	a.surface = NewSurface(a.scale)
	w, err := widget.New(a.surface, a.measure, a.subscribe, opts...)
	if err != nil {
		return nil, err
	}
	a.widget = w
	return a, nil
}

// deviceScale reads the monitor's device pixel ratio, rounded down and
// floored at 1.
func deviceScale() int {
	k := int(ebiten.DeviceScaleFactor())
	if k < 1 {
		k = 1
	}
	return k
}

// measure reports the window size last seen by Layout.
func (a *App) measure() (float64, float64) { return a.width, a.height }

// subscribe hands the widget's redraw callback to the layout-driven
// resize detection.
func (a *App) subscribe(onResize func()) func() {
	a.onResize = onResize
	return func() { a.onResize = nil }
}

// Update handles keys: R recarves with the current seed, S reseeds from
// the clock, Q or Escape quits.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.widget.Destroy()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.widget.Regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.widget.Regenerate(widget.WithSeed(uint32(time.Now().UnixNano())))
	}
	return nil
}

// Draw blits the widget surface onto the screen.
func (a *App) Draw(screen *ebiten.Image) {
	img := a.surface.Image()
	if img == nil {
		return
	}
	pad := float64(a.widget.Options().Padding * a.scale)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pad, pad)
	screen.DrawImage(img, op)
}

// Layout measures the window as the widget container and returns the
// physical screen size. A size change triggers the resize subscription.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != a.width || h != a.height {
		a.width, a.height = w, h
		if a.onResize != nil {
			a.onResize()
		}
	}
	sw, sh := outsideWidth*a.scale, outsideHeight*a.scale
	if sw < 1 {
		sw = 1
	}
	if sh < 1 {
		sh = 1
	}
	return sw, sh
}
