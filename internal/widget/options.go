package widget

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"seedmaze/internal/core"
)

// SquareBy selects how the container measurement becomes a square size.
type SquareBy string

const (
	// SquareByWidth uses floor(width) and ignores height.
	SquareByWidth SquareBy = "width"
	// SquareByMin uses floor(min(width, height)).
	SquareByMin SquareBy = "min"
)

// Options is the full widget configuration. Carving consumes Cols, Rows,
// Seed, Entry and Exit; the remaining fields affect rendering only.
type Options struct {
	Cols int
	Rows int
	Seed uint32

	Entry core.Opening
	Exit  core.Opening

	WallColor      string
	BGColor        string
	LineWidthRatio float64
	SquareBy       SquareBy
	Padding        int
}

// DefaultOptions returns the standard configuration: a 5x5 maze, white
// walls on black, entry top-left, exit bottom-right.
func DefaultOptions() Options {
	return Options{
		Cols:           5,
		Rows:           5,
		Seed:           983811,
		Entry:          core.DefaultEntry(),
		Exit:           core.DefaultExit(),
		WallColor:      "#ffffff",
		BGColor:        "#000000",
		LineWidthRatio: 0.25,
		SquareBy:       SquareByWidth,
		Padding:        0,
	}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.IntVar(&o.Cols, "cols", o.Cols, "grid width in cells")
	fs.IntVar(&o.Rows, "rows", o.Rows, "grid height in cells")
	fs.StringVar(&o.WallColor, "wall", o.WallColor, "wall color (#rrggbb)")
	fs.StringVar(&o.BGColor, "bg", o.BGColor, "background color (#rrggbb)")
	fs.Float64Var(&o.LineWidthRatio, "line", o.LineWidthRatio, "wall thickness as a fraction of cell size")
	fs.IntVar(&o.Padding, "padding", o.Padding, "padding around the drawing surface in pixels")

	fs.Func("seed", "maze seed (32-bit unsigned)", func(v string) error {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return err
		}
		o.Seed = uint32(n)
		return nil
	})
	fs.Func("square-by", `container measurement: "width" or "min"`, func(v string) error {
		switch SquareBy(v) {
		case SquareByWidth, SquareByMin:
			o.SquareBy = SquareBy(v)
			return nil
		}
		return fmt.Errorf("unknown square-by %q", v)
	})
	fs.Func("entry", `entry opening as "x,y,side" (empty coordinate = default)`, func(v string) error {
		op, err := parseOpening(v)
		if err != nil {
			return err
		}
		o.Entry = op
		return nil
	})
	fs.Func("exit", `exit opening as "x,y,side" (empty coordinate = default)`, func(v string) error {
		op, err := parseOpening(v)
		if err != nil {
			return err
		}
		o.Exit = op
		return nil
	})
}

// parseOpening reads "x,y,side" with empty x or y meaning Auto.
func parseOpening(v string) (core.Opening, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		return core.Opening{}, fmt.Errorf("opening %q: want x,y,side", v)
	}
	o := core.Opening{X: core.Auto, Y: core.Auto}
	if parts[0] != "" {
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return core.Opening{}, err
		}
		o.X = n
	}
	if parts[1] != "" {
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return core.Opening{}, err
		}
		o.Y = n
	}
	side, err := core.ParseSide(parts[2])
	if err != nil {
		return core.Opening{}, err
	}
	o.Side = side
	return o, nil
}

// Option mutates one configuration field. Operations that accept partial
// updates take a list of these and merge them over the current options.
type Option func(*Options)

// WithOptions replaces the whole configuration, for callers that already
// assembled a complete Options value (e.g. from flags).
func WithOptions(full Options) Option { return func(o *Options) { *o = full } }

// WithCols sets the grid width.
func WithCols(cols int) Option { return func(o *Options) { o.Cols = cols } }

// WithRows sets the grid height.
func WithRows(rows int) Option { return func(o *Options) { o.Rows = rows } }

// WithSeed sets the carving seed.
func WithSeed(seed uint32) Option { return func(o *Options) { o.Seed = seed } }

// WithEntry sets the entry opening.
func WithEntry(e core.Opening) Option { return func(o *Options) { o.Entry = e } }

// WithExit sets the exit opening.
func WithExit(e core.Opening) Option { return func(o *Options) { o.Exit = e } }

// WithWallColor sets the wall fill color as a #rrggbb string.
func WithWallColor(hex string) Option { return func(o *Options) { o.WallColor = hex } }

// WithBGColor sets the background fill color as a #rrggbb string.
func WithBGColor(hex string) Option { return func(o *Options) { o.BGColor = hex } }

// WithLineWidthRatio sets wall thickness as a fraction of cell size.
func WithLineWidthRatio(r float64) Option { return func(o *Options) { o.LineWidthRatio = r } }

// WithSquareBy sets the container measurement strategy.
func WithSquareBy(s SquareBy) Option { return func(o *Options) { o.SquareBy = s } }

// WithPadding sets the padding around the drawing surface.
func WithPadding(px int) Option { return func(o *Options) { o.Padding = px } }
