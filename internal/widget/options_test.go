package widget

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedmaze/internal/core"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, 5, o.Cols)
	assert.Equal(t, 5, o.Rows)
	assert.Equal(t, uint32(983811), o.Seed)
	assert.Equal(t, core.Opening{X: 0, Y: 0, Side: core.SideTop}, o.Entry)
	assert.Equal(t, core.Opening{X: core.Auto, Y: core.Auto, Side: core.SideBottom}, o.Exit)
	assert.Equal(t, SquareByWidth, o.SquareBy)
}

func TestBindParsesFlags(t *testing.T) {
	o := DefaultOptions()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.Bind(fs)

	err := fs.Parse([]string{
		"-cols", "12",
		"-rows", "8",
		"-seed", "4294967295",
		"-wall", "#ff0000",
		"-square-by", "min",
		"-entry", "3,,left",
		"-exit", ",0,right",
	})
	require.NoError(t, err)

	assert.Equal(t, 12, o.Cols)
	assert.Equal(t, 8, o.Rows)
	assert.Equal(t, uint32(4294967295), o.Seed)
	assert.Equal(t, "#ff0000", o.WallColor)
	assert.Equal(t, SquareByMin, o.SquareBy)
	assert.Equal(t, core.Opening{X: 3, Y: core.Auto, Side: core.SideLeft}, o.Entry)
	assert.Equal(t, core.Opening{X: core.Auto, Y: 0, Side: core.SideRight}, o.Exit)
}

func TestBindRejectsBadValues(t *testing.T) {
	for _, args := range [][]string{
		{"-seed", "-1"},
		{"-seed", "4294967296"},
		{"-square-by", "max"},
		{"-entry", "1,2"},
		{"-entry", "1,2,north"},
		{"-exit", "x,2,top"},
	} {
		o := DefaultOptions()
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		o.Bind(fs)
		assert.Errorf(t, fs.Parse(args), "args %v should fail", args)
	}
}

func TestWithOptionsReplacesAll(t *testing.T) {
	o := DefaultOptions()
	full := DefaultOptions()
	full.Cols = 20
	full.Seed = 7
	WithOptions(full)(&o)
	assert.Equal(t, full, o)
}

func TestSettersTouchOneField(t *testing.T) {
	o := DefaultOptions()
	WithCols(9)(&o)
	WithLineWidthRatio(0.5)(&o)

	want := DefaultOptions()
	want.Cols = 9
	want.LineWidthRatio = 0.5
	assert.Equal(t, want, o)
}
