//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"seedmaze/internal/app"
	"seedmaze/internal/widget"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := widget.DefaultOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	game, err := app.New(widget.WithOptions(opts))
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("seedmaze")
	ebiten.SetWindowSize(640, 640)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
