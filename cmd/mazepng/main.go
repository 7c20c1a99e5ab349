// Command mazepng renders a maze headlessly and writes it as a PNG file.
// It runs the same widget pipeline as the GUI build against a fixed
// container size, so a given seed and size reproduce the exact image.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"seedmaze/internal/render"
	"seedmaze/internal/widget"
)

func main() {
	opts := widget.DefaultOptions()
	opts.Bind(flag.CommandLine)
	size := flag.Int("size", 500, "output side length in pixels")
	out := flag.String("o", "maze.png", "output file")
	flag.Parse()

	surface := render.NewImageSurface(0)
	measure := func() (float64, float64) { return float64(*size), float64(*size) }

	if _, err := widget.New(surface, measure, nil, widget.WithOptions(opts)); err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := png.Encode(f, surface.Image()); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%dx%d)", *out, surface.Size(), surface.Size())
}
