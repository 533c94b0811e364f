package main

import (
	"log/slog"

	"colorgrid/grid"

	"github.com/alecthomas/kong"
)

var cli grid.CLICmd

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("colorgrid"),
		kong.Description("Convert an image to grayscale and overlay a grid of segments "+
			"colored from the original, so the result still reads as a color image."),
		kong.UsageOnError(),
	)

	if err := kctx.Run(); err != nil {
		slog.Error("processing failed", "error", err)
		kctx.Exit(1)
	}
}
