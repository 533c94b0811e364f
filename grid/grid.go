package grid

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"colorgrid/luma"

	"golang.org/x/image/draw"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMalformedInput  = errors.New("malformed input")
)

type Options struct {
	GridX     int
	GridY     int
	Thickness int
	ShowAll   bool
}

// Render converts src to grayscale and draws a gridX by gridY overlay of
// hard-edged segments onto it, each segment colored from the source pixel at
// its midpoint. The result reads as a color image although every non-segment
// pixel is gray. src is never modified.
//
// With ShowAll set, the result is source, grid image and plain grayscale
// side by side.
func Render(src image.Image, opts Options) (*image.NRGBA, error) {
	if opts.GridX <= 0 || opts.GridY <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d, both must be positive",
			ErrInvalidArgument, opts.GridX, opts.GridY)
	}
	if opts.Thickness <= 0 {
		return nil, fmt.Errorf("%w: line thickness %d, must be positive",
			ErrInvalidArgument, opts.Thickness)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: source image has zero area (%dx%d)",
			ErrMalformedInput, width, height)
	}

	source := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(source, source.Rect, src, bounds.Min, draw.Src)

	gray := luma.Flatten(source)

	work := image.NewNRGBA(gray.Rect)
	copy(work.Pix, gray.Pix)

	// Computed once, never accumulated, so rounding of each boundary stays
	// within half a pixel of its exact position.
	cellWidth := float64(width) / float64(opts.GridX)
	cellHeight := float64(height) / float64(opts.GridY)

	for i := 0; i < opts.GridX; i++ {
		x := round(float64(i) * cellWidth)
		for j := 0; j < opts.GridY; j++ {
			y0 := round(float64(j) * cellHeight)
			y1 := round(float64(j+1) * cellHeight)
			c := sample(source, x, round(float64(y0+y1)/2))
			drawSegment(work, image.Rect(x, y0, x+1, y1+1), opts.Thickness, c)
		}
	}

	// Horizontal segments last, so they win at intersections.
	for i := 0; i < opts.GridY; i++ {
		y := round(float64(i) * cellHeight)
		for j := 0; j < opts.GridX; j++ {
			x0 := round(float64(j) * cellWidth)
			x1 := round(float64(j+1) * cellWidth)
			c := sample(source, round(float64(x0+x1)/2), y)
			drawSegment(work, image.Rect(x0, y, x1+1, y+1), opts.Thickness, c)
		}
	}

	if !opts.ShowAll {
		return work, nil
	}

	all := image.NewNRGBA(image.Rect(0, 0, 3*width, height))
	for i, img := range []*image.NRGBA{source, work, gray} {
		r := image.Rect(i*width, 0, (i+1)*width, height)
		draw.Draw(all, r, img, image.Point{}, draw.Src)
	}
	return all, nil
}

func round(v float64) int {
	return int(math.Round(v))
}

// sample reads the source pixel at (x, y), clamped into bounds. The clamp
// only fires when a grid axis has more cells than the image has pixels.
func sample(src *image.NRGBA, x, y int) color.NRGBA {
	x = min(max(x, 0), src.Rect.Max.X-1)
	y = min(max(y, 0), src.Rect.Max.Y-1)
	return src.NRGBAAt(x, y)
}

// drawSegment thickens the one-pixel-wide segment rect across its short axis
// and fills it with c, clipped to dest. No anti-aliasing: the fill is a plain
// axis-aligned rectangle.
func drawSegment(dest *image.NRGBA, segment image.Rectangle, thickness int, c color.NRGBA) {
	if segment.Dx() == 1 {
		segment.Min.X -= thickness / 2
		segment.Max.X = segment.Min.X + thickness
	} else {
		segment.Min.Y -= thickness / 2
		segment.Max.Y = segment.Min.Y + thickness
	}

	draw.Draw(dest, segment.Intersect(dest.Rect), image.NewUniform(c), image.Point{}, draw.Src)
}
