// Luminance per ITU-R BT.601, the weights classically used for
// photographic grayscale conversion.

package luma

import (
	"image"
	"image/color"
	"math"
)

const (
	weightR = 0.299
	weightG = 0.587
	weightB = 0.114
)

type Color struct {
	Y     uint8 // luminance
	Alpha uint8
}

var Model = color.ModelFunc(lumaConvert)

func lumaConvert(c color.Color) color.Color {
	if lc, ok := c.(Color); ok {
		return lc
	}

	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		Y:     Weigh(nc.R, nc.G, nc.B),
		Alpha: nc.A,
	}
}

// Weigh collapses one RGB-ordered pixel to its luminance.
func Weigh(r, g, b uint8) uint8 {
	return uint8(math.Round(weightR*float64(r) + weightG*float64(g) + weightB*float64(b)))
}

func (lc Color) RGBA() (uint32, uint32, uint32, uint32) {
	return color.NRGBA{R: lc.Y, G: lc.Y, B: lc.Y, A: lc.Alpha}.RGBA()
}

func (lc Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: lc.Y, G: lc.Y, B: lc.Y, A: lc.Alpha}
}

// Flatten returns a new image with every pixel of src replaced by its
// luminance replicated across the three color channels. Alpha is kept.
// src is not modified.
func Flatten(src *image.NRGBA) *image.NRGBA {
	bounds := src.Bounds()
	dest := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y++ {
		si := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		di := dest.PixOffset(0, y)
		for x := 0; x < bounds.Dx(); x, si, di = x+1, si+4, di+4 {
			v := Weigh(src.Pix[si], src.Pix[si+1], src.Pix[si+2])
			dest.Pix[di] = v
			dest.Pix[di+1] = v
			dest.Pix[di+2] = v
			dest.Pix[di+3] = src.Pix[si+3]
		}
	}

	return dest
}
