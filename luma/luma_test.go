package luma

import (
	"image"
	"image/color"
	"testing"
)

func TestWeigh(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint8
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{255, 0, 0, 76},
		{0, 255, 0, 150},
		{0, 0, 255, 29},
		{10, 20, 30, 18},
		{200, 100, 50, 124},
	}

	for _, tc := range cases {
		if got := Weigh(tc.r, tc.g, tc.b); got != tc.want {
			t.Errorf("Weigh(%d, %d, %d) = %d, want %d", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestWeighIdempotentOnGray(t *testing.T) {
	// A pixel with R = G = B must keep its value exactly.
	for v := 0; v <= 255; v++ {
		if got := Weigh(uint8(v), uint8(v), uint8(v)); got != uint8(v) {
			t.Errorf("Weigh(%d, %d, %d) = %d, want %d", v, v, v, got, v)
		}
	}
}

func TestModel(t *testing.T) {
	got := Model.Convert(color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	want := Color{Y: 124, Alpha: 128}
	if got != want {
		t.Errorf("Model.Convert = %v, want %v", got, want)
	}

	// Already-converted values pass through untouched.
	if got := Model.Convert(want); got != want {
		t.Errorf("Model.Convert(%v) = %v, want it unchanged", want, got)
	}
}

func TestFlatten(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	src.SetNRGBA(2, 1, color.NRGBA{R: 255, G: 0, B: 0, A: 64})

	got := Flatten(src)

	if got.Rect != src.Rect {
		t.Fatalf("Flatten changed bounds: got %v, want %v", got.Rect, src.Rect)
	}

	cases := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{R: 18, G: 18, B: 18, A: 255}},
		{1, 0, color.NRGBA{R: 124, G: 124, B: 124, A: 255}},
		{2, 1, color.NRGBA{R: 76, G: 76, B: 76, A: 64}},
	}
	for _, tc := range cases {
		if got := got.NRGBAAt(tc.x, tc.y); got != tc.want {
			t.Errorf("Flatten pixel (%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestFlattenDoesNotMutateSource(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	before := append([]uint8(nil), src.Pix...)

	Flatten(src)

	for i := range before {
		if src.Pix[i] != before[i] {
			t.Fatalf("Flatten mutated source at Pix[%d]: %d != %d", i, src.Pix[i], before[i])
		}
	}
}

func TestFlattenIdempotent(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v := uint8(16*y + 4*x)
			src.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}

	got := Flatten(src)
	for i := range src.Pix {
		if got.Pix[i] != src.Pix[i] {
			t.Fatalf("Flatten changed an already-gray image at Pix[%d]: %d != %d",
				i, got.Pix[i], src.Pix[i])
		}
	}
}
