package gridfont

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func uniformImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func assertSize(t *testing.T, g *Glyph, w, h int) {
	t.Helper()
	if g.Width() != w || g.Height() != h {
		t.Errorf("expected %dx%d glyph, got %dx%d", w, h, g.Width(), g.Height())
	}
}

func TestNone(t *testing.T) {
	n := None()
	assertSize(t, n, 1, 1)
	if None() != n {
		t.Error("None should return the shared placeholder")
	}
	if _, _, _, a := n.Image().At(0, 0).RGBA(); a != 0 {
		t.Error("placeholder should be transparent, alpha", a)
	}
}

func TestNewGlyphCopies(t *testing.T) {
	red := color.NRGBA{0xff, 0, 0, 0xff}
	src := uniformImage(4, 4, red)
	g := NewGlyph(src)
	src.SetNRGBA(0, 0, color.NRGBA{})

	if g.Image().At(0, 0) != red {
		t.Error("glyph changed with its source image")
	}
}

func TestNewGlyphSubImage(t *testing.T) {
	src := uniformImage(8, 8, color.NRGBA{0, 0, 0xff, 0xff})
	g := NewGlyph(src.SubImage(image.Rect(2, 3, 6, 8)))
	assertSize(t, g, 4, 5)
	if b := g.Image().Bounds(); b.Min != (image.Point{}) {
		t.Error("glyph image should start at the origin, got", b)
	}
}

func TestGlyphResize(t *testing.T) {
	green := color.NRGBA{0, 0xff, 0, 0xff}
	g := NewGlyph(uniformImage(8, 12, green))

	big, err := g.Resize(16, 24)
	if err != nil {
		t.Fatal(err)
	}
	assertSize(t, big, 16, 24)
	assertSize(t, g, 8, 12)
	if big.Image().At(15, 23) != green {
		t.Error("unexpected pixel after resize", big.Image().At(15, 23))
	}

	blank, err := None().Resize(8, 12)
	if err != nil {
		t.Fatal(err)
	}
	assertSize(t, blank, 8, 12)
	if _, _, _, a := blank.Image().At(7, 11).RGBA(); a != 0 {
		t.Error("resized placeholder should stay transparent, alpha", a)
	}
}

func TestGlyphResizeInvalid(t *testing.T) {
	g := NewGlyph(uniformImage(8, 12, color.NRGBA{A: 0xff}))
	for _, sz := range []image.Point{{0, 12}, {8, 0}, {-8, 12}} {
		if _, err := g.Resize(sz.X, sz.Y); !errors.Is(err, ErrGeometry) {
			t.Error("expected geometry error for", sz, "got", err)
		}
	}
}

func TestGlyphRescaleFloors(t *testing.T) {
	g := NewGlyph(uniformImage(8, 12, color.NRGBA{A: 0xff}))

	r, err := g.Rescale(1.5)
	if err != nil {
		t.Fatal(err)
	}
	assertSize(t, r, 12, 18)

	// 8*0.3 = 2.4, 12*0.3 = 3.6
	r, err = g.Rescale(0.3)
	if err != nil {
		t.Fatal(err)
	}
	assertSize(t, r, 2, 3)

	if _, err := g.Rescale(0.05); !errors.Is(err, ErrGeometry) {
		t.Error("expected geometry error for a scale rounding to zero, got", err)
	}
	if _, err := g.Rescale(math.NaN()); !errors.Is(err, ErrGeometry) {
		t.Error("expected geometry error for NaN scale, got", err)
	}
}

func TestGlyphEqual(t *testing.T) {
	c := color.NRGBA{0x10, 0x20, 0x30, 0xff}
	a := NewGlyph(uniformImage(4, 4, c))
	b := NewGlyph(uniformImage(4, 4, c))
	if !a.Equal(b) {
		t.Error("pixel-identical glyphs should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("pixel-identical glyphs should hash equally")
	}

	d := uniformImage(4, 4, c)
	d.SetNRGBA(3, 3, color.NRGBA{})
	if a.Equal(NewGlyph(d)) {
		t.Error("glyphs with different pixels should not be equal")
	}

	// same pixel count, different shape
	if NewGlyph(uniformImage(2, 8, c)).Equal(a) {
		t.Error("glyphs with different sizes should not be equal")
	}
	if a.Equal(nil) {
		t.Error("glyph should not equal nil")
	}
}
