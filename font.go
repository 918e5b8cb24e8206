package gridfont

import (
	"fmt"
	"math"
)

// BitmapFont is a sequence of glyphs indexed by character code. Glyph 0 is
// the blank placeholder and every glyph shares the font's cell size.
//
// A BitmapFont is not safe for concurrent use while Resize or Rescale is
// running; callers sharing a font between goroutines must hold exclusive
// access for the duration of a resize.
type BitmapFont struct {
	name          string
	glyphs        []*Glyph
	width, height int
}

// NewBitmapFont creates a font from glyphs, where glyphs[n] is the glyph for
// character code n. The cell size is taken from glyphs[0]; the caller is
// responsible for all glyphs having that size.
func NewBitmapFont(name string, glyphs []*Glyph) (*BitmapFont, error) {
	if len(glyphs) == 0 {
		return nil, fmt.Errorf("%w: font %q has no glyphs", ErrGeometry, name)
	}
	for i, g := range glyphs {
		if g == nil {
			return nil, fmt.Errorf("%w: font %q glyph %d is nil", ErrGeometry, name, i)
		}
	}
	return &BitmapFont{
		name:   name,
		glyphs: append([]*Glyph(nil), glyphs...),
		width:  glyphs[0].Width(),
		height: glyphs[0].Height(),
	}, nil
}

// Name identifies the font; it plays no part in Equal.
func (f *BitmapFont) Name() string { return f.name }
func (f *BitmapFont) Width() int   { return f.width }
func (f *BitmapFont) Height() int  { return f.height }

// Len returns the number of glyphs, including the placeholder.
func (f *BitmapFont) Len() int { return len(f.glyphs) }

// Glyph returns the glyph for character code r.
func (f *BitmapFont) Glyph(r rune) (*Glyph, error) {
	if r < 0 || int64(r) >= int64(len(f.glyphs)) {
		return nil, fmt.Errorf("%w: %q (code %d) in font %q with %d glyphs",
			ErrUnsupportedCharacter, r, r, f.name, len(f.glyphs))
	}
	return f.glyphs[r], nil
}

// Glyphs returns a copy of the glyph sequence.
func (f *BitmapFont) Glyphs() []*Glyph {
	return append([]*Glyph(nil), f.glyphs...)
}

// Rescale multiplies the cell size by scale, rounding up, and resizes every
// glyph to it.
func (f *BitmapFont) Rescale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return fmt.Errorf("%w: scale %v", ErrGeometry, scale)
	}
	return f.Resize(
		int(math.Ceil(float64(f.width)*scale)),
		int(math.Ceil(float64(f.height)*scale)),
	)
}

// Resize resamples every glyph to width x height and makes that the font's
// cell size. On error the font is left unchanged.
func (f *BitmapFont) Resize(width, height int) error {
	resized := make([]*Glyph, len(f.glyphs))
	for i, g := range f.glyphs {
		ng, err := g.Resize(width, height)
		if err != nil {
			return fmt.Errorf("resizing font %q: %w", f.name, err)
		}
		resized[i] = ng
	}
	f.glyphs = resized
	f.width, f.height = width, height
	return nil
}

// DrawString draws text onto s with its top-left corner at (x, y). A newline
// returns to x and moves down one cell; a tab skips two cells. Every other
// character advances by its glyph's own width.
//
// If text contains a character the font has no glyph for, nothing is drawn
// and an error wrapping ErrUnsupportedCharacter is returned.
func (f *BitmapFont) DrawString(s Surface, text string, x, y int) error {
	glyphs := make([]*Glyph, 0, len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' {
			continue
		}
		g, err := f.Glyph(r)
		if err != nil {
			return err
		}
		glyphs = append(glyphs, g)
	}

	sx := x
	for _, r := range text {
		switch r {
		case '\n':
			x = sx
			y += f.height
		case '\t':
			x += 2 * f.width
		default:
			g := glyphs[0]
			glyphs = glyphs[1:]
			s.DrawImage(g.img, x, y)
			x += g.Width()
		}
	}
	return nil
}

// MeasureString returns the size of the area DrawString covers when drawing
// text at (0, 0). Characters without a glyph count as one cell.
func (f *BitmapFont) MeasureString(text string) (width, height int) {
	x, y := 0, 0
	for _, r := range text {
		gw, gh := f.width, f.height
		switch r {
		case '\n':
			x = 0
			y += f.height
		case '\t':
			x += 2 * f.width
		default:
			if g, err := f.Glyph(r); err == nil {
				gw, gh = g.Width(), g.Height()
			}
			x += gw
		}
		width = max(width, x)
		height = max(height, y+gh)
	}
	return width, height
}

// Equal reports whether f and o hold equal glyphs in the same order. Names
// are not compared.
func (f *BitmapFont) Equal(o *BitmapFont) bool {
	if f == nil || o == nil {
		return f == o
	}
	if len(f.glyphs) != len(o.glyphs) {
		return false
	}
	for i, g := range f.glyphs {
		if !g.Equal(o.glyphs[i]) {
			return false
		}
	}
	return true
}
