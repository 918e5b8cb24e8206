package gridfont

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/nfnt/resize"

	pimg "github.com/pbnjay/gridfont/internal/sheet/image"
)

// Glyph is the image of a single character. Glyphs are immutable and may be
// shared freely; resizing returns a new Glyph.
type Glyph struct {
	img *image.NRGBA
}

var none = sync.OnceValue(func() *Glyph {
	return &Glyph{img: image.NewNRGBA(image.Rect(0, 0, 1, 1))}
})

// None returns the shared 1x1 transparent glyph used as the placeholder for
// character code 0.
func None() *Glyph {
	return none()
}

// NewGlyph creates a glyph from a copy of img's pixels.
func NewGlyph(img image.Image) *Glyph {
	return &Glyph{img: pimg.Clone(img, img.Bounds())}
}

// Rescale returns a copy of g with both dimensions multiplied by scale and
// rounded down.
func (g *Glyph) Rescale(scale float64) (*Glyph, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: scale %v", ErrGeometry, scale)
	}
	return g.Resize(
		int(math.Floor(float64(g.Width())*scale)),
		int(math.Floor(float64(g.Height())*scale)),
	)
}

// Resize returns a copy of g resampled to exactly width x height pixels.
func (g *Glyph) Resize(width, height int) (*Glyph, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: glyph size %dx%d", ErrGeometry, width, height)
	}
	scaled := resize.Resize(uint(width), uint(height), g.img, resize.NearestNeighbor)
	return &Glyph{img: pimg.Clone(scaled, scaled.Bounds())}, nil
}

// Image returns a copy of the glyph's pixels with bounds starting at (0,0).
func (g *Glyph) Image() image.Image {
	return pimg.Clone(g.img, g.img.Bounds())
}

func (g *Glyph) Width() int  { return g.img.Bounds().Dx() }
func (g *Glyph) Height() int { return g.img.Bounds().Dy() }

// Equal reports whether g and o have the same size and pixels.
func (g *Glyph) Equal(o *Glyph) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.img.Rect.Size() == o.img.Rect.Size() && bytes.Equal(g.img.Pix, o.img.Pix)
}

// Hash returns a content hash; equal glyphs have equal hashes.
func (g *Glyph) Hash() uint64 {
	var size [16]byte
	binary.LittleEndian.PutUint64(size[:8], uint64(g.Width()))
	binary.LittleEndian.PutUint64(size[8:], uint64(g.Height()))

	d := xxhash.New()
	d.Write(size[:])
	d.Write(g.img.Pix)
	return d.Sum64()
}
