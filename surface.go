package gridfont

import (
	"image"

	"golang.org/x/image/draw"
)

// Surface is anything glyphs can be drawn onto.
type Surface interface {
	// DrawImage composites img with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y int)
}

// ImageSurface draws onto an in-memory image using source-over
// compositing, so transparent glyph pixels leave the destination intact.
type ImageSurface struct {
	Dst draw.Image
}

func NewImageSurface(dst draw.Image) *ImageSurface {
	return &ImageSurface{Dst: dst}
}

func (s *ImageSurface) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	r := image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+b.Dx(), y+b.Dy())}
	draw.Draw(s.Dst, r, img, b.Min, draw.Over)
}
