package image

import (
	"fmt"
	"image"
	"io"

	"golang.org/x/image/draw"

	// decoders accepted for glyph sheets
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pbnjay/gridfont/internal/sheet"
)

// Options selects a window of the image to slice.
type Options struct {
	Offset image.Point
	Size   image.Point
}

type imageParser struct{}

func (p *imageParser) Decode(r io.Reader) (*sheet.Sheet, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return &sheet.Sheet{Image: img}, nil
}

func NewParser() sheet.Decoder {
	return &imageParser{}
}

// Window returns the region of bounds selected by options. Offset is
// relative to bounds.Min and a zero Size component extends the window to the
// edge of the image.
func Window(bounds image.Rectangle, options *Options) image.Rectangle {
	if options == nil {
		return bounds
	}
	w := bounds
	w.Min = bounds.Min.Add(options.Offset)
	if options.Size.X != 0 {
		w.Max.X = w.Min.X + options.Size.X
	}
	if options.Size.Y != 0 {
		w.Max.Y = w.Min.Y + options.Size.Y
	}
	return w.Intersect(bounds)
}

// Clone copies the r region of src into a new image whose bounds start at
// the origin.
func Clone(src image.Image, r image.Rectangle) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Copy(dst, image.Point{}, src, r, draw.Src, nil)
	return dst
}

// Slice cuts img into glyph cells of w x h pixels inside the window and
// returns them row by row, left to right.
func Slice(img image.Image, w, h int, options *Options) ([]*image.NRGBA, sheet.Grid, error) {
	window := Window(img.Bounds(), options)
	grid, err := sheet.NewGrid(window, w, h)
	if err != nil {
		return nil, sheet.Grid{}, fmt.Errorf("slicing %v: %w", window, err)
	}

	cells := make([]*image.NRGBA, 0, grid.Len())
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			cells = append(cells, Clone(img, grid.Rect(row, col)))
		}
	}
	return cells, grid, nil
}
