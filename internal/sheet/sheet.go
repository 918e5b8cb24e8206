package sheet

import (
	"errors"
	"fmt"
	"image"
	"io"
)

// ErrGeometry is returned when a cell size or window cannot hold a grid.
var ErrGeometry = errors.New("malformed grid geometry")

// Sheet is a decoded glyph sheet. CellWidth and CellHeight are zero when the
// decoder does not know the cell size (plain images).
type Sheet struct {
	Image                 image.Image
	CellWidth, CellHeight int
}

type Decoder interface {
	Decode(io.Reader) (*Sheet, error)
}

// Grid describes the cells of a sheet laid out row-major inside Bounds.
type Grid struct {
	Bounds     image.Rectangle
	Cell       image.Point
	Cols, Rows int
}

// NewGrid fits as many whole cells of size w x h as possible into bounds.
// Leftover pixels on the right and bottom edges are ignored.
func NewGrid(bounds image.Rectangle, w, h int) (Grid, error) {
	if w <= 0 || h <= 0 {
		return Grid{}, fmt.Errorf("%w: cell size %dx%d", ErrGeometry, w, h)
	}
	cols, rows := bounds.Dx()/w, bounds.Dy()/h
	if cols == 0 || rows == 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d window smaller than %dx%d cell",
			ErrGeometry, bounds.Dx(), bounds.Dy(), w, h)
	}
	return Grid{
		Bounds: bounds,
		Cell:   image.Pt(w, h),
		Cols:   cols,
		Rows:   rows,
	}, nil
}

func (g Grid) Len() int { return g.Cols * g.Rows }

// Rect returns the pixel rectangle of the cell at (row, col).
func (g Grid) Rect(row, col int) image.Rectangle {
	p := g.Bounds.Min.Add(image.Pt(col*g.Cell.X, row*g.Cell.Y))
	return image.Rectangle{Min: p, Max: p.Add(g.Cell)}
}
