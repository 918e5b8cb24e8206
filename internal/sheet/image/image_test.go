package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/pbnjay/gridfont/internal/sheet"
)

// testSheet builds a cols x rows sheet of w x h cells where every cell is
// filled with a distinct gray level (row*cols+col+1).
func testSheet(cols, rows, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, cols*w, rows*h))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			v := uint8(row*cols + col + 1)
			for y := row * h; y < (row+1)*h; y++ {
				for x := col * w; x < (col+1)*w; x++ {
					img.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
				}
			}
		}
	}
	return img
}

func assertCellValue(t *testing.T, i int, cell *image.NRGBA, v uint8) {
	t.Helper()
	b := cell.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := cell.NRGBAAt(x, y); c.R != v || c.A != 255 {
				t.Fatalf("cell %d pixel (%d,%d): expected gray %d got %v", i, x, y, v, c)
			}
		}
	}
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testSheet(3, 2, 4, 5)); err != nil {
		t.Fatal(err)
	}

	s, err := NewParser().Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if s.Image.Bounds() != image.Rect(0, 0, 12, 10) {
		t.Error("unexpected bounds", s.Image.Bounds())
	}
	if s.CellWidth != 0 || s.CellHeight != 0 {
		t.Error("image sheets should not carry a cell size", s.CellWidth, s.CellHeight)
	}
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, testSheet(2, 1, 3, 3)); err != nil {
		t.Fatal(err)
	}

	s, err := NewParser().Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if s.Image.Bounds().Dx() != 6 || s.Image.Bounds().Dy() != 3 {
		t.Error("unexpected bounds", s.Image.Bounds())
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := NewParser().Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected an error decoding garbage")
	}
}

func TestSliceNoOffset(t *testing.T) {
	cells, grid, err := Slice(testSheet(3, 2, 4, 5), 4, 5, nil)
	if err != nil {
		t.Fatal(err)
	}

	if grid.Cols != 3 || grid.Rows != 2 {
		t.Error("unexpected grid", grid.Cols, grid.Rows)
	}
	if len(cells) != 6 {
		t.Fatal("unexpected cell count", len(cells))
	}
	for i, c := range cells {
		if c.Bounds() != image.Rect(0, 0, 4, 5) {
			t.Error("unexpected cell bounds", i, c.Bounds())
		}
		assertCellValue(t, i, c, uint8(i+1))
	}
}

func TestSliceLeftover(t *testing.T) {
	// 14x11 holds 3x2 whole 4x5 cells; the remainder is dropped.
	img := image.NewNRGBA(image.Rect(0, 0, 14, 11))
	cells, grid, err := Slice(img, 4, 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 6 || grid.Cols != 3 || grid.Rows != 2 {
		t.Error("unexpected grid", len(cells), grid.Cols, grid.Rows)
	}
}

func TestSliceWindow(t *testing.T) {
	// skip the first column and keep only the first row
	cells, _, err := Slice(testSheet(3, 2, 4, 5), 4, 5, &Options{
		Offset: image.Point{4, 0},
		Size:   image.Point{0, 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 2 {
		t.Fatal("unexpected cell count", len(cells))
	}
	assertCellValue(t, 0, cells[0], 2)
	assertCellValue(t, 1, cells[1], 3)
}

func TestSliceBadGeometry(t *testing.T) {
	img := testSheet(1, 1, 4, 4)
	for _, sz := range []image.Point{{0, 4}, {4, -1}, {5, 4}, {4, 5}} {
		if _, _, err := Slice(img, sz.X, sz.Y, nil); !errors.Is(err, sheet.ErrGeometry) {
			t.Error("expected geometry error for", sz, "got", err)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	src := testSheet(2, 1, 2, 2)
	c := Clone(src, image.Rect(2, 0, 4, 2))
	src.SetNRGBA(2, 0, color.NRGBA{0xff, 0, 0, 0xff})
	assertCellValue(t, 0, c, 2)
}
