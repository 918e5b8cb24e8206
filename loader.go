package gridfont

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	pimg "github.com/pbnjay/gridfont/internal/sheet/image"
	ptext "github.com/pbnjay/gridfont/internal/sheet/text"
)

// Options control how a glyph sheet is sliced. A nil *Options uses the
// whole image and does not log.
type Options struct {
	// Offset is the top-left corner of the grid within the image.
	Offset image.Point
	// Size limits the grid area; a zero component extends it to the image
	// edge.
	Size image.Point

	Logger *slog.Logger
}

func (o *Options) window() *pimg.Options {
	if o == nil {
		return nil
	}
	return &pimg.Options{Offset: o.Offset, Size: o.Size}
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// LoadBitmap decodes a PNG, GIF, JPEG, BMP, TIFF or WebP image.
func LoadBitmap(r io.Reader) (image.Image, error) {
	s, err := pimg.NewParser().Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return s.Image, nil
}

func LoadBitmapFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	img, err := LoadBitmap(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// ParseGlyphs cuts img into glyphWidth x glyphHeight cells. The result holds
// the placeholder glyph at index 0 followed by one glyph per cell, row by
// row. Pixels beyond the last whole row or column are ignored.
func ParseGlyphs(img image.Image, glyphWidth, glyphHeight int, opts *Options) ([]*Glyph, error) {
	cells, grid, err := pimg.Slice(img, glyphWidth, glyphHeight, opts.window())
	if err != nil {
		return nil, err
	}

	blank, err := None().Resize(glyphWidth, glyphHeight)
	if err != nil {
		return nil, err
	}

	glyphs := make([]*Glyph, len(cells)+1)
	glyphs[0] = blank
	for i, c := range cells {
		glyphs[i+1] = &Glyph{img: c}
	}

	opts.logger().Debug("parsed glyph sheet",
		slog.Any("window", grid.Bounds),
		slog.Int("cols", grid.Cols),
		slog.Int("rows", grid.Rows),
		slog.Int("glyphWidth", glyphWidth),
		slog.Int("glyphHeight", glyphHeight))

	return glyphs, nil
}

// LoadBitmapFont decodes a glyph sheet from r and builds a font from its
// glyphWidth x glyphHeight cells.
func LoadBitmapFont(name string, r io.Reader, glyphWidth, glyphHeight int, opts *Options) (*BitmapFont, error) {
	img, err := LoadBitmap(r)
	if err != nil {
		return nil, fmt.Errorf("loading font %q: %w", name, err)
	}
	return newFont(name, img, glyphWidth, glyphHeight, opts)
}

func LoadBitmapFontFile(name, path string, glyphWidth, glyphHeight int, opts *Options) (*BitmapFont, error) {
	img, err := LoadBitmapFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading font %q: %w", name, err)
	}
	return newFont(name, img, glyphWidth, glyphHeight, opts)
}

// LoadTextFont builds a font from the text representation, where each line
// is one pixel row of a character:
//
//	A  [ X ]
//	A  [X X]
//
// Set pixels are opaque white. Characters must be in the range 1-255 and the
// cell size is that of the largest glyph.
func LoadTextFont(name string, r io.Reader, opts *Options) (*BitmapFont, error) {
	s, err := ptext.NewParser().Decode(r)
	if err != nil {
		return nil, fmt.Errorf("loading font %q: %w", name, err)
	}
	return newFont(name, s.Image, s.CellWidth, s.CellHeight, opts)
}

func newFont(name string, img image.Image, glyphWidth, glyphHeight int, opts *Options) (*BitmapFont, error) {
	glyphs, err := ParseGlyphs(img, glyphWidth, glyphHeight, opts)
	if err != nil {
		return nil, fmt.Errorf("loading font %q: %w", name, err)
	}
	f, err := NewBitmapFont(name, glyphs)
	if err != nil {
		return nil, err
	}
	opts.logger().Debug("loaded bitmap font",
		slog.String("name", name),
		slog.Int("glyphs", f.Len()))
	return f, nil
}
