package text

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pbnjay/gridfont/internal/sheet"
)

// MaxRune is the largest character a text sheet may define.
const MaxRune = 0xff

// Ink is the color of set pixels in a rendered text sheet.
var Ink = color.NRGBA{0xff, 0xff, 0xff, 0xff}

type textParser struct{}

func NewParser() sheet.Decoder {
	return &textParser{}
}

// Decode reads glyphs in the text representation, one pixel row per line:
//
//	A  [ X ]
//	A  [X X]
//	B  [XX ]
//
// and renders them into a single-row sheet where the glyph for rune c
// occupies cell c-1. Undefined cells are left transparent.
func (p *textParser) Decode(r io.Reader) (*sheet.Sheet, error) {
	maxHeight, maxWidth := 0, 0
	maxRune := rune(0)
	lastCh := rune(0)

	glyphs := make(map[rune][]string)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, pixoffs := utf8.DecodeRuneInString(line)
		if c < 1 || c > MaxRune {
			return nil, fmt.Errorf("%w: line %d: character %q out of range", sheet.ErrGeometry, lineNo, c)
		}
		start := strings.IndexRune(line[pixoffs:], '[')
		if start < 0 {
			return nil, fmt.Errorf("%w: line %d: missing '['", sheet.ErrGeometry, lineNo)
		}
		pixoffs += start + 1
		ww := strings.IndexRune(line[pixoffs:], ']')
		if ww < 0 {
			return nil, fmt.Errorf("%w: line %d: missing ']'", sheet.ErrGeometry, lineNo)
		}

		if c != lastCh {
			if _, dup := glyphs[c]; dup {
				return nil, fmt.Errorf("%w: line %d: character %q defined twice", sheet.ErrGeometry, lineNo, c)
			}
		}

		if ww > maxWidth {
			maxWidth = ww
		}
		glyphs[c] = append(glyphs[c], line[pixoffs:pixoffs+ww])
		if hh := len(glyphs[c]); hh > maxHeight {
			maxHeight = hh
		}
		if c > maxRune {
			maxRune = c
		}
		lastCh = c
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if maxWidth == 0 || maxHeight == 0 {
		return nil, fmt.Errorf("%w: no glyphs defined", sheet.ErrGeometry)
	}

	img := image.NewNRGBA(image.Rect(0, 0, int(maxRune)*maxWidth, maxHeight))
	for c, rows := range glyphs {
		x0 := int(c-1) * maxWidth
		for y, row := range rows {
			for x := 0; x < len(row); x++ {
				if row[x] == 'X' {
					img.SetNRGBA(x0+x, y, Ink)
				}
			}
		}
	}

	return &sheet.Sheet{
		Image:      img,
		CellWidth:  maxWidth,
		CellHeight: maxHeight,
	}, nil
}
