package gridfont

import (
	"errors"

	"github.com/pbnjay/gridfont/internal/sheet"
)

var (
	// ErrDecode is returned when a glyph sheet cannot be read or decoded.
	ErrDecode = errors.New("cannot decode glyph sheet")

	// ErrGeometry is returned for cell sizes, windows or glyph sequences
	// that cannot form a font.
	ErrGeometry = sheet.ErrGeometry

	// ErrUnsupportedCharacter is returned when a font has no glyph for a
	// character code.
	ErrUnsupportedCharacter = errors.New("unsupported character")
)
