// Package gridfont draws text with bitmap fonts cut from a single image.
//
// The source image is a grid of equally sized cells. Cells are read row by
// row, left to right, and the cell at grid position n becomes the glyph for
// character code n+1. Code 0 is always a blank placeholder glyph.
//
//	font, err := gridfont.LoadBitmapFontFile("terminal", "terminal.png", 8, 12, nil)
//	if err != nil {
//		return err
//	}
//	img := image.NewRGBA(image.Rect(0, 0, 320, 240))
//	err = font.DrawString(gridfont.NewImageSurface(img), "Hello\n\tWorld", 4, 4)
//
// Fonts scale uniformly with BitmapFont.Rescale and BitmapFont.Resize.
// Rescaling a whole font rounds the new cell size up, while Glyph.Rescale
// rounds a single glyph's size down.
package gridfont
