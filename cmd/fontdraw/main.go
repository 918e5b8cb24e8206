// fontdraw renders text with a bitmap font cut from a grid image. Draw your
// characters into equally sized cells, in character code order starting at
// code 1, then run:
//
//	./fontdraw -img terminal.png -gw 8 -gh 12 -m "Hello, World!" -o hello.png
//
// Without -o, the glyphs are dumped to stdout in the text representation
// accepted by -txt.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/pbnjay/gridfont"
	"github.com/pbnjay/gridfont/internal/log"
)

var (
	imageName   = flag.String("img", "", "grid image file to load the font from")
	glyphWidth  = flag.Int("gw", 8, "glyph cell width")
	glyphHeight = flag.Int("gh", 12, "glyph cell height")
	startX      = flag.Int("x", 0, "starting X position of the grid")
	startY      = flag.Int("y", 0, "starting Y position of the grid")
	width       = flag.Int("w", 0, "grid width (0 = to the image edge)")
	height      = flag.Int("h", 0, "grid height (0 = to the image edge)")

	textName = flag.String("txt", "", "text file to load the font from")

	message = flag.String("m", "Hello, World!", "message text to draw")
	scale   = flag.Float64("scale", 1, "font scale")
	outName = flag.String("o", "", "output PNG filename")

	logFile  = flag.String("log", "", "log file (default stderr)")
	logLevel = flag.String("level", "warn", "log level: debug, info, warn, error")
)

func loadFont(lg *log.Logger) (*gridfont.BitmapFont, error) {
	opts := &gridfont.Options{
		Offset: image.Pt(*startX, *startY),
		Size:   image.Pt(*width, *height),
		Logger: lg.Slog(),
	}

	if *imageName != "" {
		return gridfont.LoadBitmapFontFile(*imageName, *imageName, *glyphWidth, *glyphHeight, opts)
	}

	f, err := os.Open(*textName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return gridfont.LoadTextFont(*textName, f, opts)
}

func drawMessage(font *gridfont.BitmapFont, msg string, name string) error {
	// create a PNG just larger than the text
	w, h := font.MeasureString(msg)
	pad := font.Width()
	img := image.NewRGBA(image.Rect(0, 0, w+2*pad, h+2*pad))

	if err := font.DrawString(gridfont.NewImageSurface(img), msg, pad, pad); err != nil {
		return err
	}

	f, err := os.OpenFile(name, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// glyphRows returns the text representation of g, one string per pixel row,
// with 'X' for every pixel that is not fully transparent.
func glyphRows(g *gridfont.Glyph) []string {
	img := g.Image()
	rows := make([]string, g.Height())
	for y := range rows {
		line := make([]byte, g.Width())
		for x := range line {
			line[x] = ' '
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				line[x] = 'X'
			}
		}
		rows[y] = string(line)
	}
	return rows
}

func dumpFont(w io.Writer, font *gridfont.BitmapFont) {
	for code, g := range font.Glyphs() {
		r := rune(code)
		if code == 0 || !unicode.IsGraphic(r) || unicode.IsSpace(r) {
			continue
		}
		rows := glyphRows(g)
		if strings.TrimSpace(strings.Join(rows, "")) == "" {
			continue
		}
		for _, line := range rows {
			fmt.Fprintf(w, "%c  [%s]\n", r, line)
		}
	}
}

func main() {
	flag.Parse()

	if *imageName == "" && *textName == "" {
		fmt.Fprintln(os.Stderr, "-img or -txt should be provided")
		flag.Usage()
		os.Exit(1)
	}

	lg, err := log.New(*logLevel, *logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	font, err := loadFont(lg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading font:", err)
		os.Exit(1)
	}

	if *scale != 1 {
		if err := font.Rescale(*scale); err != nil {
			fmt.Fprintln(os.Stderr, "error scaling font:", err)
			os.Exit(1)
		}
	}
	lg.Info("font ready",
		slog.String("name", font.Name()),
		slog.Int("glyphs", font.Len()),
		slog.Int("width", font.Width()),
		slog.Int("height", font.Height()),
		slog.Duration("elapsed", lg.Elapsed()))

	if *outName == "" {
		// dump a text representation of the font to stdout
		dumpFont(os.Stdout, font)
		return
	}

	if err := drawMessage(font, *message, *outName); err != nil {
		lg.Errorf("drawing %q: %v", *message, err)
		fmt.Fprintln(os.Stderr, "error drawing message:", err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "Created image file:", *outName)
}
