package geoimages

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/ijiayi/generate-geo-images/internal/grid"
)

const (
	// Annotation anchor, in pixels from the top-left corner.
	textOffsetX = 10
	textOffsetY = 10

	defaultCanvasFontSize = 20
	defaultMapFontSize    = 24

	jpegQuality = 90
)

// renderCanvas draws the plain fixture: a white canvas with the
// coordinate stated in the corner.
func (g *Generator) renderCanvas(p grid.Point) (image.Image, error) {
	dc := gg.NewContext(g.opts.Width, g.opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetFontFace(g.fontFace(defaultCanvasFontSize))
	dc.SetRGB(0, 0, 0)
	text := fmt.Sprintf("Lat: %.6f, Lon: %.6f", p.Lat, p.Lon)
	dc.DrawStringAnchored(text, textOffsetX, textOffsetY, 0, 1)

	return dc.Image(), nil
}

// fontFace loads the preferred font, falling back to the built-in bitmap
// face when the file is missing or unreadable. The fallback is never an
// error.
func (g *Generator) fontFace(defaultSize float64) font.Face {
	size := g.opts.FontSize
	if size <= 0 {
		size = defaultSize
	}
	if g.opts.FontPath != "" {
		face, err := gg.LoadFontFace(g.opts.FontPath, size)
		if err == nil {
			return face
		}
		g.log.Debug("font unavailable, using fallback face",
			"path", g.opts.FontPath, "error", err)
	}
	return basicfont.Face7x13
}

func writeJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}
