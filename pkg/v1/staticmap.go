package geoimages

import (
	"fmt"
	"image"
	"image/color"

	sm "github.com/flopp/go-staticmaps"
	"github.com/fogleman/gg"
	"github.com/golang/geo/s2"

	"github.com/ijiayi/generate-geo-images/internal/grid"
)

const markerSize = 16.0

// renderMap fetches and composites map tiles centered on the point, drops
// a marker on the coordinate, and overlays the annotation text.
//
// Tile fetching is network-backed; failures here are per-point external
// errors and surface as ErrRender from the emitter.
func (g *Generator) renderMap(p grid.Point) (image.Image, error) {
	pos := s2.LatLngFromDegrees(p.Lat, p.Lon)

	mc := sm.NewContext()
	mc.SetSize(g.opts.Width, g.opts.Height)
	mc.SetZoom(g.opts.Zoom)
	mc.SetCenter(pos)
	if g.opts.TileURLPattern != "" {
		mc.SetTileProvider(g.tileProvider())
	}
	if g.opts.UserAgent != "" {
		mc.SetUserAgent(g.opts.UserAgent)
	}
	mc.AddObject(sm.NewMarker(pos, color.RGBA{R: 0xff, A: 0xff}, markerSize))

	img, err := mc.Render()
	if err != nil {
		return nil, fmt.Errorf("render tiles: %w", err)
	}

	return g.annotateMap(img, p), nil
}

// tileProvider builds a provider for the configured tile source override.
func (g *Generator) tileProvider() *sm.TileProvider {
	return &sm.TileProvider{
		Name:       "custom",
		TileSize:   256,
		URLPattern: g.opts.TileURLPattern,
		Shards:     g.opts.TileShards,
	}
}

// annotateMap overlays the coordinate and zoom text with a white stroke
// so it stays readable over arbitrary tile imagery.
func (g *Generator) annotateMap(img image.Image, p grid.Point) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetFontFace(g.fontFace(defaultMapFontSize))

	lines := []string{
		fmt.Sprintf("Lat, Lon: %.6f, %.6f", p.Lat, p.Lon),
		fmt.Sprintf("Zoom: %d", g.opts.Zoom),
	}

	lineHeight := dc.FontHeight() * 1.4
	y := float64(textOffsetY)
	for _, line := range lines {
		// Stroke pass: the text repeated in white around the anchor.
		dc.SetRGB(1, 1, 1)
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				dc.DrawStringAnchored(line, textOffsetX+float64(dx), y+float64(dy), 0, 1)
			}
		}
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(line, textOffsetX, y, 0, 1)
		y += lineHeight
	}

	return dc.Image()
}
