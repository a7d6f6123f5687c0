package geoimages

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/ijiayi/generate-geo-images/internal/grid"
)

// Bounds represents a geographic bounding box in WGS-84 decimal degrees.
type Bounds struct {
	MinLat float64 // Southern edge
	MaxLat float64 // Northern edge
	MinLon float64 // Western edge
	MaxLon float64 // Eastern edge
}

// Contains returns true if the point (lat, lon) is within the bounds.
func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxLat < b.MinLat ||
		other.MinLat > b.MaxLat ||
		other.MaxLon < b.MinLon ||
		other.MinLon > b.MaxLon)
}

// Expand returns a new Bounds expanded by the given margin in all
// directions.
//
// Margin is in decimal degrees.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinLat: b.MinLat - margin,
		MaxLat: b.MaxLat + margin,
		MinLon: b.MinLon - margin,
		MaxLon: b.MaxLon + margin,
	}
}

// SamplePoint is one coordinate selected by the grid sampler.
type SamplePoint struct {
	Lat float64
	Lon float64
}

// Artifact records one emitted fixture image and the coordinate embedded
// in its GPS tags.
type Artifact struct {
	Path string
	Lat  float64
	Lon  float64
}

// Report summarizes a generation run.
type Report struct {
	// Artifacts lists successfully emitted images in sample order.
	Artifacts []Artifact

	// Errors collects per-point failures that were skipped. Empty when
	// every point emitted cleanly.
	Errors []error
}

// Generator produces geo-tagged fixture images for a bounding box.
//
// A Generator is safe for use from a single goroutine; emission itself is
// parallelized internally according to Options.Emit.
type Generator struct {
	opts Options
	log  *slog.Logger
}

// New validates opts and returns a Generator.
//
// Configuration errors are reported with typed errors before any
// filesystem or network work happens: inverted bounds, non-positive step,
// non-positive dimensions, out-of-range zoom, and bounds so close to the
// poles that no usable longitude step exists.
func New(opts Options) (*Generator, error) {
	b := opts.Bounds
	if b.MinLat > b.MaxLat || b.MinLon > b.MaxLon {
		return nil, &ErrInvalidBounds{Bounds: b}
	}
	if opts.StepKM <= 0 {
		return nil, &ErrInvalidStep{StepKM: opts.StepKM}
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, &ErrInvalidSize{Width: opts.Width, Height: opts.Height}
	}
	if opts.Map && (opts.Zoom < 0 || opts.Zoom > 20) {
		return nil, &ErrInvalidZoom{Zoom: opts.Zoom}
	}

	// Near ±90° the convergence correction degenerates: cos(latMin)
	// underflows toward zero (step wider than the globe) or goes
	// negative (beyond the pole). Either way no usable grid exists.
	_, lonStep := grid.Steps(b.MinLat, opts.StepKM)
	if lonStep <= 0 || lonStep > 360 || math.IsInf(lonStep, 0) || math.IsNaN(lonStep) {
		return nil, &ErrPolarBounds{Lat: b.MinLat}
	}

	return &Generator{opts: opts, log: slog.Default()}, nil
}

// Options returns a copy of the generator's configuration.
func (g *Generator) Options() Options {
	return g.opts
}

// SamplePoints returns the grid the generator will emit, in emission
// order, without touching the filesystem.
func (g *Generator) SamplePoints() []SamplePoint {
	b := g.opts.Bounds
	points := grid.Generate(b.MinLat, b.MaxLat, b.MinLon, b.MaxLon, g.opts.StepKM)

	out := make([]SamplePoint, len(points))
	for i, p := range points {
		out[i] = SamplePoint{Lat: p.Lat, Lon: p.Lon}
	}
	return out
}

// Generate samples the bounding box and emits one geo-tagged JPEG per
// sample point under OutputDir.
//
// The returned error covers setup failures (output directory creation)
// and cancellation; per-point failures are collected in Report.Errors
// when Emit.SkipErrors is set, matching the report-and-continue batch
// behavior. Cancelling ctx stops emission between points.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	if err := os.MkdirAll(g.opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	b := g.opts.Bounds
	points := grid.Generate(b.MinLat, b.MaxLat, b.MinLon, b.MaxLon, g.opts.StepKM)
	g.log.Info("generating images",
		"count", len(points),
		"dir", g.opts.OutputDir,
		"map", g.opts.Map)

	artifacts, errs := emitAll(ctx, points, g.emitPoint, g.opts.Emit)

	report := &Report{Artifacts: artifacts, Errors: errs}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// emitPoint renders, persists and geo-tags the artifact for one sample
// point. Each call is independent of every other; only the output
// directory is shared, and filenames are unique per coordinate.
func (g *Generator) emitPoint(ctx context.Context, p grid.Point) (Artifact, error) {
	var (
		img image.Image
		err error
	)
	if g.opts.Map {
		img, err = g.renderMap(p)
	} else {
		img, err = g.renderCanvas(p)
	}
	if err != nil {
		return Artifact{}, &ErrRender{Lat: p.Lat, Lon: p.Lon, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}

	path := filepath.Join(g.opts.OutputDir, artifactFilename(p.Lat, p.Lon))
	if err := writeJPEG(path, img); err != nil {
		return Artifact{}, fmt.Errorf("%s: %w", path, err)
	}

	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}

	if err := writeGPSTags(path, p.Lat, p.Lon); err != nil {
		return Artifact{}, &ErrMetadata{Path: path, Err: err}
	}

	g.log.Info("image created", "path", path)
	return Artifact{Path: path, Lat: p.Lat, Lon: p.Lon}, nil
}

// artifactFilename derives the deterministic per-point filename. Six
// decimal places keep names collision-free for any step at or above the
// grid's ~0.01° floor.
func artifactFilename(lat, lon float64) string {
	return fmt.Sprintf("image_%.6f_%.6f.jpg", lat, lon)
}
