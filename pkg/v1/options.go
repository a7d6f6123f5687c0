package geoimages

import (
	"io"
	"runtime"
	"time"
)

// Options configures a Generator.
type Options struct {
	// Bounds is the sampling extent in decimal degrees.
	Bounds Bounds

	// StepKM is the approximate ground distance between samples, in
	// kilometers.
	StepKM float64

	// OutputDir receives one JPEG per sample point. It is created,
	// including parents, before emission begins.
	OutputDir string

	// Map selects the rendering mode: false draws a blank annotated
	// canvas, true fetches and composites map tiles centered on each
	// point with a marker.
	Map bool

	// Zoom is the map tile zoom level. Only used when Map is true.
	Zoom int

	// Width and Height are the artifact dimensions in pixels.
	Width  int
	Height int

	// FontPath points at a TTF/OTF font for the coordinate annotation.
	// A missing or unreadable font is not an error; the built-in bitmap
	// face is used instead.
	FontPath string

	// FontSize is the annotation size in points. Zero selects a mode
	// dependent default (20 for canvas, 24 for map).
	FontSize float64

	// TileURLPattern overrides the tile source. The pattern follows
	// go-staticmaps conventions: %[1]s shard, %[2]d zoom, %[3]d x,
	// %[4]d y. Empty selects OpenStreetMap.
	TileURLPattern string

	// TileShards lists hostname shards substituted for %[1]s.
	TileShards []string

	// UserAgent identifies the generator to tile servers.
	UserAgent string

	// Emit controls concurrency and error handling during emission.
	Emit EmitOptions
}

// DefaultOptions returns options matching the reference tool's defaults:
// a small box off the New Jersey shore, 1 km step, 500x500 canvases under
// ./geo_images.
func DefaultOptions() Options {
	return Options{
		Bounds: Bounds{
			MinLat: 40.0,
			MaxLat: 40.02,
			MinLon: -74.0,
			MaxLon: -73.98,
		},
		StepKM:    1,
		OutputDir: "geo_images",
		Map:       false,
		Zoom:      12,
		Width:     500,
		Height:    500,
		UserAgent: "geoimages/1.0 (github.com/ijiayi/generate-geo-images)",
		Emit:      DefaultEmitOptions(),
	}
}

// EmitOptions controls parallel emission behavior and error handling.
type EmitOptions struct {
	// Parallel enables concurrent emission. Each point's artifact is
	// independent, so no coordination is needed beyond progress
	// reporting.
	Parallel bool

	// Workers specifies the number of emitter goroutines.
	// If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// SkipErrors causes emission to continue even when individual points
	// fail. Failed points are skipped and errors are collected.
	// When false, the first error stops emission and is returned
	// immediately.
	SkipErrors bool

	// Progress is an optional callback for tracking emission progress.
	// Called after each point is emitted (successfully or with error).
	Progress func(done, total int)

	// ErrorLog is an optional writer for detailed error reporting.
	// Each emission error is written here with the offending coordinate.
	ErrorLog io.Writer

	// PointTimeout bounds the emission of a single point, covering any
	// network-backed tile fetch. Zero disables the timeout.
	PointTimeout time.Duration
}

// DefaultEmitOptions returns emit options with sensible defaults.
func DefaultEmitOptions() EmitOptions {
	return EmitOptions{
		Parallel:     true,
		Workers:      runtime.NumCPU(),
		SkipErrors:   true,
		Progress:     nil,
		ErrorLog:     nil,
		PointTimeout: 30 * time.Second,
	}
}
