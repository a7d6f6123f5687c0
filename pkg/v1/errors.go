package geoimages

import (
	"fmt"
)

// ErrInvalidBounds indicates a bounding box whose minimum exceeds its
// maximum on either axis.
type ErrInvalidBounds struct {
	Bounds Bounds
}

func (e *ErrInvalidBounds) Error() string {
	return fmt.Sprintf("invalid bounding box: lat [%f, %f] lon [%f, %f] (min must not exceed max)",
		e.Bounds.MinLat, e.Bounds.MaxLat, e.Bounds.MinLon, e.Bounds.MaxLon)
}

// ErrInvalidStep indicates a non-positive step distance.
type ErrInvalidStep struct {
	StepKM float64
}

func (e *ErrInvalidStep) Error() string {
	return fmt.Sprintf("invalid step: %f km (must be > 0)", e.StepKM)
}

// ErrPolarBounds indicates a bounding box at or beyond ±90° latitude,
// where the meridian-convergence correction degenerates and no usable
// longitude step exists.
type ErrPolarBounds struct {
	Lat float64
}

func (e *ErrPolarBounds) Error() string {
	return fmt.Sprintf("bounding box at latitude %f degenerates the longitude step (must be clear of ±90°)",
		e.Lat)
}

// ErrInvalidSize indicates a non-positive image dimension.
type ErrInvalidSize struct {
	Width, Height int
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("invalid image size: %dx%d (both dimensions must be > 0)", e.Width, e.Height)
}

// ErrInvalidZoom indicates an out-of-range map zoom level.
type ErrInvalidZoom struct {
	Zoom int
}

func (e *ErrInvalidZoom) Error() string {
	return fmt.Sprintf("invalid zoom level: %d (must be between 0 and 20)", e.Zoom)
}

// ErrRender indicates a per-point rendering failure, typically an
// unreachable tile source. It carries the offending coordinate so skipped
// points can be reported and retried.
type ErrRender struct {
	Lat, Lon float64
	Err      error
}

func (e *ErrRender) Error() string {
	return fmt.Sprintf("render (%f, %f): %v", e.Lat, e.Lon, e.Err)
}

func (e *ErrRender) Unwrap() error { return e.Err }

// ErrMetadata indicates a failure embedding or recovering GPS tags for an
// already-persisted image.
type ErrMetadata struct {
	Path string
	Err  error
}

func (e *ErrMetadata) Error() string {
	return fmt.Sprintf("gps metadata %s: %v", e.Path, e.Err)
}

func (e *ErrMetadata) Unwrap() error { return e.Err }
