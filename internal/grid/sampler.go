package grid

import "math"

// KilometersPerDegree is the flat-earth approximation of one degree of
// latitude in kilometers. It is also used for longitude after correcting
// for meridian convergence. Swap this for an ellipsoidal model if fixture
// geometry is ever redefined; call sites do not need to change.
const KilometersPerDegree = 111.0

// Point is a single latitude/longitude sample in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Steps converts a ground distance in kilometers into the angular steps
// used by Generate.
//
// The latitude step is stepKM/111. The longitude step is corrected for
// meridian convergence at latMin only, and is reused unchanged for every
// latitude row. Recomputing it per row would produce a different (and
// incompatible) fixture grid.
//
// Near the poles cos(latMin) approaches zero and the longitude step blows
// up; beyond ±90° it goes negative. Callers are expected to reject such
// bounds before sampling (see pkg/v1 validation).
func Steps(latMin, stepKM float64) (latStep, lonStep float64) {
	latStep = stepKM / KilometersPerDegree
	lonStep = stepKM / (KilometersPerDegree * math.Cos(latMin*math.Pi/180))
	return latStep, lonStep
}

// Generate samples the bounding box [latMin,latMax]×[lonMin,lonMax] in
// row-major order: all longitudes of one latitude row before the next row.
//
// Sampling advances by repeated floating-point addition with an inclusive
// bound check, so the final row/column may land exactly on the bound or
// overshoot it by a fraction of a step. Equal min and max still yield one
// sample. There is no clamping and no deduplication; two runs over the
// same inputs produce the identical sequence.
//
// If either angular step is non-positive or non-finite (step ≤ 0, or
// bounds at the poles) Generate returns nil rather than loop forever.
func Generate(latMin, latMax, lonMin, lonMax, stepKM float64) []Point {
	latStep, lonStep := Steps(latMin, stepKM)
	if !usableStep(latStep) || !usableStep(lonStep) {
		return nil
	}

	var points []Point
	for lat := latMin; lat <= latMax; lat += latStep {
		for lon := lonMin; lon <= lonMax; lon += lonStep {
			points = append(points, Point{Lat: lat, Lon: lon})
		}
	}
	return points
}

func usableStep(step float64) bool {
	return step > 0 && !math.IsInf(step, 0) && !math.IsNaN(step)
}
