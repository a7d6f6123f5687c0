package grid

import (
	"fmt"
	"math"
)

// DMS is a degrees/minutes/seconds decomposition of an angular coordinate.
//
// All three components are non-negative; the sign of the original decimal
// value is carried separately as a hemisphere reference (LatRef/LonRef).
// Invariants: Degrees = floor(|decimal|), 0 ≤ Minutes < 60,
// 0 ≤ Seconds < 60.
type DMS struct {
	Degrees float64
	Minutes float64
	Seconds float64
}

// ToDMS decomposes a signed decimal degree value into a DMS triple.
//
// Every component is truncated, not rounded, so sub-second precision is
// discarded. The decomposition is therefore lossy: Decimal() recovers the
// input only to within one arc-second (1/3600°, roughly 30 m at the
// equator).
func ToDMS(decimal float64) DMS {
	abs := math.Abs(decimal)

	degrees := math.Floor(abs)
	minutesDecimal := (abs - degrees) * 60
	minutes := math.Floor(minutesDecimal)
	seconds := math.Floor((minutesDecimal - minutes) * 60)

	return DMS{Degrees: degrees, Minutes: minutes, Seconds: seconds}
}

// Decimal reassembles the triple into unsigned decimal degrees.
func (d DMS) Decimal() float64 {
	return d.Degrees + d.Minutes/60 + d.Seconds/3600
}

func (d DMS) String() string {
	return fmt.Sprintf("%d°%d'%d\"", int(d.Degrees), int(d.Minutes), int(d.Seconds))
}

// LatRef returns the hemisphere reference for a latitude: "N" for values
// at or above the equator, "S" below.
func LatRef(lat float64) string {
	if lat >= 0 {
		return "N"
	}
	return "S"
}

// LonRef returns the hemisphere reference for a longitude: "E" for values
// at or east of the prime meridian, "W" west.
func LonRef(lon float64) string {
	if lon >= 0 {
		return "E"
	}
	return "W"
}
