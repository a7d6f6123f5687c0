package grid

import (
	"math"
	"testing"
)

// TestGenerateDegenerateBox tests that equal bounds still yield the
// starting point.
func TestGenerateDegenerateBox(t *testing.T) {
	tests := []struct {
		name                           string
		latMin, latMax, lonMin, lonMax float64
	}{
		{"point box", 40.0, 40.0, -74.0, -74.0},
		{"flat latitude", 40.0, 40.0, -74.0, -73.99},
		{"flat longitude", 40.0, 40.01, -74.0, -74.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := Generate(tt.latMin, tt.latMax, tt.lonMin, tt.lonMax, 1)
			if len(points) == 0 {
				t.Fatal("expected at least one point")
			}
			first := points[0]
			if first.Lat != tt.latMin || first.Lon != tt.lonMin {
				t.Errorf("expected first point (%f, %f), got (%f, %f)",
					tt.latMin, tt.lonMin, first.Lat, first.Lon)
			}
		})
	}
}

func TestGeneratePointBoxYieldsExactlyOne(t *testing.T) {
	points := Generate(40.0, 40.0, -74.0, -74.0, 1)
	if len(points) != 1 {
		t.Fatalf("expected exactly 1 point, got %d", len(points))
	}
}

// TestGenerateReferenceBox tests the documented reference box: 3 latitude
// rows by 2 longitude columns at a 1 km step.
func TestGenerateReferenceBox(t *testing.T) {
	points := Generate(40.0, 40.02, -74.0, -73.98, 1)

	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}

	// Row-major order: longitude varies fastest.
	latStep, lonStep := Steps(40.0, 1)
	for i, p := range points {
		row := i / 2
		col := i % 2
		wantLat := 40.0 + float64(row)*latStep
		wantLon := -74.0 + float64(col)*lonStep
		if math.Abs(p.Lat-wantLat) > 1e-9 || math.Abs(p.Lon-wantLon) > 1e-9 {
			t.Errorf("point %d: expected (%f, %f), got (%f, %f)",
				i, wantLat, wantLon, p.Lat, p.Lon)
		}
	}
}

// TestGenerateRowCount tests that the number of latitude rows matches the
// closed form floor(width/latStep)+1 for a range of boxes.
func TestGenerateRowCount(t *testing.T) {
	tests := []struct {
		name           string
		latMin, latMax float64
		stepKM         float64
	}{
		{"reference box", 40.0, 40.02, 1},
		{"taller box", 40.0, 40.1, 1},
		{"coarse step", 21.9, 25.3, 10},
		{"southern hemisphere", -34.0, -33.8, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			latStep, _ := Steps(tt.latMin, tt.stepKM)
			points := Generate(tt.latMin, tt.latMax, 0, 0, tt.stepKM)

			rows := 0
			for _, p := range points {
				if p.Lon == 0 {
					rows++
				}
			}

			// Accumulated addition may fall a hair either side of the
			// closed-form count at the boundary.
			want := int(math.Floor((tt.latMax-tt.latMin)/latStep)) + 1
			if rows != want && rows != want+1 && rows != want-1 {
				t.Errorf("expected about %d rows, got %d", want, rows)
			}
		})
	}
}

func TestGenerateDeterminism(t *testing.T) {
	a := Generate(40.0, 40.02, -74.0, -73.98, 1)
	b := Generate(40.0, 40.02, -74.0, -73.98, 1)

	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("point %d differs between runs: %v vs %v", i, a[i], b[i])
		}
	}
}

// TestGenerateDegenerateSteps tests that inputs producing unusable angular
// steps return nil instead of looping.
func TestGenerateDegenerateSteps(t *testing.T) {
	tests := []struct {
		name                           string
		latMin, latMax, lonMin, lonMax float64
		stepKM                         float64
	}{
		{"zero step", 40.0, 40.02, -74.0, -73.98, 0},
		{"negative step", 40.0, 40.02, -74.0, -73.98, -1},
		{"beyond pole", 95.0, 95.5, 0, 0.01, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := Generate(tt.latMin, tt.latMax, tt.lonMin, tt.lonMax, tt.stepKM)
			if points != nil {
				t.Errorf("expected nil, got %d points", len(points))
			}
		})
	}
}

// TestGenerateAtPole tests the floating-point behavior at exactly 90°:
// cos underflows to a tiny positive value, so the longitude step is
// finite but far wider than the box and each row collapses to a single
// column. Callers wanting an error here must validate before sampling.
func TestGenerateAtPole(t *testing.T) {
	points := Generate(90.0, 90.01, 0, 0.01, 1)
	for _, p := range points {
		if p.Lon != 0 {
			t.Errorf("expected a single longitude column at the pole, got lon %f", p.Lon)
		}
	}
}

func TestStepsUsesMinimumLatitude(t *testing.T) {
	latStep, lonStep := Steps(40.0, 1)

	if math.Abs(latStep-1.0/111.0) > 1e-12 {
		t.Errorf("latStep: expected %f, got %f", 1.0/111.0, latStep)
	}

	want := 1.0 / (111.0 * math.Cos(40.0*math.Pi/180))
	if math.Abs(lonStep-want) > 1e-12 {
		t.Errorf("lonStep: expected %f, got %f", want, lonStep)
	}

	// The longitude step widens with latitude; confirm the correction is
	// applied (lonStep > latStep away from the equator).
	if lonStep <= latStep {
		t.Errorf("expected lonStep > latStep at 40°, got %f <= %f", lonStep, latStep)
	}
}
