package geoimages

import (
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"
)

// writeTestJPEG persists a small solid-color JPEG and returns its path.
func writeTestJPEG(t *testing.T, dir, name string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff})
		}
	}

	path := filepath.Join(dir, name)
	if err := writeJPEG(path, img); err != nil {
		t.Fatalf("write jpeg: %v", err)
	}
	return path
}

func TestGPSTagsRoundTrip(t *testing.T) {
	const arcSecond = 1.0 / 3600.0

	tests := []struct {
		name     string
		lat, lon float64
		latRef   string
		lonRef   string
	}{
		{"north west", 40.758896, -73.985130, "N", "W"},
		{"south east", -33.5, 151.2, "S", "E"},
		{"origin", 0, 0, "N", "E"},
		{"equator west", 0, -0.5, "N", "W"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestJPEG(t, t.TempDir(), "fixture.jpg")

			if err := writeGPSTags(path, tt.lat, tt.lon); err != nil {
				t.Fatalf("writeGPSTags: %v", err)
			}

			tags, err := ReadGPSTags(path)
			if err != nil {
				t.Fatalf("ReadGPSTags: %v", err)
			}

			if tags.LatitudeRef != tt.latRef {
				t.Errorf("latitude ref: expected %s, got %s", tt.latRef, tags.LatitudeRef)
			}
			if tags.LongitudeRef != tt.lonRef {
				t.Errorf("longitude ref: expected %s, got %s", tt.lonRef, tags.LongitudeRef)
			}

			if diff := math.Abs(math.Abs(tags.Latitude) - math.Abs(tt.lat)); diff > arcSecond {
				t.Errorf("latitude drifted by %g (limit %g)", diff, arcSecond)
			}
			if diff := math.Abs(math.Abs(tags.Longitude) - math.Abs(tt.lon)); diff > arcSecond {
				t.Errorf("longitude drifted by %g (limit %g)", diff, arcSecond)
			}

			// Signs must follow the hemisphere references.
			if tt.lat < 0 && tags.Latitude > 0 {
				t.Errorf("southern latitude decoded positive: %f", tags.Latitude)
			}
			if tt.lon < 0 && tags.Longitude > 0 {
				t.Errorf("western longitude decoded positive: %f", tags.Longitude)
			}
		})
	}
}

// TestWriteGPSTagsRewriteInPlace tests that tagging twice leaves a single
// consistent GPS block with the latest coordinate.
func TestWriteGPSTagsRewriteInPlace(t *testing.T) {
	path := writeTestJPEG(t, t.TempDir(), "fixture.jpg")

	if err := writeGPSTags(path, 40.0, -74.0); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := writeGPSTags(path, -33.5, 151.2); err != nil {
		t.Fatalf("second write: %v", err)
	}

	tags, err := ReadGPSTags(path)
	if err != nil {
		t.Fatal(err)
	}
	if tags.LatitudeRef != "S" || tags.LongitudeRef != "E" {
		t.Errorf("expected refs S/E after rewrite, got %s/%s", tags.LatitudeRef, tags.LongitudeRef)
	}
}

func TestReadGPSTagsMissingExif(t *testing.T) {
	path := writeTestJPEG(t, t.TempDir(), "untagged.jpg")

	if _, err := ReadGPSTags(path); err == nil {
		t.Error("expected an error for an image without GPS tags")
	}
}
