package config

import (
	"testing"
	"time"

	geoimages "github.com/ijiayi/generate-geo-images/pkg/v1"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.BoundingBox != "40.0,40.02,-74.0,-73.98" {
		t.Errorf("unexpected default bounding box: %s", cfg.BoundingBox)
	}
	if cfg.OutputDir != "geo_images" {
		t.Errorf("unexpected default output dir: %s", cfg.OutputDir)
	}
	if cfg.StepKM != 1 {
		t.Errorf("unexpected default step: %d", cfg.StepKM)
	}
	if cfg.ZoomLevel != 12 {
		t.Errorf("unexpected default zoom: %d", cfg.ZoomLevel)
	}
	if len(cfg.ImageSize) != 2 || cfg.ImageSize[0] != 500 || cfg.ImageSize[1] != 500 {
		t.Errorf("unexpected default image size: %v", cfg.ImageSize)
	}
	if cfg.Map {
		t.Error("map mode should default to off")
	}
	if !cfg.SkipErrors {
		t.Error("skip-errors should default to on")
	}
	if cfg.PointTimeout != 30*time.Second {
		t.Errorf("unexpected default point timeout: %v", cfg.PointTimeout)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GEOIMAGES_OUTPUT_DIR", "/tmp/fixtures")
	t.Setenv("GEOIMAGES_STEP_KM", "5")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "/tmp/fixtures" {
		t.Errorf("environment override ignored: %s", cfg.OutputDir)
	}
	if cfg.StepKM != 5 {
		t.Errorf("environment override ignored: %d", cfg.StepKM)
	}
}

func TestParseBoundingBox(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    geoimages.Bounds
		wantErr bool
	}{
		{
			name:  "reference box",
			input: "40.0,40.02,-74.0,-73.98",
			want:  geoimages.Bounds{MinLat: 40.0, MaxLat: 40.02, MinLon: -74.0, MaxLon: -73.98},
		},
		{
			name:  "spaces tolerated",
			input: " 21.9, 25.3, 119.5, 122.0 ",
			want:  geoimages.Bounds{MinLat: 21.9, MaxLat: 25.3, MinLon: 119.5, MaxLon: 122.0},
		},
		{name: "too few values", input: "40.0,40.02,-74.0", wantErr: true},
		{name: "too many values", input: "1,2,3,4,5", wantErr: true},
		{name: "not a number", input: "a,b,c,d", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds, err := ParseBoundingBox(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected a parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBoundingBox: %v", err)
			}
			if bounds != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, bounds)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Map = true
	cfg.Workers = 4
	cfg.Serial = false
	cfg.ImageSize = []int{800, 600}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}

	if opts.Width != 800 || opts.Height != 600 {
		t.Errorf("image size not applied: %dx%d", opts.Width, opts.Height)
	}
	if !opts.Map {
		t.Error("map mode not applied")
	}
	if !opts.Emit.Parallel || opts.Emit.Workers != 4 {
		t.Errorf("emit options not applied: %+v", opts.Emit)
	}
	if opts.Bounds.MinLat != 40.0 || opts.Bounds.MaxLon != -73.98 {
		t.Errorf("bounds not applied: %+v", opts.Bounds)
	}
}

func TestOptionsRejectsMalformedValues(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}

	cfg.BoundingBox = "not,a,bounding"
	if _, err := cfg.Options(); err == nil {
		t.Error("expected an error for a malformed bounding box")
	}

	cfg.BoundingBox = "40.0,40.02,-74.0,-73.98"
	cfg.ImageSize = []int{1, 2, 3}
	if _, err := cfg.Options(); err == nil {
		t.Error("expected an error for a malformed image size")
	}
}
