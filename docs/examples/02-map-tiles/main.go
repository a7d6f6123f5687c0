package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	geoimages "github.com/ijiayi/generate-geo-images/pkg/v1"
)

func main() {
	// Map mode composites OpenStreetMap tiles centered on each sample
	// point, with a marker on the exact coordinate. Tile fetches go over
	// the network, so failures are isolated per point and the batch
	// keeps going.
	opts := geoimages.DefaultOptions()
	opts.Bounds = geoimages.Bounds{
		MinLat: 21.9, MaxLat: 25.3,
		MinLon: 119.5, MaxLon: 122.0,
	}
	opts.StepKM = 10
	opts.Map = true
	opts.Zoom = 12
	opts.Width = 800
	opts.Height = 800
	opts.OutputDir = "geo_images_map"

	opts.Emit.Workers = 4
	opts.Emit.PointTimeout = 30 * time.Second
	opts.Emit.ErrorLog = os.Stderr
	opts.Emit.Progress = func(done, total int) {
		fmt.Printf("\rFetching: %d/%d (%.0f%%)",
			done, total, float64(done)/float64(total)*100)
	}

	gen, err := geoimages.New(opts)
	if err != nil {
		log.Fatal(err)
	}

	report, err := gen.Generate(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println()

	if len(report.Errors) > 0 {
		fmt.Printf("Skipped %d points due to tile errors\n", len(report.Errors))
	}
	fmt.Printf("Generated %d map fixtures\n", len(report.Artifacts))
}
