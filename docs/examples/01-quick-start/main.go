package main

import (
	"context"
	"fmt"
	"log"

	geoimages "github.com/ijiayi/generate-geo-images/pkg/v1"
)

func main() {
	// Default options: a small box off the New Jersey shore, 1 km step,
	// 500x500 white canvases under ./geo_images.
	opts := geoimages.DefaultOptions()

	gen, err := geoimages.New(opts)
	if err != nil {
		log.Fatal(err)
	}

	// Preview the grid before touching the filesystem.
	points := gen.SamplePoints()
	fmt.Printf("%d images will be generated\n", len(points))

	report, err := gen.Generate(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	for _, artifact := range report.Artifacts {
		fmt.Printf("%s -> (%.6f, %.6f)\n", artifact.Path, artifact.Lat, artifact.Lon)
	}
}
