// Command geoimages generates a grid of geo-tagged JPEG fixture images
// covering a latitude/longitude bounding box.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/ijiayi/generate-geo-images/internal/pkg/config"
	"github.com/ijiayi/generate-geo-images/internal/pkg/logging"
	geoimages "github.com/ijiayi/generate-geo-images/pkg/v1"
)

func main() {
	flags := pflag.NewFlagSet("geoimages", pflag.ExitOnError)
	flags.StringP("bounding-box", "b", "40.0,40.02,-74.0,-73.98",
		"bounding box as lat_min,lat_max,lon_min,lon_max")
	flags.StringP("output-dir", "o", "geo_images", "output directory")
	flags.IntP("step-km", "s", 1, "step size in kilometers")
	flags.IntP("zoom-level", "z", 12, "zoom level for map images")
	flags.IntSliceP("image-size", "i", []int{500, 500}, "image size as width,height")
	flags.Bool("map", false, "render fetched map tiles instead of a blank canvas")
	flags.Int("workers", 0, "concurrent workers (0 = number of CPUs)")
	flags.Bool("serial", false, "emit images one at a time")
	flags.String("font-path", "", "TTF/OTF font for the coordinate annotation")
	flags.Duration("point-timeout", 30*time.Second, "per-image timeout for tile fetches")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	if err := flags.Parse(os.Args[1:]); err != nil {
		// ExitOnError makes Parse exit itself; this is unreachable.
		log.Fatalf("parse flags: %v", err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	opts, err := cfg.Options()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	opts.Emit.Progress = func(done, total int) {
		fmt.Printf("\rGenerating: %d/%d", done, total)
		if done == total {
			fmt.Println()
		}
	}
	opts.Emit.ErrorLog = os.Stderr

	gen, err := geoimages.New(opts)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := gen.Generate(ctx)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	if skipped := len(report.Errors); skipped > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d of %d images due to errors\n",
			skipped, skipped+len(report.Artifacts))
	}
	fmt.Printf("Generated %d images in %s\n", len(report.Artifacts), opts.OutputDir)
}
