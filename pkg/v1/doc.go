// Package geoimages synthesizes grids of geo-tagged JPEG fixtures for
// geospatial-image testing.
//
// Each fixture covers one point of a regular grid sampled from a
// latitude/longitude bounding box. The image shows its own coordinate as
// text, and the same coordinate is embedded in the file's EXIF GPS block,
// so the location is machine-recoverable from the file alone.
//
// # Basic Usage
//
//	opts := geoimages.DefaultOptions()
//	opts.Bounds = geoimages.Bounds{
//	    MinLat: 40.0, MaxLat: 40.02,
//	    MinLon: -74.0, MaxLon: -73.98,
//	}
//	opts.OutputDir = "testdata/geo_images"
//
//	gen, err := geoimages.New(opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := gen.Generate(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("emitted %d fixtures\n", len(report.Artifacts))
//
// # Rendering Modes
//
// The default mode draws a white canvas annotated with the coordinate.
// Setting Options.Map composites OpenStreetMap tiles centered on the
// point at the configured zoom, with a marker on the exact coordinate:
//
//	opts.Map = true
//	opts.Zoom = 12
//
// Map rendering fetches tiles over the network. Failures are isolated
// per point: with Emit.SkipErrors set (the default) a failing point is
// logged and skipped while the rest of the batch continues.
//
// # Concurrency
//
// Points are independent, so emission runs on a worker pool by default.
// Emit.Workers controls the pool size, Emit.PointTimeout bounds each
// point's tile fetches, and cancelling the context stops the run between
// points:
//
//	opts.Emit.Workers = 8
//	opts.Emit.Progress = func(done, total int) {
//	    fmt.Printf("\r%d/%d", done, total)
//	}
//
// # Reading Fixtures Back
//
// ReadGPSTags recovers the embedded coordinate from a single file, and
// BuildIndexFromDir lifts a whole output directory into a spatially
// queryable index:
//
//	idx, _ := geoimages.BuildIndexFromDir("testdata/geo_images")
//	entries := idx.Query(viewport)
//	for _, e := range entries {
//	    fmt.Printf("%s covers (%f, %f)\n", e.Path, e.Lat, e.Lon)
//	}
//
// # Geotag Precision
//
// Coordinates are stored as truncated degree/minute/second triples plus
// hemisphere references, matching the reference fixture format. The
// stored value recovers the sampled coordinate to within one arc-second
// (~30 m); filenames carry the full six-decimal coordinate.
package geoimages
