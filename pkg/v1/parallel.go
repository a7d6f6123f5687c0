package geoimages

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/ijiayi/generate-geo-images/internal/grid"
)

// emitFunc produces the artifact for a single sample point.
type emitFunc func(ctx context.Context, p grid.Point) (Artifact, error)

// emitAll emits every sample point using a worker pool.
//
// Points are independent, so the pool needs no coordination beyond the
// shared progress callback. Artifacts are returned in sample order
// regardless of completion order, keeping output deterministic aside from
// log-line interleaving.
//
// The pool respects EmitOptions:
//   - Parallel: enable/disable concurrent emission
//   - Workers: number of concurrent emitters (defaults to NumCPU)
//   - SkipErrors: continue despite individual point failures
//   - Progress: optional callback for progress updates
//   - ErrorLog: optional writer for error details
//   - PointTimeout: per-point deadline covering tile fetches
func emitAll(ctx context.Context, points []grid.Point, emit emitFunc, opts EmitOptions) ([]Artifact, []error) {
	if len(points) == 0 {
		return []Artifact{}, nil
	}

	if !opts.Parallel {
		return emitSerial(ctx, points, emit, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(points) {
		workers = len(points)
	}

	type emitResult struct {
		index    int
		artifact Artifact
		err      error
	}

	jobs := make(chan int, len(points))
	results := make(chan emitResult, len(points))

	for i := 0; i < workers; i++ {
		go func() {
			for index := range jobs {
				if err := ctx.Err(); err != nil {
					results <- emitResult{index: index, err: err}
					continue
				}
				artifact, err := emitOne(ctx, points[index], emit, opts.PointTimeout)
				results <- emitResult{
					index:    index,
					artifact: artifact,
					err:      err,
				}
			}
		}()
	}

	for i := range points {
		jobs <- i
	}
	close(jobs)

	// Collect results. The results channel is buffered for every point,
	// so workers never block even when collection stops at the first
	// error.
	artifactMap := make(map[int]Artifact)
	var errs []error

	for done := 1; done <= len(points); done++ {
		result := <-results

		if opts.Progress != nil {
			opts.Progress(done, len(points))
		}

		if result.err != nil {
			p := points[result.index]
			err := fmt.Errorf("point (%f, %f): %w", p.Lat, p.Lon, result.err)

			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error emitting image: %v\n", err)
			}

			if opts.SkipErrors {
				errs = append(errs, err)
				continue
			}
			return nil, []error{err}
		}

		artifactMap[result.index] = result.artifact
	}

	// Build ordered artifact list.
	artifacts := make([]Artifact, 0, len(artifactMap))
	for i := 0; i < len(points); i++ {
		if artifact, ok := artifactMap[i]; ok {
			artifacts = append(artifacts, artifact)
		}
	}

	return artifacts, errs
}

// emitSerial emits points one at a time (fallback when Parallel=false).
func emitSerial(ctx context.Context, points []grid.Point, emit emitFunc, opts EmitOptions) ([]Artifact, []error) {
	artifacts := make([]Artifact, 0, len(points))
	var errs []error

	for i, p := range points {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("point (%f, %f): %w", p.Lat, p.Lon, err))
			continue
		}

		artifact, err := emitOne(ctx, p, emit, opts.PointTimeout)

		if opts.Progress != nil {
			opts.Progress(i+1, len(points))
		}

		if err != nil {
			err := fmt.Errorf("point (%f, %f): %w", p.Lat, p.Lon, err)

			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error emitting image: %v\n", err)
			}

			if opts.SkipErrors {
				errs = append(errs, err)
				continue
			}
			return nil, []error{err}
		}

		artifacts = append(artifacts, artifact)
	}

	return artifacts, errs
}

// emitOne wraps a single emission in the per-point timeout. The timeout
// is checked at stage boundaries inside the emitter; a hung tile fetch is
// abandoned at the next boundary rather than interrupted mid-request.
func emitOne(ctx context.Context, p grid.Point, emit emitFunc, timeout time.Duration) (Artifact, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return emit(ctx, p)
}
