package mdsplit

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Render worker sizing constants.
const (
	// MinRenderWorkers ensures at least one worker is available.
	MinRenderWorkers = 1

	// MaxRenderWorkers caps concurrency; rendering is CPU-bound and gains
	// little beyond this.
	MaxRenderWorkers = 8

	// cpuDivisor leaves headroom for the rest of the process.
	cpuDivisor = 2
)

// ResolveWorkerCount determines how many segments render concurrently.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by CLIs.
func ResolveWorkerCount(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs in containers)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinRenderWorkers {
		return MinRenderWorkers
	}
	if n > MaxRenderWorkers {
		return MaxRenderWorkers
	}
	return n
}

// renderAll renders every segment body with a bounded number of workers.
// Results keep segment order. When several segments fail, the
// lowest-ordinal error is returned so messages stay deterministic.
func renderAll(ctx context.Context, r bodyRenderer, segments []Segment, workers int) ([]string, error) {
	bodies := make([]string, len(segments))
	errs := make([]error, len(segments))

	sem := make(chan struct{}, ResolveWorkerCount(workers))
	var wg sync.WaitGroup

	for i := range segments {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			seg := segments[i]
			rendered, err := r.Render(ctx, seg.Body)
			if err != nil {
				errs[i] = fmt.Errorf("rendering segment %d: %w", seg.Ordinal, err)
				return
			}
			bodies[i] = rewriteExternalLinks(rendered)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return bodies, nil
}
