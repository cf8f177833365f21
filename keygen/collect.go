package keygen

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Collect computes every candidate for target on band using up to workers
// goroutines, one d0 slice per task. The result has the same order as
// Candidates. workers <= 0 uses every CPU.
func Collect(ctx context.Context, band Band, target uint32, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	// fail fast before spawning anything
	if _, err := NewDeriver(); err != nil {
		return nil, err
	}

	magic := band.Magic()
	// One slot per d0 task, so workers never share a slice
	parts := make([][]Result, MaxD0+1)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for d0 := uint32(0); d0 <= MaxD0; d0++ {
		g.Go(func() error {
			// Deriver holds hash state, each task needs its own
			d, err := NewDeriver()
			if err != nil {
				return err
			}
			var out []Result
			for d1 := uint32(0); d1 <= MaxD1; d1++ {
				// Stop early when a sibling failed or the caller gave up
				if err := ctx.Err(); err != nil {
					return err
				}
				scanBlock(d0, d1, magic, target, func(t Tuple) bool {
					serial := t.Serial()
					out = append(out, Result{Serial: serial, Password: d.Password(serial, band)})
					return true
				})
			}
			parts[d0] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Concatenate in d0 order to keep the sequential ordering
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	results := make([]Result, 0, n)
	for _, p := range parts {
		results = append(results, p...)
	}
	return results, nil
}
