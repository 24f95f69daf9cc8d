// File: parallel.go
// Role: Concurrent slack evaluation across independent ends.

package pathend

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Logikable/OpenSTA/sta"
)

// EvalSlacks computes Slack for every end concurrently, bounded by
// workers goroutines (workers < 1 means unbounded). Each end is touched
// by exactly one goroutine, which satisfies the single-writer rule for
// the per-end pessimism memo; afterwards all reads hit the memo and are
// safe from any goroutine.
//
// Returns the context's error if it is cancelled mid-evaluation.
func EvalSlacks(ctx context.Context, s *sta.Sta, ends []PathEnd, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, e := range ends {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e.Slack(s)

			return nil
		})
	}

	return g.Wait()
}
