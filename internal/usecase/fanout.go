package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// defaultFanOutLimit bounds concurrent per-item calls when no limit is configured.
const defaultFanOutLimit = 8

// fanOut calls fn for indexes 0..n-1 with at most limit calls in flight and
// waits for all of them. fn owns its own error handling: results are expected
// to be written into caller-owned slices by index, which keeps item order
// independent of completion order.
//
// Once ctx is done no further calls are started, including calls that were
// already waiting for a free slot. ran[i] reports whether fn ran for index i.
func fanOut(ctx context.Context, limit, n int, fn func(ctx context.Context, i int)) (ran []bool) {
	if limit <= 0 {
		limit = defaultFanOutLimit
	}
	ran = make([]bool, n)

	var g errgroup.Group
	g.SetLimit(limit)

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			ran[i] = true
			fn(ctx, i)
			return nil
		})
	}

	_ = g.Wait()
	return ran
}
