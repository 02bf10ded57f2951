package aggregate

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FanOut runs fetch for every input with at most limit calls in flight and returns the
// results in input order. A failing input calls onErr (if non-nil) and yields an empty
// slot; it never cancels its siblings. FanOut returns only after every call finished.
func FanOut[In, Out any](ctx context.Context, inputs []In, limit int, fetch FetchFunc[In, Out], onErr func(In, error)) [][]Out {
	results := make([][]Out, len(inputs))
	if len(inputs) == 0 {
		return results
	}

	// A plain group: errors are absorbed per slot, so there is no shared cancellation.
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				if onErr != nil {
					onErr(in, err)
				}
				return nil
			}
			out, err := fetch(ctx, in)
			if err != nil {
				if onErr != nil {
					onErr(in, err)
				}
				return nil
			}
			results[i] = out
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Flatten concatenates the per-input results of FanOut in order.
func Flatten[T any](groups [][]T) []T {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]T, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
