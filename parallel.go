package bitseq

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitseq/internal/bitops"
)

// parallelChunkWords is the smallest number of words a worker is given.
const parallelChunkWords = 1 << 12

// CountParallel counts the set bits of s using up to workers goroutines.
//
// It only reads s; the caller must not mutate s until CountParallel
// returns. workers <= 0 means one worker per chunk. Sequences too small to
// split are counted on the calling goroutine. The context is checked between
// chunks; on cancellation the context error is returned.
func CountParallel[W Word](ctx context.Context, s Sequence[W], workers int) (uint, error) {
	words := s.Words()
	if len(words) <= parallelChunkWords {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return uint(bitops.PopcountWords(words)), nil
	}

	chunk := parallelChunkWords
	if workers > 0 {
		chunk = max(chunk, (len(words)+workers-1)/workers)
	}

	var total atomic.Uint64
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for start := 0; start < len(words); start += chunk {
		part := words[start:min(start+chunk, len(words))]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			total.Add(uint64(bitops.PopcountWords(part)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return uint(total.Load()), nil
}
