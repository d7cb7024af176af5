package collector

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelism caps simultaneous fetches when the caller does not.
const DefaultParallelism = 200

// FetchFunc retrieves the lyrics for one song. Failures are reported as
// errors; an empty string with a nil error also means no lyrics.
type FetchFunc func(ctx context.Context, song string) (string, error)

// FetchAll retrieves lyrics for every song concurrently, with at most
// maxParallelism fetches in flight at once. It blocks until every fetch has
// finished, then returns whatever succeeded.
//
// A failed fetch contributes no entry to the result and does not abort its
// siblings; FetchAll itself never fails. If every fetch fails, the result is
// an empty map. Iteration order of the result carries no meaning.
func FetchAll(ctx context.Context, songs []string, fetch FetchFunc, maxParallelism int) map[string]string {
	if maxParallelism < 1 {
		maxParallelism = DefaultParallelism
	}

	var mu sync.Mutex
	found := make(map[string]string, len(songs))

	g := new(errgroup.Group)
	g.SetLimit(maxParallelism)
	for _, song := range songs {
		song := song
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return nil
			}
			lyrics, err := fetch(ctx, song)
			if err != nil || lyrics == "" {
				return nil
			}
			mu.Lock()
			found[song] = lyrics
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	return found
}
