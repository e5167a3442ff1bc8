package refresh

import (
	"context"
	"errors"
	"time"
)

// Loop re-runs a load function on a fixed interval and hands each fresh
// result to a render callback. Loads run concurrently with the ticker, so a
// slow response can overlap a newer request; results carry the generation of
// the request that produced them and anything superseded is discarded instead
// of rendered. Callbacks are always invoked from the loop goroutine, never
// concurrently.
type Loop struct {
	// Interval between loads. The first load happens immediately.
	Interval time.Duration
	// Load fetches one snapshot.
	Load func(ctx context.Context) (any, error)
	// Render receives every non-stale successful result.
	Render func(value any)
	// OnError receives every non-stale failure. A failing refresh never
	// terminates the loop; the next tick retries.
	OnError func(err error)
}

type result struct {
	generation uint64
	value      any
	err        error
}

// Run blocks until ctx is cancelled. It returns nil on cancellation and an
// error only for invalid construction.
func (l *Loop) Run(ctx context.Context) error {
	if l.Interval <= 0 {
		return errors.New("refresh: interval must be positive")
	}
	if l.Load == nil {
		return errors.New("refresh: load function is required")
	}

	results := make(chan result, 1)
	var issued uint64

	launch := func() {
		issued++
		generation := issued
		go func() {
			value, err := l.Load(ctx)
			select {
			case results <- result{generation: generation, value: value, err: err}:
			case <-ctx.Done():
			}
		}()
	}

	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	launch()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			launch()
		case r := <-results:
			if r.generation != issued {
				continue // superseded by a newer request
			}
			if r.err != nil {
				if l.OnError != nil {
					l.OnError(r.err)
				}
				continue
			}
			if l.Render != nil {
				l.Render(r.value)
			}
		}
	}
}

// Once performs a single load with no ticker, applying the same callback
// contract as Run. It is the manual-refresh path.
func (l *Loop) Once(ctx context.Context) error {
	if l.Load == nil {
		return errors.New("refresh: load function is required")
	}
	value, err := l.Load(ctx)
	if err != nil {
		return err
	}
	if l.Render != nil {
		l.Render(value)
	}
	return nil
}
