package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// PoolConfig holds options for the worker pool.
type PoolConfig struct {
	Workers int
	Delay   time.Duration // fixed pause before each probe, 0 = none
	Pauser  *Pauser       // nil = no pause support
}

// RunPool dispatches candidates across Workers goroutines, invoking
// probe for each and onResult once per completed candidate. Candidates
// are pulled from a shared channel as workers free up, so one slow
// probe never stalls the rest of the batch. onResult is called
// concurrently from multiple workers and must be safe for that.
//
// RunPool blocks until every dispatched candidate has produced a
// result. There is no retry: a failed probe is a valid terminal
// outcome. A panic inside one probe is isolated to that candidate and
// converted into an all-absent Outcome; sibling workers keep going.
func RunPool(
	ctx context.Context,
	probe func(context.Context, string) Outcome,
	candidates []string,
	cfg PoolConfig,
	onResult func(Outcome),
) {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if len(candidates) > 0 && workers > len(candidates) {
		workers = len(candidates)
	}

	itemsCh := make(chan string, workers*2)

	// Producer: feed candidates into the channel. The ctx check here is
	// what stops dispatch on interrupt.
	go func() {
		defer close(itemsCh)
		for _, c := range candidates {
			select {
			case itemsCh <- c:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range itemsCh {
				if cfg.Pauser != nil {
					cfg.Pauser.Wait()
				}
				if cfg.Delay > 0 {
					select {
					case <-time.After(cfg.Delay):
					case <-ctx.Done():
						return
					}
				}
				onResult(runProbe(ctx, probe, c))
			}
		}()
	}

	wg.Wait()
}

// runProbe invokes probe with panic isolation. A panicking probe yields
// an Outcome with every field absent, so the candidate still counts as
// tested.
func runProbe(ctx context.Context, probe func(context.Context, string) Outcome, candidate string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("subdomain", candidate).Interface("panic", r).
				Msg("probe failed unexpectedly")
			out = Outcome{Subdomain: candidate}
		}
	}()
	return probe(ctx, candidate)
}
