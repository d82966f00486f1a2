package seed

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"tepoz_directory/internal/app"
	"tepoz_directory/internal/domain"
)

type Report struct {
	Seeded  int
	Skipped int
	Kinds   []domain.Kind
}

// Run writes records with at most workers concurrent upserts. Invalid or
// failing records are logged and skipped; listing caches are dropped once per
// touched kind after all writes finish. When ctx ends early the writes already
// started still complete, their kinds are still invalidated, and the partial
// report comes back with ctx's error.
func Run(ctx context.Context, svc *app.SeedService, records []domain.Business, workers int) (Report, error) {
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var seeded, skipped atomic.Int64

	var runErr error
	touched := map[domain.Kind]bool{}
	for _, b := range records {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			runErr = err
			break
		}
		touched[b.Kind] = true

		wg.Add(1)
		go func(b domain.Business) {
			defer wg.Done()
			defer sem.Release(1)

			if err := svc.SeedRecord(ctx, b); err != nil {
				skipped.Add(1)
				log.Warn().Str("kind", string(b.Kind)).Str("id", b.ID).Err(err).Msg("seed failed")
				return
			}
			seeded.Add(1)
			log.Debug().Str("kind", string(b.Kind)).Str("id", b.ID).Msg("seed ok")
		}(b)
	}
	wg.Wait()

	rep := Report{Seeded: int(seeded.Load()), Skipped: int(skipped.Load())}
	cctx := context.WithoutCancel(ctx)
	for _, k := range domain.Kinds {
		if !touched[k] {
			continue
		}
		rep.Kinds = append(rep.Kinds, k)
		if err := svc.InvalidateListings(cctx, k); err != nil {
			log.Warn().Str("kind", string(k)).Err(err).Msg("listing cache invalidation failed")
		}
	}
	if runErr != nil {
		log.Warn().Int("seeded", rep.Seeded).Int("skipped", rep.Skipped).Err(runErr).Msg("seed run interrupted")
	}
	return rep, runErr
}
