package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"hllmap.lopezb.dev/internal/pds/hllmap"
)

// runSim simulates a sharded deployment: workers independent HllMap
// instances, each fed keys random keys, with updatesPerKey random elements
// per key, by one goroutine. Each
// goroutine owns its own HllMap exclusively — there is no shared state
// between them — so this does not exercise concurrent mutation of a single
// map, which HllMap does not support.
func runSim(ctx context.Context, logger *slog.Logger, workers, keys, updatesPerKey, keySizeBytes, k int) error {
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			m, err := hllmap.New(keySizeBytes, k)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}

			key := make([]byte, keySizeBytes)
			for ki := 0; ki < keys; ki++ {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				if _, err := rand.Read(key); err != nil {
					return fmt.Errorf("worker %d: %w", w, err)
				}
				ownKey := append([]byte(nil), key...)

				element := make([]byte, 16)
				for u := 0; u < updatesPerKey; u++ {
					if _, err := rand.Read(element); err != nil {
						return fmt.Errorf("worker %d: %w", w, err)
					}
					coupon := makeCoupon(element, k)
					if _, err := m.Update(ownKey, coupon); err != nil {
						return fmt.Errorf("worker %d: %w", w, err)
					}
				}
			}

			logger.Info("worker finished",
				"worker", w,
				"table_entries", m.TableEntries(),
				"capacity_entries", m.CapacityEntries(),
				"current_count_entries", m.CurrentCountEntries(),
				"memory_usage_bytes", m.MemoryUsageBytes(),
			)
			return nil
		})
	}

	return g.Wait()
}
