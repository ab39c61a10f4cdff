// hllmap-bench is a small CLI harness around internal/pds/hllmap. HllMap
// itself has no CLI or wire surface — this binary exists only to exercise
// and report on the library, the way a cmd/*-server binary wires a library
// package into something runnable.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hllmap.lopezb.dev/internal/pds/hllmap"
)

type config struct {
	mode          string
	keySizeBytes  int
	k             int
	keys          int
	updatesPerKey int
	workers       int
	hashN         int
	hashSize      int
}

func main() {
	var cfg config

	flag.StringVar(&cfg.mode, "mode", "demo", "one of: demo, sim, hashbench")
	flag.IntVar(&cfg.keySizeBytes, "keysize", 4, "key size in bytes")
	flag.IntVar(&cfg.k, "k", 1024, "HLL registers per sketch (power of two)")
	flag.IntVar(&cfg.keys, "keys", 200, "distinct keys to insert (demo, sim)")
	flag.IntVar(&cfg.updatesPerKey, "updates-per-key", 500, "coupon updates per key (demo, sim)")
	flag.IntVar(&cfg.workers, "workers", 4, "independent HllMap instances to run concurrently (sim)")
	flag.IntVar(&cfg.hashN, "hash-n", 2_000_000, "iterations for the hash throughput comparison (hashbench)")
	flag.IntVar(&cfg.hashSize, "hash-size", 64, "input size in bytes for the hash throughput comparison (hashbench)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var err error
	switch cfg.mode {
	case "demo":
		err = runDemo(logger, cfg)
	case "sim":
		err = runSim(ctx, logger, cfg.workers, cfg.keys, cfg.updatesPerKey, cfg.keySizeBytes, cfg.k)
	case "hashbench":
		runHashBench(logger, cfg.hashN, cfg.hashSize)
	default:
		err = fmt.Errorf("unknown mode %q", cfg.mode)
	}
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// runDemo builds one HllMap, drives it with generated coupons for a batch
// of keys, and prints the resulting size accounting — enough to see a
// resize happen when keys exceeds the initial capacity of 147.
func runDemo(logger *slog.Logger, cfg config) error {
	m, err := hllmap.New(cfg.keySizeBytes, cfg.k)
	if err != nil {
		return err
	}

	key := make([]byte, cfg.keySizeBytes)
	element := make([]byte, 16)
	for ki := 0; ki < cfg.keys; ki++ {
		for i := range key {
			key[i] = byte(ki >> (8 * (i % 4)))
		}
		var estimate float64
		for u := 0; u < cfg.updatesPerKey; u++ {
			for i := range element {
				element[i] = byte((ki*31 + u*7 + i) & 0xFF)
			}
			coupon := makeCoupon(element, cfg.k)
			estimate, err = m.Update(key, coupon)
			if err != nil {
				return err
			}
		}
		if ki%50 == 0 {
			logger.Info("progress", "key_index", ki, "estimate", estimate, "table_entries", m.TableEntries())
		}
	}

	fmt.Println(m)
	return nil
}
