package main

import (
	"crypto/rand"
	"log/slog"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// hashSeed mirrors internal/pds/hllmap's fixed MurmurHash3 seed so the
// comparison measures the same inputs the probe engine would hash.
const hashSeed = 9001

// runHashBench compares the throughput of two 128-bit hash functions: the
// MurmurHash3-128 the probe engine is contractually fixed to, and xxh3, a
// newer and generally faster 128-bit hash. The comparison is diagnostic
// only — swapping the core's hash function would change its probe sequence
// and is out of scope for this package.
func runHashBench(logger *slog.Logger, n int, size int) {
	logger.Info("cpu features",
		"brand", cpuid.CPU.BrandName,
		"avx2", cpuid.CPU.Supports(cpuid.AVX2),
		"avx512", cpuid.CPU.Supports(cpuid.AVX512F),
	)

	data := make([]byte, size)
	if _, err := rand.Read(data); err != nil {
		logger.Error("failed to generate random input", "error", err)
		return
	}

	start := time.Now()
	var sink0, sink1 uint64
	for i := 0; i < n; i++ {
		sink0, sink1 = murmur3.Sum128WithSeed(data, hashSeed)
	}
	murmurElapsed := time.Since(start)

	start = time.Now()
	var sinkHi, sinkLo uint64
	for i := 0; i < n; i++ {
		h := xxh3.Hash128(data)
		sinkHi, sinkLo = h.Hi, h.Lo
	}
	xxh3Elapsed := time.Since(start)

	logger.Info("hash throughput",
		"iterations", n,
		"input_bytes", size,
		"murmur3_128", murmurElapsed,
		"murmur3_ns_per_op", murmurElapsed.Nanoseconds()/int64(n),
		"xxh3_128", xxh3Elapsed,
		"xxh3_ns_per_op", xxh3Elapsed.Nanoseconds()/int64(n),
		// Keep the compiler from eliding the loops above.
		"murmur3_checksum", sink0^sink1,
		"xxh3_checksum", sinkHi^sinkLo,
	)
}
