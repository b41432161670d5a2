package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/Hellblazer/bloomier/internal/common"
	"github.com/Hellblazer/bloomier/internal/filter"
	"github.com/Hellblazer/bloomier/internal/probe"
)

func main() {
	n := flag.Uint64("n", 1_000_000, "keys to insert")
	p := flag.Float64("p", 0.000125, "target false positive rate")
	seed := flag.Uint64("seed", 666, "filter hash seed")
	keySeed := flag.Uint64("keyseed", 0x1638567, "key stream seed")
	keySize := flag.Int("keysize", 32, "key size in bytes")
	probes := flag.Uint64("probes", 4_000_000, "unseen keys to probe")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "probe goroutines")
	baseline := flag.Bool("baseline", false, "also measure bits-and-blooms/bloom at the same m and k")
	slop := flag.Float64("slop", 0.05, "allowed relative excess over p")
	quiet := flag.Bool("q", false, "only report failures")
	flag.Parse()

	common.LoggingEnabled = !*quiet

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *n, *p, *seed, *keySeed, *keySize, *probes, *workers, *baseline, *slop); err != nil {
		fmt.Fprintf(os.Stderr, "fpcheck: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, n uint64, p float64, seed, keySeed uint64, keySize int, probes uint64, workers int, baseline bool, slop float64) error {
	if keySize < 1 {
		return fmt.Errorf("key size must be positive, got %d", keySize)
	}
	keys := common.KeyStream{Seed: keySeed, Size: keySize}

	start := time.Now()
	bf, err := filter.NewBytes(seed, n, p)
	if err != nil {
		return err
	}
	if err := probe.Fill(bf, keys, 0, n); err != nil {
		return err
	}
	params := bf.Params()
	common.LogDuration(start, "filled %d keys: %v", n, params)

	start = time.Now()
	if misses := probe.Verify(bf, keys, 0, n); misses != 0 {
		return fmt.Errorf("%d false negatives", misses)
	}
	common.LogDuration(start, "verified %d keys", n)
	common.Logf("estimated population: %.1f\n", bf.EstimatedPopulation())

	res, err := probe.Measure(ctx, bf, keys, n, probes, workers)
	if err != nil {
		return err
	}
	limit := p * (1 + slop)
	common.Logf("%-10s%d/%d positives rate=%s limit=%s (%v)\n", "bloomier",
		res.Positives, res.Probes, common.FormatRate(res.Rate()), common.FormatRate(limit), res.Elapsed.Round(time.Millisecond))

	if baseline {
		if err := runBaseline(ctx, params, keys, n, probes, workers); err != nil {
			return err
		}
	}

	if res.Rate() > limit {
		return fmt.Errorf("false positive rate %s exceeds %s", common.FormatRate(res.Rate()), common.FormatRate(limit))
	}
	return nil
}

// runBaseline repeats the measurement with bits-and-blooms/bloom sized to the
// same m and k.
func runBaseline(ctx context.Context, params filter.Params, keys common.KeyStream, n, probes uint64, workers int) error {
	start := time.Now()
	ref := bloom.New(uint(params.M), uint(params.K))
	err := probe.Fill(probe.AdderFunc(func(key []byte) error {
		ref.Add(key)
		return nil
	}), keys, 0, n)
	if err != nil {
		return err
	}
	common.LogDuration(start, "filled baseline")

	res, err := probe.Measure(ctx, probe.ProberFunc(ref.Test), keys, n, probes, workers)
	if err != nil {
		return err
	}
	common.Logf("%-10s%d/%d positives rate=%s (%v)\n", "baseline",
		res.Positives, res.Probes, common.FormatRate(res.Rate()), res.Elapsed.Round(time.Millisecond))
	return nil
}
