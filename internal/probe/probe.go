package probe

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Hellblazer/bloomier/internal/common"
)

// cancelCheckInterval is how many keys a worker probes between context checks.
const cancelCheckInterval = 4096

// Prober answers membership queries for byte keys. Implementations used with
// Measure must be safe for concurrent reads.
type Prober interface {
	Contains(key []byte) bool
}

type ProberFunc func(key []byte) bool

func (f ProberFunc) Contains(key []byte) bool {
	return f(key)
}

// Adder records byte keys. The key slice is reused between calls and must
// not be retained.
type Adder interface {
	Add(key []byte) error
}

type AdderFunc func(key []byte) error

func (f AdderFunc) Add(key []byte) error {
	return f(key)
}

// Result reports a false positive measurement.
type Result struct {
	Probes    uint64
	Positives uint64
	Elapsed   time.Duration
}

// Rate is the fraction of probes that answered true.
func (r Result) Rate() float64 {
	if r.Probes == 0 {
		return 0
	}
	return float64(r.Positives) / float64(r.Probes)
}

// Fill adds keys from .. from+count-1 of the stream.
func Fill(a Adder, keys common.KeyStream, from, count uint64) error {
	var buf []byte
	for i := from; i < from+count; i++ {
		buf = keys.Key(buf, i)
		if err := a.Add(buf); err != nil {
			return err
		}
	}
	return nil
}

// Verify returns how many of keys from .. from+count-1 the prober rejects.
// For keys that were added, any non-zero result is a false negative.
func Verify(p Prober, keys common.KeyStream, from, count uint64) uint64 {
	var buf []byte
	var misses uint64
	for i := from; i < from+count; i++ {
		buf = keys.Key(buf, i)
		if !p.Contains(buf) {
			misses++
		}
	}
	return misses
}

// Measure probes keys from .. from+count-1 across workers goroutines, each
// owning a disjoint range, and counts positive answers. When the probed keys
// were never added every positive is a false positive.
func Measure(ctx context.Context, p Prober, keys common.KeyStream, from, count uint64, workers int) (Result, error) {
	start := time.Now()
	workers = max(1, workers)
	per := (count + uint64(workers) - 1) / uint64(workers)

	var positives atomic.Uint64
	g, ctx := errgroup.WithContext(ctx)
	for lo := from; lo < from+count; lo += per {
		hi := min(lo+per, from+count)
		g.Go(func() error {
			var buf []byte
			var local uint64
			for i := lo; i < hi; i++ {
				if (i-lo)%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				buf = keys.Key(buf, i)
				if p.Contains(buf) {
					local++
				}
			}
			positives.Add(local)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return Result{
		Probes:    count,
		Positives: positives.Load(),
		Elapsed:   time.Since(start),
	}, nil
}
