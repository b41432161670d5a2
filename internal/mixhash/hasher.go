package mixhash

import (
	"errors"
	"math"
)

// DefaultProbeFactor bounds the double-hashing search at
// DefaultProbeFactor*k candidates per key.
const DefaultProbeFactor = 64

// ErrHashExhausted is returned when the double-hashing search runs out of
// candidates before finding k distinct indices. Only degenerate (k, m)
// combinations or a stride that is a multiple of m can get here.
var ErrHashExhausted = errors.New("mixhash: could not derive distinct indices")

// Hasher binds an Adapter to the mixer. It holds no per-call state and may
// be copied and shared freely.
type Hasher[K any] struct {
	adapter Adapter[K]
}

// NewHasher returns a Hasher for keys converted by adapter.
func NewHasher[K any](adapter Adapter[K]) Hasher[K] {
	return Hasher[K]{adapter: adapter}
}

// Establish hashes key with seed.
func (h Hasher[K]) Establish(key K, seed uint64) State {
	return Establish(h.adapter(key), seed)
}

// Hashes returns k distinct indices in [0, m) for key.
func (h Hasher[K]) Hashes(k uint32, key K, m uint64, seed uint64) ([]uint64, error) {
	return Indices(make([]uint64, 0, k), h.Establish(key, seed), k, m, DefaultProbeFactor*int(k))
}

// IdentityHash folds the first digest word into a non-negative-high-bit
// 32-bit identity for key.
func (h Hasher[K]) IdentityHash(key K, seed uint64) int32 {
	h1 := h.Establish(key, seed).H1
	return int32(uint32(h1) ^ (uint32(h1>>32) & math.MaxInt32))
}

// Indices appends k distinct indices in [0, m) to dst by double hashing over
// st: candidate i is (H1 + i*H2) with the sign bit masked, reduced mod m.
// Candidates already chosen for this key are skipped.
//
// At most limit candidates are examined. On exhaustion the distinct prefix
// found so far is returned together with ErrHashExhausted; the prefix is
// deterministic for a given (st, k, m, limit).
func Indices(dst []uint64, st State, k uint32, m uint64, limit int) ([]uint64, error) {
	start := len(dst)
	combined := st.H1
	for tries := 0; uint32(len(dst)-start) < k; tries++ {
		if tries >= limit {
			return dst, ErrHashExhausted
		}
		idx := (combined & math.MaxInt64) % m
		combined += st.H2
		if contains(dst[start:], idx) {
			continue
		}
		dst = append(dst, idx)
	}
	return dst, nil
}

func contains(s []uint64, v uint64) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
