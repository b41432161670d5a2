package filter

import (
	"fmt"
	"math"
)

// OptimalM returns the bit array size that achieves false positive rate p
// for n insertions:
//
//	m = max(MinBits, round(-n * ln(p) / ln(2)^2))
//
// p == 0 is treated as the smallest positive float64.
func OptimalM(n uint64, p float64) uint64 {
	if p == 0 {
		p = math.SmallestNonzeroFloat64
	}
	m := math.Round(-float64(n) * logRate(p) / (math.Ln2 * math.Ln2))
	return max(MinBits, uint64(m))
}

// smallestNormal is the smallest positive normal float64, 2^-1022.
const smallestNormal = 0x1p-1022

// logRate returns ln(p). Subnormal p is split into mantissa and exponent
// first; math.Log loses the exponent for subnormals on some platforms.
func logRate(p float64) float64 {
	if p >= smallestNormal {
		return math.Log(p)
	}
	frac, exp := math.Frexp(p)
	return math.Log(frac) + float64(exp)*math.Ln2
}

// OptimalK returns the number of bit positions per key that minimises the
// false positive rate for n insertions into m bits:
//
//	k = max(1, round((m/n) * ln(2)))
func OptimalK(n uint64, m uint64) uint32 {
	if n == 0 {
		return 1
	}
	k := math.Round(float64(m) / float64(n) * math.Ln2)
	return max(1, uint32(k))
}

// OptimalParams sizes a filter for n expected insertions at target false
// positive rate p.
func OptimalParams(seed uint64, n uint64, p float64) (Params, error) {
	if n == 0 {
		return Params{}, fmt.Errorf("%w: expected insertions must be positive", ErrInvalidParameter)
	}
	if math.IsNaN(p) || p < 0 || p >= 1 {
		return Params{}, fmt.Errorf("%w: false positive rate %v outside [0, 1)", ErrInvalidParameter, p)
	}
	m := OptimalM(n, p)
	params := Params{Seed: seed, K: OptimalK(n, m), M: m}
	return params, params.Validate()
}

// Population estimates the number of distinct keys in a filter with setBits
// of its m bits set:
//
//	-m/k * ln(1 - setBits/m)
//
// The estimate diverges to +Inf as the array saturates.
func Population(setBits uint64, k uint32, m uint64) float64 {
	if setBits == 0 {
		return 0
	}
	fm := float64(m)
	return -fm / float64(k) * math.Log(1-float64(setBits)/fm)
}
