package filter

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MinBits is the smallest supported bit array.
	MinBits = 8

	// MaxBits is the largest bit array whose word count and bit indices fit
	// in a platform int.
	MaxBits = uint64(math.MaxInt) &^ 63
)

var (
	ErrInvalidParameter = errors.New("filter: invalid parameter")
	ErrCorrupt          = errors.New("filter: corrupt snapshot")
)

// Params is the immutable parameter set bound to one filter: the hash seed,
// the number of bit positions derived per key, and the bit array size.
type Params struct {
	Seed uint64
	K    uint32
	M    uint64
}

// Validate checks k >= 1, MinBits <= m <= MaxBits and k <= m.
func (p Params) Validate() error {
	if p.K < 1 {
		return fmt.Errorf("%w: k=%d must be at least 1", ErrInvalidParameter, p.K)
	}
	if p.M < MinBits {
		return fmt.Errorf("%w: m=%d must be at least %d", ErrInvalidParameter, p.M, MinBits)
	}
	if p.M > MaxBits {
		return fmt.Errorf("%w: m=%d exceeds %d", ErrInvalidParameter, p.M, MaxBits)
	}
	if uint64(p.K) > p.M {
		return fmt.Errorf("%w: k=%d exceeds m=%d", ErrInvalidParameter, p.K, p.M)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("seed=%#x k=%d m=%d", p.Seed, p.K, p.M)
}
