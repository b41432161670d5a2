package bitmap

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ErrTooManyWords is returned when a persisted word array is longer than the
// bitmap it is meant to rehydrate.
var ErrTooManyWords = errors.New("bitmap: word array longer than bitmap")

// bitmapImpl is a concrete implementation of the Bitmap interface.
type bitmapImpl struct {
	set     *bitset.BitSet
	numBits uint64
}

var _ Bitmap = (*bitmapImpl)(nil)

// WordCount returns ceil(numBits / 64).
func WordCount(numBits uint64) int {
	n := numBits / 64
	if numBits%64 != 0 {
		n++
	}
	return int(n)
}

// NewBitmap creates a new bitmap with the specified number of bits.
// All bits are initialized to 0.
func NewBitmap(numBits uint64) Bitmap {
	return &bitmapImpl{
		set:     bitset.New(uint(numBits)),
		numBits: numBits,
	}
}

// NewBitmapFromWords rehydrates a bitmap from packed words. The words are
// copied. Arrays shorter than WordCount(numBits) are zero padded and bits
// past numBits in the last word are dropped.
func NewBitmapFromWords(numBits uint64, words []uint64) (Bitmap, error) {
	n := WordCount(numBits)
	if len(words) > n {
		return nil, fmt.Errorf("%w: got %d words, want at most %d", ErrTooManyWords, len(words), n)
	}

	buf := make([]uint64, n)
	copy(buf, words)
	if rem := numBits % 64; rem != 0 {
		buf[n-1] &= (uint64(1) << rem) - 1
	}

	return &bitmapImpl{
		set:     bitset.From(buf),
		numBits: numBits,
	}, nil
}

func (b *bitmapImpl) check(i uint64) {
	if i >= b.numBits {
		panic(fmt.Sprintf("bitmap: index %d out of range [0, %d)", i, b.numBits))
	}
}

// Add sets the bit at position i to 1.
func (b *bitmapImpl) Add(i uint64) {
	b.check(i)
	b.set.Set(uint(i))
}

// Contains returns true if the bit at position i is set.
func (b *bitmapImpl) Contains(i uint64) bool {
	b.check(i)
	return b.set.Test(uint(i))
}

func (b *bitmapImpl) Reset() {
	b.set.ClearAll()
}

func (b *bitmapImpl) Count() uint64 {
	return uint64(b.set.Count())
}

func (b *bitmapImpl) Len() uint64 {
	return b.numBits
}

func (b *bitmapImpl) Words() []uint64 {
	out := make([]uint64, WordCount(b.numBits))
	copy(out, b.set.Bytes())
	return out
}
