package bitmap

// Bitmap is a fixed-size set of bit positions backed by packed 64-bit words.
// Bits only ever move from 0 to 1 individually; Reset clears all of them.
type Bitmap interface {
	// Add sets the bit at position i to 1.
	Add(i uint64)

	// Contains returns true if the bit at position i is set.
	Contains(i uint64) bool

	// Reset clears every bit.
	Reset()

	// Count returns the number of set bits.
	Count() uint64

	// Len returns the number of addressable bits.
	Len() uint64

	// Words returns a copy of the backing words. Bit i lives in word i/64 at
	// position i%64; padding bits past Len are always zero.
	Words() []uint64
}
