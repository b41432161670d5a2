package mixhash

import (
	"encoding/binary"
	"math/bits"
)

const (
	c1        = 0x87c37b91114253d5
	c2        = 0x4cf5ad432745937f
	chunkSize = 16
)

// State is the scratch state of a single hash computation: two 64-bit
// accumulators and the number of bytes consumed so far.
//
// A State is a plain value. Every call to Establish builds its own, so
// concurrent computations never share accumulators.
type State struct {
	H1     uint64
	H2     uint64
	Length uint64
}

// Establish hashes data with the given seed and returns the finalized
// 128-bit digest as two 64-bit words.
func Establish(data []byte, seed uint64) State {
	st := State{H1: seed, H2: seed}
	st.process(data)
	st.finalize()
	return st
}

func (st *State) process(data []byte) {
	for len(data) >= chunkSize {
		k1 := binary.LittleEndian.Uint64(data[0:8])
		k2 := binary.LittleEndian.Uint64(data[8:16])
		st.bmix(k1, k2)
		st.Length += chunkSize
		data = data[chunkSize:]
	}
	if len(data) > 0 {
		st.tail(data)
	}
}

// bmix folds one full 16-byte chunk into the accumulators.
func (st *State) bmix(k1, k2 uint64) {
	st.H1 ^= mixK1(k1)
	st.H1 = bits.RotateLeft64(st.H1, 27)
	st.H1 += st.H2
	st.H1 = st.H1*5 + 0x52dce729

	st.H2 ^= mixK2(k2)
	st.H2 = bits.RotateLeft64(st.H2, 31)
	st.H2 += st.H1
	st.H2 = st.H2*5 + 0x38495ab5
}

// tail folds the final 1-15 bytes. Bytes 0-7 land in k1 and bytes 8-14 in
// k2, each positioned by its offset. The tail skips the rotate-add step.
func (st *State) tail(rem []byte) {
	var k1, k2 uint64
	for i, b := range rem {
		if i < 8 {
			k1 |= uint64(b) << (8 * i)
		} else {
			k2 |= uint64(b) << (8 * (i - 8))
		}
	}
	st.Length += uint64(len(rem))
	st.H1 ^= mixK1(k1)
	st.H2 ^= mixK2(k2)
}

func (st *State) finalize() {
	st.H1 ^= st.Length
	st.H2 ^= st.Length

	st.H1 += st.H2
	st.H2 += st.H1

	st.H1 = fmix64(st.H1)
	st.H2 = fmix64(st.H2)

	st.H1 += st.H2
	st.H2 += st.H1
}

func mixK1(k uint64) uint64 {
	k *= c1
	k = bits.RotateLeft64(k, 31)
	return k * c2
}

func mixK2(k uint64) uint64 {
	k *= c2
	k = bits.RotateLeft64(k, 33)
	return k * c1
}

func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}
