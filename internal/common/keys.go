package common

import "encoding/binary"

const splitMixGamma = 0x9e3779b97f4a7c15

// KeyStream is a reproducible source of pseudo-random byte keys. Key i is
// built from SplitMix64 outputs at counters i*w+1 .. i*w+w, where
// w = ceil(Size/8), laid out little-endian and truncated to Size bytes.
// Because every key is addressable by index, disjoint index ranges can be
// generated concurrently and still match a sequential walk.
type KeyStream struct {
	Seed uint64
	Size int
}

// WordsPerKey returns the number of SplitMix64 outputs consumed per key.
func (s KeyStream) WordsPerKey() uint64 {
	return uint64((s.Size + 7) / 8)
}

// Key writes key i into dst (grown if needed) and returns it.
func (s KeyStream) Key(dst []byte, i uint64) []byte {
	w := s.WordsPerKey()
	if cap(dst) < int(8*w) {
		dst = make([]byte, 8*w)
	}
	dst = dst[:8*w]
	counter := i * w
	for j := uint64(0); j < w; j++ {
		counter++
		binary.LittleEndian.PutUint64(dst[8*j:], splitMix64(s.Seed+counter*splitMixGamma))
	}
	return dst[:s.Size]
}

func splitMix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
