package mixhash

import "encoding/binary"

// Adapter maps a typed key to the byte sequence fed to the mixer. Adapters
// must be pure: the same key always yields the same bytes.
type Adapter[K any] func(K) []byte

// Bytes uses the key as-is.
func Bytes(key []byte) []byte {
	return key
}

// Int32 encodes v as 4 little-endian bytes, so the mixer sees the integer's
// bit pattern as the low half of its first tail word.
func Int32(v int32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	return buf[:]
}

// Int64 encodes v as 8 little-endian bytes.
func Int64(v int64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return buf[:]
}

// String hashes the UTF-8 encoding of s.
func String(s string) []byte {
	return []byte(s)
}
