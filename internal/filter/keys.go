package filter

import "github.com/Hellblazer/bloomier/internal/mixhash"

// NewBytes sizes a filter over byte-slice keys.
func NewBytes(seed uint64, n uint64, p float64, opts ...Option) (*BloomFilter[[]byte], error) {
	return New(mixhash.Bytes, seed, n, p, opts...)
}

// NewString sizes a filter over string keys, hashed as their UTF-8 bytes.
func NewString(seed uint64, n uint64, p float64, opts ...Option) (*BloomFilter[string], error) {
	return New(mixhash.String, seed, n, p, opts...)
}

// NewInt32 sizes a filter over int32 keys, hashed as 4 little-endian bytes.
func NewInt32(seed uint64, n uint64, p float64, opts ...Option) (*BloomFilter[int32], error) {
	return New(mixhash.Int32, seed, n, p, opts...)
}

// NewInt64 sizes a filter over int64 keys, hashed as 8 little-endian bytes.
func NewInt64(seed uint64, n uint64, p float64, opts ...Option) (*BloomFilter[int64], error) {
	return New(mixhash.Int64, seed, n, p, opts...)
}
