package filter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/Hellblazer/bloomier/internal/bitmap"
	"github.com/Hellblazer/bloomier/internal/common"
	"github.com/Hellblazer/bloomier/internal/mixhash"
)

// Magic opens every serialized filter.
var Magic = [4]byte{'B', 'L', 'M', 'R'}

// HeaderSize is the encoded size of magic, seed, k and m.
const HeaderSize = 4 + 8 + 4 + 8

// readChunk bounds how many words are buffered per read so a corrupt m
// cannot force a huge allocation before the stream runs dry.
const readChunk = 1 << 12

// EncodedSize returns the number of bytes WriteBloomFilter produces for m.
func EncodedSize(m uint64) int {
	return HeaderSize + 8*bitmap.WordCount(m) + 8
}

// WriteBloomFilter serializes a filter to a writer.
// Format: [magic: 4][seed: uint64][k: uint32][m: uint64][words: ceil(m/64) x uint64][xxhash64: uint64]
// The trailer covers every preceding byte.
func WriteBloomFilter[K any](w io.Writer, f Filter[K]) (int, error) {
	return WriteWords(w, f.Params(), f.Words())
}

// WriteWords serializes a parameter set and bit array captured earlier.
func WriteWords(w io.Writer, params Params, words []uint64) (int, error) {
	if len(words) != bitmap.WordCount(params.M) {
		return 0, fmt.Errorf("%w: %d words for m=%d", ErrInvalidParameter, len(words), params.M)
	}
	digest := xxhash.New()
	mw := io.MultiWriter(w, digest)
	total := 0

	n, err := common.WriteBytes(mw, Magic[:])
	total += n
	if err != nil {
		return total, err
	}

	n, err = common.WriteUint64(mw, params.Seed)
	total += n
	if err != nil {
		return total, err
	}

	n, err = common.WriteUint32(mw, params.K)
	total += n
	if err != nil {
		return total, err
	}

	n, err = common.WriteUint64(mw, params.M)
	total += n
	if err != nil {
		return total, err
	}

	n, err = common.WriteWords(mw, words)
	total += n
	if err != nil {
		return total, err
	}

	n, err = common.WriteUint64(w, digest.Sum64())
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

// ReadBloomFilter deserializes a filter from a reader. Keys are hashed with
// adapter, which must match the one the filter was built with.
func ReadBloomFilter[K any](r io.Reader, adapter mixhash.Adapter[K], opts ...Option) (*BloomFilter[K], error) {
	digest := xxhash.New()
	tr := io.TeeReader(r, digest)

	magic, err := common.ReadBytes(tr, uint64(len(Magic)))
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, Magic[:]) {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorrupt, magic)
	}

	seed, err := common.ReadUint64(tr)
	if err != nil {
		return nil, err
	}
	k, err := common.ReadUint32(tr)
	if err != nil {
		return nil, err
	}
	m, err := common.ReadUint64(tr)
	if err != nil {
		return nil, err
	}
	params := Params{Seed: seed, K: k, M: m}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	remaining := bitmap.WordCount(m)
	words := make([]uint64, 0, min(remaining, readChunk))
	for remaining > 0 {
		chunk, err := common.ReadWords(tr, min(remaining, readChunk))
		if err != nil {
			return nil, err
		}
		words = append(words, chunk...)
		remaining -= len(chunk)
	}

	want := digest.Sum64()
	got, err := common.ReadUint64(r)
	if err != nil {
		return nil, err
	}
	if got != want {
		return nil, fmt.Errorf("%w: checksum %#016x, want %#016x", ErrCorrupt, got, want)
	}

	return NewFromWords(adapter, params, words, opts...)
}
