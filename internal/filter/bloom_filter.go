package filter

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/Hellblazer/bloomier/internal/bitmap"
	"github.com/Hellblazer/bloomier/internal/mixhash"
)

// BloomFilter implements a space-efficient probabilistic data structure
// for set membership testing with no false negatives.
//
// A BloomFilter is not safe for concurrent mutation; wrap it in a
// SyncFilter when Add or Clear may race with other calls.
type BloomFilter[K any] struct {
	params Params
	hasher mixhash.Hasher[K]
	bitmap bitmap.Bitmap
	limit  int // candidates examined per key before giving up
}

var _ Filter[[]byte] = (*BloomFilter[[]byte])(nil)

// New creates an empty filter sized for n expected insertions at false
// positive rate p.
func New[K any](adapter mixhash.Adapter[K], seed uint64, n uint64, p float64, opts ...Option) (*BloomFilter[K], error) {
	params, err := OptimalParams(seed, n, p)
	if err != nil {
		return nil, err
	}
	return NewWithParams(adapter, params, opts...)
}

// NewWithParams creates an empty filter with explicit parameters.
func NewWithParams[K any](adapter mixhash.Adapter[K], params Params, opts ...Option) (*BloomFilter[K], error) {
	return build(adapter, params, nil, opts)
}

// NewFromWords rehydrates a filter from a persisted word array. Bit i lives
// in words[i/64] at bit i%64. A shorter array is zero padded; a longer one
// is rejected.
func NewFromWords[K any](adapter mixhash.Adapter[K], params Params, words []uint64, opts ...Option) (*BloomFilter[K], error) {
	if words == nil {
		words = []uint64{}
	}
	return build(adapter, params, words, opts)
}

func build[K any](adapter mixhash.Adapter[K], params Params, words []uint64, opts []Option) (*BloomFilter[K], error) {
	if adapter == nil {
		return nil, fmt.Errorf("%w: nil key adapter", ErrInvalidParameter)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	var bm bitmap.Bitmap
	if words == nil {
		bm = bitmap.NewBitmap(params.M)
	} else if bm, err = bitmap.NewBitmapFromWords(params.M, words); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	return &BloomFilter[K]{
		params: params,
		hasher: mixhash.NewHasher(adapter),
		bitmap: bm,
		limit:  o.ProbeFactor * int(params.K),
	}, nil
}

// Indices returns the k distinct bit positions for key. If the search is
// exhausted first, the positions found so far are returned along with
// mixhash.ErrHashExhausted.
func (bf *BloomFilter[K]) Indices(key K) ([]uint64, error) {
	st := bf.hasher.Establish(key, bf.params.Seed)
	return mixhash.Indices(make([]uint64, 0, bf.params.K), st, bf.params.K, bf.params.M, bf.limit)
}

// Add inserts a key into the bloom filter.
func (bf *BloomFilter[K]) Add(key K) error {
	idx, err := bf.Indices(key)
	for _, pos := range idx {
		bf.bitmap.Add(pos)
	}
	if err != nil {
		return fmt.Errorf("filter: add: %w", err)
	}
	return nil
}

// Contains returns true if the key might be in the set.
// Returns false if the key is definitely NOT in the set.
//
// For keys whose index search was exhausted, only the deterministic prefix
// that Add set is tested.
func (bf *BloomFilter[K]) Contains(key K) bool {
	idx, _ := bf.Indices(key)
	for _, pos := range idx {
		if !bf.bitmap.Contains(pos) {
			return false
		}
	}
	return true
}

func (bf *BloomFilter[K]) Clear() {
	bf.bitmap.Reset()
}

// EstimatedPopulation returns -m/k * ln(1 - setBits/m). It is +Inf once
// every bit is set.
func (bf *BloomFilter[K]) EstimatedPopulation() float64 {
	return Population(bf.bitmap.Count(), bf.params.K, bf.params.M)
}

// IdentityHash returns a 32-bit identity for key under this filter's seed.
func (bf *BloomFilter[K]) IdentityHash(key K) int32 {
	return bf.hasher.IdentityHash(key, bf.params.Seed)
}

func (bf *BloomFilter[K]) Params() Params {
	return bf.params
}

func (bf *BloomFilter[K]) Words() []uint64 {
	return bf.bitmap.Words()
}

// Stats summarises a filter. The JSON form is written alongside snapshots.
type Stats struct {
	Seed                uint64  `json:"seed"`
	K                   uint32  `json:"k"`
	M                   uint64  `json:"m"`
	Words               int     `json:"words"`
	SetBits             uint64  `json:"set_bits"`
	FillRatio           float64 `json:"fill_ratio"`
	EstimatedPopulation Estimate `json:"estimated_population"`
}

func (bf *BloomFilter[K]) Stats() Stats {
	return statsFor(bf.params, bf.bitmap.Count())
}

// StatsFor summarises a bit array captured with Words.
func StatsFor(params Params, words []uint64) Stats {
	return statsFor(params, uint64(bitset.From(words).Count()))
}

func statsFor(params Params, set uint64) Stats {
	return Stats{
		Seed:                params.Seed,
		K:                   params.K,
		M:                   params.M,
		Words:               bitmap.WordCount(params.M),
		SetBits:             set,
		FillRatio:           float64(set) / float64(params.M),
		EstimatedPopulation: Estimate(Population(set, params.K, params.M)),
	}
}

// Estimate is a population estimate. A saturated filter's estimate is +Inf,
// which encodes as the JSON string "+Inf".
type Estimate float64

func (e Estimate) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(e), 1) {
		return []byte(`"+Inf"`), nil
	}
	return json.Marshal(float64(e))
}

func (e *Estimate) UnmarshalJSON(data []byte) error {
	if string(data) == `"+Inf"` {
		*e = Estimate(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*e = Estimate(f)
	return nil
}
