package filter

// Filter is a probabilistic set of keys. Contains never returns false for a
// key that was passed to Add since the last Clear, but may return true for
// keys that were never added.
type Filter[K any] interface {
	// Add records key. It only fails when the filter's (k, m) cannot yield
	// k distinct bit positions for key; the positions that were found are
	// still set.
	Add(key K) error

	// Contains returns true if the key might be in the set.
	// Returns false if the key is definitely NOT in the set.
	Contains(key K) bool

	// Clear resets every bit.
	Clear()

	// EstimatedPopulation estimates how many distinct keys were added.
	EstimatedPopulation() float64

	// Params returns the immutable (seed, k, m) triple.
	Params() Params

	// Words returns a copy of the bit array in its persisted word layout.
	Words() []uint64

	// Stats summarises the filter's parameters and saturation.
	Stats() Stats
}
