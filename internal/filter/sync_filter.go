package filter

import (
	"io"
	"sync"
)

// SyncFilter guards a BloomFilter with a read/write lock. Contains and the
// read-only accessors share the lock; Add and Clear take it exclusively.
type SyncFilter[K any] struct {
	mu sync.RWMutex
	bf *BloomFilter[K]
}

var _ Filter[string] = (*SyncFilter[string])(nil)

func NewSyncFilter[K any](bf *BloomFilter[K]) *SyncFilter[K] {
	return &SyncFilter[K]{bf: bf}
}

func (s *SyncFilter[K]) Add(key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bf.Add(key)
}

func (s *SyncFilter[K]) Contains(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bf.Contains(key)
}

func (s *SyncFilter[K]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bf.Clear()
}

func (s *SyncFilter[K]) EstimatedPopulation() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bf.EstimatedPopulation()
}

func (s *SyncFilter[K]) Params() Params {
	return s.bf.Params()
}

func (s *SyncFilter[K]) Words() []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bf.Words()
}

func (s *SyncFilter[K]) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bf.Stats()
}

// WriteTo serializes a consistent view of the filter.
func (s *SyncFilter[K]) WriteTo(w io.Writer) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, err := WriteBloomFilter[K](w, s.bf)
	return int64(n), err
}
