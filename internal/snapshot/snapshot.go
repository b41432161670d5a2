package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Hellblazer/bloomier/internal/filter"
	"github.com/Hellblazer/bloomier/internal/mixhash"
)

// StatsPath returns the path of the JSON stats file kept next to a snapshot.
func StatsPath(path string) string {
	return path + ".json"
}

// Save atomically writes f to path and its stats to StatsPath(path).
func Save[K any](path string, f filter.Filter[K]) error {
	// One copy of the words backs both files.
	params := f.Params()
	words := f.Words()
	stats := filter.StatsFor(params, words)

	err := writeAtomic(path, func(w io.Writer) error {
		_, err := filter.WriteWords(w, params, words)
		return err
	})
	if err != nil {
		return err
	}
	return writeAtomic(StatsPath(path), func(w io.Writer) error {
		return WriteStats(w, stats)
	})
}

// Load reads the filter stored at path. Keys are hashed with adapter.
func Load[K any](path string, adapter mixhash.Adapter[K], opts ...filter.Option) (*filter.BloomFilter[K], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bf, err := filter.ReadBloomFilter(bufio.NewReader(f), adapter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return bf, nil
}

// WriteStats serializes stats to JSON.
func WriteStats(w io.Writer, s filter.Stats) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}

// ReadStats deserializes stats from JSON.
func ReadStats(r io.Reader) (filter.Stats, error) {
	var s filter.Stats
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return filter.Stats{}, err
	}
	return s, nil
}

// LoadStats reads the stats file written by Save.
func LoadStats(path string) (filter.Stats, error) {
	f, err := os.Open(StatsPath(path))
	if err != nil {
		return filter.Stats{}, err
	}
	defer f.Close()
	return ReadStats(f)
}

// writeAtomic writes to a temp file in the target directory, syncs it, then
// renames it over path.
func writeAtomic(path string, write func(io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpPath := f.Name()

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// Atomic rename
	return os.Rename(tmpPath, path)
}
