package filter

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Hellblazer/bloomier/internal/mixhash"
)

func TestSyncFilterConcurrentAdd(t *testing.T) {
	bf, err := NewString(11, 8000, 0.01)
	require.NoError(t, err)
	sf := NewSyncFilter(bf)

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 1000; i++ {
				key := fmt.Sprintf("w%d-key-%d", w, i)
				if err := sf.Add(key); err != nil {
					return err
				}
				if !sf.Contains(key) {
					return fmt.Errorf("key %s missing right after add", key)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// Matches a filter built sequentially from the same keys.
	seq, err := NewString(11, 8000, 0.01)
	require.NoError(t, err)
	for w := 0; w < 8; w++ {
		for i := 0; i < 1000; i++ {
			require.NoError(t, seq.Add(fmt.Sprintf("w%d-key-%d", w, i)))
		}
	}
	require.Equal(t, seq.Words(), sf.Words())
	require.Equal(t, seq.Stats(), sf.Stats())
	require.Equal(t, seq.EstimatedPopulation(), sf.EstimatedPopulation())
}

func TestSyncFilterWriteTo(t *testing.T) {
	bf, err := NewString(11, 100, 0.01)
	require.NoError(t, err)
	sf := NewSyncFilter(bf)
	require.NoError(t, sf.Add("hello"))

	var buf bytes.Buffer
	n, err := sf.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(EncodedSize(sf.Params().M)), n)

	restored, err := ReadBloomFilter(&buf, mixhash.String)
	require.NoError(t, err)
	require.True(t, restored.Contains("hello"))

	sf.Clear()
	require.False(t, sf.Contains("hello"))
	require.True(t, restored.Contains("hello"), "restored copy is independent")
}
