package filter

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatsJSON(t *testing.T) {
	stats := Stats{Seed: 1, K: 2, M: 64, Words: 1, SetBits: 3, FillRatio: 3.0 / 64, EstimatedPopulation: 1.5}

	data, err := json.Marshal(stats)
	require.NoError(t, err)
	require.JSONEq(t, `{"seed":1,"k":2,"m":64,"words":1,"set_bits":3,"fill_ratio":0.046875,"estimated_population":1.5}`, string(data))

	var got Stats
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, stats, got)
}

func TestStatsJSONSaturated(t *testing.T) {
	stats := Stats{K: 1, M: 8, Words: 1, SetBits: 8, FillRatio: 1, EstimatedPopulation: Estimate(math.Inf(1))}

	data, err := json.Marshal(stats)
	require.NoError(t, err)
	require.Contains(t, string(data), `"estimated_population":"+Inf"`)

	var got Stats
	require.NoError(t, json.Unmarshal(data, &got))
	require.True(t, math.IsInf(float64(got.EstimatedPopulation), 1))
}

func TestStatsFor(t *testing.T) {
	bf, err := NewString(4, 200, 0.01)
	require.NoError(t, err)
	for _, key := range []string{"a", "b", "c", "d"} {
		require.NoError(t, bf.Add(key))
	}
	require.Equal(t, bf.Stats(), StatsFor(bf.Params(), bf.Words()))

	stats := StatsFor(Params{K: 2, M: 64}, []uint64{0b111})
	require.Equal(t, uint64(3), stats.SetBits)
	require.Equal(t, 1, stats.Words)
}

func TestStatsJSONEmptyFilter(t *testing.T) {
	bf, err := NewString(0, 100, 0.01)
	require.NoError(t, err)

	data, err := json.Marshal(bf.Stats())
	require.NoError(t, err)
	require.Contains(t, string(data), `"estimated_population":0}`)
	require.NotContains(t, string(data), `-0`)
}
