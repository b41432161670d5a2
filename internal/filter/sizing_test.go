package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimalParams(t *testing.T) {
	tests := []struct {
		n         uint64
		p         float64
		expectedM uint64
		expectedK uint32
	}{
		{100, 0.01, 959, 7},
		{1000, 0.01, 9585, 7},
		{100, 0.001, 1438, 10},
		{1000000, 0.000125, 18705673, 13},
		{1, 0.5, MinBits, 6}, // m is clamped to MinBits
		{10, 0, 15495, 1074}, // p == 0 uses the smallest positive float64
	}

	for _, tt := range tests {
		params, err := OptimalParams(666, tt.n, tt.p)
		require.NoError(t, err, "n=%d p=%v", tt.n, tt.p)
		require.Equal(t, tt.expectedM, params.M, "m for n=%d p=%v", tt.n, tt.p)
		require.Equal(t, tt.expectedK, params.K, "k for n=%d p=%v", tt.n, tt.p)
		require.Equal(t, uint64(666), params.Seed)
	}
}

func TestOptimalParamsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		p    float64
	}{
		{"zero insertions", 0, 0.01},
		{"negative rate", 100, -0.1},
		{"rate of one", 100, 1},
		{"rate above one", 100, 1.5},
		{"NaN rate", 100, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OptimalParams(0, tt.n, tt.p)
			require.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestOptimalKBounds(t *testing.T) {
	require.Equal(t, uint32(1), OptimalK(1000, 8), "k never drops below 1")
	require.Equal(t, uint32(1), OptimalK(0, 1000))
	require.Equal(t, uint32(7), OptimalK(1000, 9585))
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, Params{K: 1, M: 8}.Validate())
	require.NoError(t, Params{K: 8, M: 8}.Validate())
	require.ErrorIs(t, Params{K: 0, M: 64}.Validate(), ErrInvalidParameter)
	require.ErrorIs(t, Params{K: 1, M: 7}.Validate(), ErrInvalidParameter)
	require.ErrorIs(t, Params{K: 9, M: 8}.Validate(), ErrInvalidParameter)
}

func TestPopulation(t *testing.T) {
	require.Zero(t, Population(0, 7, 1000))
	require.True(t, math.IsInf(Population(1000, 7, 1000), 1), "saturated filter estimates +Inf")

	// Monotone in the number of set bits.
	prev := 0.0
	for set := uint64(1); set < 1000; set += 37 {
		est := Population(set, 7, 1000)
		require.Greater(t, est, prev)
		prev = est
	}

	// One set bit out of m with k == 1 is just over one key.
	require.InDelta(t, 1.0005, Population(1, 1, 1000), 1e-4)
}

func TestOptimalMSubnormalRates(t *testing.T) {
	require.InDelta(t, -744.4400719213812, logRate(math.SmallestNonzeroFloat64), 1e-9)
	require.InDelta(t, -714.2292780491954, logRate(3*0x1p-1032), 1e-9)
	require.Equal(t, math.Log(0.01), logRate(0.01), "normal rates use math.Log directly")

	require.Equal(t, uint64(1549), OptimalM(1, 0))
	require.Equal(t, OptimalM(1, 0), OptimalM(1, math.SmallestNonzeroFloat64))
	require.Equal(t, uint64(15495), OptimalM(10, 0))
	require.Equal(t, uint32(1074), OptimalK(10, OptimalM(10, 0)))
}

func TestPopulationEmptyIsPositiveZero(t *testing.T) {
	require.False(t, math.Signbit(Population(0, 7, 1000)))

	bf, err := NewString(0, 100, 0.01)
	require.NoError(t, err)
	require.False(t, math.Signbit(bf.EstimatedPopulation()))
	require.False(t, math.Signbit(float64(bf.Stats().EstimatedPopulation)))
}

func TestParamsValidateMaxBits(t *testing.T) {
	require.NoError(t, Params{K: 1, M: MaxBits}.Validate())
	require.ErrorIs(t, Params{K: 1, M: MaxBits + 1}.Validate(), ErrInvalidParameter)
	require.ErrorIs(t, Params{K: 3, M: math.MaxUint64}.Validate(), ErrInvalidParameter)
}
