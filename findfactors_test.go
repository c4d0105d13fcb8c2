package copri

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayFindFactorsScenario(t *testing.T) {
	// S = [35, 77], P = cb(S) = [5, 7, 11].
	pool := NewPool()
	s := ArrayFrom(big.NewInt(35), big.NewInt(77))

	var base Array
	CB(pool, &base, s, 0, s.Len()-1, nil)
	require.ElementsMatch(t, []int64{5, 7, 11}, ints(base))

	var out []Factor
	ArrayFindFactors(pool, &out, s, base, nil)

	require.NotEmpty(t, out)
	for _, f := range out {
		require.Contains(t, []int64{35, 77}, f.Original.Int64())
		require.Contains(t, []int64{5, 7, 11}, f.Factor.Int64())
		product := new(big.Int).Mul(f.Factor, f.Cofactor)
		require.Equal(t, f.Original, product)
	}

	// Every element of S must be covered by at least one triple.
	seen := map[int64]bool{}
	for _, f := range out {
		seen[f.Original.Int64()] = true
	}
	require.True(t, seen[35])
	require.True(t, seen[77])
}

func TestArrayFindFactorsOnEmptySEmitsDiagnostic(t *testing.T) {
	var lines []string
	logger := &recordingLogger{lines: &lines}
	opts := &Options{Logger: logger}

	pool := NewPool()
	var out []Factor
	ArrayFindFactors(pool, &out, NewArray(0), ArrayFrom(big.NewInt(5)), opts)

	require.Empty(t, out)
	require.NotEmpty(t, lines)
}
