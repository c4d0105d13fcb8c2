package copri_test

import (
	"math/big"
	"testing"

	"github.com/mawi12345/copri"
	"github.com/mawi12345/copri/testutil"
	"github.com/stretchr/testify/require"
)

func TestCBOverSyntheticSharedFactorCorpus(t *testing.T) {
	stream, err := testutil.NewKeyedStream([]byte("cb-shared-corpus"))
	require.NoError(t, err)

	moduli, shared := testutil.SharedFactorModuli(stream, 6)

	var s copri.Array
	for _, m := range moduli {
		s = s.Add(m)
	}

	pool := copri.NewPool()
	var base copri.Array
	copri.CB(pool, &base, s, 0, s.Len()-1, nil)

	found := false
	for i := 0; i < base.Len(); i++ {
		if base.At(i).Cmp(shared) == 0 {
			found = true
		}
	}
	require.True(t, found, "the prime shared by every synthetic modulus must surface as its own base element")
}

func TestCBOverSyntheticCoprimeCorpusStaysFullCardinality(t *testing.T) {
	stream, err := testutil.NewKeyedStream([]byte("cb-coprime-corpus"))
	require.NoError(t, err)

	moduli := testutil.CoprimeModuli(stream, 3)

	var s copri.Array
	for _, m := range moduli {
		s = s.Add(m)
	}

	pool := copri.NewPool()
	var base copri.Array
	copri.CB(pool, &base, s, 0, s.Len()-1, nil)

	// No modulus shares a prime with any other, so cb has nothing to
	// split: the natural base is just the corpus itself, unchanged.
	require.Equal(t, s.Len(), base.Len())

	for i := 0; i < base.Len(); i++ {
		for j := i + 1; j < base.Len(); j++ {
			g := new(big.Int).GCD(nil, nil, base.At(i), base.At(j))
			require.Equal(t, int64(1), g.Int64())
		}
	}
}
