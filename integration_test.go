package copri

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// End-to-end scenarios exercising CB and FindFactors together.

func TestIntegrationScenario1(t *testing.T) {
	got := runCB(t, ArrayFrom(big.NewInt(15), big.NewInt(21), big.NewInt(35)), nil)
	requireSetEqual(t, []int64{3, 5, 7}, ints(got))
}

func TestIntegrationScenario2(t *testing.T) {
	got := runCB(t, ArrayFrom(big.NewInt(6), big.NewInt(10), big.NewInt(15)), nil)
	requireSetEqual(t, []int64{2, 3, 5}, ints(got))
}

func TestIntegrationScenario3DistinctPrimes(t *testing.T) {
	p, q, r := int64(101), int64(103), int64(107)
	got := runCB(t, ArrayFrom(big.NewInt(p*q), big.NewInt(p*r)), nil)
	requireSetEqual(t, []int64{p, q, r}, ints(got))
}

func TestIntegrationScenario4RSASharedFactor(t *testing.T) {
	p, q, r := big.NewInt(65537), big.NewInt(65539), big.NewInt(65543)
	s := ArrayFrom(new(big.Int).Mul(p, q), new(big.Int).Mul(p, r))
	got := runCB(t, s, nil)
	requireSetEqual(t, []int64{65537, 65539, 65543}, ints(got))
}

func TestIntegrationScenario5Split(t *testing.T) {
	pool := NewPool()
	var ret Array
	ArraySplit(pool, &ret, big.NewInt(360), ArrayFrom(big.NewInt(6), big.NewInt(5)), nil)
	require.Equal(t, []int64{72, 5}, ints(ret))
}

func TestIntegrationScenario6Reduce(t *testing.T) {
	pool := NewPool()
	i, c := new(big.Int), new(big.Int)
	Reduce(pool, i, c, big.NewInt(2), big.NewInt(40))
	require.Equal(t, int64(3), i.Int64())
	require.Equal(t, int64(5), c.Int64())
}

func TestIntegrationScenario7FindFactors(t *testing.T) {
	pool := NewPool()
	s := ArrayFrom(big.NewInt(35), big.NewInt(77))

	var base Array
	CB(pool, &base, s, 0, s.Len()-1, nil)
	requireSetEqual(t, []int64{5, 7, 11}, ints(base))

	var out []Factor
	ArrayFindFactors(pool, &out, s, base, nil)

	originals := map[int64]bool{}
	for _, f := range out {
		originals[f.Original.Int64()] = true
		require.Equal(t, f.Original, new(big.Int).Mul(f.Factor, f.Cofactor))
	}
	require.True(t, originals[35])
	require.True(t, originals[77])
}

// Batch-GCD style scenario: many moduli, one pair shares a factor; cb
// must expose the shared prime as its own base element.
func TestIntegrationBatchGCDExposesSharedModulus(t *testing.T) {
	shared := big.NewInt(104729)
	moduli := ArrayFrom(
		new(big.Int).Mul(shared, big.NewInt(104723)),
		new(big.Int).Mul(big.NewInt(104717), big.NewInt(104711)),
		new(big.Int).Mul(shared, big.NewInt(104701)),
	)

	got := runCB(t, moduli, nil)

	found := false
	for _, b := range got {
		if b.Cmp(shared) == 0 {
			found = true
		}
	}
	require.True(t, found, "shared prime %v must surface as its own base element", shared)
}
