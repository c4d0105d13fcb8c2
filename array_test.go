package copri

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayAddCopiesValue(t *testing.T) {
	a := NewArray(0)
	x := big.NewInt(5)
	a = a.Add(x)

	x.SetInt64(99)
	require.Equal(t, int64(5), a.At(0).Int64(), "Add must copy, not alias, its argument")
}

func TestArrayAppendAllCopiesEveryElement(t *testing.T) {
	src := ArrayFrom(big.NewInt(2), big.NewInt(3))
	dst := NewArray(0).Add(big.NewInt(1))

	dst = dst.AppendAll(src)
	require.Equal(t, 3, dst.Len())

	src[0].SetInt64(-1)
	require.Equal(t, int64(2), dst.At(1).Int64())
}

func TestArrayCloneIsIndependent(t *testing.T) {
	a := ArrayFrom(big.NewInt(1), big.NewInt(2))
	b := a.Clone()
	b.At(0).SetInt64(42)
	require.Equal(t, int64(1), a.At(0).Int64())
}

func TestArrayClear(t *testing.T) {
	a := ArrayFrom(big.NewInt(1))
	a.Clear()
	require.Equal(t, 0, a.Len())
}
