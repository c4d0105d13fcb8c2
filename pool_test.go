package copri

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolReusesPushedSlots(t *testing.T) {
	p := NewPool()

	a := p.Pop()
	a.SetInt64(7)
	p.Push(a)

	b := p.Pop()
	require.Same(t, a, b, "Pop after a single Push should return the same slot")
}

func TestPoolAllocatesWhenEmpty(t *testing.T) {
	p := NewPool()

	a := p.Pop()
	b := p.Pop()
	require.NotSame(t, a, b)
	require.IsType(t, &big.Int{}, a)
}

func TestPoolClearDropsFreeList(t *testing.T) {
	p := NewPool()
	p.Push(p.Pop())
	p.Push(p.Pop())
	p.Clear()
	require.Len(t, p.free, 0)
}
