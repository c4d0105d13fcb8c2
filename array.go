package copri

import "math/big"

// Array is an ordered, growable sequence of *big.Int. Elements added
// via Add or AppendAll are always independent copies, so an Array
// never aliases integers owned by its caller — inputs stay read-only
// and outputs stay single-writer. There is no deduplication.
type Array []*big.Int

// NewArray returns an empty Array with room for n elements before it
// needs to grow.
func NewArray(n int) Array {
	return make(Array, 0, n)
}

// ArrayFrom copies xs into a fresh Array.
func ArrayFrom(xs ...*big.Int) Array {
	a := NewArray(len(xs))
	for _, x := range xs {
		a = a.Add(x)
	}
	return a
}

// Add appends a copy of x and returns the (possibly reallocated) Array.
func (a Array) Add(x *big.Int) Array {
	return append(a, new(big.Int).Set(x))
}

// Len returns the number of elements.
func (a Array) Len() int {
	return len(a)
}

// At returns the element at index i.
func (a Array) At(i int) *big.Int {
	return a[i]
}

// AppendAll appends a copy of every element of other and returns the
// (possibly reallocated) Array.
func (a Array) AppendAll(other Array) Array {
	for _, x := range other {
		a = a.Add(x)
	}
	return a
}

// Clone returns a deep copy of a.
func (a Array) Clone() Array {
	return NewArray(len(a)).AppendAll(a)
}

// Clear releases a's backing storage. Present for symmetry with Pool's
// Clear and the original's array_clear; in Go the garbage collector
// does the actual reclaiming once the slice is unreachable.
func (a *Array) Clear() {
	*a = nil
}
