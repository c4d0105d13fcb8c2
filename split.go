package copri

import "math/big"

// Split appends to ret, in order, the ppi(a, p_i) for each p_i in
// p[from..to] (inclusive) — the part of a accounted for by the primes
// of each element of the coprime set P represented by that range.
// Using the already-computed ppi(a, prod(P-subrange)) at each level
// instead of recomputing against the original a is what makes this
// essentially linear rather than quadratic. Algorithm 15.3.
func Split(pool *Pool, ret *Array, a *big.Int, p Array, from, to int) {
	x := pool.Pop()
	b := pool.Pop()
	defer pool.Push(b)

	Prod(pool, x, p, from, to)
	PPI(pool, b, a, x)
	pool.Push(x)

	n := to - from
	if n == 0 {
		*ret = ret.Add(b)
		return
	}

	Split(pool, ret, b, p, from, to-n/2-1)
	Split(pool, ret, b, p, to-n/2, to)
}

// ArraySplit is the Array-indexed form of Split: it computes
// ppi(a, p_i) for every p_i in p and appends them to ret, in order.
// Calling it with an empty p is a caller error; it logs a diagnostic
// and does nothing rather than panicking.
func ArraySplit(pool *Pool, ret *Array, a *big.Int, p Array, opts *Options) {
	if p.Len() == 0 {
		warnf(opts.logger(), "array_split on empty array: %v", ErrEmptyArray)
		return
	}
	Split(pool, ret, a, p, 0, p.Len()-1)
}
