package copri

import "math/big"

// Factor records that original factors as factor * cofactor, with
// factor drawn from the coprime base FindFactor was run against. It is
// only ever emitted when factor != original — a0 already being an
// element of the base (the prime case) needs no triple. Algorithm 20.1.
type Factor struct {
	Original *big.Int
	Factor   *big.Int
	Cofactor *big.Int
}

// FindFactor attempts to factor a as a product of powers of
// p[from..to], reporting success as a boolean. a0 is the original
// value the outermost caller started with: as the recursion splits P
// and a shrinks toward a single prime power, a0 stays fixed so that
// every triple recorded in out traces back to the element the caller
// actually asked about.
//
// Note on the success/failure boolean: the algorithm this is grounded
// on (original_source/copri.c) clears its success flag inside the very
// branch that records a successful triple, which would make every
// composite a0 report failure even when it fully factors over P —
// contradicting the "proclaims failure" semantics the surrounding
// prose describes: a composite a0 that fully factors over P ought to
// report success. FindFactor returns true whenever c == 1, independent
// of whether a triple was appended.
func FindFactor(pool *Pool, out *[]Factor, a0, a *big.Int, p Array, from, to int) bool {
	n := to - from

	if n == 0 {
		m := pool.Pop()
		defer pool.Push(m)
		c := pool.Pop()
		defer pool.Push(c)

		Reduce(pool, m, c, p.At(from), a)
		if c.Cmp(one) != 0 {
			return false
		}

		if a0.Cmp(p.At(from)) != 0 {
			y := new(big.Int).Quo(a0, p.At(from))
			*out = append(*out, Factor{
				Original: new(big.Int).Set(a0),
				Factor:   new(big.Int).Set(p.At(from)),
				Cofactor: y,
			})
		}
		return true
	}

	mid := to - n/2 - 1

	y := pool.Pop()
	defer pool.Push(y)
	Prod(pool, y, p, from, mid)

	b := pool.Pop()
	defer pool.Push(b)
	c2 := pool.Pop()
	defer pool.Push(c2)
	PPIPPO(pool, b, c2, a, y)

	if !FindFactor(pool, out, a0, b, p, from, mid) {
		return false
	}
	return FindFactor(pool, out, a0, c2, p, mid+1, to)
}

// ArrayFindFactor is the Array-indexed form of FindFactor. Calling it
// with an empty p is a caller error; it logs a diagnostic and reports
// failure.
func ArrayFindFactor(pool *Pool, out *[]Factor, a *big.Int, p Array, opts *Options) bool {
	if p.Len() == 0 {
		warnf(opts.logger(), "array_find_factor on empty array: %v", ErrEmptyArray)
		return false
	}
	return FindFactor(pool, out, a, a, p, 0, p.Len()-1)
}
