package copri

// FindFactors factors each element of s[from..to] over p, appending a
// Factor triple to out for every non-prime element that factors
// successfully. p must be a coprime base for the primes dividing the
// product of s[from..to]. At each level it prunes p down to Q, the
// primes of p that actually divide some element of the current range,
// before recursing — primes absent from the range need not be tested
// against it. Algorithm 21.2.
func FindFactors(pool *Pool, out *[]Factor, s Array, from, to int, p Array, opts *Options) {
	x := pool.Pop()
	defer pool.Push(x)
	ArrayProd(pool, p, x)

	y := pool.Pop()
	defer pool.Push(y)
	Prod(pool, y, s, from, to)

	z := pool.Pop()
	defer pool.Push(z)
	PPI(pool, z, x, y)

	d := NewArray(p.Len())
	ArraySplit(pool, &d, z, p, opts)

	q := NewArray(p.Len())
	for i := 0; i < p.Len(); i++ {
		if d.At(i).Cmp(p.At(i)) == 0 {
			q = q.Add(p.At(i))
		}
	}

	n := to - from
	if n == 0 {
		ArrayFindFactor(pool, out, y, q, opts)
		return
	}

	mid := to - n/2 - 1
	FindFactors(pool, out, s, from, mid, q, opts)
	FindFactors(pool, out, s, mid+1, to, q, opts)
}

// ArrayFindFactors is the Array-indexed form of FindFactors. Calling it
// with an empty s is a caller error; it logs a diagnostic and leaves
// out untouched.
func ArrayFindFactors(pool *Pool, out *[]Factor, s Array, p Array, opts *Options) {
	if s.Len() == 0 {
		warnf(opts.logger(), "array_find_factors on empty array: %v", ErrEmptyArray)
		return
	}
	FindFactors(pool, out, s, 0, s.Len()-1, p, opts)
}
