package copri

import "math/big"

// CBExtend appends to ret the natural coprime base of P ∪ {b}, given
// that P (represented by p) is already coprime. Algorithm 16.2.
//
// Note on the empty-P case: the literal algorithm source this package
// is grounded on falls through after handling P == {} instead of
// returning, which (since ArrayProd({}) == 1 and ppi/ppo against 1
// hands b straight back as the "outside" part) would append b a second
// time. The boundary case cbextend([], b) == [b] requires the early
// return, so that is what this implementation does.
func CBExtend(pool *Pool, ret *Array, p Array, b *big.Int, opts *Options) {
	if p.Len() == 0 {
		if b.Cmp(one) != 0 {
			*ret = ret.Add(b)
		}
		return
	}

	x := pool.Pop()
	defer pool.Push(x)
	ArrayProd(pool, p, x)

	a := pool.Pop()
	defer pool.Push(a)
	r := pool.Pop()
	defer pool.Push(r)
	PPIPPO(pool, a, r, b, x)

	if r.Cmp(one) != 0 {
		*ret = ret.Add(r)
	}

	s := NewArray(p.Len())
	ArraySplit(pool, &s, a, p, opts)

	if p.Len() != s.Len() {
		warnf(opts.logger(), "cbextend: split returned %d entries for %d-element p: %v", s.Len(), p.Len(), ErrSplitSizeMismatch)
		return
	}

	for i := 0; i < p.Len(); i++ {
		AppendCB(pool, ret, p.At(i), s.At(i))
	}
}
