package copri

import "math/big"

// bit reports whether bit i of k is set, 0-indexed from the
// least-significant bit. Kept as its own named primitive (rather than
// inlined) because the algorithm it is grounded on names it the same
// way — it is what drives cbmerge's bit-indexed partitioning of Q.
func bit(i, k uint) bool {
	return k&(1<<i) != 0
}

// CBMerge appends to s the natural coprime base of P ∪ Q, given that P
// (represented by p) and Q (represented by q) are each already
// coprime. It repeatedly bisects Q by each bit of its index and
// extends the running base by the product of each half in turn; after
// enough bit-layers (the smallest b >= 1 with 2^b >= |Q|) every element
// of Q has been separated from the running base. Algorithm 17.3.
//
// CBMerge makes no special case of an empty p or q: CBExtend by the
// product-of-nothing (1) is already the identity, so the loop
// naturally degenerates to "copy the other base" or "stay empty". The
// diagnostic for those cases is emitted by CB, which is the only
// caller that knows *why* one side came up empty.
func CBMerge(pool *Pool, s *Array, p, q Array, opts *Options) {
	n := uint(q.Len())

	var b uint
	x := pool.Pop()
	defer pool.Push(x)
	for {
		b++
		x.Lsh(one, b)
		if x.Cmp(big.NewInt(int64(n))) >= 0 {
			break
		}
	}

	*s = s.AppendAll(p)

	r := NewArray(q.Len())
	for i := uint(0); i < b; i++ {
		r = r[:0]
		for k := uint(0); k < n; k++ {
			if !bit(i, k) {
				r = r.Add(q.At(int(k)))
			}
		}
		ArrayProd(pool, r, x)
		t := NewArray(s.Len())
		CBExtend(pool, &t, *s, x, opts)

		r = r[:0]
		for k := uint(0); k < n; k++ {
			if bit(i, k) {
				r = r.Add(q.At(int(k)))
			}
		}
		ArrayProd(pool, r, x)
		*s = NewArray(t.Len())
		CBExtend(pool, s, t, x, opts)
	}
}
