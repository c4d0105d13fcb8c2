package copri

import "math/big"

// Reduce returns, via i and c, the largest i with p^i | a and the
// cofactor c = a / p^i, computed with O(log i) multiplications by
// doubling the exponent tested at each level instead of trying
// p, p^2, p^3, ... one at a time. Algorithm 19.2.
func Reduce(pool *Pool, i, c, p, a *big.Int) {
	r := pool.Pop()
	defer pool.Push(r)

	r.Mod(a, p)
	if r.Sign() != 0 {
		i.SetUint64(0)
		c.Set(a)
		return
	}

	j := pool.Pop()
	defer pool.Push(j)
	b := pool.Pop()
	defer pool.Push(b)
	p2 := pool.Pop()
	a2 := pool.Pop()

	p2.Mul(p, p)
	a2.Quo(a, p)
	Reduce(pool, j, b, p2, a2)
	pool.Push(p2)
	pool.Push(a2)

	r.Mod(b, p)
	if r.Sign() == 0 {
		j.Mul(j, two)
		j.Add(j, two)
		i.Set(j)
		b.Quo(b, p)
		c.Set(b)
		return
	}

	j.Mul(j, two)
	j.Add(j, one)
	i.Set(j)
	c.Set(b)
}
