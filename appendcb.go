package copri

import "math/big"

// AppendCB appends to out the elements of the natural coprime base of
// {a, b}, for nonnegative a, b. It is the workhorse the rest of the
// package builds on: CBExtend calls it once per element of the base it
// is extending, refining the prime-power interaction between a and b
// one "exponent layer" at a time until nothing more than b is left.
// Algorithm 13.2.
func AppendCB(pool *Pool, out *Array, a, b *big.Int) {
	// Step 1: b == 1 is the recursion's base case.
	if b.Cmp(one) == 0 {
		if a.Cmp(one) != 0 {
			*out = out.Add(a)
		}
		return
	}

	r := pool.Pop()
	defer pool.Push(r)
	a1 := pool.Pop()
	defer pool.Push(a1)

	// Step 2-3: a1 = ppi(a,b) (the b-side of a), r = ppo(a,b) (the part
	// of a coprime to b, which belongs in the base on its own).
	PPIPPO(pool, a1, r, a, b)
	if r.Cmp(one) != 0 {
		*out = out.Add(r)
	}

	g := pool.Pop()
	defer pool.Push(g)
	h := pool.Pop()
	defer pool.Push(h)
	c := pool.Pop()
	defer pool.Push(c)

	// Step 4: (g,h,c) = (gcd,ppg,pple)(a1,b).
	GCDPPGPPLE(pool, g, h, c, a1, b)

	// Step 5-6: c0 and x both start at c (pple), n starts at 1.
	c0 := pool.Pop()
	defer pool.Push(c0)
	c0.Set(c)
	x := pool.Pop()
	defer pool.Push(x)
	x.Set(c0)
	n := uint64(1)

	t1 := pool.Pop()
	defer pool.Push(t1)
	t2 := pool.Pop()
	defer pool.Push(t2)
	d := pool.Pop()
	defer pool.Push(d)
	y := pool.Pop()
	defer pool.Push(y)

	for {
		// Step 7: (g,h,c) <- (gcd,ppg,pple)(h, g^2).
		t1.Mul(g, g)
		t2.Set(h)
		GCDPPGPPLE(pool, g, h, c, t2, t1)

		// Step 8-9: d <- gcd(c,b); x <- x*d.
		d.GCD(nil, nil, c, b)
		x.Mul(x, d)

		// Step 10: y <- d^(2^(n-1)).
		y.Set(d)
		TwoPower(y, n-1)

		// Step 11: recurse on (c/y, d).
		t1.Quo(c, y)
		AppendCB(pool, out, t1, d)

		// Step 12: loop while h != 1.
		if h.Cmp(one) == 0 {
			break
		}
		n++
	}

	// Step 13: recurse on (b/x, c0).
	t1.Quo(b, x)
	AppendCB(pool, out, t1, c0)
}
