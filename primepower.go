package copri

import "math/big"

// GCDPPIPPO computes gcd = gcd(a,b), ppi = ppi(a,b) (the largest
// divisor of a all of whose prime factors appear in b), and
// ppo = ppo(a,b) = a/ppi. Algorithm 11.3.
func GCDPPIPPO(pool *Pool, gcd, ppi, ppo, a, b *big.Int) {
	g := pool.Pop()
	defer pool.Push(g)

	ppi.GCD(nil, nil, a, b)
	gcd.Set(ppi)
	ppo.Quo(a, ppi)

	for {
		g.GCD(nil, nil, ppi, ppo)
		if g.Cmp(one) == 0 {
			return
		}
		ppi.Mul(ppi, g)
		ppo.Quo(ppo, g)
	}
}

// PPIPPO computes ppi(a,b) and ppo(a,b), discarding the gcd.
func PPIPPO(pool *Pool, ppi, ppo, a, b *big.Int) {
	gcd := pool.Pop()
	defer pool.Push(gcd)
	GCDPPIPPO(pool, gcd, ppi, ppo, a, b)
}

// PPI computes ppi(a,b), discarding the gcd and ppo.
func PPI(pool *Pool, ppi, a, b *big.Int) {
	gcd := pool.Pop()
	ppo := pool.Pop()
	defer pool.Push(gcd)
	defer pool.Push(ppo)
	GCDPPIPPO(pool, gcd, ppi, ppo, a, b)
}

// GCDPPGPPLE computes gcd = gcd(a,b), ppg = ppg(a,b) (the product of
// the full prime powers of a whose exponents strictly exceed those in
// b), and pple = pple(a,b) = a/ppg (the prime powers of a whose
// exponents are <= those in b). For a = 24, b = 2: ppg = 24, pple = 1.
// Algorithm 11.4.
func GCDPPGPPLE(pool *Pool, gcd, ppg, pple, a, b *big.Int) {
	g := pool.Pop()
	defer pool.Push(g)

	pple.GCD(nil, nil, a, b)
	gcd.Set(pple)
	ppg.Quo(a, pple)

	for {
		g.GCD(nil, nil, ppg, pple)
		if g.Cmp(one) == 0 {
			return
		}
		ppg.Mul(ppg, g)
		pple.Quo(pple, g)
	}
}
