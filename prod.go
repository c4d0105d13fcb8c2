package copri

import "math/big"

// Prod sets rot to the product of arr[from..to] (inclusive), computed
// as a balanced binary product tree rather than a linear fold — the
// balance is what gives the divide-and-conquer routines built on top
// of it (Split, FindFactor, FindFactors) their essentially-linear
// bit-complexity. Algorithm 14.1.
func Prod(pool *Pool, rot *big.Int, arr Array, from, to int) {
	n := to - from
	if n == 0 {
		rot.Set(arr[from])
		return
	}

	x := pool.Pop()
	defer pool.Push(x)
	Prod(pool, x, arr, from, to-n/2-1)

	y := pool.Pop()
	defer pool.Push(y)
	Prod(pool, y, arr, to-n/2, to)

	rot.Mul(x, y)
}

// ArrayProd sets rot to the product of every element of a. The product
// of an empty Array is 1, which is what lets CBExtend treat an empty P
// uniformly.
func ArrayProd(pool *Pool, a Array, rot *big.Int) {
	if a.Len() > 0 {
		Prod(pool, rot, a, 0, a.Len()-1)
		return
	}
	rot.SetUint64(1)
}
